package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Backend records calls made to the booking backend
type Backend struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	dropped  *prometheus.CounterVec
	registry prometheus.Gatherer
}

// NewBackend registers backend call metrics on reg. If reg is nil a private
// registry is created. Collectors that are already registered are reused.
func NewBackend(reg *prometheus.Registry) (*Backend, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "vaxbook_backend_requests_total",
		Help: "Total number of requests to the booking backend",
	}, []string{"endpoint", "code"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vaxbook_backend_request_duration_seconds",
		Help:    "Latency of requests to the booking backend",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})
	dropped := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "vaxbook_dropped_records_total",
		Help: "Backend records dropped because they were malformed",
	}, []string{"kind"})

	var err error
	if requests, err = register(reg, requests); err != nil {
		return nil, err
	}
	if duration, err = register(reg, duration); err != nil {
		return nil, err
	}
	if dropped, err = register(reg, dropped); err != nil {
		return nil, err
	}

	return &Backend{
		requests: requests,
		duration: duration,
		dropped:  dropped,
		registry: reg,
	}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(C), nil
		}
		return c, err
	}
	return c, nil
}

// ObserveRequest records one backend call. code is the HTTP status, or 0 when
// no response was received.
func (b *Backend) ObserveRequest(endpoint string, code int, elapsed time.Duration) {
	if b == nil {
		return
	}
	b.requests.WithLabelValues(endpoint, strconv.Itoa(code)).Inc()
	b.duration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// AddDropped counts malformed records of the given kind
func (b *Backend) AddDropped(kind string, n int) {
	if b == nil || n <= 0 {
		return
	}
	b.dropped.WithLabelValues(kind).Add(float64(n))
}

// Handler exposes the registry in Prometheus text format
func (b *Backend) Handler() http.Handler {
	return promhttp.HandlerFor(b.registry, promhttp.HandlerOpts{})
}
