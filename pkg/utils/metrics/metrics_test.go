package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/secmon-lab/vaxbook/pkg/utils/metrics"
)

func TestBackendMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.NewBackend(reg)
	gt.NoError(t, err).Required()

	m.ObserveRequest("combo_details", 200, 20*time.Millisecond)
	m.ObserveRequest("combo_details", 500, 10*time.Millisecond)
	m.AddDropped("combo_row", 2)
	m.AddDropped("combo_row", 0)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, req)

	gt.Equal(t, http.StatusOK, w.Code)
	body, err := io.ReadAll(w.Body)
	gt.NoError(t, err).Required()
	gt.S(t, string(body)).Contains(`vaxbook_backend_requests_total{code="200",endpoint="combo_details"} 1`)
	gt.S(t, string(body)).Contains(`vaxbook_backend_requests_total{code="500",endpoint="combo_details"} 1`)
	gt.S(t, string(body)).Contains(`vaxbook_dropped_records_total{kind="combo_row"} 2`)
}

func TestBackendMetricsReuseRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := metrics.NewBackend(reg)
	gt.NoError(t, err).Required()
	second, err := metrics.NewBackend(reg)
	gt.NoError(t, err).Required()

	first.ObserveRequest("login", 200, time.Millisecond)
	second.ObserveRequest("login", 200, time.Millisecond)

	w := httptest.NewRecorder()
	second.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	gt.S(t, w.Body.String()).Contains(`vaxbook_backend_requests_total{code="200",endpoint="login"} 2`)
}

func TestNilBackendMetrics(t *testing.T) {
	var m *metrics.Backend
	m.ObserveRequest("x", 200, time.Millisecond)
	m.AddDropped("x", 1)
}
