package config

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vaxbook/pkg/service/backend"
	"github.com/secmon-lab/vaxbook/pkg/utils/metrics"
	"github.com/urfave/cli/v3"
)

// Backend holds booking backend API configuration
type Backend struct {
	BaseURL string
	Timeout time.Duration
}

// Flags returns CLI flags for Backend configuration
func (b *Backend) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "backend-url",
			Usage:       "Base URL of the booking backend API",
			Category:    "Backend",
			Value:       "http://localhost:8081/api",
			Sources:     cli.EnvVars("VAXBOOK_BACKEND_URL"),
			Destination: &b.BaseURL,
		},
		&cli.DurationFlag{
			Name:        "backend-timeout",
			Usage:       "Timeout of a single backend request",
			Category:    "Backend",
			Value:       10 * time.Second,
			Sources:     cli.EnvVars("VAXBOOK_BACKEND_TIMEOUT"),
			Destination: &b.Timeout,
		},
	}
}

// Configure creates the backend client
func (b *Backend) Configure(m *metrics.Backend) (*backend.Client, error) {
	if b.BaseURL == "" {
		return nil, goerr.New("backend URL is required. Please provide VAXBOOK_BACKEND_URL")
	}
	if b.Timeout <= 0 {
		return nil, goerr.New("backend timeout must be positive", goerr.V("timeout", b.Timeout))
	}

	client, err := backend.New(b.BaseURL,
		backend.WithHTTPClient(&http.Client{Timeout: b.Timeout}),
		backend.WithMetrics(m),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create backend client")
	}
	return client, nil
}

// LogValue returns structured log value
func (b Backend) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("url", b.BaseURL),
		slog.Duration("timeout", b.Timeout),
	)
}
