package config

import (
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"
)

// Server holds server configuration
type Server struct {
	Addr            string
	InsecureCookie  bool
	SessionDuration time.Duration
}

// Flags returns CLI flags for Server configuration
func (s *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8080",
			Sources:     cli.EnvVars("VAXBOOK_ADDR"),
			Destination: &s.Addr,
		},
		&cli.BoolFlag{
			Name:        "insecure-cookie",
			Usage:       "Send session cookies without the Secure attribute (local development over plain HTTP)",
			Sources:     cli.EnvVars("VAXBOOK_INSECURE_COOKIE"),
			Destination: &s.InsecureCookie,
		},
		&cli.DurationFlag{
			Name:        "session-duration",
			Usage:       "Maximum session lifetime (shortened to the backend token expiry)",
			Value:       24 * time.Hour,
			Sources:     cli.EnvVars("VAXBOOK_SESSION_DURATION"),
			Destination: &s.SessionDuration,
		},
	}
}

// LogValue returns structured log value
func (s Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", s.Addr),
		slog.Bool("insecure_cookie", s.InsecureCookie),
		slog.Duration("session_duration", s.SessionDuration),
	)
}
