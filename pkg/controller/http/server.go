package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vaxbook/frontend"
	"github.com/secmon-lab/vaxbook/pkg/domain/model"
	"github.com/secmon-lab/vaxbook/pkg/usecase"
	"github.com/secmon-lab/vaxbook/pkg/utils/apperr"
)

// Config holds HTTP server settings
type Config struct {
	addr         string
	secureCookie bool
}

// NewConfig creates a new server configuration
func NewConfig(addr string, secureCookie bool) *Config {
	return &Config{
		addr:         addr,
		secureCookie: secureCookie,
	}
}

// UseCases bundles the use cases served over HTTP
type UseCases struct {
	authUC     usecase.AuthUseCase
	comboUC    usecase.ComboUseCase
	scheduleUC usecase.ScheduleUseCase
	childUC    usecase.ChildUseCase
}

// NewUseCases creates the use case bundle for NewServer
func NewUseCases(
	authUC usecase.AuthUseCase,
	comboUC usecase.ComboUseCase,
	scheduleUC usecase.ScheduleUseCase,
	childUC usecase.ChildUseCase,
) *UseCases {
	return &UseCases{
		authUC:     authUC,
		comboUC:    comboUC,
		scheduleUC: scheduleUC,
		childUC:    childUC,
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// NewServer creates a new HTTP server. metricsHandler may be nil, in which
// case /metrics is not served.
func NewServer(ctx context.Context, cfg *Config, uc *UseCases, metricsHandler http.Handler) (*Server, error) {
	if uc == nil || uc.authUC == nil || uc.comboUC == nil || uc.scheduleUC == nil || uc.childUC == nil {
		return nil, goerr.New("all use cases are required")
	}

	templates, err := frontend.LoadTemplates(templateFuncs())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load page templates")
	}
	staticFS, err := frontend.StaticFS()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load static assets")
	}

	router := chi.NewRouter()
	mw := NewMiddleware(uc.authUC)

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(mw.LoadSession)
	router.Use(middleware.Recoverer)

	authHandler := NewAuthHandler(uc.authUC, cfg.secureCookie)
	apiHandler := NewAPIHandler(uc.comboUC, uc.scheduleUC, uc.childUC)
	pageHandler := NewPageHandler(templates, uc, cfg.secureCookie)

	router.Get("/health", handleHealth)
	if metricsHandler != nil {
		router.Handle("/metrics", metricsHandler)
	}

	// API routes
	router.Route("/api", func(r chi.Router) {
		r.Get("/combos", apiHandler.HandleCombos)
		r.Get("/vaccines", apiHandler.HandleVaccines)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.HandleLogin)
			r.Post("/logout", authHandler.HandleLogout)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(mw.RequireAuth)
			r.Get("/user/me", authHandler.HandleUserMe)
			r.Get("/children", apiHandler.HandleChildren)
			r.With(mw.RequireStaff).Get("/schedule", apiHandler.HandleSchedule)
		})
	})

	// Pages
	router.Get("/", pageHandler.HandleHome)
	router.Get("/prices", pageHandler.HandlePrices)
	router.Get("/combos", pageHandler.HandleCombos)
	router.Get("/login", pageHandler.HandleLoginPage)
	router.Post("/login", pageHandler.HandleLoginForm)
	router.Post("/logout", pageHandler.HandleLogoutForm)
	router.Group(func(r chi.Router) {
		r.Use(mw.RequirePageAuth)
		r.Get("/account", pageHandler.HandleAccount)
		r.Get("/schedule", pageHandler.HandleSchedule)
	})

	router.Handle("/static/*", http.StripPrefix("/static", NewStaticHandler(staticFS)))
	router.NotFound(pageHandler.HandleNotFound)

	ctxlog.From(ctx).Info("HTTP routes configured",
		"metrics", metricsHandler != nil,
		"secureCookie", cfg.secureCookie,
	)

	return &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}, nil
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "vaxbook",
	})
}

// statusOf maps an error to an HTTP status. Errors that match no sentinel get
// fallback.
func statusOf(err error, fallback int) int {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrUnauthorized), errors.Is(err, model.ErrSessionNotFound):
		return http.StatusUnauthorized
	default:
		return fallback
	}
}

// writeJSON writes v as a JSON response
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

// writeError writes an error response
func writeError(w http.ResponseWriter, r *http.Request, err error, status int) {
	if status >= http.StatusInternalServerError {
		apperr.Handle(r.Context(), err)
	}

	var message string
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	} else {
		message = err.Error()
	}

	writeJSON(w, r, status, map[string]string{
		"error": message,
	})
}
