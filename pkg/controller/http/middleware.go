package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/vaxbook/pkg/domain/model"
	"github.com/secmon-lab/vaxbook/pkg/usecase"
)

const (
	cookieSessionID     = "session_id"
	cookieSessionSecret = "session_secret"
)

// Middleware provides session-related HTTP middleware
type Middleware struct {
	authUC usecase.AuthUseCase
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(authUC usecase.AuthUseCase) *Middleware {
	return &Middleware{
		authUC: authUC,
	}
}

// LoadSession resolves the session cookies into an AuthContext on the request
// context. Requests without a valid session pass through anonymously.
func (m *Middleware) LoadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionIDCookie, err := r.Cookie(cookieSessionID)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		sessionSecretCookie, err := r.Cookie(cookieSessionSecret)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		session, err := m.authUC.ValidateSession(r.Context(), sessionIDCookie.Value, sessionSecretCookie.Value)
		if err != nil {
			ctxlog.From(r.Context()).Debug("Session validation failed",
				"error", err,
				"sessionID", sessionIDCookie.Value,
			)
			next.ServeHTTP(w, r)
			return
		}

		ctx := model.WithAuthContext(r.Context(), model.NewAuthContext(session))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth rejects API requests without an authenticated session
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authCtx, ok := model.GetAuthContext(r.Context())
		if !ok || !authCtx.IsAuthenticated() {
			writeError(w, r, model.ErrUnauthorized, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireStaff rejects API requests from accounts that may not see staff data
func (m *Middleware) RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authCtx, ok := model.GetAuthContext(r.Context())
		if !ok || !authCtx.Role.CanViewSchedule() {
			writeError(w, r, model.ErrUnauthorized, http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequirePageAuth redirects page requests without a session to the login page
func (m *Middleware) RequirePageAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authCtx, ok := model.GetAuthContext(r.Context())
		if !ok || !authCtx.IsAuthenticated() {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// LoggingMiddleware creates a chi-compatible logging middleware
func LoggingMiddleware(ctx context.Context) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := ctxlog.From(ctx).With("requestID", middleware.GetReqID(r.Context()))
			r = r.WithContext(ctxlog.With(r.Context(), logger))

			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"query", r.URL.RawQuery,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
			)
		})
	}
}
