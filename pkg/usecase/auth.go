package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vaxbook/pkg/domain/interfaces"
	"github.com/secmon-lab/vaxbook/pkg/domain/model"
	"github.com/secmon-lab/vaxbook/pkg/domain/types"
)

// DefaultSessionDuration is the session lifetime when the token has no earlier expiry
const DefaultSessionDuration = 24 * time.Hour

// Auth implements AuthUseCase with repository-based session storage
type Auth struct {
	repo     interfaces.Repository
	backend  interfaces.Backend
	duration time.Duration
}

// AuthOption configures Auth
type AuthOption func(*Auth)

// WithSessionDuration sets the maximum session lifetime
func WithSessionDuration(d time.Duration) AuthOption {
	return func(a *Auth) {
		if d > 0 {
			a.duration = d
		}
	}
}

// NewAuth creates a new Auth use case
func NewAuth(ctx context.Context, repo interfaces.Repository, backend interfaces.Backend, opts ...AuthOption) AuthUseCase {
	a := &Auth{
		repo:     repo,
		backend:  backend,
		duration: DefaultSessionDuration,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Login authenticates against the backend and stores a new session
func (a *Auth) Login(ctx context.Context, username, password string) (*model.Session, error) {
	logger := ctxlog.From(ctx)

	if username == "" || password == "" {
		return nil, goerr.Wrap(model.ErrInvalidInput, "username and password are required")
	}

	token, err := a.backend.Login(ctx, username, password)
	if err != nil {
		return nil, goerr.Wrap(err, "backend login failed", goerr.V("username", username))
	}

	claims, err := model.ParseClaims(token)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read token claims")
	}

	session, err := model.NewSession(token, *claims, a.duration)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create session")
	}

	if err := a.repo.SaveSession(ctx, session); err != nil {
		return nil, goerr.Wrap(err, "failed to save session")
	}

	logger.Info("Created new session",
		"sessionID", session.ID,
		"username", claims.Username,
		"role", claims.Role,
		"expiresAt", session.ExpiresAt,
	)

	return session, nil
}

// ValidateSession validates a session by ID and secret
func (a *Auth) ValidateSession(ctx context.Context, sessionID, sessionSecret string) (*model.Session, error) {
	if sessionID == "" || sessionSecret == "" {
		return nil, goerr.Wrap(model.ErrUnauthorized, "session ID and secret are required")
	}

	session, err := a.repo.GetSession(ctx, types.SessionID(sessionID))
	if err != nil {
		return nil, goerr.Wrap(err, "session not found")
	}

	if session.Secret != types.SessionSecret(sessionSecret) {
		return nil, goerr.Wrap(model.ErrUnauthorized, "invalid session secret")
	}

	if session.IsExpired() {
		return nil, goerr.Wrap(model.ErrUnauthorized, "session expired")
	}

	return session, nil
}

// DeleteSession deletes a session
func (a *Auth) DeleteSession(ctx context.Context, sessionID string) error {
	logger := ctxlog.From(ctx)

	if sessionID == "" {
		return goerr.New("session ID is required")
	}

	if err := a.repo.DeleteSession(ctx, types.SessionID(sessionID)); err != nil {
		return goerr.Wrap(err, "failed to delete session")
	}

	logger.Info("Deleted session",
		"sessionID", sessionID,
	)

	return nil
}
