package model

import (
	"context"

	"github.com/secmon-lab/vaxbook/pkg/domain/types"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	authContextKey contextKey = "authContext"
)

// AuthContext is the authenticated identity of a request. Handlers that need
// the backend token take it from here instead of any shared storage.
type AuthContext struct {
	SessionID types.SessionID   `json:"session_id,omitempty"`
	Username  string            `json:"username,omitempty"`
	Role      types.Role        `json:"role,omitempty"`
	Token     types.AccessToken `json:"-"`
}

// NewAuthContext creates an AuthContext from a validated session
func NewAuthContext(session *Session) *AuthContext {
	if session == nil {
		return &AuthContext{}
	}
	return &AuthContext{
		SessionID: session.ID,
		Username:  session.Claims.Username,
		Role:      session.Claims.Role,
		Token:     session.Token,
	}
}

// IsAuthenticated reports whether the context carries a backend token
func (a *AuthContext) IsAuthenticated() bool {
	return a != nil && a.Token != ""
}

// WithAuthContext adds AuthContext to the context
func WithAuthContext(ctx context.Context, authCtx *AuthContext) context.Context {
	if authCtx == nil {
		return ctx
	}
	return context.WithValue(ctx, authContextKey, authCtx)
}

// GetAuthContext retrieves AuthContext from the context
func GetAuthContext(ctx context.Context) (*AuthContext, bool) {
	authCtx, ok := ctx.Value(authContextKey).(*AuthContext)
	return authCtx, ok
}

// Clone creates a deep copy of the AuthContext
func (a *AuthContext) Clone() *AuthContext {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}
