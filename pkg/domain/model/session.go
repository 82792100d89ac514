package model

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/secmon-lab/vaxbook/pkg/domain/types"
)

// Session is a browser session holding the backend token on the server side
type Session struct {
	ID        types.SessionID     `json:"id" firestore:"id"`
	Secret    types.SessionSecret `json:"-" firestore:"secret"`
	Token     types.AccessToken   `json:"-" firestore:"token"`
	Claims    Claims              `json:"claims" firestore:"claims"`
	CreatedAt time.Time           `json:"created_at" firestore:"created_at"`
	ExpiresAt time.Time           `json:"expires_at" firestore:"expires_at"`
}

// NewSession creates a new Session with UUID v7 ID and random Secret. The
// session never outlives the token it carries.
func NewSession(token types.AccessToken, claims Claims, duration time.Duration) (*Session, error) {
	sessionID, err := types.NewSessionID()
	if err != nil {
		return nil, err
	}

	// 24 bytes = 32 chars in base64
	sessionSecret, err := generateRandomSecret(24)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	expiresAt := now.Add(duration)
	if !claims.ExpiresAt.IsZero() && claims.ExpiresAt.Before(expiresAt) {
		expiresAt = claims.ExpiresAt
	}

	return &Session{
		ID:        sessionID,
		Secret:    types.SessionSecret(sessionSecret),
		Token:     token,
		Claims:    claims,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}, nil
}

// IsExpired checks if the session has expired
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsValid checks if the session is valid (not expired and has proper fields)
func (s *Session) IsValid() bool {
	return s.ID != "" && s.Secret != "" && s.Token != "" && !s.IsExpired()
}

func generateRandomSecret(byteLength int) (string, error) {
	bytes := make([]byte, byteLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
