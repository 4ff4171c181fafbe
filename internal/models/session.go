package models

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Session is the authenticated caller. It is created at login, removed at
// logout and travels with each request through its context.
type Session struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type sessionKey struct{}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func SessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok && s != nil
}

// Identity is what the auth provider knows about a bearer token.
type Identity struct {
	UserID uuid.UUID
	Email  string
}
