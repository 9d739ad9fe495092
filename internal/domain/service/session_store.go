package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionStore persists refresh token state so tokens can be revoked before
// they expire. A nil-backed implementation may treat every token as valid.
type SessionStore interface {
	// SaveRefreshToken records the user's current refresh token.
	SaveRefreshToken(ctx context.Context, userID uuid.UUID, token string, ttl time.Duration) error

	// ValidateRefreshToken reports whether the token is the user's current one.
	ValidateRefreshToken(ctx context.Context, userID uuid.UUID, token string) (bool, error)

	// RevokeRefreshToken drops the user's refresh token on logout.
	RevokeRefreshToken(ctx context.Context, userID uuid.UUID) error
}
