package service

import (
	"time"

	"galassia/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenPair represents an access and refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// Claims carries the identity embedded in a verified token.
type Claims struct {
	UserID uuid.UUID
	Email  string
	Role   entity.Role
}

// TokenService defines the operations for issuing and verifying auth tokens.
type TokenService interface {
	// GenerateTokenPair creates a new access and refresh token pair for the user.
	GenerateTokenPair(user *entity.User) (*TokenPair, error)

	// ValidateAccessToken verifies an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken verifies a refresh token and returns its claims.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// RefreshTokenTTL returns the configured duration for refresh tokens.
	RefreshTokenTTL() time.Duration
}
