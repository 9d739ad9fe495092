package usecase

import (
	"context"
	"time"

	"galassia/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput creates a new customer account.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

// LoginInput authenticates an existing account.
type LoginInput struct {
	Email    string
	Password string
}

// AuthOutput carries the authenticated user and their token pair.
type AuthOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// UserUsecase defines the interface for account use cases
type UserUsecase interface {
	// Register creates a customer account and signs it in.
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)

	// Login authenticates by email and password.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// Refresh rotates a valid refresh token into a new token pair.
	Refresh(ctx context.Context, refreshToken string) (*AuthOutput, error)

	// Logout revokes the user's refresh token.
	Logout(ctx context.Context, userID uuid.UUID) error

	// GetProfile retrieves the account behind a user id.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
