package impl

import (
	"context"

	"galassia/internal/domain/entity"
	domainerrors "galassia/internal/domain/errors"
	"galassia/internal/domain/repository"
	"galassia/internal/domain/service"
	"galassia/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type userService struct {
	userRepo       repository.UserRepository
	tokenService   service.TokenService
	passwordHasher service.PasswordHasher
	sessionStore   service.SessionStore
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	TokenService   service.TokenService
	PasswordHasher service.PasswordHasher
	SessionStore   service.SessionStore
}

// NewUserService creates a new user service instance
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:       params.UserRepo,
		tokenService:   params.TokenService,
		passwordHasher: params.PasswordHasher,
		sessionStore:   params.SessionStore,
	}
}

// Register creates a customer account and signs it in.
func (s *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	if _, err := s.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing email")
	}

	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed
	}

	user := &entity.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
		Role:         entity.RoleCustomer,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Login authenticates by email and password. Unknown emails and wrong
// passwords return the same error.
func (s *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	if err := s.passwordHasher.Compare(user.PasswordHash, input.Password); err != nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

// Refresh rotates a valid refresh token into a new token pair.
func (s *userService) Refresh(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	claims, err := s.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	current, err := s.sessionStore.ValidateRefreshToken(ctx, claims.UserID, refreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check refresh token")
	}
	if !current {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes the user's refresh token.
func (s *userService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := s.sessionStore.RevokeRefreshToken(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to revoke refresh token")
	}

	return nil
}

// GetProfile retrieves the account behind a user id.
func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	return user, nil
}

// issueTokens generates a token pair and records the refresh token so it can
// be revoked before expiry.
func (s *userService) issueTokens(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	pair, err := s.tokenService.GenerateTokenPair(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := s.sessionStore.SaveRefreshToken(ctx, user.ID, pair.RefreshToken, s.tokenService.RefreshTokenTTL()); err != nil {
		return nil, errors.Wrap(err, "failed to save refresh token")
	}

	return &usecase.AuthOutput{
		User:         user,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.ExpiresAt,
	}, nil
}
