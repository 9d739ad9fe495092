package impl

import (
	"context"
	"testing"
	"time"

	"galassia/internal/domain/entity"
	domainerrors "galassia/internal/domain/errors"
	"galassia/internal/domain/repository"
	"galassia/internal/domain/service"
	mockRepo "galassia/internal/mocks/repository"
	mockService "galassia/internal/mocks/service"
	"galassia/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service        usecase.UserUsecase
	userRepo       *mockRepo.MockUserRepository
	tokenService   *mockService.MockTokenService
	passwordHasher *mockService.MockPasswordHasher
	sessionStore   *mockService.MockSessionStore
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenService := mockService.NewMockTokenService(t)
	passwordHasher := mockService.NewMockPasswordHasher(t)
	sessionStore := mockService.NewMockSessionStore(t)
	svc := NewUserService(UserServiceParams{
		UserRepo:       userRepo,
		TokenService:   tokenService,
		PasswordHasher: passwordHasher,
		SessionStore:   sessionStore,
	})

	return userServiceFixtures{
		service:        svc,
		userRepo:       userRepo,
		tokenService:   tokenService,
		passwordHasher: passwordHasher,
		sessionStore:   sessionStore,
	}
}

// expectTokenIssue wires the token generation and refresh-token persistence
// shared by the register, login and refresh happy paths.
func (f userServiceFixtures) expectTokenIssue(ctx context.Context, pair *service.TokenPair) {
	f.tokenService.EXPECT().
		GenerateTokenPair(mock.AnythingOfType("*entity.User")).
		Return(pair, nil)

	f.tokenService.EXPECT().
		RefreshTokenTTL().
		Return(7 * 24 * time.Hour)

	f.sessionStore.EXPECT().
		SaveRefreshToken(ctx, mock.AnythingOfType("uuid.UUID"), pair.RefreshToken, 7*24*time.Hour).
		Return(nil)
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	pair := &service.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresAt:    time.Now().Add(15 * time.Minute),
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "amelia@example.com").
		Return(nil, repository.ErrUserNotFound)

	fx.passwordHasher.EXPECT().
		Hash("s3cret-pass").
		Return("bcrypt-hash", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			user.ID = userID

			return nil
		})

	fx.expectTokenIssue(ctx, pair)

	out, err := fx.service.Register(ctx, usecase.RegisterInput{
		Email:    "amelia@example.com",
		Name:     "Amelia",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, out.User.ID)
	assert.Equal(t, entity.RoleCustomer, out.User.Role)
	assert.Equal(t, "bcrypt-hash", out.User.PasswordHash)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), Email: "amelia@example.com"}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "amelia@example.com").
		Return(existing, nil)

	out, err := fx.service.Register(ctx, usecase.RegisterInput{
		Email:    "amelia@example.com",
		Name:     "Amelia",
		Password: "s3cret-pass",
	})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "amelia@example.com",
		PasswordHash: "bcrypt-hash",
		Role:         entity.RoleCustomer,
	}
	pair := &service.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresAt:    time.Now().Add(15 * time.Minute),
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "amelia@example.com").
		Return(user, nil)

	fx.passwordHasher.EXPECT().
		Compare("bcrypt-hash", "s3cret-pass").
		Return(nil)

	fx.expectTokenIssue(ctx, pair)

	out, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "amelia@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, out.User.ID)
	assert.Equal(t, "access-token", out.AccessToken)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "amelia@example.com",
		PasswordHash: "bcrypt-hash",
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "amelia@example.com").
		Return(user, nil)

	fx.passwordHasher.EXPECT().
		Compare("bcrypt-hash", "wrong-pass").
		Return(errors.New("hash mismatch"))

	out, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "amelia@example.com",
		Password: "wrong-pass",
	})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmailSameError(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	out, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Refresh_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:    uuid.New(),
		Email: "amelia@example.com",
		Role:  entity.RoleCustomer,
	}
	pair := &service.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
		ExpiresAt:    time.Now().Add(15 * time.Minute),
	}

	fx.tokenService.EXPECT().
		ValidateRefreshToken("old-refresh-token").
		Return(&service.Claims{UserID: user.ID, Email: user.Email, Role: user.Role}, nil)

	fx.sessionStore.EXPECT().
		ValidateRefreshToken(ctx, user.ID, "old-refresh-token").
		Return(true, nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, user.ID).
		Return(user, nil)

	fx.expectTokenIssue(ctx, pair)

	out, err := fx.service.Refresh(ctx, "old-refresh-token")
	require.NoError(t, err)
	assert.Equal(t, "new-access-token", out.AccessToken)
	assert.Equal(t, "new-refresh-token", out.RefreshToken)
}

func TestUserService_Refresh_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("garbage").
		Return(nil, errors.New("signature invalid"))

	out, err := fx.service.Refresh(ctx, "garbage")
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Refresh_StaleToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("rotated-away").
		Return(&service.Claims{UserID: userID}, nil)

	fx.sessionStore.EXPECT().
		ValidateRefreshToken(ctx, userID, "rotated-away").
		Return(false, nil)

	out, err := fx.service.Refresh(ctx, "rotated-away")
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Logout_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.sessionStore.EXPECT().
		RevokeRefreshToken(ctx, userID).
		Return(nil)

	err := fx.service.Logout(ctx, userID)
	require.NoError(t, err)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetProfile(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
