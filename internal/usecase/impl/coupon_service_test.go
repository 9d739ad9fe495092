package impl

import (
	"context"
	"testing"
	"time"

	"galassia/internal/domain/entity"
	domainerrors "galassia/internal/domain/errors"
	"galassia/internal/domain/repository"
	mockRepo "galassia/internal/mocks/repository"
	mockService "galassia/internal/mocks/service"
	"galassia/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// couponServiceFixtures holds all test dependencies for coupon service tests.
type couponServiceFixtures struct {
	service       usecase.CouponUsecase
	couponRepo    *mockRepo.MockCouponRepository
	qrcodeService *mockService.MockQRCodeService
}

func createTestCouponService(t *testing.T) couponServiceFixtures {
	couponRepo := mockRepo.NewMockCouponRepository(t)
	qrcodeService := mockService.NewMockQRCodeService(t)
	service := NewCouponService(CouponServiceParams{
		CouponRepo:    couponRepo,
		QRCodeService: qrcodeService,
	})

	return couponServiceFixtures{
		service:       service,
		couponRepo:    couponRepo,
		qrcodeService: qrcodeService,
	}
}

func TestCouponService_GetActiveCoupon_Success(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	userID := uuid.New()
	coupon := &entity.Coupon{
		ID:                 uuid.New(),
		Code:               "GIFT-ABC123",
		DiscountPercentage: 10,
		ExpirationDate:     time.Now().Add(24 * time.Hour),
		UserID:             userID,
		IsActive:           true,
	}

	fx.couponRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(coupon, nil)

	got, err := fx.service.GetActiveCoupon(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, coupon.Code, got.Code)
}

func TestCouponService_GetActiveCoupon_Expired(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	userID := uuid.New()
	coupon := &entity.Coupon{
		Code:           "GIFT-OLD",
		ExpirationDate: time.Now().Add(-time.Hour),
		UserID:         userID,
		IsActive:       true,
	}

	fx.couponRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(coupon, nil)

	got, err := fx.service.GetActiveCoupon(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrCouponNotFound)
}

func TestCouponService_GetActiveCoupon_NotFound(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.couponRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(nil, repository.ErrCouponNotFound)

	got, err := fx.service.GetActiveCoupon(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrCouponNotFound)
}

func TestCouponService_ValidateCoupon_Valid(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	userID := uuid.New()
	coupon := &entity.Coupon{
		Code:               "GIFT-ABC123",
		DiscountPercentage: 15,
		ExpirationDate:     time.Now().Add(24 * time.Hour),
		UserID:             userID,
		IsActive:           true,
	}

	fx.couponRepo.EXPECT().
		FindActiveByCodeAndUser(ctx, "GIFT-ABC123", userID).
		Return(coupon, nil)

	validation, err := fx.service.ValidateCoupon(ctx, userID, "GIFT-ABC123")
	require.NoError(t, err)
	assert.True(t, validation.Valid)
	assert.Equal(t, 15, validation.DiscountPercentage)
}

func TestCouponService_ValidateCoupon_UnknownCodeIsInvalidNotError(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.couponRepo.EXPECT().
		FindActiveByCodeAndUser(ctx, "NOPE", userID).
		Return(nil, repository.ErrCouponNotFound)

	validation, err := fx.service.ValidateCoupon(ctx, userID, "NOPE")
	require.NoError(t, err)
	assert.False(t, validation.Valid)
	assert.Zero(t, validation.DiscountPercentage)
}

func TestCouponService_ValidateCoupon_ExpiredIsInvalid(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	userID := uuid.New()
	coupon := &entity.Coupon{
		Code:           "GIFT-OLD",
		ExpirationDate: time.Now().Add(-time.Minute),
		UserID:         userID,
		IsActive:       true,
	}

	fx.couponRepo.EXPECT().
		FindActiveByCodeAndUser(ctx, "GIFT-OLD", userID).
		Return(coupon, nil)

	validation, err := fx.service.ValidateCoupon(ctx, userID, "GIFT-OLD")
	require.NoError(t, err)
	assert.False(t, validation.Valid)
}

func TestCouponService_GenerateCouponQR_Success(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	userID := uuid.New()
	coupon := &entity.Coupon{
		Code:           "GIFT-ABC123",
		ExpirationDate: time.Now().Add(24 * time.Hour),
		UserID:         userID,
		IsActive:       true,
	}
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.couponRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(coupon, nil)

	fx.qrcodeService.EXPECT().
		GenerateCouponQR("GIFT-ABC123").
		Return(png, nil)

	got, err := fx.service.GenerateCouponQR(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestCouponService_GenerateCouponQR_NoActiveCoupon(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.couponRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(nil, repository.ErrCouponNotFound)

	got, err := fx.service.GenerateCouponQR(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrCouponNotFound)
}
