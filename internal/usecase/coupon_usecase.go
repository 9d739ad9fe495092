package usecase

import (
	"context"

	"galassia/internal/domain/entity"

	"github.com/google/uuid"
)

// CouponValidation is the outcome of checking a coupon code for a user.
type CouponValidation struct {
	Valid              bool
	DiscountPercentage int
}

// CouponUsecase defines the interface for coupon use cases
type CouponUsecase interface {
	// GetActiveCoupon retrieves the user's active, unexpired coupon.
	GetActiveCoupon(ctx context.Context, userID uuid.UUID) (*entity.Coupon, error)

	// ValidateCoupon checks whether a code is redeemable by the user.
	// Unknown, foreign, inactive and expired codes all come back invalid.
	ValidateCoupon(ctx context.Context, userID uuid.UUID, code string) (*CouponValidation, error)

	// GenerateCouponQR renders the user's active coupon code as a PNG QR code.
	GenerateCouponQR(ctx context.Context, userID uuid.UUID) ([]byte, error)
}
