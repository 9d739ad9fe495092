package repository

import (
	"context"
	"errors"

	"galassia/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCouponNotFound is returned when no matching coupon exists.
var ErrCouponNotFound = errors.New("coupon not found")

// ErrCouponAlreadyRedeemed is returned by Deactivate when the coupon row was
// already inactive, i.e. a concurrent redemption won the race.
var ErrCouponAlreadyRedeemed = errors.New("coupon already redeemed")

// CouponRepository defines the operations for coupon persistence. A user owns
// at most one coupon row at a time.
type CouponRepository interface {
	// FindActiveByUser retrieves the user's active coupon, if any.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) (*entity.Coupon, error)

	// FindActiveByCodeAndUser retrieves an active coupon with the exact code
	// owned by the user. Inactive coupons and codes owned by other users
	// yield ErrCouponNotFound.
	FindActiveByCodeAndUser(ctx context.Context, code string, userID uuid.UUID) (*entity.Coupon, error)

	// ReplaceForUser deletes the user's previous coupon row, if any, and
	// persists the new one.
	ReplaceForUser(ctx context.Context, coupon *entity.Coupon) error

	// Deactivate marks a coupon redeemed. The update is guarded on the row
	// still being active so two concurrent redemptions cannot both succeed.
	Deactivate(ctx context.Context, id uuid.UUID) error
}
