package entity

import (
	"time"

	"github.com/google/uuid"
)

// Coupon is a user-scoped, time-bounded percentage discount code. A user holds
// at most one coupon at a time: minting a new one replaces the previous row.
// Redemption deactivates the coupon but keeps the record for history.
type Coupon struct {
	ID                 uuid.UUID
	Code               string    // The redemption code the customer types in.
	DiscountPercentage int       // Percentage off the order subtotal, 0-100.
	ExpirationDate     time.Time // The coupon is unusable at or after this instant.
	UserID             uuid.UUID // The owning user; codes are not transferable.
	IsActive           bool      // False once redeemed.
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Expired reports whether the coupon can no longer be redeemed at the given time.
func (c *Coupon) Expired(now time.Time) bool {
	return !now.Before(c.ExpirationDate)
}

// Redeemable reports whether the coupon is active and unexpired.
func (c *Coupon) Redeemable(now time.Time) bool {
	return c.IsActive && !c.Expired(now)
}
