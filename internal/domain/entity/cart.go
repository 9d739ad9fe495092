package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is one product-quantity pair in a user's server-held cart. The
// cart is a convenience copy of what the client assembles; checkout clears it.
type CartItem struct {
	UserID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	Product   *Product // Resolved product for cart reads; may be nil.
	CreatedAt time.Time
	UpdatedAt time.Time
}
