package usecase

import (
	"context"

	"galassia/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartView is the priced rendering of a user's cart. Totals reflect per-unit
// discounts but never coupons, which only apply at checkout.
type CartView struct {
	Items    []*entity.CartItem
	Subtotal decimal.Decimal
	Total    decimal.Decimal
}

// CartUsecase defines the interface for cart management use cases
type CartUsecase interface {
	// GetCart retrieves the user's cart with computed totals.
	GetCart(ctx context.Context, userID uuid.UUID) (*CartView, error)

	// AddItem adds quantity of a product to the cart, merging with an
	// existing line.
	AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*CartView, error)

	// UpdateItem replaces a line's quantity. Zero removes the line.
	UpdateItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*CartView, error)

	// RemoveItem deletes one line from the cart.
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*CartView, error)

	// ClearCart empties the cart.
	ClearCart(ctx context.Context, userID uuid.UUID) error
}
