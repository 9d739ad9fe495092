package repository

import (
	"context"

	"galassia/internal/domain/entity"

	"github.com/google/uuid"
)

// CartRepository defines the operations for the server-held cart, keyed by
// user id. Quantities are plain desires, not reservations; stock is only
// enforced at checkout.
type CartRepository interface {
	// GetItems retrieves the user's cart with product references resolved.
	GetItems(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error)

	// UpsertItem adds the given quantity to an existing line, or inserts a
	// new line when the product is not in the cart yet.
	UpsertItem(ctx context.Context, item *entity.CartItem) error

	// SetItemQuantity replaces the quantity of an existing line. A quantity
	// of zero removes the line.
	SetItemQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) error

	// RemoveItem deletes one line from the cart.
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) error

	// Clear empties the user's cart.
	Clear(ctx context.Context, userID uuid.UUID) error
}
