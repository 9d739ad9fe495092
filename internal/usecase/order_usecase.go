package usecase

import (
	"context"

	"galassia/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase defines the interface for order management use cases
type OrderUsecase interface {
	// ListMyOrders retrieves the user's own orders, newest first.
	ListMyOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// ListAllOrders retrieves every order. Admin only.
	ListAllOrders(ctx context.Context) ([]*entity.Order, error)

	// GetOrder retrieves one order. Non-admin callers only see their own.
	GetOrder(ctx context.Context, requesterID uuid.UUID, isAdmin bool, orderID uuid.UUID) (*entity.Order, error)

	// UpdateOrderStatus sets an order's fulfillment status. Admin only.
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status string) (*entity.Order, error)
}
