package repository

import (
	"context"
	"errors"
	"time"

	"galassia/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrOrderNotFound is returned when no matching order exists.
var ErrOrderNotFound = errors.New("order not found")

// ErrDuplicateCheckoutSession is returned when an order for the same checkout
// session handle already exists; the sparse unique index enforces this.
var ErrDuplicateCheckoutSession = errors.New("order already exists for checkout session")

// SalesSummary aggregates order counts and revenue for the analytics view.
type SalesSummary struct {
	TotalOrders  int64
	TotalRevenue decimal.Decimal
}

// DailySales is one day's aggregate for the analytics view.
type DailySales struct {
	Date    time.Time
	Orders  int64
	Revenue decimal.Decimal
}

// OrderRepository defines the operations for order persistence.
type OrderRepository interface {
	// Create persists a new order with its line items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByCheckoutSessionID retrieves the order created for an external
	// payment session, for idempotent confirmation.
	FindByCheckoutSessionID(ctx context.Context, sessionID string) (*entity.Order, error)

	// FindByUser retrieves a user's orders, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// FindAll retrieves every order, newest first, with user and product
	// references resolved for the admin view.
	FindAll(ctx context.Context) ([]*entity.Order, error)

	// UpdateStatus sets the fulfillment status of an order.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error)

	// Summary aggregates order count and revenue across all orders.
	Summary(ctx context.Context) (*SalesSummary, error)

	// DailySales aggregates per-day order counts and revenue since the given time.
	DailySales(ctx context.Context, since time.Time) ([]*DailySales, error)
}
