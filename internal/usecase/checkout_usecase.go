package usecase

import (
	"context"

	"galassia/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutItemInput is one requested line of a checkout.
type CheckoutItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CardSessionInput opens a hosted card checkout session.
type CardSessionInput struct {
	Items      []CheckoutItemInput
	CouponCode string
}

// CardSessionOutput is the handle the client redirects to.
type CardSessionOutput struct {
	SessionID   string
	URL         string
	TotalAmount decimal.Decimal
}

// ShippingAddressInput is the delivery address for cash orders.
type ShippingAddressInput struct {
	Name    string
	Phone   string
	Address string
	City    string
	ZipCode string
}

// CashOrderInput places a cash-on-delivery order directly.
type CashOrderInput struct {
	Items      []CheckoutItemInput
	CouponCode string
	Address    ShippingAddressInput
}

// CheckoutUsecase defines the interface for checkout use cases
type CheckoutUsecase interface {
	// CreateCardSession re-reads the catalog, prices the requested items and
	// opens a hosted payment session. Stock is validated but not reserved.
	CreateCardSession(ctx context.Context, userID uuid.UUID, input CardSessionInput) (*CardSessionOutput, error)

	// ConfirmCardSession verifies payment with the processor and materializes
	// the order from the session snapshot. Idempotent per session.
	ConfirmCardSession(ctx context.Context, userID uuid.UUID, sessionID string) (*entity.Order, error)

	// PlaceCashOrder validates the address, decrements stock and creates a
	// pending cash order in one transaction.
	PlaceCashOrder(ctx context.Context, userID uuid.UUID, input CashOrderInput) (*entity.Order, error)
}
