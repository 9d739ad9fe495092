package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod distinguishes the two checkout paths.
type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodCash PaymentMethod = "cash"
)

// OrderStatus is the fulfillment state of an order. Any state may move to any
// other state; the only validation is membership in the fixed set.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ParseOrderStatus validates a raw status value against the fixed set.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	status := OrderStatus(raw)
	switch status {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return status, true
	default:
		return "", false
	}
}

// ShippingAddress is the delivery destination, required for cash orders.
type ShippingAddress struct {
	Name    string
	Phone   string
	Address string
	City    string
	ZipCode string
}

// Complete reports whether every field is filled in.
func (a *ShippingAddress) Complete() bool {
	return a != nil && a.Name != "" && a.Phone != "" &&
		a.Address != "" && a.City != "" && a.ZipCode != ""
}

// OrderItem is one line of an order. UnitPrice is the effective price at the
// time of purchase; the product reference is weak, so the denormalized price
// survives later catalog edits or deletions.
type OrderItem struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal // Effective unit price at time of purchase.
	Product   *Product        // Resolved product, populated on admin reads; may be nil.
}

// Order is the durable record of a completed purchase. It is created exactly
// once at successful checkout and immutable except for Status.
type Order struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	User              *User // Resolved owner, populated on admin reads; may be nil.
	Items             []OrderItem
	TotalAmount       decimal.Decimal // Discount-adjusted total.
	PaymentMethod     PaymentMethod
	CheckoutSessionID string // External payment session handle; empty for cash orders.
	ShippingAddress   *ShippingAddress
	Status            OrderStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
