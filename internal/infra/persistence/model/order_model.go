package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShippingAddressModel is embedded into orders with a 'shipping_' prefix.
// Card orders leave every column empty; cash orders require all of them.
type ShippingAddressModel struct {
	Name    string `gorm:"type:varchar(100)"`
	Phone   string `gorm:"type:varchar(30)"`
	Address string `gorm:"type:varchar(255)"`
	City    string `gorm:"type:varchar(100)"`
	ZipCode string `gorm:"type:varchar(20)"`
}

// OrderModel mirrors the 'orders' table. CheckoutSessionID is nullable with a
// unique index; PostgreSQL ignores NULLs in unique indexes, so only card
// orders participate and each session maps to at most one order.
type OrderModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalAmount       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PaymentMethod     string          `gorm:"type:varchar(10);not null"`
	CheckoutSessionID *string         `gorm:"type:varchar(255);uniqueIndex"`
	Status            string          `gorm:"type:varchar(20);not null;default:'pending'"`

	ShippingAddress ShippingAddressModel `gorm:"embedded;embeddedPrefix:shipping_"`

	CreatedAt time.Time
	UpdatedAt time.Time

	User  *UserModel       `gorm:"foreignKey:UserID"`
	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. UnitPrice is the discounted
// per-unit price captured at checkout, never re-read from the catalog.
type OrderItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
