package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// Price is the list price; Discount is a whole percentage applied per unit.
type ProductModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Discount    int             `gorm:"not null;default:0"`
	Quantity    int             `gorm:"not null;default:0"`
	InStock     bool            `gorm:"not null;default:true"`
	ImageURL    string          `gorm:"type:text"`
	Category    string          `gorm:"type:varchar(50);not null;index"`
	IsFeatured  bool            `gorm:"not null;default:false;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
