// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog item. Quantity is the on-hand stock count and must
// never go negative; InStock is derived from it and has to be recomputed on
// every quantity mutation.
type Product struct {
	ID          uuid.UUID       // The unique identifier of the product.
	Name        string          // Display name shown in the catalog.
	Description string          // Longer marketing description.
	Price       decimal.Decimal // List price in whole currency units, non-negative.
	Discount    int             // Per-product percentage discount, 0-100.
	Quantity    int             // On-hand stock count, non-negative.
	InStock     bool            // Derived: Quantity > 0.
	ImageURL    string          // Hosted image URL, or the raw payload when hosting is unavailable.
	Category    Category        // One of the fixed jewelry categories.
	IsFeatured  bool            // Whether the product appears in the featured carousel.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EffectiveUnitPrice returns the price after the per-product percentage
// discount, at full decimal precision.
func (p *Product) EffectiveUnitPrice() decimal.Decimal {
	if p.Discount <= 0 {
		return p.Price
	}

	factor := decimal.NewFromInt(int64(100 - p.Discount)).Div(decimal.NewFromInt(100))

	return p.Price.Mul(factor)
}
