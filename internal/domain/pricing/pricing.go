// Package pricing implements the checkout pricing rules shared by the card
// and cash paths: per-product percentage discounts, subtotal accumulation,
// coupon application and minor-unit quantization for the payment processor.
package pricing

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Line is one priced cart line.
type Line struct {
	UnitPrice decimal.Decimal // List price per unit.
	Discount  int             // Per-product percentage discount, 0-100.
	Quantity  int
}

// Quote is the outcome of pricing a cart.
type Quote struct {
	Subtotal      decimal.Decimal // Sum of discounted line totals, before coupon.
	Total         decimal.Decimal // Subtotal minus the coupon discount, if any.
	CouponApplied bool
}

// EffectiveUnitPrice returns price * (1 - discount/100) at full decimal
// precision; a non-positive discount leaves the price untouched.
func EffectiveUnitPrice(price decimal.Decimal, discount int) decimal.Decimal {
	if discount <= 0 {
		return price
	}

	return price.Mul(hundred.Sub(decimal.NewFromInt(int64(discount)))).Div(hundred)
}

// Subtotal accumulates the discounted line totals of a cart.
func Subtotal(lines []Line) decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range lines {
		lineTotal := EffectiveUnitPrice(line.UnitPrice, line.Discount).
			Mul(decimal.NewFromInt(int64(line.Quantity)))
		subtotal = subtotal.Add(lineTotal)
	}

	return subtotal
}

// Apply prices a cart against an optional coupon percentage. A nil couponPct
// (or one outside 1-100) leaves the total equal to the subtotal; an unknown or
// expired coupon is therefore never an error, just a no-op.
func Apply(lines []Line, couponPct *int) Quote {
	subtotal := Subtotal(lines)
	quote := Quote{Subtotal: subtotal, Total: subtotal}

	if couponPct == nil || *couponPct <= 0 || *couponPct > 100 {
		return quote
	}

	discount := subtotal.Mul(decimal.NewFromInt(int64(*couponPct))).Div(hundred)
	quote.Total = subtotal.Sub(discount)
	quote.CouponApplied = true

	return quote
}

// ToCents quantizes an amount to the minor currency unit, rounding half up,
// the way the payment processor expects unit amounts.
func ToCents(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}

// FromCents converts a processor minor-unit amount back to whole currency units.
func FromCents(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(hundred)
}
