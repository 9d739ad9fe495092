package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}

	return d
}

func TestEffectiveUnitPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		discount int
		want     string
	}{
		{name: "no discount", price: "100", discount: 0, want: "100"},
		{name: "ten percent off", price: "100", discount: 10, want: "90"},
		{name: "full discount", price: "50", discount: 100, want: "0"},
		{name: "fractional price", price: "19.99", discount: 25, want: "14.9925"},
		{name: "negative discount ignored", price: "80", discount: -5, want: "80"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectiveUnitPrice(dec(tt.price), tt.discount)
			assert.True(t, got.Equal(dec(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestApply_NoCoupon(t *testing.T) {
	// cart = [{price:100, discount:10, quantity:2}] -> subtotal 180, total 180
	lines := []Line{{UnitPrice: dec("100"), Discount: 10, Quantity: 2}}

	quote := Apply(lines, nil)

	assert.True(t, quote.Subtotal.Equal(dec("180")))
	assert.True(t, quote.Total.Equal(dec("180")))
	assert.False(t, quote.CouponApplied)
}

func TestApply_WithCoupon(t *testing.T) {
	// same cart plus a valid 10%-off coupon -> total 162
	lines := []Line{{UnitPrice: dec("100"), Discount: 10, Quantity: 2}}
	pct := 10

	quote := Apply(lines, &pct)

	assert.True(t, quote.Subtotal.Equal(dec("180")))
	assert.True(t, quote.Total.Equal(dec("162")))
	assert.True(t, quote.CouponApplied)
}

func TestApply_SubtotalMatchesLineSum(t *testing.T) {
	lines := []Line{
		{UnitPrice: dec("19.99"), Discount: 0, Quantity: 3},
		{UnitPrice: dec("250"), Discount: 20, Quantity: 1},
	}

	quote := Apply(lines, nil)

	want := dec("19.99").Mul(dec("3")).Add(dec("200"))
	assert.True(t, quote.Subtotal.Equal(want), "got %s want %s", quote.Subtotal, want)
	assert.True(t, quote.Total.Equal(want))
}

func TestApply_OutOfRangePercentageIgnored(t *testing.T) {
	lines := []Line{{UnitPrice: dec("100"), Discount: 0, Quantity: 1}}

	for _, pct := range []int{0, -10, 101} {
		p := pct
		quote := Apply(lines, &p)
		assert.True(t, quote.Total.Equal(quote.Subtotal), "pct %d must be a no-op", pct)
		assert.False(t, quote.CouponApplied)
	}
}

func TestToCents_RoundsHalfUp(t *testing.T) {
	tests := []struct {
		amount string
		want   int64
	}{
		{amount: "100", want: 10000},
		{amount: "14.9925", want: 1499},
		{amount: "14.995", want: 1500},
		{amount: "0.005", want: 1},
		{amount: "0.004", want: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ToCents(dec(tt.amount)), "amount %s", tt.amount)
	}
}

func TestFromCents(t *testing.T) {
	assert.True(t, FromCents(16200).Equal(dec("162")))
	assert.True(t, FromCents(1).Equal(dec("0.01")))
}
