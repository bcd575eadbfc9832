package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sothea-dev/shoppos-api/pkg/money"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSaleLineSubtotal(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		quantity string
		discount string
		want     string
	}{
		{"plain line", "2.50", "2", "0", "5.00"},
		{"discounted", "10.00", "1", "25", "7.50"},
		{"fractional quantity", "4.00", "0.25", "0", "1.00"},
		{"full discount", "9.99", "3", "100", "0"},
		{"free item", "0", "1", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := SaleLine{
				UnitPrice:       d(tt.price),
				Quantity:        d(tt.quantity),
				DiscountPercent: d(tt.discount),
			}
			got, err := line.Subtotal()
			require.NoError(t, err)
			assert.True(t, got.Equal(d(tt.want)), "got %s, want %s", got, tt.want)
			assert.False(t, got.IsNegative())
		})
	}
}

func TestSaleLineSubtotalInvalid(t *testing.T) {
	base := SaleLine{UnitPrice: d("1.00"), Quantity: d("1"), DiscountPercent: d("0")}

	neg := base
	neg.UnitPrice = d("-0.01")
	_, err := neg.Subtotal()
	assert.ErrorIs(t, err, money.ErrInvalidArgument)

	zeroQty := base
	zeroQty.Quantity = d("0")
	_, err = zeroQty.Subtotal()
	assert.ErrorIs(t, err, money.ErrInvalidArgument)

	fineGrained := base
	fineGrained.Quantity = d("0.005")
	_, err = fineGrained.Subtotal()
	assert.ErrorIs(t, err, money.ErrInvalidArgument)

	badDiscount := base
	badDiscount.DiscountPercent = d("101")
	_, err = badDiscount.Subtotal()
	assert.ErrorIs(t, err, money.ErrInvalidArgument)
}

func TestSaleLineOptionsDoNotAffectPrice(t *testing.T) {
	plain := SaleLine{UnitPrice: d("3.75"), Quantity: d("2"), DiscountPercent: d("10")}
	withOpts := plain
	withOpts.Options = []Option{
		{Name: "Sugar", Values: []string{"50%"}},
		{Name: "Toppings", Values: []string{"Pearl", "Jelly"}},
	}

	a, err := plain.Subtotal()
	require.NoError(t, err)
	b, err := withOpts.Subtotal()
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestOrderTotalSumsThenRounds(t *testing.T) {
	// Three lines at 3.333... each: rounding per line then summing would
	// give 10.00, but sum-then-round gives 9.99 if lines are 3.33 exact.
	// Here each subtotal is 1.666..., unrounded sum 4.9999999...,
	// rounded once to 5.00.
	lines := []SaleLine{
		{UnitPrice: d("1.6666666666666667"), Quantity: d("1"), DiscountPercent: d("0")},
		{UnitPrice: d("1.6666666666666667"), Quantity: d("1"), DiscountPercent: d("0")},
		{UnitPrice: d("1.6666666666666666"), Quantity: d("1"), DiscountPercent: d("0")},
	}
	total, err := OrderTotal(lines)
	require.NoError(t, err)
	assert.Equal(t, "5.00", total.StringFixed(2))
}

func TestOrderTotalEmpty(t *testing.T) {
	_, err := OrderTotal(nil)
	assert.ErrorIs(t, err, ErrEmptyOrder)

	_, err = OrderTotal([]SaleLine{})
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestOrderTotalPropagatesLineErrors(t *testing.T) {
	lines := []SaleLine{
		{UnitPrice: d("1.00"), Quantity: d("1"), DiscountPercent: d("0")},
		{UnitPrice: d("1.00"), Quantity: d("-1"), DiscountPercent: d("0")},
	}
	_, err := OrderTotal(lines)
	assert.ErrorIs(t, err, money.ErrInvalidArgument)
}

func TestPurchaseLineSubtotal(t *testing.T) {
	line := PurchaseLine{Name: "Robusta beans", Quantity: 12, Price: d("8.50")}
	got, err := line.Subtotal()
	require.NoError(t, err)
	assert.Equal(t, "102.00", got.StringFixed(2))
}

func TestPurchaseLineInvalid(t *testing.T) {
	_, err := PurchaseLine{Name: "x", Quantity: 0, Price: d("1")}.Subtotal()
	assert.ErrorIs(t, err, money.ErrInvalidArgument)

	_, err = PurchaseLine{Name: "x", Quantity: -2, Price: d("1")}.Subtotal()
	assert.ErrorIs(t, err, money.ErrInvalidArgument)

	_, err = PurchaseLine{Name: "x", Quantity: 1, Price: d("-1")}.Subtotal()
	assert.ErrorIs(t, err, money.ErrInvalidArgument)
}

func TestPurchaseTotal(t *testing.T) {
	lines := []PurchaseLine{
		{Name: "Cups", Quantity: 100, Price: d("0.05")},
		{Name: "Lids", Quantity: 100, Price: d("0.03")},
	}
	total, err := PurchaseTotal(lines)
	require.NoError(t, err)
	assert.Equal(t, "8.00", total.StringFixed(2))

	_, err = PurchaseTotal(nil)
	assert.ErrorIs(t, err, ErrEmptyOrder)
}
