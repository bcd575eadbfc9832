// Package money provides fixed-point decimal arithmetic for monetary
// amounts. All intermediate values keep full precision; callers round to
// two decimal places only at the display/storage boundary via Round2.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidArgument is returned when an input violates the money domain
// (negative price, non-positive quantity, discount outside 0-100).
var ErrInvalidArgument = errors.New("money: invalid argument")

var hundred = decimal.NewFromInt(100)

// Multiply returns price * quantity. Price must be non-negative and
// quantity strictly positive.
func Multiply(price, quantity decimal.Decimal) (decimal.Decimal, error) {
	if price.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: price must not be negative, got %s", ErrInvalidArgument, price)
	}
	if !quantity.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: quantity must be positive, got %s", ErrInvalidArgument, quantity)
	}
	return price.Mul(quantity), nil
}

// ApplyDiscount reduces amount by percent, computing amount * (1 - percent/100).
// Percent must be within [0, 100].
func ApplyDiscount(amount, percent decimal.Decimal) (decimal.Decimal, error) {
	if percent.IsNegative() || percent.GreaterThan(hundred) {
		return decimal.Zero, fmt.Errorf("%w: discount percent must be within [0,100], got %s", ErrInvalidArgument, percent)
	}
	return amount.Mul(hundred.Sub(percent)).Div(hundred), nil
}

// Round2 rounds an amount to two decimal places, half away from zero.
// This is the single rounding point for stored and displayed values.
func Round2(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// Sum adds amounts without rounding. Summing unrounded values and rounding
// once at the end keeps per-line rounding error from compounding.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
