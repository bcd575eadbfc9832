// Package pricing computes line and order totals for shop orders and
// purchase orders. Sale lines accept fractional quantities at two-decimal
// granularity (POS carts adjust in 0.01 steps); purchase lines require whole
// quantities of at least one. Selected options ride along untouched and
// never affect price.
package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sothea-dev/shoppos-api/pkg/money"
)

// ErrEmptyOrder is returned when an order total is requested for an empty
// line-item sequence.
var ErrEmptyOrder = errors.New("pricing: order has no line items")

// Option is one selected option on a sale line. An option may carry several
// selected values (e.g. toppings).
type Option struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// SaleLine is one priced entry in a shop order cart.
type SaleLine struct {
	UnitPrice       decimal.Decimal
	Quantity        decimal.Decimal
	DiscountPercent decimal.Decimal
	Options         []Option
}

// ValidateSaleQuantity checks a sale quantity: strictly positive, at most
// two decimal places.
func ValidateSaleQuantity(q decimal.Decimal) error {
	if !q.IsPositive() {
		return fmt.Errorf("%w: sale quantity must be positive, got %s", money.ErrInvalidArgument, q)
	}
	if !q.Equal(q.Round(2)) {
		return fmt.Errorf("%w: sale quantity granularity is 0.01, got %s", money.ErrInvalidArgument, q)
	}
	return nil
}

// ValidatePurchaseQuantity checks a purchase quantity: whole number, at
// least one.
func ValidatePurchaseQuantity(q int) error {
	if q < 1 {
		return fmt.Errorf("%w: purchase quantity must be at least 1, got %d", money.ErrInvalidArgument, q)
	}
	return nil
}

// Subtotal returns the line's effective subtotal,
// unitPrice * quantity * (1 - discount/100), at full precision. Rounding is
// the caller's job at the storage boundary.
func (l SaleLine) Subtotal() (decimal.Decimal, error) {
	if err := ValidateSaleQuantity(l.Quantity); err != nil {
		return decimal.Zero, err
	}
	gross, err := money.Multiply(l.UnitPrice, l.Quantity)
	if err != nil {
		return decimal.Zero, err
	}
	return money.ApplyDiscount(gross, l.DiscountPercent)
}

// OrderTotal sums the effective subtotals of a non-empty sale-line sequence
// and rounds once at the end.
func OrderTotal(lines []SaleLine) (decimal.Decimal, error) {
	if len(lines) == 0 {
		return decimal.Zero, ErrEmptyOrder
	}
	total := decimal.Zero
	for i, l := range lines {
		sub, err := l.Subtotal()
		if err != nil {
			return decimal.Zero, fmt.Errorf("line %d: %w", i, err)
		}
		total = total.Add(sub)
	}
	return money.Round2(total), nil
}

// PurchaseLine is one priced entry on a purchase order to a supplier.
type PurchaseLine struct {
	Name     string
	Quantity int
	Price    decimal.Decimal
}

// Subtotal returns quantity * price for a purchase line.
func (l PurchaseLine) Subtotal() (decimal.Decimal, error) {
	if err := ValidatePurchaseQuantity(l.Quantity); err != nil {
		return decimal.Zero, err
	}
	return money.Multiply(l.Price, decimal.NewFromInt(int64(l.Quantity)))
}

// PurchaseTotal sums purchase-line subtotals and rounds once at the end.
func PurchaseTotal(lines []PurchaseLine) (decimal.Decimal, error) {
	if len(lines) == 0 {
		return decimal.Zero, ErrEmptyOrder
	}
	total := decimal.Zero
	for i, l := range lines {
		sub, err := l.Subtotal()
		if err != nil {
			return decimal.Zero, fmt.Errorf("item %d: %w", i, err)
		}
		total = total.Add(sub)
	}
	return money.Round2(total), nil
}
