package entity

import "fmt"

// Order types with independent invoice sequences.
const (
	OrderTypeShop     = "shop_order"
	OrderTypePurchase = "purchase_order"
)

// Invoice number prefixes per order type.
const (
	InvoicePrefixShop     = "INV-"
	InvoicePrefixPurchase = "PO-"
)

// InvoiceCounter is the per-order-type sequence backing invoice numbers.
// One row per order type; LastSeq only ever moves forward, so deleting the
// newest order never makes the next invoice number regress. The sequence is
// gap-tolerant: a failed creation may burn a number.
type InvoiceCounter struct {
	OrderType string `gorm:"size:50;primary_key" json:"order_type"`
	LastSeq   int64  `gorm:"not null;default:0" json:"last_seq"`
}

// TableName returns the table name for the InvoiceCounter model
func (InvoiceCounter) TableName() string {
	return "invoice_counters"
}

// InvoiceNumber formats a sequence value as a human-readable invoice
// identifier, e.g. INV-0001. Sequences past 9999 simply grow wider.
func InvoiceNumber(prefix string, seq int64) string {
	return fmt.Sprintf("%s%04d", prefix, seq)
}

// InvoicePrefix returns the invoice prefix for an order type.
func InvoicePrefix(orderType string) string {
	if orderType == OrderTypePurchase {
		return InvoicePrefixPurchase
	}
	return InvoicePrefixShop
}
