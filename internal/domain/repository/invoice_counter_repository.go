package repository

import "context"

// InvoiceCounterRepository hands out invoice sequence values. Next must be
// atomic per order type: two concurrent calls never return the same value,
// and values are strictly increasing. The sequence is gap-tolerant: a
// value consumed by a creation that later fails is simply skipped.
type InvoiceCounterRepository interface {
	Next(ctx context.Context, orderType string) (int64, error)
}
