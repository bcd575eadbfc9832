package repository

import (
	"context"

	"gorm.io/gorm"

	domainRepo "github.com/sothea-dev/shoppos-api/internal/domain/repository"
)

type invoiceCounterRepository struct {
	db *gorm.DB
}

// NewInvoiceCounterRepository creates a new invoice counter repository
func NewInvoiceCounterRepository(db *gorm.DB) domainRepo.InvoiceCounterRepository {
	return &invoiceCounterRepository{db: db}
}

// Next increments and returns the sequence for one order type in a single
// statement. Postgres row-locks the counter row for the upsert, so two
// concurrent creations always observe distinct values.
func (r *invoiceCounterRepository) Next(ctx context.Context, orderType string) (int64, error) {
	var seq int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO invoice_counters (order_type, last_seq)
		VALUES (?, 1)
		ON CONFLICT (order_type)
		DO UPDATE SET last_seq = invoice_counters.last_seq + 1
		RETURNING last_seq
	`, orderType).Scan(&seq).Error
	if err != nil {
		return 0, err
	}
	return seq, nil
}
