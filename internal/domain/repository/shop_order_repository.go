package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sothea-dev/shoppos-api/internal/domain/entity"
	"github.com/sothea-dev/shoppos-api/pkg/pagination"
)

// ShopOrderFilterParams contains filtering parameters for shop order
// queries. The created-at range applies only when BOTH bounds are set,
// matching the POS listing behavior.
type ShopOrderFilterParams struct {
	Pagination *pagination.PaginationParams
	From       *time.Time
	To         *time.Time
}

// RangeApplies reports whether the date range filter is in effect.
func (p *ShopOrderFilterParams) RangeApplies() bool {
	return p.From != nil && p.To != nil
}

// ShopOrderRepository defines the interface for shop order data operations.
// Create persists the order together with its line items in one
// transaction; a partially committed order is never observable.
type ShopOrderRepository interface {
	Create(ctx context.Context, order *entity.ShopOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ShopOrder, error)
	GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.ShopOrder, error)
	List(ctx context.Context, params *ShopOrderFilterParams) ([]entity.ShopOrder, int64, error)
	// DeleteWithItems removes the order and all its line items atomically.
	DeleteWithItems(ctx context.Context, id uuid.UUID) error
}
