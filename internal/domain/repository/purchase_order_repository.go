package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sothea-dev/shoppos-api/internal/domain/entity"
	"github.com/sothea-dev/shoppos-api/pkg/pagination"
)

// PurchaseOrderFilterParams contains filtering parameters for purchase
// order queries. Unlike the shop order listing, each date bound applies
// independently.
type PurchaseOrderFilterParams struct {
	Pagination *pagination.PaginationParams
	StartDate  *time.Time
	EndDate    *time.Time
	SupplierID *uuid.UUID
}

// PurchaseOrderRepository defines the interface for purchase order data
// operations. Create persists the order with its items in one transaction.
type PurchaseOrderRepository interface {
	Create(ctx context.Context, order *entity.PurchaseOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error)
	Update(ctx context.Context, order *entity.PurchaseOrder) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *PurchaseOrderFilterParams) ([]entity.PurchaseOrder, int64, error)
}
