package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/sothea-dev/shoppos-api/internal/domain/entity"
	"github.com/sothea-dev/shoppos-api/pkg/pagination"
)

// ReceiveOrderRepository defines the interface for receive order data
// operations
type ReceiveOrderRepository interface {
	Create(ctx context.Context, order *entity.ReceiveOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ReceiveOrder, error)
	GetByPurchaseOrderID(ctx context.Context, purchaseOrderID uuid.UUID) (*entity.ReceiveOrder, error)
	Update(ctx context.Context, order *entity.ReceiveOrder) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.ReceiveOrder, int64, error)
}
