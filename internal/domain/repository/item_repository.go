package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/sothea-dev/shoppos-api/internal/domain/entity"
	"github.com/sothea-dev/shoppos-api/pkg/pagination"
)

// ItemRepository defines the interface for catalog item data operations
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string, params *pagination.PaginationParams) ([]entity.Item, int64, error)
}
