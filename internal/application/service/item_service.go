package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sothea-dev/shoppos-api/internal/domain/entity"
	"github.com/sothea-dev/shoppos-api/internal/domain/repository"
	"github.com/sothea-dev/shoppos-api/pkg/apperror"
	"github.com/sothea-dev/shoppos-api/pkg/pagination"
)

// ItemService handles catalog item operations
type ItemService struct {
	itemRepo repository.ItemRepository
}

// NewItemService creates a new item service
func NewItemService(itemRepo repository.ItemRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

// CreateItemInput represents the create item input
type CreateItemInput struct {
	Name    string
	Price   decimal.Decimal
	Image   *string
	Options []entity.ItemOption
}

func (in *CreateItemInput) validate() []apperror.FieldError {
	var fieldErrors []apperror.FieldError

	if in.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if in.Price.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "price",
			Message: "must not be negative",
		})
	}
	for _, opt := range in.Options {
		if opt.Name == "" {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   "options",
				Message: "option name is required",
			})
			break
		}
	}

	return fieldErrors
}

// CreateItem creates a new catalog item
func (s *ItemService) CreateItem(ctx context.Context, input *CreateItemInput) (*entity.Item, error) {
	if fieldErrors := input.validate(); len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	item := &entity.Item{
		Name:    input.Name,
		Price:   input.Price,
		Image:   input.Image,
		Options: input.Options,
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// GetItem retrieves an item by ID
func (s *ItemService) GetItem(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	return item, nil
}

// UpdateItemInput represents a partial item update
type UpdateItemInput struct {
	Name    *string
	Price   *decimal.Decimal
	Image   *string
	Options []entity.ItemOption
}

// UpdateItem applies a partial update to an existing item
func (s *ItemService) UpdateItem(ctx context.Context, id uuid.UUID, input *UpdateItemInput) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "name", Message: "name is required"},
			})
		}
		item.Name = *input.Name
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "price", Message: "must not be negative"},
			})
		}
		item.Price = *input.Price
	}
	if input.Image != nil {
		item.Image = input.Image
	}
	if input.Options != nil {
		item.Options = input.Options
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// ListItems lists catalog items, optionally filtered by a name search
func (s *ItemService) ListItems(ctx context.Context, search string, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Item], error) {
	items, total, err := s.itemRepo.List(ctx, search, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

// DeleteItem removes an item from the catalog. Existing order lines keep
// their recorded price and quantity.
func (s *ItemService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Item")
	}

	return s.itemRepo.Delete(ctx, id)
}
