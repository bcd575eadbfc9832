package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/sothea-dev/shoppos-api/internal/domain/entity"
	"github.com/sothea-dev/shoppos-api/internal/domain/enum"
	"github.com/sothea-dev/shoppos-api/internal/domain/repository"
	"github.com/sothea-dev/shoppos-api/pkg/apperror"
	"github.com/sothea-dev/shoppos-api/pkg/pagination"
)

// SupplierService handles supplier operations
type SupplierService struct {
	supplierRepo repository.SupplierRepository
}

// NewSupplierService creates a new supplier service
func NewSupplierService(supplierRepo repository.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

// CreateSupplierInput represents the create supplier input
type CreateSupplierInput struct {
	Name    string
	Email   *string
	Contact *string
	Address *string
}

// CreateSupplier creates a new supplier
func (s *SupplierService) CreateSupplier(ctx context.Context, input *CreateSupplierInput) (*entity.Supplier, error) {
	if input.Name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "name is required"},
		})
	}

	if input.Email != nil && *input.Email != "" {
		existing, err := s.supplierRepo.GetByEmail(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Supplier with this email already exists")
		}
	}

	supplier := &entity.Supplier{
		Name:    input.Name,
		Email:   input.Email,
		Contact: input.Contact,
		Address: input.Address,
		Status:  enum.SupplierStatusActive,
	}

	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}

	return supplier, nil
}

// GetSupplier retrieves a supplier by ID
func (s *SupplierService) GetSupplier(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}
	return supplier, nil
}

// UpdateSupplierInput represents a partial supplier update
type UpdateSupplierInput struct {
	Name    *string
	Email   *string
	Contact *string
	Address *string
	Status  *enum.SupplierStatus
}

// UpdateSupplier applies a partial update to an existing supplier
func (s *SupplierService) UpdateSupplier(ctx context.Context, id uuid.UUID, input *UpdateSupplierInput) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}

	if input.Status != nil && !input.Status.Valid() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "status", Message: "must be one of: active, inactive"},
		})
	}

	if input.Email != nil && *input.Email != "" {
		existing, err := s.supplierRepo.GetByEmail(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != supplier.ID {
			return nil, apperror.NewConflictError("Supplier with this email already exists")
		}
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "name", Message: "name is required"},
			})
		}
		supplier.Name = *input.Name
	}
	if input.Email != nil {
		supplier.Email = input.Email
	}
	if input.Contact != nil {
		supplier.Contact = input.Contact
	}
	if input.Address != nil {
		supplier.Address = input.Address
	}
	if input.Status != nil {
		supplier.Status = *input.Status
	}

	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}

	return supplier, nil
}

// ListSuppliers lists suppliers with pagination
func (s *SupplierService) ListSuppliers(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Supplier], error) {
	suppliers, total, err := s.supplierRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(suppliers, pag), nil
}

// DeleteSupplier removes a supplier
func (s *SupplierService) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return apperror.NewNotFoundError("Supplier")
	}

	return s.supplierRepo.Delete(ctx, id)
}
