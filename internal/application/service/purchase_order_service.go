package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sothea-dev/shoppos-api/internal/domain/entity"
	"github.com/sothea-dev/shoppos-api/internal/domain/enum"
	"github.com/sothea-dev/shoppos-api/internal/domain/pricing"
	"github.com/sothea-dev/shoppos-api/internal/domain/repository"
	"github.com/sothea-dev/shoppos-api/pkg/apperror"
	"github.com/sothea-dev/shoppos-api/pkg/pagination"
)

// PurchaseOrderService handles purchase order operations
type PurchaseOrderService struct {
	purchaseRepo repository.PurchaseOrderRepository
	supplierRepo repository.SupplierRepository
	counterRepo  repository.InvoiceCounterRepository
}

// NewPurchaseOrderService creates a new purchase order service
func NewPurchaseOrderService(
	purchaseRepo repository.PurchaseOrderRepository,
	supplierRepo repository.SupplierRepository,
	counterRepo repository.InvoiceCounterRepository,
) *PurchaseOrderService {
	return &PurchaseOrderService{
		purchaseRepo: purchaseRepo,
		supplierRepo: supplierRepo,
		counterRepo:  counterRepo,
	}
}

// PurchaseLineInput represents one stock line in a purchase order request
type PurchaseLineInput struct {
	Name     string
	Quantity int
	Price    decimal.Decimal
}

// CreatePurchaseOrderInput represents the create purchase order input
type CreatePurchaseOrderInput struct {
	Actor            entity.Account
	SupplierID       uuid.UUID
	PurchaseDate     *time.Time
	ExpectedDelivery *time.Time
	Items            []PurchaseLineInput
}

func validatePurchaseLines(items []PurchaseLineInput) []apperror.FieldError {
	var fieldErrors []apperror.FieldError

	if len(items) == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "items",
			Message: "at least one line item is required",
		})
	}

	for i, line := range items {
		if line.Name == "" {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].name", i),
				Message: "name is required",
			})
		}
		if err := pricing.ValidatePurchaseQuantity(line.Quantity); err != nil {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "must be a whole number of at least 1",
			})
		}
		if line.Price.IsNegative() {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].price", i),
				Message: "must not be negative",
			})
		}
	}

	return fieldErrors
}

// CreatePurchaseOrder validates the stock lines, totals them, draws the next
// purchase invoice number, and persists the order with its items. New orders
// start in the pending status and are excluded from the expense series until
// marked complete.
func (s *PurchaseOrderService) CreatePurchaseOrder(ctx context.Context, input *CreatePurchaseOrderInput) (*entity.PurchaseOrder, error) {
	fieldErrors := validatePurchaseLines(input.Items)
	if input.SupplierID == uuid.Nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "supplier_id",
			Message: "supplier id is required",
		})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	supplier, err := s.supplierRepo.GetByID(ctx, input.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}

	lines := make([]pricing.PurchaseLine, len(input.Items))
	orderItems := make([]entity.PurchaseOrderItem, len(input.Items))
	for i, line := range input.Items {
		lines[i] = pricing.PurchaseLine{
			Name:     line.Name,
			Quantity: line.Quantity,
			Price:    line.Price,
		}
		orderItems[i] = entity.PurchaseOrderItem{
			Name:     line.Name,
			Quantity: line.Quantity,
			Price:    line.Price,
		}
	}

	total, err := pricing.PurchaseTotal(lines)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid line items")
	}

	seq, err := s.counterRepo.Next(ctx, entity.OrderTypePurchase)
	if err != nil {
		return nil, err
	}

	order := &entity.PurchaseOrder{
		InvoiceNo:        entity.InvoiceNumber(entity.InvoicePrefixPurchase, seq),
		SupplierID:       input.SupplierID,
		AccountID:        input.Actor.ID,
		PurchaseDate:     input.PurchaseDate,
		ExpectedDelivery: input.ExpectedDelivery,
		Status:           enum.PurchaseStatusPending,
		TotalPrice:       total,
		Items:            orderItems,
	}

	if err := s.purchaseRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return s.purchaseRepo.GetByID(ctx, order.ID)
}

// UpdatePurchaseOrderInput represents a partial purchase order update. Nil
// pointers leave the field untouched. Replacing Items re-derives the total
// unless TotalPrice overrides it.
type UpdatePurchaseOrderInput struct {
	SupplierID       *uuid.UUID
	PurchaseDate     *time.Time
	ExpectedDelivery *time.Time
	Status           *enum.PurchaseStatus
	TotalPrice       *decimal.Decimal
	Items            []PurchaseLineInput
}

// UpdatePurchaseOrder applies a partial update to an existing order
func (s *PurchaseOrderService) UpdatePurchaseOrder(ctx context.Context, id uuid.UUID, input *UpdatePurchaseOrderInput) (*entity.PurchaseOrder, error) {
	order, err := s.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Purchase order")
	}
	// Items stay untouched unless the request replaces them
	order.Items = nil

	if input.Status != nil && !input.Status.Valid() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "status", Message: "must be one of: pending, complete, cancel"},
		})
	}

	if input.SupplierID != nil {
		supplier, err := s.supplierRepo.GetByID(ctx, *input.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, apperror.NewNotFoundError("Supplier")
		}
		order.SupplierID = *input.SupplierID
	}

	if input.PurchaseDate != nil {
		order.PurchaseDate = input.PurchaseDate
	}
	if input.ExpectedDelivery != nil {
		order.ExpectedDelivery = input.ExpectedDelivery
	}
	if input.Status != nil {
		order.Status = *input.Status
	}

	if input.Items != nil {
		if fieldErrors := validatePurchaseLines(input.Items); len(fieldErrors) > 0 {
			return nil, apperror.NewValidationError(fieldErrors)
		}

		lines := make([]pricing.PurchaseLine, len(input.Items))
		orderItems := make([]entity.PurchaseOrderItem, len(input.Items))
		for i, line := range input.Items {
			lines[i] = pricing.PurchaseLine{
				Name:     line.Name,
				Quantity: line.Quantity,
				Price:    line.Price,
			}
			orderItems[i] = entity.PurchaseOrderItem{
				PurchaseOrderID: order.ID,
				Name:            line.Name,
				Quantity:        line.Quantity,
				Price:           line.Price,
			}
		}

		total, err := pricing.PurchaseTotal(lines)
		if err != nil {
			return nil, apperror.NewBadRequestError("Invalid line items")
		}
		order.TotalPrice = total
		order.Items = orderItems
	}

	// An explicit total wins over the derived one
	if input.TotalPrice != nil {
		if input.TotalPrice.IsNegative() {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "total_price", Message: "must not be negative"},
			})
		}
		order.TotalPrice = *input.TotalPrice
	}

	if err := s.purchaseRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return s.purchaseRepo.GetByID(ctx, order.ID)
}

// GetPurchaseOrder retrieves a purchase order by ID
func (s *PurchaseOrderService) GetPurchaseOrder(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	order, err := s.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Purchase order")
	}
	return order, nil
}

// ListPurchaseOrders lists purchase orders with optional date and supplier
// filters. Each date bound applies independently.
func (s *PurchaseOrderService) ListPurchaseOrders(ctx context.Context, params *repository.PurchaseOrderFilterParams) (*pagination.PaginatedResult[entity.PurchaseOrder], error) {
	orders, total, err := s.purchaseRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// DeletePurchaseOrder removes a purchase order and its items
func (s *PurchaseOrderService) DeletePurchaseOrder(ctx context.Context, id uuid.UUID) error {
	order, err := s.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Purchase order")
	}

	return s.purchaseRepo.Delete(ctx, id)
}
