package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sothea-dev/shoppos-api/internal/domain/entity"
	"github.com/sothea-dev/shoppos-api/internal/domain/enum"
	"github.com/sothea-dev/shoppos-api/internal/domain/pricing"
	"github.com/sothea-dev/shoppos-api/internal/domain/repository"
	"github.com/sothea-dev/shoppos-api/pkg/apperror"
	"github.com/sothea-dev/shoppos-api/pkg/money"
	"github.com/sothea-dev/shoppos-api/pkg/pagination"
)

// OrderService handles shop order operations: cart checkout, listing, and
// cascading deletion.
type OrderService struct {
	orderRepo   repository.ShopOrderRepository
	itemRepo    repository.ItemRepository
	counterRepo repository.InvoiceCounterRepository
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.ShopOrderRepository,
	itemRepo repository.ItemRepository,
	counterRepo repository.InvoiceCounterRepository,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		itemRepo:    itemRepo,
		counterRepo: counterRepo,
	}
}

// OrderLineInput represents one cart line in a create request
type OrderLineInput struct {
	ItemID   uuid.UUID
	Quantity decimal.Decimal
	Price    decimal.Decimal
	Discount decimal.Decimal
	Options  []pricing.Option
}

// CreateOrderInput represents the create order input. Actor is the
// already-authenticated creator, admin or employee.
type CreateOrderInput struct {
	Actor         entity.Account
	PaymentMethod enum.PaymentMethod
	Currency      *enum.Currency
	Items         []OrderLineInput
}

func (in *CreateOrderInput) validate() []apperror.FieldError {
	var fieldErrors []apperror.FieldError

	if !in.PaymentMethod.Valid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "payment_method",
			Message: "must be one of: cash, khqr",
		})
	}
	if in.Currency != nil && !in.Currency.Valid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "currency",
			Message: "must be one of: USD, KHR",
		})
	}
	if len(in.Items) == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "items",
			Message: "at least one line item is required",
		})
	}

	for i, line := range in.Items {
		if line.ItemID == uuid.Nil {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].item_id", i),
				Message: "item id is required",
			})
		}
		if err := pricing.ValidateSaleQuantity(line.Quantity); err != nil {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "must be positive with at most two decimal places",
			})
		}
		if line.Price.IsNegative() {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].price", i),
				Message: "must not be negative",
			})
		}
		if line.Discount.IsNegative() || line.Discount.GreaterThan(decimal.NewFromInt(100)) {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].discount", i),
				Message: "must be within [0,100]",
			})
		}
	}

	return fieldErrors
}

// CreateOrder checks the cart, computes the total by summing unrounded line
// subtotals and rounding once, draws the next invoice number, and persists
// order and lines atomically. Nothing is persisted when validation fails.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.ShopOrder, error) {
	if fieldErrors := input.validate(); len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	// Batch fetch the referenced items in one query
	itemIDs := make([]uuid.UUID, len(input.Items))
	for i, line := range input.Items {
		itemIDs[i] = line.ItemID
	}

	items, err := s.itemRepo.GetByIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	itemMap := make(map[uuid.UUID]*entity.Item, len(items))
	for i := range items {
		itemMap[items[i].ID] = &items[i]
	}

	lines := make([]pricing.SaleLine, 0, len(input.Items))
	orderItems := make([]entity.OrderItem, 0, len(input.Items))
	for _, line := range input.Items {
		if _, exists := itemMap[line.ItemID]; !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Item %s", line.ItemID))
		}

		lines = append(lines, pricing.SaleLine{
			UnitPrice:       line.Price,
			Quantity:        line.Quantity,
			DiscountPercent: line.Discount,
			Options:         line.Options,
		})
		orderItems = append(orderItems, entity.OrderItem{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
			Price:    line.Price,
			Discount: line.Discount,
			Options:  line.Options,
		})
	}

	total, err := pricing.OrderTotal(lines)
	if err != nil {
		if errors.Is(err, pricing.ErrEmptyOrder) || errors.Is(err, money.ErrInvalidArgument) {
			return nil, apperror.NewBadRequestError("Invalid line items")
		}
		return nil, err
	}

	seq, err := s.counterRepo.Next(ctx, entity.OrderTypeShop)
	if err != nil {
		return nil, err
	}

	order := &entity.ShopOrder{
		InvoiceNo:     entity.InvoiceNumber(entity.InvoicePrefixShop, seq),
		AccountID:     input.Actor.ID,
		PaidBy:        input.Actor.DisplayName,
		PaymentMethod: input.PaymentMethod,
		Currency:      input.Currency,
		TotalPay:      total,
		Items:         orderItems,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return s.orderRepo.GetByID(ctx, order.ID)
}

// GetOrder retrieves an order by ID
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.ShopOrder, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists shop orders, optionally filtered to a created-at range.
// The filter applies only when both bounds are given.
func (s *OrderService) ListOrders(ctx context.Context, params *repository.ShopOrderFilterParams) (*pagination.PaginatedResult[entity.ShopOrder], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// DeleteOrder removes an order and all its line items in one transaction.
// The invoice number is never reused.
func (s *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}

	return s.orderRepo.DeleteWithItems(ctx, id)
}
