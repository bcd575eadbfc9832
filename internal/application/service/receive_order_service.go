package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sothea-dev/shoppos-api/internal/domain/entity"
	"github.com/sothea-dev/shoppos-api/internal/domain/enum"
	"github.com/sothea-dev/shoppos-api/internal/domain/repository"
	"github.com/sothea-dev/shoppos-api/pkg/apperror"
	"github.com/sothea-dev/shoppos-api/pkg/pagination"
)

// ReceiveOrderService tracks deliveries of purchase orders. Completing a
// receive order also completes its purchase order, which moves the order's
// total into the expense series.
type ReceiveOrderService struct {
	receiveRepo  repository.ReceiveOrderRepository
	purchaseRepo repository.PurchaseOrderRepository
}

// NewReceiveOrderService creates a new receive order service
func NewReceiveOrderService(
	receiveRepo repository.ReceiveOrderRepository,
	purchaseRepo repository.PurchaseOrderRepository,
) *ReceiveOrderService {
	return &ReceiveOrderService{
		receiveRepo:  receiveRepo,
		purchaseRepo: purchaseRepo,
	}
}

// CreateReceiveOrderInput represents the create receive order input
type CreateReceiveOrderInput struct {
	Actor           entity.Account
	PurchaseOrderID uuid.UUID
	Status          enum.PurchaseStatus
	ReceiveAt       *time.Time
	Note            *string
}

// CreateReceiveOrder opens delivery tracking for a purchase order. Only one
// receive order may exist per purchase order.
func (s *ReceiveOrderService) CreateReceiveOrder(ctx context.Context, input *CreateReceiveOrderInput) (*entity.ReceiveOrder, error) {
	if input.PurchaseOrderID == uuid.Nil {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "purchase_order_id", Message: "purchase order id is required"},
		})
	}
	if input.Status != "" && !input.Status.Valid() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "status", Message: "must be one of: pending, complete, cancel"},
		})
	}

	purchase, err := s.purchaseRepo.GetByID(ctx, input.PurchaseOrderID)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, apperror.NewNotFoundError("Purchase order")
	}

	existing, err := s.receiveRepo.GetByPurchaseOrderID(ctx, input.PurchaseOrderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Receive order already exists for this purchase order")
	}

	status := input.Status
	if status == "" {
		status = enum.PurchaseStatusPending
	}

	order := &entity.ReceiveOrder{
		PurchaseOrderID: input.PurchaseOrderID,
		AccountID:       &input.Actor.ID,
		Status:          status,
		ReceiveAt:       input.ReceiveAt,
		Note:            input.Note,
	}

	if err := s.receiveRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	if status == enum.PurchaseStatusComplete {
		if err := s.completePurchaseOrder(ctx, purchase); err != nil {
			return nil, err
		}
	}

	return s.receiveRepo.GetByID(ctx, order.ID)
}

// UpdateReceiveOrderInput represents a partial receive order update
type UpdateReceiveOrderInput struct {
	Status    *enum.PurchaseStatus
	ReceiveAt *time.Time
	Note      *string
}

// UpdateReceiveOrder applies a partial update. Moving the status to
// complete stamps the receive time if not provided and completes the
// purchase order.
func (s *ReceiveOrderService) UpdateReceiveOrder(ctx context.Context, id uuid.UUID, input *UpdateReceiveOrderInput) (*entity.ReceiveOrder, error) {
	order, err := s.receiveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Receive order")
	}

	if input.Status != nil && !input.Status.Valid() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "status", Message: "must be one of: pending, complete, cancel"},
		})
	}

	if input.ReceiveAt != nil {
		order.ReceiveAt = input.ReceiveAt
	}
	if input.Note != nil {
		order.Note = input.Note
	}

	completing := false
	if input.Status != nil {
		completing = *input.Status == enum.PurchaseStatusComplete && order.Status != enum.PurchaseStatusComplete
		order.Status = *input.Status
	}
	if completing && order.ReceiveAt == nil {
		now := time.Now()
		order.ReceiveAt = &now
	}

	if err := s.receiveRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	if completing {
		purchase, err := s.purchaseRepo.GetByID(ctx, order.PurchaseOrderID)
		if err != nil {
			return nil, err
		}
		if purchase != nil {
			if err := s.completePurchaseOrder(ctx, purchase); err != nil {
				return nil, err
			}
		}
	}

	return s.receiveRepo.GetByID(ctx, order.ID)
}

func (s *ReceiveOrderService) completePurchaseOrder(ctx context.Context, purchase *entity.PurchaseOrder) error {
	if purchase.Status == enum.PurchaseStatusComplete {
		return nil
	}
	purchase.Status = enum.PurchaseStatusComplete
	purchase.Items = nil
	return s.purchaseRepo.Update(ctx, purchase)
}

// GetReceiveOrder retrieves a receive order by ID
func (s *ReceiveOrderService) GetReceiveOrder(ctx context.Context, id uuid.UUID) (*entity.ReceiveOrder, error) {
	order, err := s.receiveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Receive order")
	}
	return order, nil
}

// ListReceiveOrders lists receive orders with pagination
func (s *ReceiveOrderService) ListReceiveOrders(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.ReceiveOrder], error) {
	orders, total, err := s.receiveRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// DeleteReceiveOrder removes a receive order. The purchase order keeps its
// current status.
func (s *ReceiveOrderService) DeleteReceiveOrder(ctx context.Context, id uuid.UUID) error {
	order, err := s.receiveRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Receive order")
	}

	return s.receiveRepo.Delete(ctx, id)
}
