package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sothea-dev/shoppos-api/internal/domain/entity"
	domainRepo "github.com/sothea-dev/shoppos-api/internal/domain/repository"
	"github.com/sothea-dev/shoppos-api/pkg/pagination"
)

type receiveOrderRepository struct {
	db *gorm.DB
}

// NewReceiveOrderRepository creates a new receive order repository
func NewReceiveOrderRepository(db *gorm.DB) domainRepo.ReceiveOrderRepository {
	return &receiveOrderRepository{db: db}
}

func (r *receiveOrderRepository) Create(ctx context.Context, order *entity.ReceiveOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *receiveOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ReceiveOrder, error) {
	var order entity.ReceiveOrder
	err := r.db.WithContext(ctx).
		Preload("PurchaseOrder").
		Preload("PurchaseOrder.Supplier").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *receiveOrderRepository) GetByPurchaseOrderID(ctx context.Context, purchaseOrderID uuid.UUID) (*entity.ReceiveOrder, error) {
	var order entity.ReceiveOrder
	err := r.db.WithContext(ctx).First(&order, "purchase_order_id = ?", purchaseOrderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *receiveOrderRepository) Update(ctx context.Context, order *entity.ReceiveOrder) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *receiveOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.ReceiveOrder{}, "id = ?", id).Error
}

func (r *receiveOrderRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.ReceiveOrder, int64, error) {
	var orders []entity.ReceiveOrder
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.ReceiveOrder{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("PurchaseOrder").
		Preload("PurchaseOrder.Supplier").
		Order("created_at DESC").
		Find(&orders).Error

	return orders, total, err
}
