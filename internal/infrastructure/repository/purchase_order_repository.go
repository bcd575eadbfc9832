package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sothea-dev/shoppos-api/internal/domain/entity"
	domainRepo "github.com/sothea-dev/shoppos-api/internal/domain/repository"
	"github.com/sothea-dev/shoppos-api/pkg/apperror"
)

type purchaseOrderRepository struct {
	db *gorm.DB
}

// NewPurchaseOrderRepository creates a new purchase order repository
func NewPurchaseOrderRepository(db *gorm.DB) domainRepo.PurchaseOrderRepository {
	return &purchaseOrderRepository{db: db}
}

// Create persists the order together with its items in one transaction.
// A unique violation on invoice_no surfaces as Conflict.
func (r *purchaseOrderRepository) Create(ctx context.Context, order *entity.PurchaseOrder) error {
	err := r.db.WithContext(ctx).Create(order).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.NewConflictError("Invoice number already assigned")
	}
	return err
}

func (r *purchaseOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	var order entity.PurchaseOrder
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Preload("Creator").
		Preload("Items").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

// Update saves the order. When the item set was replaced, the old rows are
// dropped and the new ones written in the same transaction.
func (r *purchaseOrderRepository) Update(ctx context.Context, order *entity.PurchaseOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if order.Items != nil {
			if err := tx.Unscoped().Delete(&entity.PurchaseOrderItem{}, "purchase_order_id = ?", order.ID).Error; err != nil {
				return err
			}
			for i := range order.Items {
				order.Items[i].ID = uuid.Nil
				order.Items[i].PurchaseOrderID = order.ID
			}
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(order).Error
	})
}

func (r *purchaseOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.PurchaseOrderItem{}, "purchase_order_id = ?", id).Error; err != nil {
			return err
		}

		res := tx.Delete(&entity.PurchaseOrder{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *purchaseOrderRepository) List(ctx context.Context, params *domainRepo.PurchaseOrderFilterParams) ([]entity.PurchaseOrder, int64, error) {
	var orders []entity.PurchaseOrder
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.PurchaseOrder{})

	// Each bound filters independently, unlike the shop order listing.
	if params.StartDate != nil {
		query = query.Where("purchase_date >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("purchase_date <= ?", *params.EndDate)
	}
	if params.SupplierID != nil {
		query = query.Where("supplier_id = ?", *params.SupplierID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Supplier").
		Preload("Creator").
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error

	return orders, total, err
}
