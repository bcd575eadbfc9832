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

type shopOrderRepository struct {
	db *gorm.DB
}

// NewShopOrderRepository creates a new shop order repository
func NewShopOrderRepository(db *gorm.DB) domainRepo.ShopOrderRepository {
	return &shopOrderRepository{db: db}
}

// Create persists the order together with its line items. gorm writes the
// association in the same transaction, so either everything commits or
// nothing does. A unique violation on invoice_no surfaces as Conflict; the
// losing writer of an invoice-number race must fail, never silently retry.
func (r *shopOrderRepository) Create(ctx context.Context, order *entity.ShopOrder) error {
	err := r.db.WithContext(ctx).Create(order).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.NewConflictError("Invoice number already assigned")
	}
	return err
}

func (r *shopOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ShopOrder, error) {
	var order entity.ShopOrder
	err := r.db.WithContext(ctx).
		Preload("Creator").
		Preload("Items.Item").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *shopOrderRepository) GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.ShopOrder, error) {
	var order entity.ShopOrder
	err := r.db.WithContext(ctx).First(&order, "invoice_no = ?", invoiceNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *shopOrderRepository) List(ctx context.Context, params *domainRepo.ShopOrderFilterParams) ([]entity.ShopOrder, int64, error) {
	var orders []entity.ShopOrder
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.ShopOrder{})

	// The range filter only kicks in when both bounds are present.
	if params.RangeApplies() {
		query = query.Where("created_at BETWEEN ? AND ?", *params.From, *params.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Creator").
		Preload("Items.Item").
		Order("created_at DESC").
		Find(&orders).Error

	return orders, total, err
}

// DeleteWithItems removes the order's line items and then the order, in one
// transaction. Returns gorm.ErrRecordNotFound when the order is absent.
func (r *shopOrderRepository) DeleteWithItems(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.OrderItem{}, "shop_order_id = ?", id).Error; err != nil {
			return err
		}

		res := tx.Delete(&entity.ShopOrder{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
