package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sothea-dev/shoppos-api/internal/domain/entity"
	domainRepo "github.com/sothea-dev/shoppos-api/internal/domain/repository"
)

type financeRepository struct {
	db *gorm.DB
}

// NewFinanceRepository creates a new finance repository
func NewFinanceRepository(db *gorm.DB) domainRepo.FinanceRepository {
	return &financeRepository{db: db}
}

func (r *financeRepository) DailyRevenue(ctx context.Context, rng *domainRepo.DateRange) ([]domainRepo.DailyRevenueRow, error) {
	var rows []domainRepo.DailyRevenueRow

	query := `
		SELECT
			CAST(created_at AS DATE) AS date,
			COALESCE(SUM(total_pay), 0) AS revenue
		FROM shop_orders
		WHERE deleted_at IS NULL`
	args := []interface{}{}

	if rng != nil {
		query += ` AND created_at BETWEEN ? AND ?`
		args = append(args, rng.From, rng.To)
	}

	query += `
		GROUP BY CAST(created_at AS DATE)
		ORDER BY date`

	err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *financeRepository) Counts(ctx context.Context) (*domainRepo.DashboardCounts, error) {
	counts := &domainRepo.DashboardCounts{}

	if err := r.db.WithContext(ctx).Model(&entity.ShopOrder{}).Count(&counts.Orders).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&entity.PurchaseOrder{}).Count(&counts.PurchaseOrders).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&entity.Item{}).Count(&counts.Items).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&entity.Supplier{}).Count(&counts.Suppliers).Error; err != nil {
		return nil, err
	}

	return counts, nil
}

func (r *financeRepository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.NullDecimal

	err := r.db.WithContext(ctx).
		Model(&entity.ShopOrder{}).
		Select("SUM(total_pay)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

func (r *financeRepository) DailyExpense(ctx context.Context, rng *domainRepo.DateRange) ([]domainRepo.DailyExpenseRow, error) {
	var rows []domainRepo.DailyExpenseRow

	// Purchase orders without a purchase date fall into today's bucket.
	query := `
		SELECT
			CAST(COALESCE(purchase_date, NOW()) AS DATE) AS date,
			COALESCE(SUM(total_price), 0) AS expense
		FROM purchase_orders
		WHERE deleted_at IS NULL AND status = 'complete'`
	args := []interface{}{}

	if rng != nil {
		query += ` AND COALESCE(purchase_date, NOW()) BETWEEN ? AND ?`
		args = append(args, rng.From, rng.To)
	}

	query += `
		GROUP BY CAST(COALESCE(purchase_date, NOW()) AS DATE)
		ORDER BY date`

	err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
