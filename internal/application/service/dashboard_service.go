package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sothea-dev/shoppos-api/internal/domain/repository"
	"github.com/sothea-dev/shoppos-api/pkg/apperror"
)

const bucketDateLayout = "2006-01-02"

// DailyFinancialBucket is one calendar day on the revenue/expense chart.
// Buckets are derived fresh on every request and never cached.
type DailyFinancialBucket struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"-"`
	Expense decimal.Decimal `json:"-"`
	Profit  decimal.Decimal `json:"-"`
}

// MarshalJSON custom marshaler to emit the monetary fields as JSON numbers
func (b DailyFinancialBucket) MarshalJSON() ([]byte, error) {
	type Alias DailyFinancialBucket
	return json.Marshal(&struct {
		Alias
		Revenue float64 `json:"revenue"`
		Expense float64 `json:"expense"`
		Profit  float64 `json:"profit"`
	}{
		Alias:   Alias(b),
		Revenue: b.Revenue.InexactFloat64(),
		Expense: b.Expense.InexactFloat64(),
		Profit:  b.Profit.InexactFloat64(),
	})
}

// DashboardStats holds the dashboard summary counters
type DashboardStats struct {
	TotalOrders         int64           `json:"total_orders"`
	TotalPurchaseOrders int64           `json:"total_purchase_orders"`
	TotalItems          int64           `json:"total_items"`
	TotalSuppliers      int64           `json:"total_suppliers"`
	TotalRevenue        decimal.Decimal `json:"-"`
}

// MarshalJSON custom marshaler to emit total revenue as a JSON number
func (s DashboardStats) MarshalJSON() ([]byte, error) {
	type Alias DashboardStats
	return json.Marshal(&struct {
		Alias
		TotalRevenue float64 `json:"total_revenue"`
	}{
		Alias:        Alias(s),
		TotalRevenue: s.TotalRevenue.InexactFloat64(),
	})
}

// DashboardService serves the revenue/expense chart and summary stats
type DashboardService struct {
	financeRepo repository.FinanceRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(financeRepo repository.FinanceRepository) *DashboardService {
	return &DashboardService{financeRepo: financeRepo}
}

// GetChartData returns the merged daily revenue/expense/profit series. The
// date filter applies only when both bounds are given; a lone bound is
// ignored and the full history is returned.
func (s *DashboardService) GetChartData(ctx context.Context, from, to *time.Time) ([]DailyFinancialBucket, error) {
	var rng *repository.DateRange
	if from != nil && to != nil {
		if to.Before(*from) {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "to", Message: "must not be before from"},
			})
		}
		rng = &repository.DateRange{From: *from, To: *to}
	}

	revenue, err := s.financeRepo.DailyRevenue(ctx, rng)
	if err != nil {
		return nil, err
	}
	expense, err := s.financeRepo.DailyExpense(ctx, rng)
	if err != nil {
		return nil, err
	}

	return mergeDailySeries(revenue, expense), nil
}

// mergeDailySeries joins the two daily series on calendar date, filling the
// missing side with zero. Profit is revenue minus expense, negative when a
// day only has expenses. The result is ascending by date and never nil.
func mergeDailySeries(revenue []repository.DailyRevenueRow, expense []repository.DailyExpenseRow) []DailyFinancialBucket {
	byDate := make(map[string]*DailyFinancialBucket)

	for _, row := range revenue {
		date := row.Date.Format(bucketDateLayout)
		byDate[date] = &DailyFinancialBucket{
			Date:    date,
			Revenue: row.Revenue,
			Expense: decimal.Zero,
		}
	}
	for _, row := range expense {
		date := row.Date.Format(bucketDateLayout)
		bucket, exists := byDate[date]
		if !exists {
			bucket = &DailyFinancialBucket{Date: date, Revenue: decimal.Zero}
			byDate[date] = bucket
		}
		bucket.Expense = row.Expense
	}

	buckets := make([]DailyFinancialBucket, 0, len(byDate))
	for _, bucket := range byDate {
		bucket.Profit = bucket.Revenue.Sub(bucket.Expense)
		buckets = append(buckets, *bucket)
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date < buckets[j].Date
	})

	return buckets
}

// GetStats returns the dashboard counters and the all-time revenue total
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	counts, err := s.financeRepo.Counts(ctx)
	if err != nil {
		return nil, err
	}
	totalRevenue, err := s.financeRepo.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalOrders:         counts.Orders,
		TotalPurchaseOrders: counts.PurchaseOrders,
		TotalItems:          counts.Items,
		TotalSuppliers:      counts.Suppliers,
		TotalRevenue:        totalRevenue,
	}, nil
}
