package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DateRange is an inclusive calendar range. A nil range means no filter.
type DateRange struct {
	From time.Time
	To   time.Time
}

// DailyRevenueRow is one day's summed shop order revenue.
type DailyRevenueRow struct {
	Date    time.Time       `gorm:"column:date"`
	Revenue decimal.Decimal `gorm:"column:revenue"`
}

// DailyExpenseRow is one day's summed expense from complete purchase
// orders.
type DailyExpenseRow struct {
	Date    time.Time       `gorm:"column:date"`
	Expense decimal.Decimal `gorm:"column:expense"`
}

// DashboardCounts holds entity counts shown on the dashboard.
type DashboardCounts struct {
	Orders         int64
	PurchaseOrders int64
	Items          int64
	Suppliers      int64
}

// FinanceRepository defines aggregation queries behind the revenue/expense
// chart and the dashboard. The daily queries group by calendar day and
// return rows in ascending date order.
type FinanceRepository interface {
	// DailyRevenue sums shop order totals per created-at calendar day.
	DailyRevenue(ctx context.Context, rng *DateRange) ([]DailyRevenueRow, error)

	// DailyExpense sums complete purchase order totals per purchase-date
	// calendar day, bucketing rows without a purchase date under today.
	DailyExpense(ctx context.Context, rng *DateRange) ([]DailyExpenseRow, error)

	// Counts returns live entity counts.
	Counts(ctx context.Context) (*DashboardCounts, error)

	// TotalRevenue sums all shop order totals.
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
}
