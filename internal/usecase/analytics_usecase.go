package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DailySalesPoint is one day of the sales chart.
type DailySalesPoint struct {
	Date    time.Time
	Orders  int64
	Revenue decimal.Decimal
}

// Dashboard aggregates the storefront's headline numbers.
type Dashboard struct {
	TotalOrders   int64
	TotalRevenue  decimal.Decimal
	TotalProducts int64
	TotalUsers    int64
	DailySales    []DailySalesPoint
}

// AnalyticsUsecase defines the interface for the admin analytics use cases
type AnalyticsUsecase interface {
	// GetDashboard aggregates totals and the last week of sales.
	GetDashboard(ctx context.Context) (*Dashboard, error)
}
