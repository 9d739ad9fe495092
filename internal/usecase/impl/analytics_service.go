package impl

import (
	"context"
	"time"

	"galassia/internal/domain/repository"
	"galassia/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const dailySalesWindowDays = 7

type analyticsService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

// AnalyticsServiceParams holds dependencies for AnalyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
	UserRepo    repository.UserRepository
}

// NewAnalyticsService creates a new analytics service instance
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	return &analyticsService{
		orderRepo:   params.OrderRepo,
		productRepo: params.ProductRepo,
		userRepo:    params.UserRepo,
	}
}

// GetDashboard aggregates totals and the last week of sales.
func (s *analyticsService) GetDashboard(ctx context.Context) (*usecase.Dashboard, error) {
	summary, err := s.orderRepo.Summary(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate sales summary")
	}

	totalProducts, err := s.productRepo.CountProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}

	totalUsers, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	since := time.Now().AddDate(0, 0, -dailySalesWindowDays)
	daily, err := s.orderRepo.DailySales(ctx, since)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate daily sales")
	}

	points := make([]usecase.DailySalesPoint, 0, len(daily))
	for _, day := range daily {
		points = append(points, usecase.DailySalesPoint{
			Date:    day.Date,
			Orders:  day.Orders,
			Revenue: day.Revenue,
		})
	}

	return &usecase.Dashboard{
		TotalOrders:   summary.TotalOrders,
		TotalRevenue:  summary.TotalRevenue,
		TotalProducts: totalProducts,
		TotalUsers:    totalUsers,
		DailySales:    points,
	}, nil
}
