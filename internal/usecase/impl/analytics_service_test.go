package impl

import (
	"context"
	"testing"
	"time"

	"galassia/internal/domain/repository"
	mockRepo "galassia/internal/mocks/repository"
	"galassia/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// analyticsServiceFixtures holds all test dependencies for analytics service tests.
type analyticsServiceFixtures struct {
	service     usecase.AnalyticsUsecase
	orderRepo   *mockRepo.MockOrderRepository
	productRepo *mockRepo.MockProductRepository
	userRepo    *mockRepo.MockUserRepository
}

func createTestAnalyticsService(t *testing.T) analyticsServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewAnalyticsService(AnalyticsServiceParams{
		OrderRepo:   orderRepo,
		ProductRepo: productRepo,
		UserRepo:    userRepo,
	})

	return analyticsServiceFixtures{
		service:     service,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

func TestAnalyticsService_GetDashboard_Success(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()
	today := time.Now().Truncate(24 * time.Hour)
	daily := []*repository.DailySales{
		{Date: today.AddDate(0, 0, -1), Orders: 2, Revenue: decimal.NewFromInt(300)},
		{Date: today, Orders: 3, Revenue: decimal.NewFromInt(450)},
	}

	fx.orderRepo.EXPECT().
		Summary(ctx).
		Return(&repository.SalesSummary{
			TotalOrders:  5,
			TotalRevenue: decimal.NewFromInt(750),
		}, nil)

	fx.productRepo.EXPECT().
		CountProducts(ctx).
		Return(int64(12), nil)

	fx.userRepo.EXPECT().
		CountUsers(ctx).
		Return(int64(7), nil)

	fx.orderRepo.EXPECT().
		DailySales(ctx, mock.AnythingOfType("time.Time")).
		Return(daily, nil)

	dashboard, err := fx.service.GetDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), dashboard.TotalOrders)
	assert.True(t, dashboard.TotalRevenue.Equal(decimal.NewFromInt(750)))
	assert.Equal(t, int64(12), dashboard.TotalProducts)
	assert.Equal(t, int64(7), dashboard.TotalUsers)
	require.Len(t, dashboard.DailySales, 2)
	assert.Equal(t, int64(3), dashboard.DailySales[1].Orders)
	assert.True(t, dashboard.DailySales[1].Revenue.Equal(decimal.NewFromInt(450)))
}

func TestAnalyticsService_GetDashboard_WindowCoversLastWeek(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().
		Summary(ctx).
		Return(&repository.SalesSummary{TotalRevenue: decimal.Zero}, nil)

	fx.productRepo.EXPECT().
		CountProducts(ctx).
		Return(int64(0), nil)

	fx.userRepo.EXPECT().
		CountUsers(ctx).
		Return(int64(0), nil)

	var since time.Time
	fx.orderRepo.EXPECT().
		DailySales(ctx, mock.AnythingOfType("time.Time")).
		RunAndReturn(func(_ context.Context, s time.Time) ([]*repository.DailySales, error) {
			since = s

			return []*repository.DailySales{}, nil
		})

	_, err := fx.service.GetDashboard(ctx)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, -7), since, time.Minute)
}

func TestAnalyticsService_GetDashboard_SummaryFailure(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().
		Summary(ctx).
		Return(nil, errors.New("aggregation timed out"))

	dashboard, err := fx.service.GetDashboard(ctx)
	require.Error(t, err)
	assert.Nil(t, dashboard)
}
