package impl

import (
	"context"
	"testing"

	"galassia/internal/domain/entity"
	domainerrors "galassia/internal/domain/errors"
	"galassia/internal/domain/repository"
	mockRepo "galassia/internal/mocks/repository"
	"galassia/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	orderRepo *mockRepo.MockOrderRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	service := NewOrderService(OrderServiceParams{
		OrderRepo: orderRepo,
	})

	return orderServiceFixtures{
		service:   service,
		orderRepo: orderRepo,
	}
}

func TestOrderService_ListMyOrders_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orders := []*entity.Order{
		{ID: uuid.New(), UserID: userID, Status: entity.OrderStatusPending},
		{ID: uuid.New(), UserID: userID, Status: entity.OrderStatusDelivered},
	}

	fx.orderRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(orders, nil)

	got, err := fx.service.ListMyOrders(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestOrderService_GetOrder_OwnOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	order := &entity.Order{
		ID:          orderID,
		UserID:      userID,
		TotalAmount: decimal.NewFromInt(120),
		Status:      entity.OrderStatusPending,
	}

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(order, nil)

	got, err := fx.service.GetOrder(ctx, userID, false, orderID)
	require.NoError(t, err)
	assert.Equal(t, orderID, got.ID)
}

func TestOrderService_GetOrder_ForeignOrderReadsAsNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{
		ID:     orderID,
		UserID: uuid.New(),
	}

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(order, nil)

	got, err := fx.service.GetOrder(ctx, uuid.New(), false, orderID)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_GetOrder_AdminSeesForeignOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{
		ID:     orderID,
		UserID: uuid.New(),
	}

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(order, nil)

	got, err := fx.service.GetOrder(ctx, uuid.New(), true, orderID)
	require.NoError(t, err)
	assert.Equal(t, orderID, got.ID)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	got, err := fx.service.GetOrder(ctx, uuid.New(), true, orderID)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_UpdateOrderStatus_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	updated := &entity.Order{
		ID:     orderID,
		Status: entity.OrderStatusShipped,
	}

	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.OrderStatusShipped).
		Return(updated, nil)

	got, err := fx.service.UpdateOrderStatus(ctx, orderID, "shipped")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, got.Status)
}

func TestOrderService_UpdateOrderStatus_InvalidStatus(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	got, err := fx.service.UpdateOrderStatus(ctx, uuid.New(), "teleported")
	require.Error(t, err)
	assert.Nil(t, got)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_ORDER_STATUS", appErr.ErrorCode())
	assert.Equal(t, "teleported", appErr.Details())
}

func TestOrderService_UpdateOrderStatus_OrderNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.OrderStatusCancelled).
		Return(nil, repository.ErrOrderNotFound)

	got, err := fx.service.UpdateOrderStatus(ctx, orderID, "cancelled")
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
