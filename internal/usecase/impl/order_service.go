package impl

import (
	"context"

	"galassia/internal/domain/entity"
	domainerrors "galassia/internal/domain/errors"
	"galassia/internal/domain/repository"
	"galassia/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderService struct {
	orderRepo repository.OrderRepository
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo: params.OrderRepo,
	}
}

// ListMyOrders retrieves the user's own orders, newest first.
func (s *orderService) ListMyOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	return s.orderRepo.FindByUser(ctx, userID)
}

// ListAllOrders retrieves every order for the admin view.
func (s *orderService) ListAllOrders(ctx context.Context) ([]*entity.Order, error) {
	return s.orderRepo.FindAll(ctx)
}

// GetOrder retrieves one order. Non-admin callers only see their own; a
// foreign order reads as not found rather than forbidden.
func (s *orderService) GetOrder(ctx context.Context, requesterID uuid.UUID, isAdmin bool, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to get order")
	}

	if !isAdmin && order.UserID != requesterID {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

// UpdateOrderStatus sets an order's fulfillment status.
func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status string) (*entity.Order, error) {
	parsed, ok := entity.ParseOrderStatus(status)
	if !ok {
		return nil, domainerrors.ErrInvalidOrderStatus.WithDetails(status)
	}

	order, err := s.orderRepo.UpdateStatus(ctx, orderID, parsed)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to update order status")
	}

	return order, nil
}
