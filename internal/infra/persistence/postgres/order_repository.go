package postgres

import (
	"context"
	"time"

	"galassia/internal/domain/entity"
	domainerrors "galassia/internal/domain/errors"
	"galassia/internal/domain/repository"
	"galassia/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new order with its line items.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCheckoutSession
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user or product reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Update the entity with generated values
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves a single order with its items and product references.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindByCheckoutSessionID retrieves the order created for a payment session.
func (repo *orderRepository) FindByCheckoutSessionID(ctx context.Context, sessionID string) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Where("checkout_session_id = ?", sessionID).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by checkout session")
	}

	return toOrderDomain(&orderM), nil
}

// FindByUser retrieves a user's orders, newest first.
func (repo *orderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// FindAll retrieves every order for the admin view, newest first.
func (repo *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("User").
		Preload("Items").
		Preload("Items.Product").
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// UpdateStatus sets the fulfillment status of an order and returns the updated order.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrOrderNotFound
	}

	return repo.FindByID(ctx, id)
}

// Summary aggregates order count and revenue across all orders.
func (repo *orderRepository) Summary(ctx context.Context) (*repository.SalesSummary, error) {
	var row struct {
		TotalOrders  int64
		TotalRevenue decimal.Decimal
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("COUNT(*) AS total_orders, COALESCE(SUM(total_amount), 0) AS total_revenue").
		Scan(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate sales summary")
	}

	return &repository.SalesSummary{
		TotalOrders:  row.TotalOrders,
		TotalRevenue: row.TotalRevenue,
	}, nil
}

// DailySales aggregates per-day order counts and revenue since the given time.
func (repo *orderRepository) DailySales(ctx context.Context, since time.Time) ([]*repository.DailySales, error) {
	var rows []struct {
		Date    time.Time
		Orders  int64
		Revenue decimal.Decimal
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("DATE_TRUNC('day', created_at) AS date, COUNT(*) AS orders, COALESCE(SUM(total_amount), 0) AS revenue").
		Where("created_at >= ?", since).
		Group("DATE_TRUNC('day', created_at)").
		Order("date ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate daily sales")
	}

	daily := make([]*repository.DailySales, 0, len(rows))
	for _, row := range rows {
		daily = append(daily, &repository.DailySales{
			Date:    row.Date,
			Orders:  row.Orders,
			Revenue: row.Revenue,
		})
	}

	return daily, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for i := range data.Items {
		itemM := &data.Items[i]
		items = append(items, entity.OrderItem{
			ProductID: itemM.ProductID,
			Quantity:  itemM.Quantity,
			UnitPrice: itemM.UnitPrice,
			Product:   toProductDomain(itemM.Product),
		})
	}

	var sessionID string
	if data.CheckoutSessionID != nil {
		sessionID = *data.CheckoutSessionID
	}

	var shipping *entity.ShippingAddress
	if data.ShippingAddress != (model.ShippingAddressModel{}) {
		shipping = &entity.ShippingAddress{
			Name:    data.ShippingAddress.Name,
			Phone:   data.ShippingAddress.Phone,
			Address: data.ShippingAddress.Address,
			City:    data.ShippingAddress.City,
			ZipCode: data.ShippingAddress.ZipCode,
		}
	}

	var user *entity.User
	if data.User != nil {
		user = &entity.User{
			ID:    data.User.ID,
			Email: data.User.Email,
			Name:  data.User.Name,
			Role:  entity.Role(data.User.Role),
		}
	}

	return &entity.Order{
		ID:                data.ID,
		UserID:            data.UserID,
		User:              user,
		Items:             items,
		TotalAmount:       data.TotalAmount,
		PaymentMethod:     entity.PaymentMethod(data.PaymentMethod),
		CheckoutSessionID: sessionID,
		ShippingAddress:   shipping,
		Status:            entity.OrderStatus(data.Status),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	var sessionID *string
	if data.CheckoutSessionID != "" {
		sessionID = &data.CheckoutSessionID
	}

	var shipping model.ShippingAddressModel
	if data.ShippingAddress != nil {
		shipping = model.ShippingAddressModel{
			Name:    data.ShippingAddress.Name,
			Phone:   data.ShippingAddress.Phone,
			Address: data.ShippingAddress.Address,
			City:    data.ShippingAddress.City,
			ZipCode: data.ShippingAddress.ZipCode,
		}
	}

	return &model.OrderModel{
		ID:                data.ID,
		UserID:            data.UserID,
		TotalAmount:       data.TotalAmount,
		PaymentMethod:     string(data.PaymentMethod),
		CheckoutSessionID: sessionID,
		Status:            string(data.Status),
		ShippingAddress:   shipping,
		Items:             items,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
