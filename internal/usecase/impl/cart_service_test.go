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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewCartService(CartServiceParams{
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
	})

	return cartServiceFixtures{
		service:     service,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func TestCartService_GetCart_PricesLines(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	items := []*entity.CartItem{
		{
			UserID:    userID,
			ProductID: uuid.New(),
			Quantity:  2,
			Product: &entity.Product{
				Price:    decimal.NewFromInt(100),
				Discount: 10,
			},
		},
		{
			UserID:    userID,
			ProductID: uuid.New(),
			Quantity:  1,
			Product: &entity.Product{
				Price: decimal.NewFromInt(50),
			},
		},
	}

	fx.cartRepo.EXPECT().
		GetItems(ctx, userID).
		Return(items, nil)

	view, err := fx.service.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, view.Items, 2)
	assert.True(t, view.Subtotal.Equal(decimal.NewFromInt(230)),
		"expected 230, got %s", view.Subtotal)
	assert.True(t, view.Total.Equal(view.Subtotal))
}

func TestCartService_GetCart_KeepsOrphanedLines(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	items := []*entity.CartItem{
		{
			UserID:    userID,
			ProductID: uuid.New(),
			Quantity:  3,
			Product:   nil,
		},
	}

	fx.cartRepo.EXPECT().
		GetItems(ctx, userID).
		Return(items, nil)

	view, err := fx.service.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, view.Items, 1)
	assert.True(t, view.Subtotal.IsZero())
}

func TestCartService_AddItem_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	product := &entity.Product{
		ID:       productID,
		Name:     "Silver Ring",
		Price:    decimal.NewFromInt(40),
		Quantity: 10,
	}

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(product, nil)

	fx.cartRepo.EXPECT().
		UpsertItem(ctx, mock.AnythingOfType("*entity.CartItem")).
		Return(nil)

	fx.cartRepo.EXPECT().
		GetItems(ctx, userID).
		Return([]*entity.CartItem{
			{UserID: userID, ProductID: productID, Quantity: 2, Product: product},
		}, nil)

	view, err := fx.service.AddItem(ctx, userID, productID, 2)
	require.NoError(t, err)
	assert.Len(t, view.Items, 1)
	assert.True(t, view.Subtotal.Equal(decimal.NewFromInt(80)))
}

func TestCartService_AddItem_NonPositiveQuantity(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()

	view, err := fx.service.AddItem(ctx, uuid.New(), uuid.New(), 0)
	require.Error(t, err)
	assert.Nil(t, view)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCartService_AddItem_ProductNotFound(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	view, err := fx.service.AddItem(ctx, uuid.New(), productID, 1)
	require.Error(t, err)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_UpdateItem_ZeroRemovesLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.cartRepo.EXPECT().
		SetItemQuantity(ctx, userID, productID, 0).
		Return(nil)

	fx.cartRepo.EXPECT().
		GetItems(ctx, userID).
		Return([]*entity.CartItem{}, nil)

	view, err := fx.service.UpdateItem(ctx, userID, productID, 0)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.True(t, view.Total.IsZero())
}

func TestCartService_UpdateItem_NegativeQuantity(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()

	view, err := fx.service.UpdateItem(ctx, uuid.New(), uuid.New(), -1)
	require.Error(t, err)
	assert.Nil(t, view)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCartService_RemoveItem_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.cartRepo.EXPECT().
		RemoveItem(ctx, userID, productID).
		Return(nil)

	fx.cartRepo.EXPECT().
		GetItems(ctx, userID).
		Return([]*entity.CartItem{}, nil)

	view, err := fx.service.RemoveItem(ctx, userID, productID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestCartService_ClearCart_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().
		Clear(ctx, userID).
		Return(nil)

	err := fx.service.ClearCart(ctx, userID)
	require.NoError(t, err)
}
