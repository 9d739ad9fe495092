package impl

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"galassia/internal/domain/entity"
	domainerrors "galassia/internal/domain/errors"
	"galassia/internal/domain/repository"
	"galassia/internal/domain/service"
	mockRepo "galassia/internal/mocks/repository"
	mockService "galassia/internal/mocks/service"
	"galassia/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// checkoutServiceFixtures holds all test dependencies for checkout service tests.
type checkoutServiceFixtures struct {
	service     usecase.CheckoutUsecase
	txManager   *mockRepo.MockTransactionManager
	productRepo *mockRepo.MockProductRepository
	couponRepo  *mockRepo.MockCouponRepository
	orderRepo   *mockRepo.MockOrderRepository
	cartRepo    *mockRepo.MockCartRepository
	payment     *mockService.MockPaymentService
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	couponRepo := mockRepo.NewMockCouponRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	payment := mockService.NewMockPaymentService(t)
	svc := NewCheckoutService(CheckoutServiceParams{
		TxManager:   txManager,
		ProductRepo: productRepo,
		CouponRepo:  couponRepo,
		OrderRepo:   orderRepo,
		Payment:     payment,
		Config:      newCheckoutTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return checkoutServiceFixtures{
		service:     svc,
		txManager:   txManager,
		productRepo: productRepo,
		couponRepo:  couponRepo,
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		payment:     payment,
	}
}

// expectTransaction routes the transactional closure through a factory backed
// by the same mocks the fixtures expose, so tests set expectations in one place.
func (f checkoutServiceFixtures) expectTransaction(t *testing.T, ctx context.Context) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProductRepository().Return(f.productRepo).Maybe()
	factory.EXPECT().NewCouponRepository().Return(f.couponRepo).Maybe()
	factory.EXPECT().NewOrderRepository().Return(f.orderRepo).Maybe()
	factory.EXPECT().NewCartRepository().Return(f.cartRepo).Maybe()

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestCheckoutService_CreateCardSession_Success(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	product := &entity.Product{
		ID:       productID,
		Name:     "Diamond Ring",
		Price:    decimal.NewFromInt(100),
		Discount: 10,
		Quantity: 5,
		ImageURL: "https://cdn.example/ring.jpg",
	}

	fx.payment.EXPECT().Enabled().Return(true)

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(product, nil)

	var captured service.CreateSessionInput
	fx.payment.EXPECT().
		CreateSession(ctx, mock.AnythingOfType("service.CreateSessionInput")).
		RunAndReturn(func(_ context.Context, input service.CreateSessionInput) (*service.CheckoutSession, error) {
			captured = input

			return &service.CheckoutSession{
				ID:  "cs_test_123",
				URL: "https://pay.example/cs_test_123",
			}, nil
		})

	// Two units at 90 each clear the loyalty threshold of 100.
	fx.couponRepo.EXPECT().
		ReplaceForUser(ctx, mock.AnythingOfType("*entity.Coupon")).
		Return(nil)

	out, err := fx.service.CreateCardSession(ctx, userID, usecase.CardSessionInput{
		Items: []usecase.CheckoutItemInput{{ProductID: productID, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_test_123", out.SessionID)
	assert.Equal(t, "https://pay.example/cs_test_123", out.URL)
	assert.True(t, out.TotalAmount.Equal(decimal.NewFromInt(180)),
		"expected 180, got %s", out.TotalAmount)

	require.Len(t, captured.LineItems, 1)
	assert.Equal(t, "Diamond Ring", captured.LineItems[0].Name)
	assert.Equal(t, "https://cdn.example/ring.jpg", captured.LineItems[0].Image)
	assert.Equal(t, int64(9000), captured.LineItems[0].UnitAmount)
	assert.Equal(t, int64(2), captured.LineItems[0].Quantity)
	assert.Nil(t, captured.CouponPercentOff)
	assert.Equal(t, userID.String(), captured.Metadata["userId"])
	assert.Contains(t, captured.Metadata["items"], productID.String())
	assert.Equal(t, "http://localhost:3000/checkout/success?session_id={CHECKOUT_SESSION_ID}", captured.SuccessURL)
	assert.Equal(t, "http://localhost:3000/cart", captured.CancelURL)
}

func TestCheckoutService_CreateCardSession_PaymentDisabled(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()

	fx.payment.EXPECT().Enabled().Return(false)

	out, err := fx.service.CreateCardSession(ctx, uuid.New(), usecase.CardSessionInput{
		Items: []usecase.CheckoutItemInput{{ProductID: uuid.New(), Quantity: 1}},
	})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentNotConfigured)
}

func TestCheckoutService_CreateCardSession_EmptyItems(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()

	fx.payment.EXPECT().Enabled().Return(true)

	out, err := fx.service.CreateCardSession(ctx, uuid.New(), usecase.CardSessionInput{})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestCheckoutService_CreateCardSession_InsufficientStock(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	productID := uuid.New()
	product := &entity.Product{
		ID:       productID,
		Name:     "Diamond Ring",
		Price:    decimal.NewFromInt(100),
		Quantity: 1,
	}

	fx.payment.EXPECT().Enabled().Return(true)

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(product, nil)

	out, err := fx.service.CreateCardSession(ctx, uuid.New(), usecase.CardSessionInput{
		Items: []usecase.CheckoutItemInput{{ProductID: productID, Quantity: 3}},
	})
	require.Error(t, err)
	assert.Nil(t, out)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INSUFFICIENT_STOCK", appErr.ErrorCode())
	assert.Equal(t, "Diamond Ring", appErr.Details())
}

func TestCheckoutService_CreateCardSession_CouponApplied(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	product := &entity.Product{
		ID:       productID,
		Name:     "Silver Bracelet",
		Price:    decimal.NewFromInt(80),
		Quantity: 5,
	}
	coupon := &entity.Coupon{
		ID:                 uuid.New(),
		Code:               "GIFT-ABC123",
		DiscountPercentage: 20,
		ExpirationDate:     time.Now().Add(24 * time.Hour),
		UserID:             userID,
		IsActive:           true,
	}

	fx.payment.EXPECT().Enabled().Return(true)

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(product, nil)

	fx.couponRepo.EXPECT().
		FindActiveByCodeAndUser(ctx, "GIFT-ABC123", userID).
		Return(coupon, nil)

	var captured service.CreateSessionInput
	fx.payment.EXPECT().
		CreateSession(ctx, mock.AnythingOfType("service.CreateSessionInput")).
		RunAndReturn(func(_ context.Context, input service.CreateSessionInput) (*service.CheckoutSession, error) {
			captured = input

			return &service.CheckoutSession{ID: "cs_test_456", URL: "https://pay.example/cs_test_456"}, nil
		})

	out, err := fx.service.CreateCardSession(ctx, userID, usecase.CardSessionInput{
		Items:      []usecase.CheckoutItemInput{{ProductID: productID, Quantity: 1}},
		CouponCode: "GIFT-ABC123",
	})
	require.NoError(t, err)
	// 80 minus 20 percent lands at 64, under the loyalty threshold.
	assert.True(t, out.TotalAmount.Equal(decimal.NewFromInt(64)),
		"expected 64, got %s", out.TotalAmount)
	require.NotNil(t, captured.CouponPercentOff)
	assert.Equal(t, 20, *captured.CouponPercentOff)
	assert.Equal(t, "GIFT-ABC123", captured.Metadata["couponCode"])
}

func TestCheckoutService_CreateCardSession_UnknownCouponIgnored(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	product := &entity.Product{
		ID:       productID,
		Name:     "Silver Bracelet",
		Price:    decimal.NewFromInt(80),
		Quantity: 5,
	}

	fx.payment.EXPECT().Enabled().Return(true)

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(product, nil)

	fx.couponRepo.EXPECT().
		FindActiveByCodeAndUser(ctx, "NOPE", userID).
		Return(nil, repository.ErrCouponNotFound)

	fx.payment.EXPECT().
		CreateSession(ctx, mock.AnythingOfType("service.CreateSessionInput")).
		Return(&service.CheckoutSession{ID: "cs_test_789", URL: "https://pay.example/cs_test_789"}, nil)

	out, err := fx.service.CreateCardSession(ctx, userID, usecase.CardSessionInput{
		Items:      []usecase.CheckoutItemInput{{ProductID: productID, Quantity: 1}},
		CouponCode: "NOPE",
	})
	require.NoError(t, err)
	assert.True(t, out.TotalAmount.Equal(decimal.NewFromInt(80)))
}

func TestCheckoutService_CreateCardSession_ExpiredCouponIgnored(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	product := &entity.Product{
		ID:       productID,
		Name:     "Silver Bracelet",
		Price:    decimal.NewFromInt(80),
		Quantity: 5,
	}
	// Still flagged active, but past its expiration date.
	coupon := &entity.Coupon{
		ID:                 uuid.New(),
		Code:               "GIFT-OLD999",
		DiscountPercentage: 20,
		ExpirationDate:     time.Now().Add(-time.Hour),
		UserID:             userID,
		IsActive:           true,
	}

	fx.payment.EXPECT().Enabled().Return(true)

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(product, nil)

	fx.couponRepo.EXPECT().
		FindActiveByCodeAndUser(ctx, "GIFT-OLD999", userID).
		Return(coupon, nil)

	var captured service.CreateSessionInput
	fx.payment.EXPECT().
		CreateSession(ctx, mock.AnythingOfType("service.CreateSessionInput")).
		RunAndReturn(func(_ context.Context, input service.CreateSessionInput) (*service.CheckoutSession, error) {
			captured = input

			return &service.CheckoutSession{ID: "cs_test_999", URL: "https://pay.example/cs_test_999"}, nil
		})

	out, err := fx.service.CreateCardSession(ctx, userID, usecase.CardSessionInput{
		Items:      []usecase.CheckoutItemInput{{ProductID: productID, Quantity: 1}},
		CouponCode: "GIFT-OLD999",
	})
	require.NoError(t, err)
	// The expired coupon is silently skipped: no processor discount, full price.
	assert.Nil(t, captured.CouponPercentOff)
	assert.True(t, out.TotalAmount.Equal(decimal.NewFromInt(80)),
		"expected 80, got %s", out.TotalAmount)
}

func TestCheckoutService_CreateCardSession_MintChecksQuantizedTotal(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	// Full precision 99.995 sits under the threshold of 100, but the
	// processor charges the rounded 10000 cents, which reaches it.
	product := &entity.Product{
		ID:       productID,
		Name:     "Opal Pendant",
		Price:    decimal.RequireFromString("99.995"),
		Quantity: 5,
	}

	fx.payment.EXPECT().Enabled().Return(true)

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(product, nil)

	fx.payment.EXPECT().
		CreateSession(ctx, mock.AnythingOfType("service.CreateSessionInput")).
		Return(&service.CheckoutSession{ID: "cs_test_round", URL: "https://pay.example/cs_test_round"}, nil)

	fx.couponRepo.EXPECT().
		ReplaceForUser(ctx, mock.AnythingOfType("*entity.Coupon")).
		Return(nil)

	_, err := fx.service.CreateCardSession(ctx, userID, usecase.CardSessionInput{
		Items: []usecase.CheckoutItemInput{{ProductID: productID, Quantity: 1}},
	})
	require.NoError(t, err)
}

func confirmableSession(sessionID string, userID uuid.UUID, productID uuid.UUID) *service.CheckoutSession {
	return &service.CheckoutSession{
		ID:          sessionID,
		Paid:        true,
		AmountTotal: 18000,
		Metadata: map[string]string{
			"items":      fmt.Sprintf(`[{"id":"%s","quantity":2,"price":"90","discount":10}]`, productID),
			"userId":     userID.String(),
			"couponCode": "",
		},
	}
}

func TestCheckoutService_ConfirmCardSession_Success(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	sessionID := "cs_test_123"

	fx.payment.EXPECT().Enabled().Return(true)

	fx.payment.EXPECT().
		RetrieveSession(ctx, sessionID).
		Return(confirmableSession(sessionID, userID, productID), nil)

	fx.orderRepo.EXPECT().
		FindByCheckoutSessionID(ctx, sessionID).
		Return(nil, repository.ErrOrderNotFound)

	fx.expectTransaction(t, ctx)

	fx.productRepo.EXPECT().
		DecrementStockFloored(ctx, productID, 2).
		Return(nil)

	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	fx.cartRepo.EXPECT().
		Clear(ctx, userID).
		Return(nil)

	order, err := fx.service.ConfirmCardSession(ctx, userID, sessionID)
	require.NoError(t, err)
	assert.Equal(t, userID, order.UserID)
	assert.Equal(t, entity.PaymentMethodCard, order.PaymentMethod)
	assert.Equal(t, sessionID, order.CheckoutSessionID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(180)),
		"expected 180, got %s", order.TotalAmount)
	require.Len(t, order.Items, 1)
	assert.Equal(t, productID, order.Items[0].ProductID)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.True(t, order.Items[0].UnitPrice.Equal(decimal.NewFromInt(90)))
}

func TestCheckoutService_ConfirmCardSession_NotPaid(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := "cs_test_123"
	sess := confirmableSession(sessionID, userID, uuid.New())
	sess.Paid = false

	fx.payment.EXPECT().Enabled().Return(true)

	fx.payment.EXPECT().
		RetrieveSession(ctx, sessionID).
		Return(sess, nil)

	order, err := fx.service.ConfirmCardSession(ctx, userID, sessionID)
	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentNotCompleted)
}

func TestCheckoutService_ConfirmCardSession_ForeignSession(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	sessionID := "cs_test_123"
	sess := confirmableSession(sessionID, uuid.New(), uuid.New())

	fx.payment.EXPECT().Enabled().Return(true)

	fx.payment.EXPECT().
		RetrieveSession(ctx, sessionID).
		Return(sess, nil)

	order, err := fx.service.ConfirmCardSession(ctx, uuid.New(), sessionID)
	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCheckoutService_ConfirmCardSession_ReplayReturnsExistingOrder(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := "cs_test_123"
	existing := &entity.Order{
		ID:                uuid.New(),
		UserID:            userID,
		CheckoutSessionID: sessionID,
		Status:            entity.OrderStatusPending,
	}

	fx.payment.EXPECT().Enabled().Return(true)

	fx.payment.EXPECT().
		RetrieveSession(ctx, sessionID).
		Return(confirmableSession(sessionID, userID, uuid.New()), nil)

	fx.orderRepo.EXPECT().
		FindByCheckoutSessionID(ctx, sessionID).
		Return(existing, nil)

	order, err := fx.service.ConfirmCardSession(ctx, userID, sessionID)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, order.ID)
}

func TestCheckoutService_ConfirmCardSession_MalformedSnapshot(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := "cs_test_123"
	sess := confirmableSession(sessionID, userID, uuid.New())
	sess.Metadata["items"] = "not json"

	fx.payment.EXPECT().Enabled().Return(true)

	fx.payment.EXPECT().
		RetrieveSession(ctx, sessionID).
		Return(sess, nil)

	fx.orderRepo.EXPECT().
		FindByCheckoutSessionID(ctx, sessionID).
		Return(nil, repository.ErrOrderNotFound)

	order, err := fx.service.ConfirmCardSession(ctx, userID, sessionID)
	require.Error(t, err)
	assert.Nil(t, order)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PAYMENT_FAILED", appErr.ErrorCode())
}

func TestCheckoutService_ConfirmCardSession_DuplicateRaceReturnsWinner(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	sessionID := "cs_test_123"
	winner := &entity.Order{
		ID:                uuid.New(),
		UserID:            userID,
		CheckoutSessionID: sessionID,
	}

	fx.payment.EXPECT().Enabled().Return(true)

	fx.payment.EXPECT().
		RetrieveSession(ctx, sessionID).
		Return(confirmableSession(sessionID, userID, productID), nil)

	fx.orderRepo.EXPECT().
		FindByCheckoutSessionID(ctx, sessionID).
		Return(nil, repository.ErrOrderNotFound).
		Once()

	fx.expectTransaction(t, ctx)

	fx.productRepo.EXPECT().
		DecrementStockFloored(ctx, productID, 2).
		Return(nil)

	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(repository.ErrDuplicateCheckoutSession)

	fx.orderRepo.EXPECT().
		FindByCheckoutSessionID(ctx, sessionID).
		Return(winner, nil).
		Once()

	order, err := fx.service.ConfirmCardSession(ctx, userID, sessionID)
	require.NoError(t, err)
	assert.Equal(t, winner.ID, order.ID)
}

func TestCheckoutService_PlaceCashOrder_Success(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	product := &entity.Product{
		ID:       productID,
		Name:     "Gold Watch",
		Price:    decimal.NewFromInt(100),
		Quantity: 5,
	}

	fx.expectTransaction(t, ctx)

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(product, nil)

	fx.productRepo.EXPECT().
		DecrementStock(ctx, productID, 2).
		Return(nil)

	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	fx.cartRepo.EXPECT().
		Clear(ctx, userID).
		Return(nil)

	// 200 clears the loyalty threshold, so a fresh coupon is minted.
	var minted *entity.Coupon
	fx.couponRepo.EXPECT().
		ReplaceForUser(ctx, mock.AnythingOfType("*entity.Coupon")).
		RunAndReturn(func(_ context.Context, coupon *entity.Coupon) error {
			minted = coupon

			return nil
		})

	order, err := fx.service.PlaceCashOrder(ctx, userID, usecase.CashOrderInput{
		Items: []usecase.CheckoutItemInput{{ProductID: productID, Quantity: 2}},
		Address: usecase.ShippingAddressInput{
			Name:    "Amelia Stone",
			Phone:   "555-0101",
			Address: "12 Jewel St",
			City:    "Florence",
			ZipCode: "50100",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentMethodCash, order.PaymentMethod)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(200)))
	require.NotNil(t, order.ShippingAddress)
	assert.Equal(t, "Florence", order.ShippingAddress.City)
	require.Len(t, order.Items, 1)
	assert.True(t, order.Items[0].UnitPrice.Equal(decimal.NewFromInt(100)))

	require.NotNil(t, minted)
	assert.True(t, strings.HasPrefix(minted.Code, "GIFT-"))
	assert.Equal(t, 10, minted.DiscountPercentage)
	assert.Equal(t, userID, minted.UserID)
	assert.True(t, minted.IsActive)
}

func TestCheckoutService_PlaceCashOrder_EmptyCart(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()

	order, err := fx.service.PlaceCashOrder(ctx, uuid.New(), usecase.CashOrderInput{})
	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestCheckoutService_PlaceCashOrder_IncompleteAddress(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()

	order, err := fx.service.PlaceCashOrder(ctx, uuid.New(), usecase.CashOrderInput{
		Items: []usecase.CheckoutItemInput{{ProductID: uuid.New(), Quantity: 1}},
		Address: usecase.ShippingAddressInput{
			Name:  "Amelia Stone",
			Phone: "555-0101",
		},
	})
	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrIncompleteAddress)
}

func TestCheckoutService_PlaceCashOrder_StockConflict(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	product := &entity.Product{
		ID:       productID,
		Name:     "Gold Watch",
		Price:    decimal.NewFromInt(100),
		Quantity: 5,
	}

	fx.expectTransaction(t, ctx)

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(product, nil)

	// The read saw stock, but a concurrent checkout drained it first.
	fx.productRepo.EXPECT().
		DecrementStock(ctx, productID, 2).
		Return(repository.ErrInsufficientStock)

	order, err := fx.service.PlaceCashOrder(ctx, userID, usecase.CashOrderInput{
		Items: []usecase.CheckoutItemInput{{ProductID: productID, Quantity: 2}},
		Address: usecase.ShippingAddressInput{
			Name:    "Amelia Stone",
			Phone:   "555-0101",
			Address: "12 Jewel St",
			City:    "Florence",
			ZipCode: "50100",
		},
	})
	require.Error(t, err)
	assert.Nil(t, order)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STOCK_CONFLICT", appErr.ErrorCode())
	assert.Equal(t, "Gold Watch", appErr.Details())
}

func TestCheckoutService_PlaceCashOrder_CouponRedeemedOnce(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	product := &entity.Product{
		ID:       productID,
		Name:     "Gold Watch",
		Price:    decimal.NewFromInt(50),
		Quantity: 5,
	}
	coupon := &entity.Coupon{
		ID:                 uuid.New(),
		Code:               "GIFT-ABC123",
		DiscountPercentage: 10,
		ExpirationDate:     time.Now().Add(24 * time.Hour),
		UserID:             userID,
		IsActive:           true,
	}

	fx.expectTransaction(t, ctx)

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(product, nil)

	fx.productRepo.EXPECT().
		DecrementStock(ctx, productID, 1).
		Return(nil)

	fx.couponRepo.EXPECT().
		FindActiveByCodeAndUser(ctx, "GIFT-ABC123", userID).
		Return(coupon, nil)

	fx.couponRepo.EXPECT().
		Deactivate(ctx, coupon.ID).
		Return(nil)

	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	fx.cartRepo.EXPECT().
		Clear(ctx, userID).
		Return(nil)

	order, err := fx.service.PlaceCashOrder(ctx, userID, usecase.CashOrderInput{
		Items:      []usecase.CheckoutItemInput{{ProductID: productID, Quantity: 1}},
		CouponCode: "GIFT-ABC123",
		Address: usecase.ShippingAddressInput{
			Name:    "Amelia Stone",
			Phone:   "555-0101",
			Address: "12 Jewel St",
			City:    "Florence",
			ZipCode: "50100",
		},
	})
	require.NoError(t, err)
	// 50 minus 10 percent lands at 45, under the loyalty threshold.
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(45)),
		"expected 45, got %s", order.TotalAmount)
}
