package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"galassia/config"
	"galassia/internal/domain/entity"
	domainerrors "galassia/internal/domain/errors"
	"galassia/internal/domain/pricing"
	"galassia/internal/domain/repository"
	"galassia/internal/domain/service"
	"galassia/internal/usecase"
	"galassia/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	loyaltyCodeSuffixLength = 6

	metadataItemsKey  = "items"
	metadataUserIDKey = "userId"
	metadataCouponKey = "couponCode"
)

// sessionItem is one snapshot line stored in the payment session metadata.
// Price is the effective (discounted) unit price; confirmation builds the
// order from this snapshot and never re-reads the catalog for pricing.
type sessionItem struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
	Discount int    `json:"discount"`
}

type checkoutService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	couponRepo  repository.CouponRepository
	orderRepo   repository.OrderRepository
	payment     service.PaymentService
	config      *config.Config
	logger      *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	CouponRepo  repository.CouponRepository
	OrderRepo   repository.OrderRepository
	Payment     service.PaymentService
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		couponRepo:  params.CouponRepo,
		orderRepo:   params.OrderRepo,
		payment:     params.Payment,
		config:      params.Config,
		logger:      params.Logger,
	}
}

// CreateCardSession re-reads the catalog, prices the requested items and opens
// a hosted payment session. Stock is validated but not reserved; the
// authoritative decrement happens at confirmation.
func (s *checkoutService) CreateCardSession(ctx context.Context, userID uuid.UUID, input usecase.CardSessionInput) (*usecase.CardSessionOutput, error) {
	if !s.payment.Enabled() {
		return nil, domainerrors.ErrPaymentNotConfigured
	}
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	lines := make([]pricing.Line, 0, len(input.Items))
	lineItems := make([]service.CheckoutLineItem, 0, len(input.Items))
	snapshot := make([]sessionItem, 0, len(input.Items))

	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, domainerrors.ErrEmptyCart
		}

		product, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, domainerrors.ErrProductNotFound
			}

			return nil, errors.Wrap(err, "failed to load product for checkout")
		}

		if product.Quantity < item.Quantity {
			return nil, domainerrors.ErrInsufficientStock.WithDetails(product.Name)
		}

		unitPrice := product.EffectiveUnitPrice()
		lines = append(lines, pricing.Line{
			UnitPrice: product.Price,
			Discount:  product.Discount,
			Quantity:  item.Quantity,
		})
		lineItems = append(lineItems, service.CheckoutLineItem{
			Name:       product.Name,
			Image:      product.ImageURL,
			UnitAmount: pricing.ToCents(unitPrice),
			Quantity:   int64(item.Quantity),
		})
		snapshot = append(snapshot, sessionItem{
			ID:       product.ID.String(),
			Quantity: item.Quantity,
			Price:    unitPrice.String(),
			Discount: product.Discount,
		})
	}

	var couponPct *int
	if input.CouponCode != "" {
		coupon, err := s.couponRepo.FindActiveByCodeAndUser(ctx, input.CouponCode, userID)
		if err != nil && !errors.Is(err, repository.ErrCouponNotFound) {
			return nil, errors.Wrap(err, "failed to load coupon for checkout")
		}
		// An unknown or expired code is a no-op, not an error.
		if coupon != nil && coupon.Redeemable(time.Now()) {
			couponPct = &coupon.DiscountPercentage
		}
	}

	quote := pricing.Apply(lines, couponPct)

	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode checkout snapshot")
	}

	clientURL := s.config.Stripe.ClientURL
	sess, err := s.payment.CreateSession(ctx, service.CreateSessionInput{
		LineItems:        lineItems,
		CouponPercentOff: couponPct,
		Metadata: map[string]string{
			metadataItemsKey:  string(snapshotJSON),
			metadataUserIDKey: userID.String(),
			metadataCouponKey: input.CouponCode,
		},
		SuccessURL: clientURL + "/checkout/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  clientURL + "/cart",
	})
	if err != nil {
		return nil, err
	}

	// A qualifying spend mints the buyer's next loyalty coupon up front, so
	// it is already waiting when payment completes. The processor charges the
	// cents-quantized total, so the threshold is checked against that amount.
	s.maybeMintLoyaltyCoupon(ctx, userID, pricing.FromCents(pricing.ToCents(quote.Total)))

	return &usecase.CardSessionOutput{
		SessionID:   sess.ID,
		URL:         sess.URL,
		TotalAmount: quote.Total,
	}, nil
}

// ConfirmCardSession verifies payment with the processor and materializes the
// order from the session snapshot. Confirming the same session twice returns
// the same order.
func (s *checkoutService) ConfirmCardSession(ctx context.Context, userID uuid.UUID, sessionID string) (*entity.Order, error) {
	if !s.payment.Enabled() {
		return nil, domainerrors.ErrPaymentNotConfigured
	}

	sess, err := s.payment.RetrieveSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("checkout session not found")
		}

		return nil, err
	}

	if !sess.Paid {
		return nil, domainerrors.ErrPaymentNotCompleted
	}

	sessionUserID, err := uuid.Parse(sess.Metadata[metadataUserIDKey])
	if err != nil || sessionUserID != userID {
		return nil, domainerrors.ErrForbidden
	}

	// Replayed confirmations return the already-created order.
	if existing, err := s.orderRepo.FindByCheckoutSessionID(ctx, sessionID); err == nil {
		return existing, nil
	} else if !errors.Is(err, repository.ErrOrderNotFound) {
		return nil, errors.Wrap(err, "failed to check for existing order")
	}

	var snapshot []sessionItem
	if err := json.Unmarshal([]byte(sess.Metadata[metadataItemsKey]), &snapshot); err != nil || len(snapshot) == 0 {
		return nil, domainerrors.ErrPaymentFailed.WithDetails("checkout session metadata is malformed")
	}

	order := &entity.Order{
		UserID:            userID,
		TotalAmount:       pricing.FromCents(sess.AmountTotal),
		PaymentMethod:     entity.PaymentMethodCard,
		CheckoutSessionID: sessionID,
		Status:            entity.OrderStatusPending,
	}

	txErr := s.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
		// The coupon, if one was used, is consumed exactly once.
		if code := sess.Metadata[metadataCouponKey]; code != "" {
			s.redeemCoupon(ctx, txRepo.NewCouponRepository(), code, userID)
		}

		productRepo := txRepo.NewProductRepository()
		for _, item := range snapshot {
			productID, err := uuid.Parse(item.ID)
			if err != nil {
				return domainerrors.ErrPaymentFailed.WithDetails("checkout session metadata is malformed")
			}

			unitPrice, err := decimal.NewFromString(item.Price)
			if err != nil {
				return domainerrors.ErrPaymentFailed.WithDetails("checkout session metadata is malformed")
			}

			// Payment is already captured, so stock decrements floor at zero
			// instead of failing the order.
			if err := productRepo.DecrementStockFloored(ctx, productID, item.Quantity); err != nil {
				return errors.Wrap(err, "failed to decrement stock")
			}

			order.Items = append(order.Items, entity.OrderItem{
				ProductID: productID,
				Quantity:  item.Quantity,
				UnitPrice: unitPrice,
			})
		}

		if err := txRepo.NewOrderRepository().Create(ctx, order); err != nil {
			return err
		}

		return txRepo.NewCartRepository().Clear(ctx, userID)
	})
	if txErr != nil {
		// A concurrent confirmation may have won the unique-index race.
		if errors.Is(txErr, repository.ErrDuplicateCheckoutSession) {
			return s.orderRepo.FindByCheckoutSessionID(ctx, sessionID)
		}

		return nil, txErr
	}

	return order, nil
}

// PlaceCashOrder validates the address, decrements stock and creates a
// pending cash order in one transaction.
func (s *checkoutService) PlaceCashOrder(ctx context.Context, userID uuid.UUID, input usecase.CashOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	address := entity.ShippingAddress{
		Name:    input.Address.Name,
		Phone:   input.Address.Phone,
		Address: input.Address.Address,
		City:    input.Address.City,
		ZipCode: input.Address.ZipCode,
	}
	if !address.Complete() {
		return nil, domainerrors.ErrIncompleteAddress
	}

	order := &entity.Order{
		UserID:          userID,
		PaymentMethod:   entity.PaymentMethodCash,
		ShippingAddress: &address,
		Status:          entity.OrderStatusPending,
	}

	txErr := s.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
		productRepo := txRepo.NewProductRepository()
		lines := make([]pricing.Line, 0, len(input.Items))

		for _, item := range input.Items {
			if item.Quantity <= 0 {
				return domainerrors.ErrEmptyCart
			}

			product, err := productRepo.FindByID(ctx, item.ProductID)
			if err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return domainerrors.ErrProductNotFound
				}

				return errors.Wrap(err, "failed to load product for checkout")
			}

			if product.Quantity < item.Quantity {
				return domainerrors.ErrInsufficientStock.WithDetails(product.Name)
			}

			if err := productRepo.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					// The read above saw enough stock, so a concurrent
					// checkout got there first.
					return domainerrors.ErrStockConflict.WithDetails(product.Name)
				}
				if errors.Is(err, repository.ErrProductNotFound) {
					return domainerrors.ErrProductNotFound
				}

				return errors.Wrap(err, "failed to decrement stock")
			}

			lines = append(lines, pricing.Line{
				UnitPrice: product.Price,
				Discount:  product.Discount,
				Quantity:  item.Quantity,
			})
			order.Items = append(order.Items, entity.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: product.EffectiveUnitPrice(),
			})
		}

		var couponPct *int
		if input.CouponCode != "" {
			coupon, err := txRepo.NewCouponRepository().FindActiveByCodeAndUser(ctx, input.CouponCode, userID)
			if err != nil && !errors.Is(err, repository.ErrCouponNotFound) {
				return errors.Wrap(err, "failed to load coupon for checkout")
			}
			if coupon != nil && coupon.Redeemable(time.Now()) {
				if err := txRepo.NewCouponRepository().Deactivate(ctx, coupon.ID); err == nil {
					couponPct = &coupon.DiscountPercentage
				} else if !errors.Is(err, repository.ErrCouponAlreadyRedeemed) {
					return errors.Wrap(err, "failed to redeem coupon")
				}
			}
		}

		quote := pricing.Apply(lines, couponPct)
		order.TotalAmount = quote.Total

		if err := txRepo.NewOrderRepository().Create(ctx, order); err != nil {
			return err
		}

		return txRepo.NewCartRepository().Clear(ctx, userID)
	})
	if txErr != nil {
		return nil, txErr
	}

	s.maybeMintLoyaltyCoupon(ctx, userID, order.TotalAmount)

	return order, nil
}

// redeemCoupon deactivates the user's coupon by code. A missing or already
// redeemed coupon is not an error here: the paid session wins either way.
func (s *checkoutService) redeemCoupon(ctx context.Context, couponRepo repository.CouponRepository, code string, userID uuid.UUID) {
	coupon, err := couponRepo.FindActiveByCodeAndUser(ctx, code, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrCouponNotFound) {
			s.logger.WarnContext(ctx, "failed to load coupon for redemption",
				slog.String("error", err.Error()))
		}

		return
	}

	if err := couponRepo.Deactivate(ctx, coupon.ID); err != nil &&
		!errors.Is(err, repository.ErrCouponAlreadyRedeemed) {
		s.logger.WarnContext(ctx, "failed to deactivate coupon",
			slog.String("error", err.Error()))
	}
}

// maybeMintLoyaltyCoupon replaces the buyer's coupon with a fresh one when the
// order total reaches the loyalty threshold. Minting failures never fail the
// checkout; they are logged and the customer simply misses this round.
func (s *checkoutService) maybeMintLoyaltyCoupon(ctx context.Context, userID uuid.UUID, total decimal.Decimal) {
	loyalty := s.config.Loyalty
	if loyalty == nil || loyalty.Threshold <= 0 {
		return
	}

	if total.LessThan(decimal.NewFromInt(int64(loyalty.Threshold))) {
		return
	}

	suffix, err := util.RandomCode(loyaltyCodeSuffixLength)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to generate loyalty coupon code",
			slog.String("error", err.Error()))

		return
	}

	coupon := &entity.Coupon{
		Code:               loyalty.CodePrefix + suffix,
		DiscountPercentage: loyalty.DiscountPercentage,
		ExpirationDate:     time.Now().AddDate(0, 0, loyalty.ValidityDays),
		UserID:             userID,
		IsActive:           true,
	}

	if err := s.couponRepo.ReplaceForUser(ctx, coupon); err != nil {
		s.logger.WarnContext(ctx, "failed to mint loyalty coupon",
			slog.String("error", err.Error()))

		return
	}

	s.logger.InfoContext(ctx, "loyalty coupon minted",
		slog.String("userID", userID.String()),
		slog.Int("discountPercentage", coupon.DiscountPercentage))
}
