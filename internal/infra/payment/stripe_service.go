// Package payment contains the Stripe-backed implementation of the payment
// processor abstraction.
package payment

import (
	"context"

	"galassia/config"
	domainerrors "galassia/internal/domain/errors"
	"galassia/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

const defaultCurrency = "usd"

// stripeService implements service.PaymentService on Stripe hosted checkout.
type stripeService struct {
	sc       *client.API
	currency string
}

// NewStripeService is the constructor for stripeService. Without a secret key
// the service is disabled and card checkout endpoints fail fast.
func NewStripeService(cfg *config.Config) service.PaymentService {
	svc := &stripeService{currency: defaultCurrency}

	if cfg.Stripe == nil || cfg.Stripe.SecretKey == "" {
		return svc
	}

	if cfg.Stripe.Currency != "" {
		svc.currency = cfg.Stripe.Currency
	}

	sc := &client.API{}
	sc.Init(cfg.Stripe.SecretKey, nil)
	svc.sc = sc

	return svc
}

// Enabled reports whether a Stripe key is configured.
func (s *stripeService) Enabled() bool {
	return s.sc != nil
}

// CreateSession opens a hosted checkout session.
func (s *stripeService) CreateSession(ctx context.Context, input service.CreateSessionInput) (*service.CheckoutSession, error) {
	if s.sc == nil {
		return nil, service.ErrPaymentDisabled
	}

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(input.LineItems))
	for _, item := range input.LineItems {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(item.Name),
		}
		if item.Image != "" {
			productData.Images = stripe.StringSlice([]string{item.Image})
		}

		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(s.currency),
				ProductData: productData,
				UnitAmount:  stripe.Int64(item.UnitAmount),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Params:             stripe.Params{Context: ctx},
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:          lineItems,
		SuccessURL:         stripe.String(input.SuccessURL),
		CancelURL:          stripe.String(input.CancelURL),
	}

	for key, value := range input.Metadata {
		params.AddMetadata(key, value)
	}

	// Percentage coupons become a one-off Stripe coupon attached to the session.
	if input.CouponPercentOff != nil {
		coupon, err := s.sc.Coupons.New(&stripe.CouponParams{
			Params:     stripe.Params{Context: ctx},
			PercentOff: stripe.Float64(float64(*input.CouponPercentOff)),
			Duration:   stripe.String(string(stripe.CouponDurationOnce)),
		})
		if err != nil {
			return nil, domainerrors.NewUpstreamError("stripe", errors.Wrap(err, "failed to create discount coupon"))
		}

		params.Discounts = []*stripe.CheckoutSessionDiscountParams{
			{Coupon: stripe.String(coupon.ID)},
		}
	}

	sess, err := s.sc.CheckoutSessions.New(params)
	if err != nil {
		return nil, domainerrors.NewUpstreamError("stripe", errors.Wrap(err, "failed to create checkout session"))
	}

	return toCheckoutSession(sess), nil
}

// RetrieveSession fetches the session's current payment state.
func (s *stripeService) RetrieveSession(ctx context.Context, sessionID string) (*service.CheckoutSession, error) {
	if s.sc == nil {
		return nil, service.ErrPaymentDisabled
	}

	sess, err := s.sc.CheckoutSessions.Get(sessionID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode == 404 {
			return nil, service.ErrSessionNotFound
		}

		return nil, domainerrors.NewUpstreamError("stripe", errors.Wrap(err, "failed to retrieve checkout session"))
	}

	return toCheckoutSession(sess), nil
}

func toCheckoutSession(sess *stripe.CheckoutSession) *service.CheckoutSession {
	return &service.CheckoutSession{
		ID:          sess.ID,
		URL:         sess.URL,
		Paid:        sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		AmountTotal: sess.AmountTotal,
		Metadata:    sess.Metadata,
	}
}
