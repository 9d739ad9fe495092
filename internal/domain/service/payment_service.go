// Package service defines the interfaces for domain services.
// These cover concerns that belong to the domain but are fulfilled by
// infrastructure, such as payment processing, hashing, and token issuance.
package service

import (
	"context"
	"errors"
)

// ErrPaymentDisabled is returned when no payment processor is configured.
var ErrPaymentDisabled = errors.New("payment processor not configured")

// ErrSessionNotFound is returned when the processor does not know the session.
var ErrSessionNotFound = errors.New("checkout session not found")

// CheckoutLineItem is one catalog line sent to the payment processor. The
// unit amount is the discounted per-unit price in the smallest currency unit.
type CheckoutLineItem struct {
	Name       string
	Image      string
	UnitAmount int64
	Quantity   int64
}

// CreateSessionInput carries everything needed to open a hosted checkout
// session with the processor.
type CreateSessionInput struct {
	LineItems []CheckoutLineItem

	// CouponPercentOff, when non-nil, creates a one-off percentage discount
	// on the processor side and attaches it to the session.
	CouponPercentOff *int

	// Metadata is echoed back by the processor on retrieval. The order
	// snapshot travels here so confirmation never trusts the client.
	Metadata map[string]string

	SuccessURL string
	CancelURL  string
}

// CheckoutSession is the processor's view of a session, reduced to the fields
// confirmation needs.
type CheckoutSession struct {
	ID          string
	URL         string
	Paid        bool
	AmountTotal int64
	Metadata    map[string]string
}

// PaymentService abstracts the hosted-checkout payment processor.
type PaymentService interface {
	// Enabled reports whether a processor is configured. When false, card
	// checkout endpoints fail fast instead of calling out.
	Enabled() bool

	// CreateSession opens a hosted checkout session and returns its handle.
	CreateSession(ctx context.Context, input CreateSessionInput) (*CheckoutSession, error)

	// RetrieveSession fetches the session's current payment state.
	RetrieveSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
}
