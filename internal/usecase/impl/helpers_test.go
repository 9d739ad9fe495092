package impl

import (
	"io"
	"log/slog"

	"galassia/config"
)

// newDiscardLogger returns a logger whose output is thrown away, so service
// warn paths can run in tests without polluting the output.
func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newCheckoutTestConfig builds the minimal configuration the checkout service
// reads: the storefront origin for redirect URLs and the loyalty coupon rules.
func newCheckoutTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Stripe = &config.StripeConfig{
		SecretKey: "sk_test_dummy",
		Currency:  "usd",
		ClientURL: "http://localhost:3000",
	}
	cfg.Loyalty = &config.LoyaltyConfig{
		Threshold:          100,
		DiscountPercentage: 10,
		ValidityDays:       30,
		CodePrefix:         "GIFT-",
	}

	return cfg
}
