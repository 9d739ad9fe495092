package service

import (
	"context"
	"errors"

	"galassia/internal/domain/entity"
)

// ErrCacheMiss is returned when the cache holds no value for the key.
var ErrCacheMiss = errors.New("cache miss")

// ProductCache is a read-through cache for the featured product list. All
// methods degrade gracefully: a broken cache must never take down the
// storefront, so callers treat every error as a miss.
type ProductCache interface {
	// GetFeatured returns the cached featured list, or ErrCacheMiss.
	GetFeatured(ctx context.Context) ([]*entity.Product, error)

	// SetFeatured stores the featured list with the configured TTL.
	SetFeatured(ctx context.Context, products []*entity.Product) error

	// InvalidateFeatured drops the cached list after catalog writes.
	InvalidateFeatured(ctx context.Context) error
}
