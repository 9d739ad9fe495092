package cache

import (
	"context"
	"encoding/json"
	"time"

	"galassia/internal/domain/entity"
	"galassia/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	featuredProductsKey = "featured_products"
	featuredProductsTTL = 10 * time.Minute
)

// featuredCache implements service.ProductCache on Redis.
type featuredCache struct {
	client *redis.Client
}

// NewFeaturedCache is the constructor for featuredCache. A nil client yields
// a cache that always misses.
func NewFeaturedCache(client *redis.Client) service.ProductCache {
	return &featuredCache{
		client: client,
	}
}

// GetFeatured returns the cached featured list, or ErrCacheMiss.
func (c *featuredCache) GetFeatured(ctx context.Context) ([]*entity.Product, error) {
	if c.client == nil {
		return nil, service.ErrCacheMiss
	}

	raw, err := c.client.Get(ctx, featuredProductsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, service.ErrCacheMiss
		}

		return nil, errors.Wrap(err, "failed to read featured products cache")
	}

	var products []*entity.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		// A corrupt entry is treated as a miss; the next Set overwrites it.
		return nil, service.ErrCacheMiss
	}

	return products, nil
}

// SetFeatured stores the featured list with the cache TTL.
func (c *featuredCache) SetFeatured(ctx context.Context, products []*entity.Product) error {
	if c.client == nil {
		return nil
	}

	raw, err := json.Marshal(products)
	if err != nil {
		return errors.Wrap(err, "failed to encode featured products")
	}

	if err := c.client.Set(ctx, featuredProductsKey, raw, featuredProductsTTL).Err(); err != nil {
		return errors.Wrap(err, "failed to write featured products cache")
	}

	return nil
}

// InvalidateFeatured drops the cached list after catalog writes.
func (c *featuredCache) InvalidateFeatured(ctx context.Context) error {
	if c.client == nil {
		return nil
	}

	if err := c.client.Del(ctx, featuredProductsKey).Err(); err != nil {
		return errors.Wrap(err, "failed to invalidate featured products cache")
	}

	return nil
}
