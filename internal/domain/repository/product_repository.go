// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"galassia/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ErrInsufficientStock is returned by DecrementStock when the guarded update
// matches no row because the remaining quantity is lower than requested.
var ErrInsufficientStock = errors.New("insufficient stock")

// ProductRepository defines the standard operations for catalog persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindAll retrieves the whole catalog.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// FindByCategory retrieves all products within one category.
	FindByCategory(ctx context.Context, category entity.Category) ([]*entity.Product, error)

	// FindFeatured retrieves the featured subset of the catalog.
	FindFeatured(ctx context.Context) ([]*entity.Product, error)

	// FindRandom retrieves up to n random products for recommendations.
	FindRandom(ctx context.Context, n int) ([]*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product. InStock must be kept consistent
	// with Quantity by the caller.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product from the catalog.
	Delete(ctx context.Context, id uuid.UUID) error

	// DecrementStock atomically subtracts quantity from a product's stock and
	// recomputes the in-stock flag, but only when enough stock remains.
	// Returns ErrInsufficientStock when the guard fails and ErrProductNotFound
	// when the product does not exist.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error

	// DecrementStockFloored subtracts quantity from a product's stock,
	// flooring at zero, and recomputes the in-stock flag. Missing products
	// are skipped silently: the order is materialized from its snapshot even
	// if the catalog row was deleted mid-flight.
	DecrementStockFloored(ctx context.Context, id uuid.UUID, quantity int) error

	// CountProducts returns the catalog size, for the analytics summary.
	CountProducts(ctx context.Context) (int64, error)
}
