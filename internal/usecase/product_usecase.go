// Package usecase defines the application-layer interfaces and their
// input/output types. Implementations live in the impl subpackage.
package usecase

import (
	"context"
	"io"

	"galassia/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductInput carries the writable fields of a product. The image may come
// as an uploaded file, which takes precedence over a plain URL.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Discount    int
	Quantity    int
	Category    string
	IsFeatured  bool

	ImageURL      string
	ImageFile     io.Reader
	ImageFilename string
}

// ProductUsecase defines the interface for catalog management use cases
type ProductUsecase interface {
	// ListProducts retrieves the whole catalog.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// ListProductsByCategory retrieves the catalog filtered by category.
	ListProductsByCategory(ctx context.Context, category string) ([]*entity.Product, error)

	// GetProduct retrieves a single product.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// GetFeaturedProducts retrieves the featured list, served from cache when warm.
	GetFeaturedProducts(ctx context.Context) ([]*entity.Product, error)

	// GetRecommendations retrieves up to n random products.
	GetRecommendations(ctx context.Context, n int) ([]*entity.Product, error)

	// CreateProduct adds a product to the catalog. Admin only.
	CreateProduct(ctx context.Context, input ProductInput) (*entity.Product, error)

	// UpdateProduct modifies a product. Admin only.
	UpdateProduct(ctx context.Context, id uuid.UUID, input ProductInput) (*entity.Product, error)

	// DeleteProduct removes a product and its hosted image. Admin only.
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	// SetFeatured toggles a product's featured flag. Admin only.
	SetFeatured(ctx context.Context, id uuid.UUID, featured bool) (*entity.Product, error)
}
