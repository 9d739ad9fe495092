package impl

import (
	"context"
	"log/slog"

	"galassia/internal/domain/entity"
	domainerrors "galassia/internal/domain/errors"
	"galassia/internal/domain/repository"
	"galassia/internal/domain/service"
	"galassia/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultRecommendationCount = 4
	maxRecommendationCount     = 20
)

type productService struct {
	productRepo  repository.ProductRepository
	productCache service.ProductCache
	imageService service.ImageService
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	ProductCache service.ProductCache
	ImageService service.ImageService
	Logger       *slog.Logger
}

// NewProductService creates a new product service instance
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo:  params.ProductRepo,
		productCache: params.ProductCache,
		imageService: params.ImageService,
		logger:       params.Logger,
	}
}

// ListProducts retrieves the whole catalog.
func (s *productService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	return s.productRepo.FindAll(ctx)
}

// ListProductsByCategory retrieves the catalog filtered by category.
func (s *productService) ListProductsByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	cat := entity.Category(category)
	if !cat.Valid() {
		return nil, domainerrors.ErrInvalidCategory.WithDetails(category)
	}

	return s.productRepo.FindByCategory(ctx, cat)
}

// GetProduct retrieves a single product.
func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

// GetFeaturedProducts serves the featured list from cache when warm. Cache
// failures fall through to the database and never surface to the client.
func (s *productService) GetFeaturedProducts(ctx context.Context) ([]*entity.Product, error) {
	cached, err := s.productCache.GetFeatured(ctx)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, service.ErrCacheMiss) {
		s.logger.WarnContext(ctx, "featured products cache read failed",
			slog.String("error", err.Error()))
	}

	products, err := s.productRepo.FindFeatured(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load featured products")
	}

	if err := s.productCache.SetFeatured(ctx, products); err != nil {
		s.logger.WarnContext(ctx, "featured products cache write failed",
			slog.String("error", err.Error()))
	}

	return products, nil
}

// GetRecommendations retrieves up to n random products.
func (s *productService) GetRecommendations(ctx context.Context, n int) ([]*entity.Product, error) {
	if n <= 0 {
		n = defaultRecommendationCount
	}
	if n > maxRecommendationCount {
		n = maxRecommendationCount
	}

	return s.productRepo.FindRandom(ctx, n)
}

// CreateProduct adds a product to the catalog.
func (s *productService) CreateProduct(ctx context.Context, input usecase.ProductInput) (*entity.Product, error) {
	cat := entity.Category(input.Category)
	if !cat.Valid() {
		return nil, domainerrors.ErrInvalidCategory.WithDetails(input.Category)
	}

	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Discount:    input.Discount,
		Quantity:    input.Quantity,
		InStock:     input.Quantity > 0,
		ImageURL:    s.resolveImageURL(ctx, input),
		Category:    cat,
		IsFeatured:  input.IsFeatured,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	if product.IsFeatured {
		s.invalidateFeaturedCache(ctx)
	}

	return product, nil
}

// UpdateProduct modifies a product, replacing its hosted image when a new
// file is uploaded.
func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input usecase.ProductInput) (*entity.Product, error) {
	existing, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	cat := entity.Category(input.Category)
	if !cat.Valid() {
		return nil, domainerrors.ErrInvalidCategory.WithDetails(input.Category)
	}

	imageURL := existing.ImageURL
	if input.ImageFile != nil || input.ImageURL != "" {
		imageURL = s.resolveImageURL(ctx, input)
		if imageURL != existing.ImageURL && existing.ImageURL != "" {
			if err := s.imageService.Delete(ctx, existing.ImageURL); err != nil {
				s.logger.WarnContext(ctx, "failed to delete replaced product image",
					slog.String("error", err.Error()))
			}
		}
	}

	existing.Name = input.Name
	existing.Description = input.Description
	existing.Price = input.Price
	existing.Discount = input.Discount
	existing.Quantity = input.Quantity
	existing.InStock = input.Quantity > 0
	existing.ImageURL = imageURL
	existing.Category = cat
	existing.IsFeatured = input.IsFeatured

	if err := s.productRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, err
	}

	s.invalidateFeaturedCache(ctx)

	return existing, nil
}

// DeleteProduct removes a product and its hosted image.
func (s *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	existing, err := s.GetProduct(ctx, id)
	if err != nil {
		return err
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return err
	}

	if existing.ImageURL != "" {
		if err := s.imageService.Delete(ctx, existing.ImageURL); err != nil {
			s.logger.WarnContext(ctx, "failed to delete product image",
				slog.String("error", err.Error()))
		}
	}

	s.invalidateFeaturedCache(ctx)

	return nil
}

// SetFeatured toggles a product's featured flag.
func (s *productService) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) (*entity.Product, error) {
	existing, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing.IsFeatured == featured {
		return existing, nil
	}

	existing.IsFeatured = featured
	if err := s.productRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, err
	}

	s.invalidateFeaturedCache(ctx)

	return existing, nil
}

// resolveImageURL uploads the file when image hosting is configured, falling
// back to the client-supplied URL on failure or when hosting is disabled.
func (s *productService) resolveImageURL(ctx context.Context, input usecase.ProductInput) string {
	if input.ImageFile == nil || !s.imageService.Enabled() {
		return input.ImageURL
	}

	uploadedURL, err := s.imageService.Upload(ctx, input.ImageFile, input.ImageFilename)
	if err != nil {
		s.logger.WarnContext(ctx, "image upload failed, keeping raw image URL",
			slog.String("error", err.Error()))

		return input.ImageURL
	}

	return uploadedURL
}

func (s *productService) invalidateFeaturedCache(ctx context.Context) {
	if err := s.productCache.InvalidateFeatured(ctx); err != nil {
		s.logger.WarnContext(ctx, "featured products cache invalidation failed",
			slog.String("error", err.Error()))
	}
}
