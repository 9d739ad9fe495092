package impl

import (
	"context"
	"strings"
	"testing"

	"galassia/internal/domain/entity"
	domainerrors "galassia/internal/domain/errors"
	"galassia/internal/domain/repository"
	"galassia/internal/domain/service"
	mockRepo "galassia/internal/mocks/repository"
	mockService "galassia/internal/mocks/service"
	"galassia/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service      usecase.ProductUsecase
	productRepo  *mockRepo.MockProductRepository
	productCache *mockService.MockProductCache
	imageService *mockService.MockImageService
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	productCache := mockService.NewMockProductCache(t)
	imageService := mockService.NewMockImageService(t)
	svc := NewProductService(ProductServiceParams{
		ProductRepo:  productRepo,
		ProductCache: productCache,
		ImageService: imageService,
		Logger:       newDiscardLogger(),
	})

	return productServiceFixtures{
		service:      svc,
		productRepo:  productRepo,
		productCache: productCache,
		imageService: imageService,
	}
}

func TestProductService_GetFeaturedProducts_CacheHit(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	cached := []*entity.Product{
		{ID: uuid.New(), Name: "Pearl Necklace", IsFeatured: true},
	}

	fx.productCache.EXPECT().
		GetFeatured(ctx).
		Return(cached, nil)

	got, err := fx.service.GetFeaturedProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, cached, got)
}

func TestProductService_GetFeaturedProducts_CacheMissFillsCache(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	products := []*entity.Product{
		{ID: uuid.New(), Name: "Gold Bracelet", IsFeatured: true},
	}

	fx.productCache.EXPECT().
		GetFeatured(ctx).
		Return(nil, service.ErrCacheMiss)

	fx.productRepo.EXPECT().
		FindFeatured(ctx).
		Return(products, nil)

	fx.productCache.EXPECT().
		SetFeatured(ctx, products).
		Return(nil)

	got, err := fx.service.GetFeaturedProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, products, got)
}

func TestProductService_GetFeaturedProducts_CacheFailureFallsThrough(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	products := []*entity.Product{
		{ID: uuid.New(), Name: "Gold Bracelet", IsFeatured: true},
	}

	fx.productCache.EXPECT().
		GetFeatured(ctx).
		Return(nil, errors.New("redis connection refused"))

	fx.productRepo.EXPECT().
		FindFeatured(ctx).
		Return(products, nil)

	fx.productCache.EXPECT().
		SetFeatured(ctx, products).
		Return(errors.New("redis connection refused"))

	got, err := fx.service.GetFeaturedProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, products, got)
}

func TestProductService_GetRecommendations_DefaultsCount(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindRandom(ctx, 4).
		Return([]*entity.Product{}, nil)

	_, err := fx.service.GetRecommendations(ctx, 0)
	require.NoError(t, err)
}

func TestProductService_GetRecommendations_ClampsCount(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindRandom(ctx, 20).
		Return([]*entity.Product{}, nil)

	_, err := fx.service.GetRecommendations(ctx, 50)
	require.NoError(t, err)
}

func TestProductService_CreateProduct_InvalidCategory(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()

	product, err := fx.service.CreateProduct(ctx, usecase.ProductInput{
		Name:     "Mystery Box",
		Price:    decimal.NewFromInt(10),
		Category: "gadgets",
	})
	require.Error(t, err)
	assert.Nil(t, product)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_CATEGORY", appErr.ErrorCode())
	assert.Equal(t, "gadgets", appErr.Details())
}

func TestProductService_CreateProduct_FeaturedInvalidatesCache(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	fx.productCache.EXPECT().
		InvalidateFeatured(ctx).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, usecase.ProductInput{
		Name:       "Diamond Ring",
		Price:      decimal.NewFromInt(500),
		Quantity:   3,
		Category:   "rings",
		IsFeatured: true,
		ImageURL:   "https://img.example/ring.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CategoryRings, product.Category)
	assert.True(t, product.InStock)
	assert.Equal(t, "https://img.example/ring.jpg", product.ImageURL)
}

func TestProductService_CreateProduct_UploadFailureKeepsRawURL(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()

	fx.imageService.EXPECT().
		Enabled().
		Return(true)

	fx.imageService.EXPECT().
		Upload(ctx, mock.Anything, "ring.jpg").
		Return("", errors.New("upstream unavailable"))

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, usecase.ProductInput{
		Name:          "Diamond Ring",
		Price:         decimal.NewFromInt(500),
		Quantity:      3,
		Category:      "rings",
		ImageURL:      "data:image/jpeg;base64,abc",
		ImageFile:     strings.NewReader("fake image bytes"),
		ImageFilename: "ring.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "data:image/jpeg;base64,abc", product.ImageURL)
}

func TestProductService_CreateProduct_UploadsImageWhenHosted(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()

	fx.imageService.EXPECT().
		Enabled().
		Return(true)

	fx.imageService.EXPECT().
		Upload(ctx, mock.Anything, "ring.jpg").
		Return("https://cdn.example/ring.jpg", nil)

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, usecase.ProductInput{
		Name:          "Diamond Ring",
		Price:         decimal.NewFromInt(500),
		Quantity:      3,
		Category:      "rings",
		ImageFile:     strings.NewReader("fake image bytes"),
		ImageFilename: "ring.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/ring.jpg", product.ImageURL)
}

func TestProductService_SetFeatured_NoopWhenUnchanged(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	existing := &entity.Product{
		ID:         productID,
		Name:       "Pearl Necklace",
		IsFeatured: true,
	}

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(existing, nil)

	product, err := fx.service.SetFeatured(ctx, productID, true)
	require.NoError(t, err)
	assert.True(t, product.IsFeatured)
}

func TestProductService_SetFeatured_TogglesAndInvalidates(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	existing := &entity.Product{
		ID:         productID,
		Name:       "Pearl Necklace",
		IsFeatured: false,
	}

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(existing, nil)

	fx.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	fx.productCache.EXPECT().
		InvalidateFeatured(ctx).
		Return(nil)

	product, err := fx.service.SetFeatured(ctx, productID, true)
	require.NoError(t, err)
	assert.True(t, product.IsFeatured)
}

func TestProductService_DeleteProduct_RemovesHostedImage(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	existing := &entity.Product{
		ID:       productID,
		Name:     "Pearl Necklace",
		ImageURL: "https://cdn.example/necklace.jpg",
	}

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(existing, nil)

	fx.productRepo.EXPECT().
		Delete(ctx, productID).
		Return(nil)

	fx.imageService.EXPECT().
		Delete(ctx, "https://cdn.example/necklace.jpg").
		Return(nil)

	fx.productCache.EXPECT().
		InvalidateFeatured(ctx).
		Return(nil)

	err := fx.service.DeleteProduct(ctx, productID)
	require.NoError(t, err)
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	err := fx.service.DeleteProduct(ctx, productID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_ListProductsByCategory_InvalidCategory(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()

	products, err := fx.service.ListProductsByCategory(ctx, "gadgets")
	require.Error(t, err)
	assert.Nil(t, products)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_CATEGORY", appErr.ErrorCode())
}
