package impl

import (
	"context"

	"galassia/internal/domain/entity"
	domainerrors "galassia/internal/domain/errors"
	"galassia/internal/domain/pricing"
	"galassia/internal/domain/repository"
	"galassia/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
}

// NewCartService creates a new cart service instance
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
	}
}

// GetCart retrieves the user's cart with computed totals.
func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*usecase.CartView, error) {
	items, err := s.cartRepo.GetItems(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return buildCartView(items), nil
}

// AddItem adds quantity of a product to the cart, merging with an existing line.
func (s *cartService) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*usecase.CartView, error) {
	if quantity <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be positive")
	}

	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to check product")
	}

	if err := s.cartRepo.UpsertItem(ctx, &entity.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, err
	}

	return s.GetCart(ctx, userID)
}

// UpdateItem replaces a line's quantity. Zero removes the line.
func (s *cartService) UpdateItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*usecase.CartView, error) {
	if quantity < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must not be negative")
	}

	if err := s.cartRepo.SetItemQuantity(ctx, userID, productID, quantity); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to update cart item")
	}

	return s.GetCart(ctx, userID)
}

// RemoveItem deletes one line from the cart.
func (s *cartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*usecase.CartView, error) {
	if err := s.cartRepo.RemoveItem(ctx, userID, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to remove cart item")
	}

	return s.GetCart(ctx, userID)
}

// ClearCart empties the cart.
func (s *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	if err := s.cartRepo.Clear(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

// buildCartView prices the cart lines. Lines whose product vanished from the
// catalog are kept with a zero price so the client can render and remove them.
func buildCartView(items []*entity.CartItem) *usecase.CartView {
	lines := make([]pricing.Line, 0, len(items))
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		lines = append(lines, pricing.Line{
			UnitPrice: item.Product.Price,
			Discount:  item.Product.Discount,
			Quantity:  item.Quantity,
		})
	}

	subtotal := pricing.Subtotal(lines)

	return &usecase.CartView{
		Items:    items,
		Subtotal: subtotal,
		Total:    subtotal,
	}
}
