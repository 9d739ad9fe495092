// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"galassia/internal/domain/entity"
	"galassia/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// View structs shape the JSON the API returns. Entities stay free of
// transport tags; mapping happens here.

type productView struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	EffectivePrice decimal.Decimal `json:"effectivePrice"`
	Discount       int             `json:"discount"`
	Quantity       int             `json:"quantity"`
	InStock        bool            `json:"inStock"`
	ImageURL       string          `json:"imageUrl"`
	Category       string          `json:"category"`
	IsFeatured     bool            `json:"isFeatured"`
	CreatedAt      time.Time       `json:"createdAt"`
}

func toProductView(product *entity.Product) *productView {
	if product == nil {
		return nil
	}

	return &productView{
		ID:             product.ID,
		Name:           product.Name,
		Description:    product.Description,
		Price:          product.Price,
		EffectivePrice: product.EffectiveUnitPrice(),
		Discount:       product.Discount,
		Quantity:       product.Quantity,
		InStock:        product.InStock,
		ImageURL:       product.ImageURL,
		Category:       string(product.Category),
		IsFeatured:     product.IsFeatured,
		CreatedAt:      product.CreatedAt,
	}
}

func toProductViews(products []*entity.Product) []*productView {
	views := make([]*productView, 0, len(products))
	for _, product := range products {
		views = append(views, toProductView(product))
	}

	return views
}

type cartItemView struct {
	ProductID uuid.UUID    `json:"productId"`
	Quantity  int          `json:"quantity"`
	Product   *productView `json:"product,omitempty"`
}

type cartView struct {
	Items    []cartItemView  `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Total    decimal.Decimal `json:"total"`
}

func toCartView(view *usecase.CartView) *cartView {
	items := make([]cartItemView, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, cartItemView{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Product:   toProductView(item.Product),
		})
	}

	return &cartView{
		Items:    items,
		Subtotal: view.Subtotal,
		Total:    view.Total,
	}
}

type couponView struct {
	Code               string    `json:"code"`
	DiscountPercentage int       `json:"discountPercentage"`
	ExpirationDate     time.Time `json:"expirationDate"`
	IsActive           bool      `json:"isActive"`
}

func toCouponView(coupon *entity.Coupon) *couponView {
	return &couponView{
		Code:               coupon.Code,
		DiscountPercentage: coupon.DiscountPercentage,
		ExpirationDate:     coupon.ExpirationDate,
		IsActive:           coupon.IsActive,
	}
}

type shippingAddressView struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
}

type orderItemView struct {
	ProductID uuid.UUID       `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Product   *productView    `json:"product,omitempty"`
}

type orderView struct {
	ID              uuid.UUID            `json:"id"`
	UserID          uuid.UUID            `json:"userId"`
	UserEmail       string               `json:"userEmail,omitempty"`
	Items           []orderItemView      `json:"items"`
	TotalAmount     decimal.Decimal      `json:"totalAmount"`
	PaymentMethod   string               `json:"paymentMethod"`
	Status          string               `json:"status"`
	ShippingAddress *shippingAddressView `json:"shippingAddress,omitempty"`
	CreatedAt       time.Time            `json:"createdAt"`
}

func toOrderView(order *entity.Order) *orderView {
	items := make([]orderItemView, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemView{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Product:   toProductView(item.Product),
		})
	}

	var address *shippingAddressView
	if order.ShippingAddress != nil {
		address = &shippingAddressView{
			Name:    order.ShippingAddress.Name,
			Phone:   order.ShippingAddress.Phone,
			Address: order.ShippingAddress.Address,
			City:    order.ShippingAddress.City,
			ZipCode: order.ShippingAddress.ZipCode,
		}
	}

	var userEmail string
	if order.User != nil {
		userEmail = order.User.Email
	}

	return &orderView{
		ID:              order.ID,
		UserID:          order.UserID,
		UserEmail:       userEmail,
		Items:           items,
		TotalAmount:     order.TotalAmount,
		PaymentMethod:   string(order.PaymentMethod),
		Status:          string(order.Status),
		ShippingAddress: address,
		CreatedAt:       order.CreatedAt,
	}
}

func toOrderViews(orders []*entity.Order) []*orderView {
	views := make([]*orderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, toOrderView(order))
	}

	return views
}

type userView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserView(user *entity.User) *userView {
	return &userView{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}

type authView struct {
	User         *userView `json:"user"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

func toAuthView(output *usecase.AuthOutput) *authView {
	return &authView{
		User:         toUserView(output.User),
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		ExpiresAt:    output.ExpiresAt,
	}
}
