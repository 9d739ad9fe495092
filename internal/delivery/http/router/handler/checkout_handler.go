package handler

import (
	"net/http"

	"galassia/internal/delivery/http/response"
	"galassia/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// CheckoutHandler holds dependencies for checkout handlers.
type CheckoutHandler struct {
	uc usecase.CheckoutUsecase
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{
		uc: uc,
	}
}

type checkoutItemRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

type cardSessionRequest struct {
	Items      []checkoutItemRequest `json:"items" validate:"required,min=1,dive"`
	CouponCode string                `json:"couponCode"`
}

type cardSessionView struct {
	SessionID   string          `json:"sessionId"`
	URL         string          `json:"url"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// CreateSession handles the hosted card checkout session request.
func (h *CheckoutHandler) CreateSession(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req cardSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.CreateCardSession(c.Request().Context(), userID, usecase.CardSessionInput{
		Items:      toCheckoutItems(req.Items),
		CouponCode: req.CouponCode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, cardSessionView{
		SessionID:   output.SessionID,
		URL:         output.URL,
		TotalAmount: output.TotalAmount,
	}, "Checkout session created")
}

type confirmSessionRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
}

// ConfirmSession handles the card payment confirmation request.
func (h *CheckoutHandler) ConfirmSession(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req confirmSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid confirmation input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.uc.ConfirmCardSession(c.Request().Context(), userID, req.SessionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderView(order), "Order confirmed successfully")
}

type shippingAddressRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	ZipCode string `json:"zipCode" validate:"required"`
}

type cashOrderRequest struct {
	Items      []checkoutItemRequest  `json:"items" validate:"required,min=1,dive"`
	CouponCode string                 `json:"couponCode"`
	Address    shippingAddressRequest `json:"address" validate:"required"`
}

// PlaceCashOrder handles the cash-on-delivery order request.
func (h *CheckoutHandler) PlaceCashOrder(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req cashOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.uc.PlaceCashOrder(c.Request().Context(), userID, usecase.CashOrderInput{
		Items:      toCheckoutItems(req.Items),
		CouponCode: req.CouponCode,
		Address: usecase.ShippingAddressInput{
			Name:    req.Address.Name,
			Phone:   req.Address.Phone,
			Address: req.Address.Address,
			City:    req.Address.City,
			ZipCode: req.Address.ZipCode,
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOrderView(order), "Order placed successfully")
}

func toCheckoutItems(items []checkoutItemRequest) []usecase.CheckoutItemInput {
	inputs := make([]usecase.CheckoutItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, usecase.CheckoutItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return inputs
}
