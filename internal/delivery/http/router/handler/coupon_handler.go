package handler

import (
	"net/http"

	"galassia/internal/delivery/http/response"
	domainerrors "galassia/internal/domain/errors"
	"galassia/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CouponHandler holds dependencies for coupon handlers.
type CouponHandler struct {
	uc usecase.CouponUsecase
}

// NewCouponHandler is the constructor for CouponHandler, injected by Fx.
func NewCouponHandler(uc usecase.CouponUsecase) *CouponHandler {
	return &CouponHandler{
		uc: uc,
	}
}

// GetMine handles the request for the caller's active coupon.
func (h *CouponHandler) GetMine(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	coupon, err := h.uc.GetActiveCoupon(c.Request().Context(), userID)
	if err != nil {
		// Holding no coupon is the normal state, not an error.
		if errors.Is(err, domainerrors.ErrCouponNotFound) {
			return response.Success(c, http.StatusOK, nil, "No active coupon")
		}

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCouponView(coupon), "Coupon retrieved successfully")
}

type validateCouponRequest struct {
	Code string `json:"code" validate:"required"`
}

type validateCouponView struct {
	Valid              bool `json:"valid"`
	DiscountPercentage int  `json:"discountPercentage,omitempty"`
}

// Validate handles the coupon code validation request.
func (h *CouponHandler) Validate(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req validateCouponRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coupon input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.uc.ValidateCoupon(c.Request().Context(), userID, req.Code)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, validateCouponView{
		Valid:              result.Valid,
		DiscountPercentage: result.DiscountPercentage,
	}, "Coupon validated")
}

// QRCode handles the coupon QR code request and responds with a PNG image.
func (h *CouponHandler) QRCode(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	png, err := h.uc.GenerateCouponQR(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
