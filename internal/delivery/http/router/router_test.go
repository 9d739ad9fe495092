package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"galassia/internal/delivery/http/middleware"
	"galassia/internal/delivery/http/router/handler"
	"galassia/internal/domain/entity"
	"galassia/internal/domain/service"
	mockService "galassia/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// newTestRouter wires the route table with empty handlers. Requests that are
// rejected by the auth middleware never reach a handler, so these are enough
// to exercise which routes sit behind which guards.
func newTestRouter(tokenSvc service.TokenService) *echo.Echo {
	r := NewRouter(RouterParams{
		AuthHandler:      handler.NewAuthHandler(nil),
		ProductHandler:   handler.NewProductHandler(nil),
		CartHandler:      handler.NewCartHandler(nil),
		CouponHandler:    handler.NewCouponHandler(nil),
		CheckoutHandler:  handler.NewCheckoutHandler(nil),
		OrderHandler:     handler.NewOrderHandler(nil),
		AnalyticsHandler: handler.NewAnalyticsHandler(nil),
		AuthMiddleware:   middleware.NewAuthMiddleware(tokenSvc),
	})

	e := echo.New()
	r.RegisterRoutes(e)

	return e
}

func TestRouter_ProductList_RequiresAuthentication(t *testing.T) {
	e := newTestRouter(mockService.NewMockTokenService(t))

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_ProductList_RequiresAdminRole(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateAccessToken("customer-token").
		Return(&service.Claims{
			UserID: uuid.New(),
			Email:  "amelia@example.com",
			Role:   entity.RoleCustomer,
		}, nil)

	e := newTestRouter(tokenSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("Authorization", "Bearer customer-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
