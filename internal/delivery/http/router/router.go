// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"galassia/internal/delivery/http/middleware"
	"galassia/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	ProductHandler   *handler.ProductHandler
	CartHandler      *handler.CartHandler
	CouponHandler    *handler.CouponHandler
	CheckoutHandler  *handler.CheckoutHandler
	OrderHandler     *handler.OrderHandler
	AnalyticsHandler *handler.AnalyticsHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	productHandler   *handler.ProductHandler
	cartHandler      *handler.CartHandler
	couponHandler    *handler.CouponHandler
	checkoutHandler  *handler.CheckoutHandler
	orderHandler     *handler.OrderHandler
	analyticsHandler *handler.AnalyticsHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		productHandler:   params.ProductHandler,
		cartHandler:      params.CartHandler,
		couponHandler:    params.CouponHandler,
		checkoutHandler:  params.CheckoutHandler,
		orderHandler:     params.OrderHandler,
		analyticsHandler: params.AnalyticsHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
		authGroup.GET("/profile", r.authHandler.GetProfile, r.authMiddleware.Authenticate)
	}

	// Storefront catalog reads are public; the full inventory listing and all
	// writes require the admin role
	productGroup := api.Group("/products")
	{
		productGroup.GET("/featured", r.productHandler.Featured)
		productGroup.GET("/recommendations", r.productHandler.Recommendations)
		productGroup.GET("/category/:category", r.productHandler.ListByCategory)
		productGroup.GET("/:id", r.productHandler.Get)

		adminProducts := productGroup.Group("", r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
		adminProducts.GET("", r.productHandler.List)
		adminProducts.POST("", r.productHandler.Create)
		adminProducts.PUT("/:id", r.productHandler.Update)
		adminProducts.DELETE("/:id", r.productHandler.Delete)
		adminProducts.PATCH("/:id/featured", r.productHandler.SetFeatured)
	}

	// Cart routes, all scoped to the authenticated user
	cartGroup := api.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.Get)
		cartGroup.POST("", r.cartHandler.AddItem)
		cartGroup.PUT("/:productId", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/:productId", r.cartHandler.RemoveItem)
		cartGroup.DELETE("", r.cartHandler.Clear)
	}

	// Coupon routes
	couponGroup := api.Group("/coupons")
	couponGroup.Use(r.authMiddleware.Authenticate)
	{
		couponGroup.GET("", r.couponHandler.GetMine)
		couponGroup.POST("/validate", r.couponHandler.Validate)
		couponGroup.GET("/qr", r.couponHandler.QRCode)
	}

	// Checkout routes
	checkoutGroup := api.Group("/checkout")
	checkoutGroup.Use(r.authMiddleware.Authenticate)
	{
		checkoutGroup.POST("/session", r.checkoutHandler.CreateSession)
		checkoutGroup.POST("/confirm", r.checkoutHandler.ConfirmSession)
		checkoutGroup.POST("/cash-order", r.checkoutHandler.PlaceCashOrder)
	}

	// Order routes
	orderGroup := api.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.GET("/mine", r.orderHandler.ListMine)
		orderGroup.GET("/:id", r.orderHandler.Get)
		orderGroup.GET("", r.orderHandler.ListAll, r.authMiddleware.RequireAdmin)
		orderGroup.PATCH("/:id/status", r.orderHandler.UpdateStatus, r.authMiddleware.RequireAdmin)
	}

	// Admin analytics
	analyticsGroup := api.Group("/analytics")
	analyticsGroup.Use(r.authMiddleware.Authenticate)
	analyticsGroup.Use(r.authMiddleware.RequireAdmin)
	{
		analyticsGroup.GET("", r.analyticsHandler.Dashboard)
	}
}
