package handler

import (
	"net/http"
	"time"

	"galassia/internal/delivery/http/response"
	"galassia/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// AnalyticsHandler holds dependencies for the admin analytics handlers.
type AnalyticsHandler struct {
	uc usecase.AnalyticsUsecase
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler, injected by Fx.
func NewAnalyticsHandler(uc usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{
		uc: uc,
	}
}

type dailySalesView struct {
	Date    time.Time       `json:"date"`
	Orders  int64           `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

type dashboardView struct {
	TotalOrders   int64            `json:"totalOrders"`
	TotalRevenue  decimal.Decimal  `json:"totalRevenue"`
	TotalProducts int64            `json:"totalProducts"`
	TotalUsers    int64            `json:"totalUsers"`
	DailySales    []dailySalesView `json:"dailySales"`
}

// Dashboard handles the admin dashboard request.
func (h *AnalyticsHandler) Dashboard(c echo.Context) error {
	dashboard, err := h.uc.GetDashboard(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	daily := make([]dailySalesView, 0, len(dashboard.DailySales))
	for _, point := range dashboard.DailySales {
		daily = append(daily, dailySalesView{
			Date:    point.Date,
			Orders:  point.Orders,
			Revenue: point.Revenue,
		})
	}

	return response.Success(c, http.StatusOK, dashboardView{
		TotalOrders:   dashboard.TotalOrders,
		TotalRevenue:  dashboard.TotalRevenue,
		TotalProducts: dashboard.TotalProducts,
		TotalUsers:    dashboard.TotalUsers,
		DailySales:    daily,
	}, "Dashboard retrieved successfully")
}
