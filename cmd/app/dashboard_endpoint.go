package main

import (
	"net/http"

	"NeoNestAdminAPI/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// registerDashboardRoutes wires the aggregate endpoints the admin dashboard
// reads. All routes require a verified session.
func registerDashboardRoutes(g *echo.Group, dashSvc *services.DashboardService, authmw echo.MiddlewareFunc) {
	dashboard := g.Group("/dashboard", authmw)

	dashboard.GET("/stats", func(c echo.Context) error {
		stats, err := dashSvc.Stats(c.Request().Context())
		if err != nil {
			logrus.WithError(err).Error("dashboard stats failed")
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"success": false,
				"message": "Failed to fetch dashboard stats",
			})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"stats":   stats,
		})
	})

	dashboard.GET("/bookings/monthly", func(c echo.Context) error {
		counts, err := dashSvc.MonthlyBookings(c.Request().Context())
		if err != nil {
			logrus.WithError(err).Error("monthly bookings failed")
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"success": false,
				"message": "Failed to fetch monthly bookings",
			})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"months":  counts,
		})
	})
}
