package main

import (
	"errors"
	"net/http"

	"NeoNestAdminAPI/internal/repository"
	"NeoNestAdminAPI/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type updateStatusRequest struct {
	Status string `json:"status"`
}

// registerBookingRoutes wires booking endpoints onto the provided group.
// - GET /bookings                 -> list, newest first
// - PATCH /bookings/:id/status    -> set status (allowed set only)
// All routes require a verified session.
func registerBookingRoutes(g *echo.Group, bookingSvc *services.BookingService, authmw echo.MiddlewareFunc) {
	bookings := g.Group("/bookings", authmw)

	bookings.GET("", func(c echo.Context) error {
		list, err := bookingSvc.List(c.Request().Context())
		if err != nil {
			logrus.WithError(err).Error("list bookings failed")
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"success": false,
				"message": "Failed to fetch bookings",
			})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"success":  true,
			"bookings": list,
		})
	})

	bookings.PATCH("/:id/status", func(c echo.Context) error {
		req := new(updateStatusRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"success": false,
				"message": "Status is required",
			})
		}
		updated, err := bookingSvc.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrStatusRequired):
				return c.JSON(http.StatusBadRequest, echo.Map{
					"success": false,
					"message": "Status is required",
				})
			case errors.Is(err, services.ErrInvalidStatus):
				return c.JSON(http.StatusBadRequest, echo.Map{
					"success": false,
					"message": "Invalid status value",
				})
			case errors.Is(err, repository.ErrNotFound):
				return c.JSON(http.StatusNotFound, echo.Map{
					"success": false,
					"message": "Booking not found",
				})
			default:
				logrus.WithError(err).Error("update booking status failed")
				return c.JSON(http.StatusInternalServerError, echo.Map{
					"success": false,
					"message": "Failed to update booking status",
				})
			}
		}
		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"booking": updated,
		})
	})
}
