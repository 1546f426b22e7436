package main

import (
	"errors"
	"net/http"

	"NeoNestAdminAPI/internal/repository"
	"NeoNestAdminAPI/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// registerVerificationRoutes wires caregiver-application endpoints.
// - GET /verifications/caregivers              -> list, newest first
// - PATCH /verifications/caregivers/:id/status -> approve/reject/reset
// All routes require a verified session.
func registerVerificationRoutes(g *echo.Group, verSvc *services.VerificationService, authmw echo.MiddlewareFunc) {
	verifications := g.Group("/verifications", authmw)

	verifications.GET("/caregivers", func(c echo.Context) error {
		list, err := verSvc.ListCaregivers(c.Request().Context())
		if err != nil {
			logrus.WithError(err).Error("list caregiver applications failed")
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"success": false,
				"message": "Failed to fetch caregiver applications",
			})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"success":    true,
			"caregivers": list,
		})
	})

	verifications.PATCH("/caregivers/:id/status", func(c echo.Context) error {
		req := new(updateStatusRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"success": false,
				"message": "Status is required",
			})
		}
		updated, err := verSvc.SetCaregiverStatus(c.Request().Context(), c.Param("id"), req.Status)
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
					"message": "Caregiver application not found",
				})
			default:
				logrus.WithError(err).Error("update caregiver status failed")
				return c.JSON(http.StatusInternalServerError, echo.Map{
					"success": false,
					"message": "Failed to update caregiver status",
				})
			}
		}
		return c.JSON(http.StatusOK, echo.Map{
			"success":   true,
			"caregiver": updated,
		})
	})
}
