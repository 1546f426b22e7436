package main

import (
	"errors"
	"net/http"

	"NeoNestAdminAPI/internal/middleware"
	"NeoNestAdminAPI/internal/services"
	"NeoNestAdminAPI/internal/token"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func loginHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(loginRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"success": false,
				"message": "Please provide email and password",
			})
		}

		tok, admin, err := authSvc.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingCredentials):
				return c.JSON(http.StatusBadRequest, echo.Map{
					"success": false,
					"message": "Please provide email and password",
				})
			case errors.Is(err, services.ErrAccountDeactivated):
				return c.JSON(http.StatusForbidden, echo.Map{
					"success": false,
					"message": "Your account has been deactivated",
				})
			case errors.Is(err, services.ErrInvalidCredentials):
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"success": false,
					"message": "Invalid credentials",
				})
			case errors.Is(err, token.ErrNoSecret):
				return c.JSON(http.StatusInternalServerError, echo.Map{
					"success": false,
					"message": "Server configuration error",
				})
			default:
				logrus.WithError(err).Error("login failed")
				return c.JSON(http.StatusInternalServerError, echo.Map{
					"success": false,
					"message": "Internal server error",
				})
			}
		}

		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"message": "Login successful",
			"token":   tok,
			"admin":   admin.Public(),
		})
	}
}

// verifyHandler re-establishes client session state after a reload. The
// decode-and-load work happens in the Authenticate middleware this route is
// mounted behind.
func verifyHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		admin := middleware.AdminFromContext(c)
		if admin == nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{
				"success": false,
				"message": "Unauthorized: No token provided",
			})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"admin":   admin.Public(),
		})
	}
}

func registerAuthRoutes(g *echo.Group, authSvc *services.AuthService, authmw echo.MiddlewareFunc) {
	auth := g.Group("/auth")

	// public
	auth.POST("/login", loginHandler(authSvc))

	// authenticated
	auth.GET("/verify", verifyHandler(), authmw)
}
