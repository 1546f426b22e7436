package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"NeoNestAdminAPI/internal/model"
	"NeoNestAdminAPI/internal/token"

	"github.com/labstack/echo/v4"
)

// AdminLoader loads the sanitized admin record referenced by a token claim.
// The password hash must not be part of the loaded projection.
type AdminLoader interface {
	GetByID(ctx context.Context, id string) (*model.Admin, error)
}

const adminContextKey = "admin"

const bearerPrefix = "Bearer " // case-sensitive, single trailing space

// Authenticate gates protected endpoints: it verifies the bearer token,
// re-loads the admin on every call and attaches it to the request context.
// Verification results are never cached.
func Authenticate(secret string, admins AdminLoader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"success": false,
					"message": "Unauthorized: No token provided",
				})
			}
			raw := header[len(bearerPrefix):]

			if secret == "" {
				return c.JSON(http.StatusInternalServerError, echo.Map{
					"success": false,
					"message": "Server configuration error",
				})
			}

			adminID, err := token.Verify(raw, secret)
			if err != nil {
				switch {
				case errors.Is(err, token.ErrTokenExpired):
					return c.JSON(http.StatusUnauthorized, echo.Map{
						"success": false,
						"message": "Unauthorized: Token expired",
					})
				case errors.Is(err, token.ErrNoSecret):
					return c.JSON(http.StatusInternalServerError, echo.Map{
						"success": false,
						"message": "Server configuration error",
					})
				default:
					return c.JSON(http.StatusUnauthorized, echo.Map{
						"success": false,
						"message": "Unauthorized: Invalid token",
					})
				}
			}

			admin, err := admins.GetByID(c.Request().Context(), adminID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"success": false,
					"message": "Unauthorized: Admin not found",
				})
			}
			if !admin.IsActive {
				return c.JSON(http.StatusForbidden, echo.Map{
					"success": false,
					"message": "Forbidden: Admin account is deactivated",
				})
			}

			c.Set(adminContextKey, admin)
			return next(c)
		}
	}
}

// AdminFromContext returns the admin attached by Authenticate, or nil.
func AdminFromContext(c echo.Context) *model.Admin {
	v := c.Get(adminContextKey)
	if v == nil {
		return nil
	}
	if a, ok := v.(*model.Admin); ok {
		return a
	}
	return nil
}
