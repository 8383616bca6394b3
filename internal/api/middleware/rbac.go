package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sessionbook/booking-api/internal/core/domain"
)

// RBAC enforces role-based access control on dashboard and admin routes.
// The wrong role is answered with a redirect to the login page; the
// attempted path is deliberately not echoed back.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[domain.Role(role)]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{
					"error":       "forbidden",
					"redirect_to": domain.PathLogin,
				})
			}
			return next(c)
		}
	}
}
