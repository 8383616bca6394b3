package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sessionbook/booking-api/internal/core/domain"
)

// authClaims is the per-request identity injected by the Auth middleware.
type authClaims struct {
	UserID string
	Email  string
	Name   string
	Role   domain.Role
}

// ctxClaims extracts the auth claims and performs a fast-fail check before
// any service call: user_id and role must be non-empty (presence proves the
// middleware ran). A structurally valid JWT without a subject is unusable
// and rejected with 401.
func ctxClaims(c echo.Context) (authClaims, error) {
	userID, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if userID == "" || role == "" {
		return authClaims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	email, _ := c.Get("email").(string)
	name, _ := c.Get("name").(string)

	return authClaims{
		UserID: userID,
		Email:  email,
		Name:   name,
		Role:   domain.ParseRole(role),
	}, nil
}
