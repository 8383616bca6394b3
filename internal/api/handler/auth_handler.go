package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sessionbook/booking-api/internal/api/metrics"
	"github.com/sessionbook/booking-api/internal/core/domain"
	"github.com/sessionbook/booking-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new account with an optional role.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Email, req.Password, req.Name, req.Role)
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(user.Role)).Inc()
	return c.JSON(http.StatusCreated, authResponse{User: user})
}

// Login authenticates and returns a token plus the dashboard to land on.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password, req.IntendedPath)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{
		Token:      result.Token,
		User:       result.User,
		RedirectTo: result.RedirectTo,
	})
}

// Logout revokes the presented token.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token, _ := c.Get("token").(string)
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}

	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "logged out"})
}

// Me returns the caller's profile, creating a default profile row when the
// account exists without one.
//
// @Summary      Current profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	user, err := h.authService.CurrentUser(c.Request().Context(), claims.UserID, claims.Email, claims.Name)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, meResponse{
		User:      user,
		Dashboard: domain.DashboardPath(user.Role),
	})
}

// UpdateMe round-trips a profile mutation to the store and returns the
// stored row.
//
// @Summary      Update current profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Profile changes"
// @Success      200   {object}  meResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/me [patch]
func (h *AuthHandler) UpdateMe(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.authService.UpdateProfile(c.Request().Context(), claims.UserID, ports.ProfileUpdates{
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
		Bio:       req.Bio,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, meResponse{
		User:      user,
		Dashboard: domain.DashboardPath(user.Role),
	})
}
