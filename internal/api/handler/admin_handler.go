package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sessionbook/booking-api/internal/api/metrics"
	"github.com/sessionbook/booking-api/internal/core/domain"
	"github.com/sessionbook/booking-api/internal/core/ports"
)

// AdminHandler serves the admin dashboard: expert approval and the global
// booking table. Every route is behind the admin RBAC middleware.
type AdminHandler struct {
	experts  ports.ExpertService
	bookings ports.BookingService
}

func NewAdminHandler(experts ports.ExpertService, bookings ports.BookingService) *AdminHandler {
	return &AdminHandler{experts: experts, bookings: bookings}
}

// ListExperts handles GET /v1/admin/experts, returning experts in every
// status so pending applications show up for review.
//
// @Summary      List all experts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listExpertsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/experts [get]
func (h *AdminHandler) ListExperts(c echo.Context) error {
	experts, err := h.experts.AdminList(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toExpertListResponse(experts))
}

// CreateExpert handles POST /v1/admin/experts. New experts start pending.
//
// @Summary      Create an expert profile
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createExpertRequest  true  "Expert profile"
// @Success      201   {object}  expertResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/experts [post]
func (h *AdminHandler) CreateExpert(c echo.Context) error {
	var req createExpertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	expert, err := h.experts.Create(c.Request().Context(), toCreateExpertInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toExpertResponse(expert))
}

// TransitionExpert handles PATCH /v1/admin/experts/:id/status.
//
// @Summary      Change an expert's status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Expert id"
// @Param        body  body      expertStatusRequest  true  "Target status"
// @Success      200   {object}  expertResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/experts/{id}/status [patch]
func (h *AdminHandler) TransitionExpert(c echo.Context) error {
	var req expertStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	expert, err := h.experts.Transition(c.Request().Context(), c.Param("id"), domain.ExpertStatus(req.Status))
	if err != nil {
		return err
	}

	metrics.ExpertTransitionsTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, toExpertResponse(expert))
}

// AddSessionType handles POST /v1/admin/experts/:id/session-types.
//
// @Summary      Add a session type to an expert
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Expert id"
// @Param        body  body      sessionTypeRequest  true  "Session type"
// @Success      201   {object}  sessionTypeResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/experts/{id}/session-types [post]
func (h *AdminHandler) AddSessionType(c echo.Context) error {
	var req sessionTypeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	st, err := h.experts.AddSessionType(c.Request().Context(), c.Param("id"), toSessionTypeInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toSessionTypeResponse(*st))
}

// ListBookings handles GET /v1/admin/bookings.
//
// @Summary      List all bookings
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listAdminBookingsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/bookings [get]
func (h *AdminHandler) ListBookings(c echo.Context) error {
	bookings, err := h.bookings.AdminBookings(c.Request().Context())
	if err != nil {
		return err
	}

	resp := listAdminBookingsResponse{Data: make([]adminBookingResponse, 0, len(bookings)), Count: len(bookings)}
	for _, b := range bookings {
		resp.Data = append(resp.Data, toAdminBookingResponse(b))
	}
	return c.JSON(http.StatusOK, resp)
}
