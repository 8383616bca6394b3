package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sessionbook/booking-api/internal/api/metrics"
	"github.com/sessionbook/booking-api/internal/core/ports"
)

// HeaderIdempotencyKey is the request header that opts a booking submission
// into replay protection. Submissions without it always create a new booking.
const HeaderIdempotencyKey = "Idempotency-Key"

type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Create handles POST /v1/bookings.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                false  "Replay-protection key"
// @Param        body             body      createBookingRequest  true   "Booking draft"
// @Success      201              {object}  createBookingResponse
// @Success      200              {object}  createBookingResponse
// @Failure      400              {object}  errorResponse
// @Failure      401              {object}  errorResponse
// @Failure      404              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Router       /v1/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	key := c.Request().Header.Get(HeaderIdempotencyKey)
	result, err := h.service.Create(c.Request().Context(), toCreateBookingInput(req, claims.UserID, key))
	if err != nil {
		return err
	}

	status := http.StatusCreated
	replay := "false"
	if result.AlreadyExisted {
		status = http.StatusOK
		replay = "true"
	}
	metrics.BookingsCreatedTotal.WithLabelValues(replay).Inc()

	return c.JSON(status, createBookingResponse{
		Reference:   result.Reference,
		Status:      result.Status,
		ScheduledAt: result.ScheduledAt,
		MeetingLink: result.MeetingLink,
		Links:       bookingLinks{Self: "/v1/bookings/" + result.Reference},
	})
}

// SubmitFeedback handles POST /v1/bookings/:reference/feedback.
//
// @Summary      Rate a completed session
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        reference  path      string           true  "Booking reference"
// @Param        body       body      feedbackRequest  true  "Feedback and rating"
// @Success      200        {object}  messageResponse
// @Failure      401        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Failure      422        {object}  errorResponse
// @Router       /v1/bookings/{reference}/feedback [post]
func (h *BookingHandler) SubmitFeedback(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req feedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	err = h.service.SubmitFeedback(c.Request().Context(), claims.UserID, c.Param("reference"), req.Feedback, req.Rating)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "feedback recorded"})
}

// UserDashboard handles GET /v1/dashboard.
//
// @Summary      User dashboard
// @Tags         dashboards
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/dashboard [get]
func (h *BookingHandler) UserDashboard(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	dashboard, err := h.service.UserDashboard(c.Request().Context(), claims.UserID, time.Now())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDashboardResponse(dashboard))
}

// ExpertDashboard handles GET /v1/expert-dashboard.
//
// @Summary      Expert dashboard
// @Tags         dashboards
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/expert-dashboard [get]
func (h *BookingHandler) ExpertDashboard(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	dashboard, err := h.service.ExpertDashboard(c.Request().Context(), claims.UserID, time.Now())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDashboardResponse(dashboard))
}
