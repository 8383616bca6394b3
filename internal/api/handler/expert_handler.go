package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sessionbook/booking-api/internal/api/metrics"
	"github.com/sessionbook/booking-api/internal/core/ports"
)

// ExpertHandler serves the public expert directory.
type ExpertHandler struct {
	service ports.ExpertService
}

func NewExpertHandler(service ports.ExpertService) *ExpertHandler {
	return &ExpertHandler{service: service}
}

// List handles GET /v1/experts with optional search, skill and price_range
// query parameters.
//
// @Summary      List experts
// @Tags         experts
// @Produce      json
// @Param        search       query     string  false  "Substring match on title or name"
// @Param        skill        query     string  false  "Exact skill, or 'all'"
// @Param        price_range  query     string  false  "all|low|medium|high"
// @Success      200          {object}  listExpertsResponse
// @Router       /v1/experts [get]
func (h *ExpertHandler) List(c echo.Context) error {
	start := time.Now()

	experts, err := h.service.Directory(c.Request().Context(), ports.DirectoryFilter{
		Search:     c.QueryParam("search"),
		Skill:      c.QueryParam("skill"),
		PriceRange: c.QueryParam("price_range"),
	})
	if err != nil {
		return err
	}

	metrics.DirectorySearchDuration.Observe(time.Since(start).Seconds())
	return c.JSON(http.StatusOK, toExpertListResponse(experts))
}

// Get handles GET /v1/experts/:id, returning the expert with its profile and
// session types nested.
//
// @Summary      Get an expert
// @Tags         experts
// @Produce      json
// @Param        id   path      string  true  "Expert id"
// @Success      200  {object}  expertResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/experts/{id} [get]
func (h *ExpertHandler) Get(c echo.Context) error {
	expert, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toExpertResponse(expert))
}

// Availability handles GET /v1/experts/:id/availability.
//
// @Summary      Weekly availability windows
// @Tags         experts
// @Produce      json
// @Param        id   path      string  true  "Expert id"
// @Success      200  {array}   availabilityResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/experts/{id}/availability [get]
func (h *ExpertHandler) Availability(c echo.Context) error {
	windows, err := h.service.Availability(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	resp := make([]availabilityResponse, 0, len(windows))
	for _, w := range windows {
		resp = append(resp, availabilityResponse{
			DayOfWeek:   w.DayOfWeek,
			StartTime:   w.StartTime,
			EndTime:     w.EndTime,
			IsAvailable: w.IsAvailable,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// Slots handles GET /v1/experts/:id/slots?date=2006-01-02&duration=60,
// returning bookable windows for the given day.
//
// @Summary      Bookable slots for a day
// @Tags         experts
// @Produce      json
// @Param        id        path      string  true   "Expert id"
// @Param        date      query     string  true   "Day (YYYY-MM-DD)"
// @Param        duration  query     int     false  "Slot length in minutes"
// @Success      200       {object}  listSlotsResponse
// @Failure      400       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /v1/experts/{id}/slots [get]
func (h *ExpertHandler) Slots(c echo.Context) error {
	dateParam := c.QueryParam("date")
	day, err := time.Parse("2006-01-02", dateParam)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	duration := 0
	if d := c.QueryParam("duration"); d != "" {
		duration, err = strconv.Atoi(d)
		if err != nil || duration <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "duration must be a positive integer")
		}
	}

	slots, err := h.service.Slots(c.Request().Context(), c.Param("id"), day, duration)
	if err != nil {
		return err
	}

	resp := listSlotsResponse{Date: dateParam, Slots: make([]slotResponse, 0, len(slots))}
	for _, s := range slots {
		resp.Slots = append(resp.Slots, slotResponse{Start: s.Start, End: s.End, Duration: s.Duration})
	}
	return c.JSON(http.StatusOK, resp)
}
