package handler

import (
	"github.com/sessionbook/booking-api/internal/core/domain"
	"github.com/sessionbook/booking-api/internal/core/ports"
)

func toCreateBookingInput(req createBookingRequest, userID, idempotencyKey string) ports.CreateBookingInput {
	return ports.CreateBookingInput{
		UserID:          userID,
		ExpertID:        req.ExpertID,
		SessionTypeID:   req.SessionTypeID,
		ScheduledAt:     req.ScheduledAt,
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		SessionGoals:    req.SessionGoals,
		AdditionalNotes: req.AdditionalNotes,
		IdempotencyKey:  idempotencyKey,
	}
}

func toBookingViewResponse(v ports.BookingView) bookingViewResponse {
	resp := bookingViewResponse{
		Reference:   v.Reference,
		Status:      string(v.Status),
		Phase:       string(v.Phase),
		Joinable:    v.Joinable,
		ScheduledAt: v.ScheduledAt,
		Duration:    v.Duration,
		Price:       v.Price,
		Feedback:    v.Feedback,
		Rating:      v.Rating,
	}
	// The meeting link is only surfaced once the session can be joined.
	if v.Joinable {
		resp.MeetingLink = v.MeetingLink
	}
	if v.SessionType != nil {
		resp.SessionTitle = v.SessionType.Title
	}
	if v.Expert != nil && v.Expert.Profile != nil {
		resp.ExpertName = v.Expert.Profile.Name
	}
	if v.Profile != nil {
		resp.ClientName = v.Profile.Name
	}
	return resp
}

func toDashboardResponse(d *ports.Dashboard) dashboardResponse {
	resp := dashboardResponse{
		Upcoming:  make([]bookingViewResponse, 0, len(d.Upcoming)),
		Live:      make([]bookingViewResponse, 0, len(d.Live)),
		Completed: make([]bookingViewResponse, 0, len(d.Completed)),
		Stats: dashboardStatsResponse{
			TotalSessions: d.Stats.TotalSessions,
			ThisMonth:     d.Stats.ThisMonth,
			AverageRating: d.Stats.AverageRating,
		},
	}
	for _, v := range d.Upcoming {
		resp.Upcoming = append(resp.Upcoming, toBookingViewResponse(v))
	}
	for _, v := range d.Live {
		resp.Live = append(resp.Live, toBookingViewResponse(v))
	}
	for _, v := range d.Completed {
		resp.Completed = append(resp.Completed, toBookingViewResponse(v))
	}
	return resp
}

func toAdminBookingResponse(b *domain.Booking) adminBookingResponse {
	resp := adminBookingResponse{
		Reference:   b.Reference,
		ScheduledAt: b.ScheduledAt,
		Duration:    b.Duration,
		Price:       b.Price,
		Status:      string(b.Status),
	}
	if b.Profile != nil {
		resp.ClientName = b.Profile.Name
	}
	if b.Expert != nil && b.Expert.Profile != nil {
		resp.ExpertName = b.Expert.Profile.Name
	}
	return resp
}
