package handler

import "time"

type createBookingRequest struct {
	ExpertID      string `json:"expert_id"       validate:"required"`
	SessionTypeID string `json:"session_type_id" validate:"required"`
	// ScheduledAt is the chosen slot start; the zero value means no slot was
	// selected and is rejected before any store round trip.
	ScheduledAt     time.Time `json:"scheduled_at"`
	Name            string    `json:"name"             validate:"required"`
	Email           string    `json:"email"            validate:"required,email"`
	Phone           string    `json:"phone"`
	SessionGoals    string    `json:"session_goals"    validate:"required"`
	AdditionalNotes string    `json:"additional_notes"`
}

type bookingLinks struct {
	Self string `json:"self"`
}

type createBookingResponse struct {
	Reference   string       `json:"reference"`
	Status      string       `json:"status"`
	ScheduledAt time.Time    `json:"scheduled_at"`
	MeetingLink string       `json:"meeting_link"`
	Links       bookingLinks `json:"_links"`
}

type feedbackRequest struct {
	Feedback string `json:"feedback"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
}

// bookingViewResponse is one dashboard row: a booking plus its lifecycle
// phase derived at request time.
type bookingViewResponse struct {
	Reference    string    `json:"reference"`
	Status       string    `json:"status"`
	Phase        string    `json:"phase"`
	Joinable     bool      `json:"joinable"`
	ScheduledAt  time.Time `json:"scheduled_at"`
	Duration     int       `json:"duration"`
	Price        int       `json:"price"`
	MeetingLink  string    `json:"meeting_link,omitempty"`
	SessionTitle string    `json:"session_title,omitempty"`
	ExpertName   string    `json:"expert_name,omitempty"`
	ClientName   string    `json:"client_name,omitempty"`
	Feedback     string    `json:"feedback,omitempty"`
	Rating       int       `json:"rating,omitempty"`
}

type dashboardStatsResponse struct {
	TotalSessions int     `json:"total_sessions"`
	ThisMonth     int     `json:"this_month"`
	AverageRating float64 `json:"average_rating"`
}

type dashboardResponse struct {
	Upcoming  []bookingViewResponse  `json:"upcoming"`
	Live      []bookingViewResponse  `json:"live"`
	Completed []bookingViewResponse  `json:"completed"`
	Stats     dashboardStatsResponse `json:"stats"`
}

// adminBookingResponse is the flat row for the admin booking table.
type adminBookingResponse struct {
	Reference   string    `json:"reference"`
	ClientName  string    `json:"client_name"`
	ExpertName  string    `json:"expert_name"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Duration    int       `json:"duration"`
	Price       int       `json:"price"`
	Status      string    `json:"status"`
}

type listAdminBookingsResponse struct {
	Data  []adminBookingResponse `json:"data"`
	Count int                    `json:"count"`
}
