package ports

import (
	"context"
	"time"

	"github.com/sessionbook/booking-api/internal/core/domain"
)

// CreateBookingInput carries the booking draft collected by the client form.
// Name, Email and SessionGoals are required; Phone and AdditionalNotes are
// optional. ScheduledAt must be a resolved slot start.
type CreateBookingInput struct {
	UserID          string
	ExpertID        string
	SessionTypeID   string
	ScheduledAt     time.Time
	Name            string
	Email           string
	Phone           string
	SessionGoals    string
	AdditionalNotes string
	// IdempotencyKey, when non-empty, makes an identical resubmission
	// return the originally created booking instead of a duplicate.
	IdempotencyKey string
}

// BookingResult is returned by the service after creating a booking.
type BookingResult struct {
	Reference   string
	Status      string
	ScheduledAt time.Time
	MeetingLink string
	// AlreadyExisted is true when the Idempotency-Key matched a previous
	// submission.
	AlreadyExisted bool
}

// BookingView pairs a booking with its derived lifecycle phase at read time.
type BookingView struct {
	*domain.Booking
	Phase    domain.Phase `json:"phase"`
	Joinable bool         `json:"joinable"`
}

// DashboardStats summarizes a booking list for the dashboard header cards.
type DashboardStats struct {
	TotalSessions int
	ThisMonth     int
	AverageRating float64
}

// Dashboard groups a principal's bookings by lifecycle phase.
type Dashboard struct {
	Upcoming  []BookingView
	Live      []BookingView
	Completed []BookingView
	Stats     DashboardStats
}

type BookingService interface {
	Create(ctx context.Context, input CreateBookingInput) (*BookingResult, error)
	// UserDashboard groups the user's bookings by phase at now.
	UserDashboard(ctx context.Context, userID string, now time.Time) (*Dashboard, error)
	// ExpertDashboard groups bookings for the expert owned by userID.
	ExpertDashboard(ctx context.Context, userID string, now time.Time) (*Dashboard, error)
	// AdminBookings lists every booking with nested relations.
	AdminBookings(ctx context.Context) ([]*domain.Booking, error)
	// SubmitFeedback records feedback and a rating on the caller's booking.
	SubmitFeedback(ctx context.Context, userID, reference, feedback string, rating int) error
}
