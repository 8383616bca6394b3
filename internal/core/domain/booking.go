package domain

import (
	"errors"
	"time"
)

// BookingStatus is the persisted state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Phase is the derived lifecycle classification of a booking relative to a
// point in time. It is never persisted as-is; it must be re-computed whenever
// "now" advances.
type Phase string

const (
	PhaseUpcoming  Phase = "upcoming"
	PhaseLive      Phase = "live"
	PhaseCompleted Phase = "completed"
)

// Live window boundaries relative to the scheduled start.
const (
	LiveLeadWindow  = 15 * time.Minute
	LiveGraceWindow = 60 * time.Minute
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrSlotNotSelected = errors.New("date and time slot must be selected")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
)

// Booking is a reservation of one session type at a specific time by one
// user. Immutable once created except for status, feedback and rating.
// Price is in cents; duration in minutes.
type Booking struct {
	ID            string        `json:"id" bson:"_id,omitempty"`
	Reference     string        `json:"reference" bson:"reference"`
	UserID        string        `json:"user_id" bson:"user_id"`
	ExpertID      string        `json:"expert_id" bson:"expert_id"`
	SessionTypeID string        `json:"session_type_id" bson:"session_type_id"`
	ScheduledAt   time.Time     `json:"scheduled_at" bson:"scheduled_at"`
	Duration      int           `json:"duration" bson:"duration"`
	Price         int           `json:"price" bson:"price"`
	Status        BookingStatus `json:"status" bson:"status"`
	MeetingLink   string        `json:"meeting_link,omitempty" bson:"meeting_link,omitempty"`
	Notes         string        `json:"notes,omitempty" bson:"notes,omitempty"`
	SessionGoals  string        `json:"session_goals,omitempty" bson:"session_goals,omitempty"`
	Feedback      string        `json:"feedback,omitempty" bson:"feedback,omitempty"`
	Rating        int           `json:"rating,omitempty" bson:"rating,omitempty"`
	CreatedAt     time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" bson:"updated_at"`

	// Relations populated by fetch-with-relations reads.
	Profile     *User        `json:"profiles,omitempty" bson:"profiles,omitempty"`
	Expert      *Expert      `json:"experts,omitempty" bson:"experts,omitempty"`
	SessionType *SessionType `json:"session_types,omitempty" bson:"session_types,omitempty"`
}

// PhaseAt classifies the booking as upcoming, live or completed at the given
// instant. The live window [start-15m, start+60m] is checked before the
// future check: a booking starting exactly at now is live, not upcoming.
func (b *Booking) PhaseAt(now time.Time) Phase {
	delta := now.Sub(b.ScheduledAt)
	if delta >= -LiveLeadWindow && delta <= LiveGraceWindow {
		return PhaseLive
	}
	if b.ScheduledAt.After(now) {
		return PhaseUpcoming
	}
	return PhaseCompleted
}

// Joinable reports whether the "Join" action should be offered: only
// confirmed bookings currently in their live window.
func (b *Booking) Joinable(now time.Time) bool {
	return b.Status == BookingConfirmed && b.PhaseAt(now) == PhaseLive
}

// PastLiveWindow reports whether the live window has fully elapsed, which is
// when the reconciler may persist the completed status.
func (b *Booking) PastLiveWindow(now time.Time) bool {
	return now.Sub(b.ScheduledAt) > LiveGraceWindow
}
