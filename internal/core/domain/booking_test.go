package domain

import (
	"testing"
	"time"
)

func bookingAt(scheduled time.Time, status BookingStatus) *Booking {
	return &Booking{Reference: "BK-00000001", ScheduledAt: scheduled, Status: status}
}

func TestBooking_PhaseAt(t *testing.T) {
	start := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	b := bookingAt(start, BookingConfirmed)

	cases := []struct {
		name string
		now  time.Time
		want Phase
	}{
		{"twenty minutes before start", start.Add(-20 * time.Minute), PhaseUpcoming},
		{"lead window opens", start.Add(-15 * time.Minute), PhaseLive},
		{"ten minutes before start", start.Add(-10 * time.Minute), PhaseLive},
		{"exactly at start", start, PhaseLive},
		{"thirty minutes in", start.Add(30 * time.Minute), PhaseLive},
		{"grace window closes", start.Add(60 * time.Minute), PhaseLive},
		{"ninety minutes after start", start.Add(90 * time.Minute), PhaseCompleted},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.PhaseAt(tc.now); got != tc.want {
				t.Fatalf("PhaseAt(%v) = %s, want %s", tc.now, got, tc.want)
			}
		})
	}
}

func TestBooking_PhaseAt_Reclassifies(t *testing.T) {
	start := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	b := bookingAt(start, BookingConfirmed)

	// The same booking must change phase as time advances.
	if got := b.PhaseAt(start.Add(-time.Hour)); got != PhaseUpcoming {
		t.Fatalf("expected upcoming an hour before, got %s", got)
	}
	if got := b.PhaseAt(start); got != PhaseLive {
		t.Fatalf("expected live at start, got %s", got)
	}
	if got := b.PhaseAt(start.Add(2 * time.Hour)); got != PhaseCompleted {
		t.Fatalf("expected completed two hours after, got %s", got)
	}
}

func TestBooking_Joinable(t *testing.T) {
	start := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	if !bookingAt(start, BookingConfirmed).Joinable(start) {
		t.Fatalf("confirmed booking in live window should be joinable")
	}
	if bookingAt(start, BookingPending).Joinable(start) {
		t.Fatalf("pending booking should not be joinable")
	}
	if bookingAt(start, BookingConfirmed).Joinable(start.Add(-time.Hour)) {
		t.Fatalf("upcoming booking should not be joinable")
	}
	if bookingAt(start, BookingCancelled).Joinable(start) {
		t.Fatalf("cancelled booking should not be joinable")
	}
}

func TestBooking_PastLiveWindow(t *testing.T) {
	start := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	b := bookingAt(start, BookingConfirmed)

	if b.PastLiveWindow(start.Add(60 * time.Minute)) {
		t.Fatalf("grace boundary is still inside the window")
	}
	if !b.PastLiveWindow(start.Add(61 * time.Minute)) {
		t.Fatalf("one minute past grace should be past the window")
	}
}
