package ports

import (
	"context"
	"time"

	"github.com/sessionbook/booking-api/internal/core/domain"
)

// FilterAll is the selector value that disables a directory predicate.
const FilterAll = "all"

// Price bracket selectors for the directory filter.
const (
	PriceLow    = "low"    // < $50/hr
	PriceMedium = "medium" // $50–$100/hr
	PriceHigh   = "high"   // > $100/hr
)

// DirectoryFilter narrows the expert directory. Zero values mean "no
// filtering" for that predicate.
type DirectoryFilter struct {
	Search     string // case-insensitive substring on title or profile name
	Skill      string // "all" or exact skill string
	PriceRange string // all|low|medium|high
}

// CreateExpertInput carries everything needed to create an expert profile
// with its initial session types.
type CreateExpertInput struct {
	UserID     string
	Title      string
	Experience string
	Education  string
	Languages  []string
	Skills     []string
	Timezone   string
	Location   string
	HourlyRate int

	SessionTypes []SessionTypeInput
}

// SessionTypeInput is one priced offering attached to an expert.
type SessionTypeInput struct {
	Title       string
	Description string
	Duration    int // minutes
	Price       int // cents
	Kind        string
}

// Slot is a single bookable window offered to the client.
type Slot struct {
	Start    time.Time
	End      time.Time
	Duration int // minutes
}

type ExpertService interface {
	// Directory lists approved/active experts matching the filter,
	// preserving store order.
	Directory(ctx context.Context, filter DirectoryFilter) ([]*domain.Expert, error)
	// Get returns one expert with nested profile and session types.
	Get(ctx context.Context, id string) (*domain.Expert, error)
	// Availability returns the expert's weekly availability windows.
	Availability(ctx context.Context, expertID string) ([]domain.Availability, error)
	// Slots computes bookable slots for a calendar day from the expert's
	// availability windows minus already-booked, non-cancelled sessions.
	Slots(ctx context.Context, expertID string, day time.Time, duration int) ([]Slot, error)

	// Admin surface.
	AdminList(ctx context.Context) ([]*domain.Expert, error)
	Create(ctx context.Context, input CreateExpertInput) (*domain.Expert, error)
	// Transition applies an admin-controlled status change, enforcing the
	// pending→approved|rejected and approved→active state machine.
	Transition(ctx context.Context, expertID string, next domain.ExpertStatus) (*domain.Expert, error)
	// AddSessionType attaches a new offering to an existing expert.
	AddSessionType(ctx context.Context, expertID string, input SessionTypeInput) (*domain.SessionType, error)
}
