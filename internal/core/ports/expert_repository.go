package ports

import (
	"context"

	"github.com/sessionbook/booking-api/internal/core/domain"
)

// ExpertRepository defines persistence operations for experts and their
// session types. Reads return experts with the linked profile and session
// types nested under their relation names.
type ExpertRepository interface {
	Create(ctx context.Context, e *domain.Expert) (*domain.Expert, error)
	// FindByID retrieves one expert with nested profile and session types.
	FindByID(ctx context.Context, id string) (*domain.Expert, error)
	// FindByUserID retrieves the expert record owned by the given profile.
	FindByUserID(ctx context.Context, userID string) (*domain.Expert, error)
	// ListByStatuses returns experts whose status is in the given set,
	// with relations nested, preserving store ordering.
	ListByStatuses(ctx context.Context, statuses []domain.ExpertStatus) ([]*domain.Expert, error)
	// ListAll returns every expert, newest first, with profiles nested.
	ListAll(ctx context.Context) ([]*domain.Expert, error)
	// UpdateStatus persists a status change.
	UpdateStatus(ctx context.Context, id string, status domain.ExpertStatus) error
}

// SessionTypeRepository defines persistence for session types.
type SessionTypeRepository interface {
	Create(ctx context.Context, st *domain.SessionType) (*domain.SessionType, error)
	FindByID(ctx context.Context, id string) (*domain.SessionType, error)
	// ListByExpert returns the expert's session types in insertion order.
	ListByExpert(ctx context.Context, expertID string) ([]domain.SessionType, error)
}

// AvailabilityRepository reads the weekly availability reference data.
type AvailabilityRepository interface {
	ListByExpert(ctx context.Context, expertID string) ([]domain.Availability, error)
}
