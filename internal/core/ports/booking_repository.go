package ports

import (
	"context"
	"time"

	"github.com/sessionbook/booking-api/internal/core/domain"
)

// BookingRepository defines persistence operations for bookings. List reads
// return bookings ordered by scheduled_at ascending with the client profile,
// expert (and its profile) and session type nested under relation names.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	FindByReference(ctx context.Context, reference string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListByExpert(ctx context.Context, expertID string) ([]*domain.Booking, error)
	ListAll(ctx context.Context) ([]*domain.Booking, error)
	// ListActiveInRange returns non-cancelled bookings for the expert whose
	// scheduled_at falls in [from, to). Used for slot computation.
	ListActiveInRange(ctx context.Context, expertID string, from, to time.Time) ([]*domain.Booking, error)
	// ListConfirmedBefore returns confirmed bookings scheduled before the
	// cutoff. Used by the lifecycle reconciler.
	ListConfirmedBefore(ctx context.Context, cutoff time.Time) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, reference string, status domain.BookingStatus) error
	// UpdateFeedback sets feedback text and rating on a completed booking.
	UpdateFeedback(ctx context.Context, reference string, feedback string, rating int) error
}
