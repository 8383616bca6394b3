package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sessionbook/booking-api/internal/core/domain"
	"github.com/sessionbook/booking-api/internal/core/ports"
)

// The confirmation email with the real meeting link is out of scope; every
// booking gets the same placeholder room.
const meetingLinkPlaceholder = "https://meet.google.com/abc-defg-hij"

// IdempotencyStore abstracts the booking replay store (Redis). PutIfAbsent
// returns the previously stored reference when the key was already claimed.
type IdempotencyStore interface {
	PutIfAbsent(ctx context.Context, key, reference string) (existing string, stored bool, err error)
}

// BookingService implements booking creation, dashboards and feedback.
type BookingService struct {
	bookings     ports.BookingRepository
	experts      ports.ExpertRepository
	sessionTypes ports.SessionTypeRepository
	idempotency  IdempotencyStore
	log          zerolog.Logger
}

func NewBookingService(
	bookings ports.BookingRepository,
	experts ports.ExpertRepository,
	sessionTypes ports.SessionTypeRepository,
	idempotency IdempotencyStore,
	log zerolog.Logger,
) *BookingService {
	return &BookingService{
		bookings:     bookings,
		experts:      experts,
		sessionTypes: sessionTypes,
		idempotency:  idempotency,
		log:          log,
	}
}

// Create books one session. The reference is minted locally, the meeting
// link placeholder is attached and the booking is stored as confirmed.
// Without an Idempotency-Key a resubmission creates a second, distinct
// booking; overlap with other bookings for the expert is not checked.
func (s *BookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*ports.BookingResult, error) {
	if input.ScheduledAt.IsZero() {
		return nil, domain.ErrSlotNotSelected
	}

	sessionType, err := s.sessionTypes.FindByID(ctx, input.SessionTypeID)
	if err != nil {
		return nil, err
	}
	expert, err := s.experts.FindByID(ctx, input.ExpertID)
	if err != nil {
		return nil, err
	}
	if sessionType.ExpertID != expert.ID {
		return nil, domain.ErrSessionTypeNotFound
	}

	reference := generateBookingReference()

	if input.IdempotencyKey != "" {
		existing, stored, err := s.idempotency.PutIfAbsent(ctx, input.IdempotencyKey, reference)
		if err != nil {
			s.log.Warn().Err(err).Msg("idempotency check failed, creating anyway")
		} else if !stored {
			replay, err := s.bookings.FindByReference(ctx, existing)
			if err != nil {
				return nil, fmt.Errorf("idempotent replay: %w", err)
			}
			s.log.Info().Str("idempotency_key", input.IdempotencyKey).Str("reference", existing).Msg("idempotent replay")
			return &ports.BookingResult{
				Reference:      replay.Reference,
				Status:         string(replay.Status),
				ScheduledAt:    replay.ScheduledAt,
				MeetingLink:    replay.MeetingLink,
				AlreadyExisted: true,
			}, nil
		}
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		Reference:     reference,
		UserID:        input.UserID,
		ExpertID:      expert.ID,
		SessionTypeID: sessionType.ID,
		ScheduledAt:   input.ScheduledAt.UTC(),
		Duration:      sessionType.Duration,
		Price:         sessionType.Price,
		Status:        domain.BookingConfirmed,
		MeetingLink:   meetingLinkPlaceholder,
		Notes:         input.AdditionalNotes,
		SessionGoals:  input.SessionGoals,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		s.log.Error().Err(err).Msg("failed to create booking")
		return nil, err
	}

	s.log.Info().
		Str("reference", booking.Reference).
		Str("expert_id", expert.ID).
		Str("session_type_id", sessionType.ID).
		Time("scheduled_at", booking.ScheduledAt).
		Msg("booking created")

	return &ports.BookingResult{
		Reference:   booking.Reference,
		Status:      string(booking.Status),
		ScheduledAt: booking.ScheduledAt,
		MeetingLink: booking.MeetingLink,
	}, nil
}

func (s *BookingService) UserDashboard(ctx context.Context, userID string, now time.Time) (*ports.Dashboard, error) {
	bookings, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return buildDashboard(bookings, now), nil
}

// ExpertDashboard resolves the caller's expert record first; a user without
// one gets ErrExpertNotFound.
func (s *BookingService) ExpertDashboard(ctx context.Context, userID string, now time.Time) (*ports.Dashboard, error) {
	expert, err := s.experts.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.ListByExpert(ctx, expert.ID)
	if err != nil {
		return nil, err
	}
	return buildDashboard(bookings, now), nil
}

func (s *BookingService) AdminBookings(ctx context.Context) ([]*domain.Booking, error) {
	return s.bookings.ListAll(ctx)
}

// SubmitFeedback records feedback on the caller's own booking. Owning the
// booking is the only authorization; admins use their own surface.
func (s *BookingService) SubmitFeedback(ctx context.Context, userID, reference, feedback string, rating int) error {
	booking, err := s.bookings.FindByReference(ctx, reference)
	if err != nil {
		return err
	}
	if booking.UserID != userID {
		return domain.ErrForbidden
	}
	if rating < 1 || rating > 5 {
		return domain.ErrInvalidRating
	}
	return s.bookings.UpdateFeedback(ctx, reference, feedback, rating)
}

// buildDashboard classifies each booking at now and accumulates the header
// stats. Cancelled bookings are excluded; the dashboard never shows them.
func buildDashboard(bookings []*domain.Booking, now time.Time) *ports.Dashboard {
	d := &ports.Dashboard{}

	var ratingSum, ratingCount int
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	for _, b := range bookings {
		if b.Status == domain.BookingCancelled {
			continue
		}

		d.Stats.TotalSessions++
		if !b.ScheduledAt.Before(monthStart) && b.ScheduledAt.Before(monthStart.AddDate(0, 1, 0)) {
			d.Stats.ThisMonth++
		}
		if b.Rating > 0 {
			ratingSum += b.Rating
			ratingCount++
		}

		view := ports.BookingView{Booking: b, Phase: b.PhaseAt(now), Joinable: b.Joinable(now)}
		switch view.Phase {
		case domain.PhaseLive:
			d.Live = append(d.Live, view)
		case domain.PhaseUpcoming:
			d.Upcoming = append(d.Upcoming, view)
		default:
			d.Completed = append(d.Completed, view)
		}
	}

	if ratingCount > 0 {
		d.Stats.AverageRating = float64(ratingSum) / float64(ratingCount)
	}
	return d
}

// generateBookingReference returns a booking reference in the format
// BK-XXXXXXXX.
func generateBookingReference() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("BK-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("BK-%08X", b)
}
