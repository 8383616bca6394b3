package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sessionbook/booking-api/internal/core/domain"
	"github.com/sessionbook/booking-api/internal/core/ports"
)

// ExpertService implements the public directory and the admin management
// surface for experts.
type ExpertService struct {
	experts      ports.ExpertRepository
	sessionTypes ports.SessionTypeRepository
	availability ports.AvailabilityRepository
	bookings     ports.BookingRepository
	log          zerolog.Logger
}

func NewExpertService(
	experts ports.ExpertRepository,
	sessionTypes ports.SessionTypeRepository,
	availability ports.AvailabilityRepository,
	bookings ports.BookingRepository,
	log zerolog.Logger,
) *ExpertService {
	return &ExpertService{
		experts:      experts,
		sessionTypes: sessionTypes,
		availability: availability,
		bookings:     bookings,
		log:          log,
	}
}

// FilterExperts narrows an in-memory expert list. An expert matches the
// search text when its title or linked profile name contains it
// (case-insensitive); a specific skill requires an exact element match and
// experts without skills never match; price brackets map to <50, 50–100 and
// >100 dollars per hour. All predicates are ANDed and the input order is
// preserved.
func FilterExperts(experts []*domain.Expert, filter ports.DirectoryFilter) []*domain.Expert {
	search := strings.ToLower(filter.Search)

	matched := make([]*domain.Expert, 0, len(experts))
	for _, e := range experts {
		if search != "" {
			titleMatch := strings.Contains(strings.ToLower(e.Title), search)
			nameMatch := false
			if e.Profile != nil {
				nameMatch = strings.Contains(strings.ToLower(e.Profile.Name), search)
			}
			if !titleMatch && !nameMatch {
				continue
			}
		}

		if filter.Skill != "" && filter.Skill != ports.FilterAll && !e.HasSkill(filter.Skill) {
			continue
		}

		if !matchesPriceRange(e.HourlyRate, filter.PriceRange) {
			continue
		}

		matched = append(matched, e)
	}
	return matched
}

func matchesPriceRange(hourlyRate int, priceRange string) bool {
	switch priceRange {
	case ports.PriceLow:
		return hourlyRate < 50
	case ports.PriceMedium:
		return hourlyRate >= 50 && hourlyRate <= 100
	case ports.PriceHigh:
		return hourlyRate > 100
	default: // "all" or unset
		return true
	}
}

// Directory lists approved and active experts matching the filter.
func (s *ExpertService) Directory(ctx context.Context, filter ports.DirectoryFilter) ([]*domain.Expert, error) {
	experts, err := s.experts.ListByStatuses(ctx, []domain.ExpertStatus{domain.ExpertApproved, domain.ExpertActive})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list experts")
		return nil, err
	}
	return FilterExperts(experts, filter), nil
}

func (s *ExpertService) Get(ctx context.Context, id string) (*domain.Expert, error) {
	return s.experts.FindByID(ctx, id)
}

func (s *ExpertService) Availability(ctx context.Context, expertID string) ([]domain.Availability, error) {
	if _, err := s.experts.FindByID(ctx, expertID); err != nil {
		return nil, err
	}
	return s.availability.ListByExpert(ctx, expertID)
}

// Slots computes bookable windows for one calendar day: each availability
// window for that weekday is cut into duration-sized slots, and slots
// overlapping a non-cancelled booking are dropped. The availability rows are
// reference data; actual conflicts come from the bookings collection.
func (s *ExpertService) Slots(ctx context.Context, expertID string, day time.Time, duration int) ([]ports.Slot, error) {
	if duration <= 0 {
		duration = 60
	}

	windows, err := s.availability.ListByExpert(ctx, expertID)
	if err != nil {
		return nil, err
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	booked, err := s.bookings.ListActiveInRange(ctx, expertID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	step := time.Duration(duration) * time.Minute
	var slots []ports.Slot
	for _, w := range windows {
		if !w.IsAvailable || w.DayOfWeek != int(day.Weekday()) {
			continue
		}
		start, err := combineDayTime(dayStart, w.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := combineDayTime(dayStart, w.EndTime)
		if err != nil {
			return nil, err
		}
		for t := start; !t.Add(step).After(end); t = t.Add(step) {
			if overlapsBooking(t, t.Add(step), booked) {
				continue
			}
			slots = append(slots, ports.Slot{Start: t, End: t.Add(step), Duration: duration})
		}
	}
	return slots, nil
}

// combineDayTime merges a calendar day with a "15:04" time-of-day string.
func combineDayTime(dayStart time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse availability time %q: %w", clock, err)
	}
	return dayStart.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute), nil
}

func overlapsBooking(start, end time.Time, booked []*domain.Booking) bool {
	for _, b := range booked {
		bStart := b.ScheduledAt
		bEnd := bStart.Add(time.Duration(b.Duration) * time.Minute)
		if start.Before(bEnd) && bStart.Before(end) {
			return true
		}
	}
	return false
}

// AdminList returns every expert regardless of status, newest first.
func (s *ExpertService) AdminList(ctx context.Context) ([]*domain.Expert, error) {
	return s.experts.ListAll(ctx)
}

// Create registers a new expert profile in pending status together with its
// initial session types.
func (s *ExpertService) Create(ctx context.Context, input ports.CreateExpertInput) (*domain.Expert, error) {
	now := time.Now().UTC()
	expert := &domain.Expert{
		UserID:     input.UserID,
		Title:      input.Title,
		Experience: input.Experience,
		Education:  input.Education,
		Languages:  dropEmpty(input.Languages),
		Skills:     dropEmpty(input.Skills),
		Timezone:   input.Timezone,
		Location:   input.Location,
		HourlyRate: input.HourlyRate,
		Status:     domain.ExpertPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.experts.Create(ctx, expert)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create expert")
		return nil, err
	}

	// Strictly increasing timestamps keep the created_at ordering
	// deterministic within one batch.
	for i, st := range input.SessionTypes {
		if _, err := s.createSessionType(ctx, created.ID, st, now.Add(time.Duration(i)*time.Millisecond)); err != nil {
			s.log.Error().Err(err).Str("expert_id", created.ID).Msg("failed to create session type")
			return nil, err
		}
	}

	s.log.Info().Str("expert_id", created.ID).Str("title", created.Title).Msg("expert created")
	return s.experts.FindByID(ctx, created.ID)
}

// Transition applies an admin status change, enforcing the state machine.
func (s *ExpertService) Transition(ctx context.Context, expertID string, next domain.ExpertStatus) (*domain.Expert, error) {
	expert, err := s.experts.FindByID(ctx, expertID)
	if err != nil {
		return nil, err
	}

	if !expert.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, expert.Status, next)
	}

	if err := s.experts.UpdateStatus(ctx, expertID, next); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("expert_id", expertID).
		Str("from", string(expert.Status)).
		Str("to", string(next)).
		Msg("expert status changed")

	expert.Status = next
	return expert, nil
}

func (s *ExpertService) AddSessionType(ctx context.Context, expertID string, input ports.SessionTypeInput) (*domain.SessionType, error) {
	if _, err := s.experts.FindByID(ctx, expertID); err != nil {
		return nil, err
	}
	return s.createSessionType(ctx, expertID, input, time.Now().UTC())
}

func (s *ExpertService) createSessionType(ctx context.Context, expertID string, input ports.SessionTypeInput, now time.Time) (*domain.SessionType, error) {
	kind := domain.SessionTypeKind(input.Kind)
	switch kind {
	case domain.SessionVideo, domain.SessionAudio, domain.SessionChat:
	default:
		kind = domain.SessionVideo
	}
	return s.sessionTypes.Create(ctx, &domain.SessionType{
		ExpertID:    expertID,
		Title:       input.Title,
		Description: input.Description,
		Duration:    input.Duration,
		Price:       input.Price,
		Kind:        kind,
		CreatedAt:   now,
	})
}

func dropEmpty(values []string) []string {
	out := values[:0:0]
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
