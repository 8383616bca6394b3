package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sessionbook/booking-api/internal/core/domain"
	"github.com/sessionbook/booking-api/internal/core/ports"
)

// In-memory repository stubs shared by the service tests.

type stubProfileRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User // keyed by id
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubProfileRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = "user-" + copy.Email
	}
	r.users[copy.ID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubProfileRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

func (r *stubProfileRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrProfileNotFound
}

func (r *stubProfileRepo) Update(_ context.Context, id string, updates ports.ProfileUpdates) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	if updates.Name != nil {
		u.Name = *updates.Name
	}
	if updates.AvatarURL != nil {
		u.AvatarURL = *updates.AvatarURL
	}
	if updates.Bio != nil {
		u.Bio = *updates.Bio
	}
	return cloneUser(u), nil
}

type stubRevoker struct {
	mu      sync.Mutex
	revoked map[string]time.Duration
}

func newStubRevoker() *stubRevoker {
	return &stubRevoker{revoked: make(map[string]time.Duration)}
}

func (s *stubRevoker) Revoke(_ context.Context, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[token] = ttl
	return nil
}

func (s *stubRevoker) IsRevoked(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.revoked[token]
	return ok, nil
}

type stubExpertRepo struct {
	mu      sync.Mutex
	experts map[string]*domain.Expert
	order   []string
	// types, when set, makes reads nest the expert's session types the way
	// the aggregation-backed repository does.
	types *stubSessionTypeRepo
}

func newStubExpertRepo() *stubExpertRepo {
	return &stubExpertRepo{experts: make(map[string]*domain.Expert)}
}

func cloneExpert(e *domain.Expert) *domain.Expert {
	if e == nil {
		return nil
	}
	clone := *e
	return &clone
}

func (r *stubExpertRepo) Create(_ context.Context, e *domain.Expert) (*domain.Expert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copy := cloneExpert(e)
	if copy.ID == "" {
		copy.ID = "expert-" + copy.Title
	}
	r.experts[copy.ID] = cloneExpert(copy)
	r.order = append(r.order, copy.ID)
	return cloneExpert(copy), nil
}

func (r *stubExpertRepo) FindByID(ctx context.Context, id string) (*domain.Expert, error) {
	r.mu.Lock()
	e, ok := r.experts[id]
	if !ok {
		r.mu.Unlock()
		return nil, domain.ErrExpertNotFound
	}
	clone := cloneExpert(e)
	r.mu.Unlock()

	if r.types != nil {
		clone.SessionTypes, _ = r.types.ListByExpert(ctx, clone.ID)
	}
	return clone, nil
}

func (r *stubExpertRepo) FindByUserID(_ context.Context, userID string) (*domain.Expert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.experts {
		if e.UserID == userID {
			return cloneExpert(e), nil
		}
	}
	return nil, domain.ErrExpertNotFound
}

func (r *stubExpertRepo) ListByStatuses(_ context.Context, statuses []domain.ExpertStatus) ([]*domain.Expert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	in := make(map[domain.ExpertStatus]struct{}, len(statuses))
	for _, s := range statuses {
		in[s] = struct{}{}
	}
	var out []*domain.Expert
	for _, id := range r.order {
		if _, ok := in[r.experts[id].Status]; ok {
			out = append(out, cloneExpert(r.experts[id]))
		}
	}
	return out, nil
}

func (r *stubExpertRepo) ListAll(_ context.Context) ([]*domain.Expert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Expert, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		out = append(out, cloneExpert(r.experts[r.order[i]]))
	}
	return out, nil
}

func (r *stubExpertRepo) UpdateStatus(_ context.Context, id string, status domain.ExpertStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.experts[id]
	if !ok {
		return domain.ErrExpertNotFound
	}
	e.Status = status
	return nil
}

type stubSessionTypeRepo struct {
	mu    sync.Mutex
	types map[string]*domain.SessionType
	order []string
}

func newStubSessionTypeRepo() *stubSessionTypeRepo {
	return &stubSessionTypeRepo{types: make(map[string]*domain.SessionType)}
}

func (r *stubSessionTypeRepo) Create(_ context.Context, st *domain.SessionType) (*domain.SessionType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copy := *st
	if copy.ID == "" {
		copy.ID = "st-" + copy.Title
	}
	r.types[copy.ID] = &copy
	r.order = append(r.order, copy.ID)
	result := copy
	return &result, nil
}

func (r *stubSessionTypeRepo) FindByID(_ context.Context, id string) (*domain.SessionType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if st, ok := r.types[id]; ok {
		copy := *st
		return &copy, nil
	}
	return nil, domain.ErrSessionTypeNotFound
}

// ListByExpert sorts by created_at the way the backing repository does, so
// ordering bugs in the writers surface here instead of only against Mongo.
func (r *stubSessionTypeRepo) ListByExpert(_ context.Context, expertID string) ([]domain.SessionType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.SessionType
	for _, id := range r.order {
		if r.types[id].ExpertID == expertID {
			out = append(out, *r.types[id])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type stubAvailabilityRepo struct {
	windows map[string][]domain.Availability
}

func newStubAvailabilityRepo() *stubAvailabilityRepo {
	return &stubAvailabilityRepo{windows: make(map[string][]domain.Availability)}
}

func (r *stubAvailabilityRepo) ListByExpert(_ context.Context, expertID string) ([]domain.Availability, error) {
	return r.windows[expertID], nil
}

type stubBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*domain.Booking // keyed by reference
	order    []string
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{bookings: make(map[string]*domain.Booking)}
}

func cloneBooking(b *domain.Booking) *domain.Booking {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

func (r *stubBookingRepo) Create(_ context.Context, b *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[b.Reference] = cloneBooking(b)
	r.order = append(r.order, b.Reference)
	return nil
}

func (r *stubBookingRepo) FindByReference(_ context.Context, reference string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.bookings[reference]; ok {
		return cloneBooking(b), nil
	}
	return nil, domain.ErrBookingNotFound
}

func (r *stubBookingRepo) ListByUser(_ context.Context, userID string) ([]*domain.Booking, error) {
	return r.filter(func(b *domain.Booking) bool { return b.UserID == userID }), nil
}

func (r *stubBookingRepo) ListByExpert(_ context.Context, expertID string) ([]*domain.Booking, error) {
	return r.filter(func(b *domain.Booking) bool { return b.ExpertID == expertID }), nil
}

func (r *stubBookingRepo) ListAll(_ context.Context) ([]*domain.Booking, error) {
	return r.filter(func(*domain.Booking) bool { return true }), nil
}

func (r *stubBookingRepo) ListActiveInRange(_ context.Context, expertID string, from, to time.Time) ([]*domain.Booking, error) {
	return r.filter(func(b *domain.Booking) bool {
		return b.ExpertID == expertID &&
			b.Status != domain.BookingCancelled &&
			!b.ScheduledAt.Before(from) && b.ScheduledAt.Before(to)
	}), nil
}

func (r *stubBookingRepo) ListConfirmedBefore(_ context.Context, cutoff time.Time) ([]*domain.Booking, error) {
	return r.filter(func(b *domain.Booking) bool {
		return b.Status == domain.BookingConfirmed && b.ScheduledAt.Before(cutoff)
	}), nil
}

func (r *stubBookingRepo) UpdateStatus(_ context.Context, reference string, status domain.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[reference]
	if !ok {
		return domain.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (r *stubBookingRepo) UpdateFeedback(_ context.Context, reference string, feedback string, rating int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[reference]
	if !ok {
		return domain.ErrBookingNotFound
	}
	b.Feedback = feedback
	b.Rating = rating
	return nil
}

func (r *stubBookingRepo) filter(keep func(*domain.Booking) bool) []*domain.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Booking
	for _, ref := range r.order {
		if keep(r.bookings[ref]) {
			out = append(out, cloneBooking(r.bookings[ref]))
		}
	}
	return out
}

type stubIdempotencyStore struct {
	mu   sync.Mutex
	keys map[string]string
}

func newStubIdempotencyStore() *stubIdempotencyStore {
	return &stubIdempotencyStore{keys: make(map[string]string)}
}

func (s *stubIdempotencyStore) PutIfAbsent(_ context.Context, key, reference string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.keys[key]; ok {
		return existing, false, nil
	}
	s.keys[key] = reference
	return reference, true, nil
}
