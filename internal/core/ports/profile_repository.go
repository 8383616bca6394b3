package ports

import (
	"context"

	"github.com/sessionbook/booking-api/internal/core/domain"
)

// ProfileRepository defines persistence for user profiles and credentials.
type ProfileRepository interface {
	// FindByEmail retrieves a profile by email address.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID retrieves a profile by id. Returns domain.ErrProfileNotFound
	// when the row is missing, which callers use to trigger fallback profile
	// creation.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// Update applies the given field changes and returns the stored row.
	Update(ctx context.Context, id string, updates ProfileUpdates) (*domain.User, error)
}

// ProfileUpdates carries the mutable profile fields. Nil pointers leave the
// stored value untouched.
type ProfileUpdates struct {
	Name      *string
	AvatarURL *string
	Bio       *string
}
