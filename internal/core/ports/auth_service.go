package ports

import (
	"context"

	"github.com/sessionbook/booking-api/internal/core/domain"
)

// LoginResult is returned after a successful authentication: the signed
// token, the resolved profile and the path the client should navigate to.
type LoginResult struct {
	Token      string
	User       *domain.User
	RedirectTo string
}

type AuthService interface {
	// Register creates a profile with the given credentials and metadata.
	Register(ctx context.Context, email, password, name, role string) (*domain.User, error)
	// Login authenticates, resolves the profile (synthesizing a default one
	// when the row is missing) and computes the post-login redirect.
	// intendedPath is the route the client originally requested, if any.
	Login(ctx context.Context, email, password, intendedPath string) (*LoginResult, error)
	// Logout revokes the presented token until its natural expiry.
	Logout(ctx context.Context, token string) error
	// CurrentUser resolves the profile for an authenticated subject,
	// creating a default profile row when none exists.
	CurrentUser(ctx context.Context, userID, email, name string) (*domain.User, error)
	// UpdateProfile round-trips a profile mutation to the store.
	UpdateProfile(ctx context.Context, userID string, updates ProfileUpdates) (*domain.User, error)
}
