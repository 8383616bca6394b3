package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sessionbook/booking-api/internal/core/domain"
	"github.com/sessionbook/booking-api/internal/core/ports"
)

// TokenRevoker abstracts the logout denylist (Redis).
type TokenRevoker interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// AuthService implements registration, login, logout and profile access.
type AuthService struct {
	repo      ports.ProfileRepository
	revoker   TokenRevoker
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(repo ports.ProfileRepository, revoker TokenRevoker, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, revoker: revoker, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

func (s *AuthService) Register(ctx context.Context, email, password, name, role string) (*domain.User, error) {
	if email == "" || password == "" || name == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if role == "" {
		role = string(domain.RoleUser)
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		Name:         name,
		Role:         domain.Role(role),
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", email).Str("role", role).Msg("profile registered")
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password, intendedPath string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &ports.LoginResult{
		Token:      token,
		User:       user,
		RedirectTo: domain.LoginRedirect(user.Role, intendedPath),
	}, nil
}

// Logout denylists the token for its remaining lifetime. An already-expired
// token is a no-op success.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return domain.ErrInvalidCredentials
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return domain.ErrInvalidCredentials
	}
	remaining := time.Until(exp.Time)
	if remaining <= 0 {
		return nil
	}
	return s.revoker.Revoke(ctx, token, remaining)
}

// CurrentUser resolves the profile for an authenticated subject. A missing
// row is recovered by synthesizing a default profile, mirroring accounts
// that exist in the identity store without a profile row yet.
func (s *AuthService) CurrentUser(ctx context.Context, userID, email, name string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, err
	}

	s.log.Warn().Str("user_id", userID).Msg("profile row missing, creating default")
	if name == "" {
		name = email
	}
	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		ID:        userID,
		Email:     email,
		Name:      name,
		Role:      domain.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID string, updates ports.ProfileUpdates) (*domain.User, error) {
	updated, err := s.repo.Update(ctx, userID, updates)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", userID).Msg("profile updated")
	return updated, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"name":  user.Name,
		"role":  string(user.Role),
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
