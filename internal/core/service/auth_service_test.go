package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sessionbook/booking-api/internal/core/domain"
	"github.com/sessionbook/booking-api/internal/core/ports"
)

func newAuthService(repo *stubProfileRepo, revoker *stubRevoker) *AuthService {
	return NewAuthService(repo, revoker, "secret", time.Hour, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	svc := newAuthService(newStubProfileRepo(), newStubRevoker())

	user, err := svc.Register(context.Background(), "alice@example.com", "pass123", "Alice", "expert")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleExpert {
		t.Fatalf("unexpected role: %s", user.Role)
	}
}

func TestAuthService_Register_DefaultsRole(t *testing.T) {
	svc := newAuthService(newStubProfileRepo(), newStubRevoker())

	user, err := svc.Register(context.Background(), "bob@example.com", "pass", "Bob", "")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("empty role should default to user, got %s", user.Role)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newAuthService(newStubProfileRepo(), newStubRevoker())

	if _, err := svc.Register(context.Background(), "", "pass", "Nobody", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "x@example.com", "pass", "X", "superuser"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad role, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := newAuthService(newStubProfileRepo(), newStubRevoker())

	if _, err := svc.Register(context.Background(), "bob@example.com", "pass", "Bob", ""); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob@example.com", "pass2", "Bobby", ""); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc := newAuthService(newStubProfileRepo(), newStubRevoker())

	if _, err := svc.Register(context.Background(), "carol@example.com", "s3cret", "Carol", "admin"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "carol@example.com", "s3cret", "")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if result.RedirectTo != domain.PathAdminDashboard {
		t.Fatalf("admin should land on %s, got %s", domain.PathAdminDashboard, result.RedirectTo)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(result.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != "admin" {
		t.Fatalf("expected role admin, got %v", claims["role"])
	}
	if claims["sub"] != result.User.ID {
		t.Fatalf("expected sub %s, got %v", result.User.ID, claims["sub"])
	}
}

func TestAuthService_Login_IntendedPathWins(t *testing.T) {
	svc := newAuthService(newStubProfileRepo(), newStubRevoker())

	if _, err := svc.Register(context.Background(), "dora@example.com", "pass", "Dora", "user"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "dora@example.com", "pass", "/experts/99")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.RedirectTo != "/experts/99" {
		t.Fatalf("intended path should win, got %s", result.RedirectTo)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc := newAuthService(newStubProfileRepo(), newStubRevoker())

	_, _ = svc.Register(context.Background(), "dave@example.com", "goodpass", "Dave", "")
	if _, err := svc.Login(context.Background(), "dave@example.com", "badpass", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newAuthService(newStubProfileRepo(), newStubRevoker())

	// Unknown account reads the same as a wrong password.
	if _, err := svc.Login(context.Background(), "ghost@example.com", "pass", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Logout_Denylists(t *testing.T) {
	revoker := newStubRevoker()
	svc := newAuthService(newStubProfileRepo(), revoker)

	if _, err := svc.Register(context.Background(), "eve@example.com", "pass", "Eve", ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	result, err := svc.Login(context.Background(), "eve@example.com", "pass", "")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), result.Token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	revoked, _ := revoker.IsRevoked(context.Background(), result.Token)
	if !revoked {
		t.Fatalf("token should be denylisted after logout")
	}
}

func TestAuthService_Logout_GarbageToken(t *testing.T) {
	svc := newAuthService(newStubProfileRepo(), newStubRevoker())

	if err := svc.Logout(context.Background(), "not-a-jwt"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_CurrentUser_FallbackProfile(t *testing.T) {
	repo := newStubProfileRepo()
	svc := newAuthService(repo, newStubRevoker())

	user, err := svc.CurrentUser(context.Background(), "missing-id", "frank@example.com", "")
	if err != nil {
		t.Fatalf("CurrentUser returned error: %v", err)
	}
	if user.ID != "missing-id" {
		t.Fatalf("fallback profile should keep the subject id, got %s", user.ID)
	}
	if user.Name != "frank@example.com" {
		t.Fatalf("empty name should fall back to email, got %s", user.Name)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("fallback profile should be a plain user, got %s", user.Role)
	}

	// The synthesized row must be durable.
	again, err := repo.FindByID(context.Background(), "missing-id")
	if err != nil {
		t.Fatalf("fallback profile was not persisted: %v", err)
	}
	if again.Email != "frank@example.com" {
		t.Fatalf("persisted email mismatch: %s", again.Email)
	}
}

func TestAuthService_UpdateProfile(t *testing.T) {
	repo := newStubProfileRepo()
	svc := newAuthService(repo, newStubRevoker())

	created, err := svc.Register(context.Background(), "gina@example.com", "pass", "Gina", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	name := "Gina R."
	bio := "Hello"
	updated, err := svc.UpdateProfile(context.Background(), created.ID, ports.ProfileUpdates{Name: &name, Bio: &bio})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Gina R." || updated.Bio != "Hello" {
		t.Fatalf("unexpected update result: %+v", updated)
	}
	if updated.Email != "gina@example.com" {
		t.Fatalf("untouched fields must survive, got %s", updated.Email)
	}
}
