package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/sessionbook/booking-api/internal/core/domain"
)

type stubRevocation struct {
	revoked map[string]bool
}

func (s *stubRevocation) IsRevoked(_ context.Context, token string) (bool, error) {
	return s.revoked[token], nil
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func invokeAuth(t *testing.T, mw echo.MiddlewareFunc, header string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
	return c, err
}

func TestAuth_MissingHeader(t *testing.T) {
	mw := Auth("secret", nil)
	_, err := invokeAuth(t, mw, "")

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	mw := Auth("secret", nil)
	if _, err := invokeAuth(t, mw, "Token abc"); err == nil {
		t.Fatalf("expected error for non-bearer scheme")
	}
}

func TestAuth_InvalidSignature(t *testing.T) {
	token := signToken(t, "other-secret", jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	mw := Auth("secret", nil)
	_, err := invokeAuth(t, mw, "Bearer "+token)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong signature, got %v", err)
	}
}

func TestAuth_ValidToken_InjectsClaims(t *testing.T) {
	token := signToken(t, "secret", jwt.MapClaims{
		"sub":   "u1",
		"email": "u1@example.com",
		"name":  "User One",
		"role":  "expert",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	mw := Auth("secret", &stubRevocation{revoked: map[string]bool{}})
	c, err := invokeAuth(t, mw, "Bearer "+token)
	if err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}

	if c.Get("user_id") != "u1" || c.Get("role") != "expert" {
		t.Fatalf("claims not injected: user_id=%v role=%v", c.Get("user_id"), c.Get("role"))
	}
	if c.Get("token") != token {
		t.Fatalf("raw token should be stored for logout")
	}
}

func TestAuth_RevokedToken(t *testing.T) {
	token := signToken(t, "secret", jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	mw := Auth("secret", &stubRevocation{revoked: map[string]bool{token: true}})
	_, err := invokeAuth(t, mw, "Bearer "+token)
	// The domain error bubbles up so the central error handler maps it.
	if !errors.Is(err, domain.ErrTokenRevoked) {
		t.Fatalf("expected ErrTokenRevoked, got %v", err)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	token := signToken(t, "secret", jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	mw := Auth("secret", nil)
	_, err := invokeAuth(t, mw, "Bearer "+token)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %v", err)
	}
}
