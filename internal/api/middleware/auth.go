package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/sessionbook/booking-api/internal/core/domain"
)

// RevocationChecker reports whether a token has been denylisted by logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// Auth validates the JWT, rejects revoked tokens and injects claims into
// context.
func Auth(jwtSecret string, revoked RevocationChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			if revoked != nil {
				isRevoked, err := revoked.IsRevoked(c.Request().Context(), parts[1])
				if err == nil && isRevoked {
					return domain.ErrTokenRevoked
				}
			}

			c.Set("user_id", claims["sub"])
			c.Set("email", claims["email"])
			c.Set("name", claims["name"])
			c.Set("role", claims["role"])
			c.Set("token", parts[1])

			return next(c)
		}
	}
}
