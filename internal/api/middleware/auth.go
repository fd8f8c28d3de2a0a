package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/userhub/identity-api/internal/core/domain"
	"github.com/userhub/identity-api/internal/core/ports"
)

// IdentityKey is the context key the verified claims are stored under.
const IdentityKey = "identity"

// Auth verifies the bearer token and attaches the resulting claims to the
// request context. Any failure short-circuits with 401 before the handler.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
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

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(IdentityKey, claims)
			return next(c)
		}
	}
}

// Identity returns the claims attached by Auth, or false when the request
// never passed authentication.
func Identity(c echo.Context) (*domain.Claims, bool) {
	claims, ok := c.Get(IdentityKey).(*domain.Claims)
	return claims, ok && claims != nil
}
