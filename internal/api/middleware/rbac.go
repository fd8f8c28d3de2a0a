package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RBAC enforces a role allow-list. An empty list admits any authenticated
// identity. A request that reaches RBAC without claims in context is a
// wiring mistake and fails closed with 401, not 403.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := Identity(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if len(allowed) == 0 {
				return next(c)
			}
			if _, ok := allowed[claims.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient permissions")
			}
			return next(c)
		}
	}
}
