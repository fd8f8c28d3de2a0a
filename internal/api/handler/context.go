package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userhub/identity-api/internal/api/middleware"
	"github.com/userhub/identity-api/internal/core/domain"
)

// ctxIdentity extracts the claims attached by the Auth middleware. A route
// reaching a protected handler without claims means the middleware chain is
// miswired; fail closed with 401 rather than guessing.
func ctxIdentity(c echo.Context) (*domain.Claims, error) {
	claims, ok := middleware.Identity(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
