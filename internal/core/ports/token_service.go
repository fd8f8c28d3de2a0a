package ports

import "github.com/userhub/identity-api/internal/core/domain"

// TokenService issues and verifies signed identity tokens. Verify collapses
// every failure mode into domain.ErrInvalidToken so callers cannot tell a
// tampered token from an expired one.
type TokenService interface {
	Issue(claims domain.Claims) (string, error)
	Verify(token string) (*domain.Claims, error)
}
