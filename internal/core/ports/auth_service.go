package ports

import (
	"context"

	"github.com/userhub/identity-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password, fullName string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}
