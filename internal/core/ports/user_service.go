package ports

import (
	"context"

	"github.com/userhub/identity-api/internal/core/domain"
)

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
