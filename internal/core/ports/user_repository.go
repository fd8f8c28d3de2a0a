package ports

import (
	"context"

	"github.com/userhub/identity-api/internal/core/domain"
)

// UserUpdate carries the optional fields of a partial update. A nil field is
// left untouched by the store.
type UserUpdate struct {
	FullName *string
	Role     *string
	IsActive *bool
}

// Empty reports whether no field is set.
func (u UserUpdate) Empty() bool {
	return u.FullName == nil && u.Role == nil && u.IsActive == nil
}

// UserRepository is the narrow persistence surface the core needs from the
// user table. Implementations map email uniqueness violations to
// domain.ErrUserExists and absent rows to domain.ErrUserNotFound.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id int64, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.User, error)
}
