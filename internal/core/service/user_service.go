package service

import (
	"context"

	"github.com/userhub/identity-api/internal/core/domain"
	"github.com/userhub/identity-api/internal/core/ports"
)

// UserService implements the admin-facing user management operations.
type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// List returns all identities, newest created first.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies a partial update. An update carrying zero fields is a
// pass-through that returns the current state. A role value outside the
// known set is rejected before touching the store.
func (s *UserService) Update(ctx context.Context, id int64, update ports.UserUpdate) (*domain.User, error) {
	if update.Role != nil && !domain.IsValidRole(*update.Role) {
		return nil, domain.ErrInvalidRole
	}
	if update.Empty() {
		return s.repo.FindByID(ctx, id)
	}
	return s.repo.Update(ctx, id, update)
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
