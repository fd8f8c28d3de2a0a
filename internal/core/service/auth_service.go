package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/userhub/identity-api/internal/core/domain"
	"github.com/userhub/identity-api/internal/core/ports"
	"github.com/userhub/identity-api/internal/pkg/password"
)

// AuthService implements registration and login.
type AuthService struct {
	repo    ports.UserRepository
	tokens  ports.TokenService
	limiter ports.LoginLimiter
	log     zerolog.Logger
}

// NewAuthService wires the auth flows. limiter may be nil, in which case
// failed logins are not throttled.
func NewAuthService(repo ports.UserRepository, tokens ports.TokenService, limiter ports.LoginLimiter, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, limiter: limiter, log: log}
}

// Register creates a new identity with role forced to "user" and returns it
// together with a freshly issued token. The lookup is only a fast path: the
// store's unique email index is the authoritative conflict check.
func (s *AuthService) Register(ctx context.Context, email, pass, fullName string) (*domain.User, string, error) {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", domain.ErrUserExists
	}

	hash, err := password.Hash(pass)
	if err != nil {
		return nil, "", err
	}

	user, err := s.repo.Insert(ctx, &domain.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		Role:         domain.RoleUser,
		IsActive:     true,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.issueFor(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies credentials and returns the identity plus a token. A
// missing account and a wrong password fail identically so the endpoint
// cannot be used to enumerate emails.
func (s *AuthService) Login(ctx context.Context, email, pass string) (*domain.User, string, error) {
	if s.exhausted(ctx, email) {
		return nil, "", domain.ErrTooManyAttempts
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !user.IsActive {
		return nil, "", domain.ErrAccountDisabled
	}

	if !password.Verify(pass, user.PasswordHash) {
		s.recordFailure(ctx, email)
		return nil, "", domain.ErrInvalidCredentials
	}

	s.resetFailures(ctx, email)

	token, err := s.issueFor(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) issueFor(user *domain.User) (string, error) {
	return s.tokens.Issue(domain.Claims{UserID: user.ID, Email: user.Email, Role: user.Role})
}

// The limiter degrades open: a broken throttle backend must never take
// login down with it.

func (s *AuthService) exhausted(ctx context.Context, email string) bool {
	if s.limiter == nil {
		return false
	}
	blocked, err := s.limiter.Exhausted(ctx, email)
	if err != nil {
		s.log.Warn().Err(err).Msg("login limiter unavailable, skipping throttle check")
		return false
	}
	return blocked
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.RecordFailure(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("login limiter unavailable, failure not recorded")
	}
}

func (s *AuthService) resetFailures(ctx context.Context, email string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.Reset(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("login limiter unavailable, counter not reset")
	}
}
