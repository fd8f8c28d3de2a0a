package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/userhub/identity-api/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// tokenClaims is the wire shape of the JWT payload: the identity subset plus
// the registered expiry/issued-at fields.
type tokenClaims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed, time-limited identity
// tokens. It is stateless; once issued a token stays valid for its full
// lifetime.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs the claims with an expiry of now + ttl.
func (s *TokenService) Issue(claims domain.Claims) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})
	return t.SignedString(s.secret)
}

// Verify checks signature, algorithm, and expiry. Malformed, tampered, and
// expired tokens all fail with the same domain.ErrInvalidToken so the
// response cannot be used as an oracle.
func (s *TokenService) Verify(token string) (*domain.Claims, error) {
	var tc tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &tc, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	return &domain.Claims{UserID: tc.UserID, Email: tc.Email, Role: tc.Role}, nil
}
