package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"blog-server/internal/domain"
	"blog-server/internal/session"
)

var (
	// ErrTokenInvalid covers bad signatures, malformed payloads and unexpected algorithms.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrTokenExpired is returned at or after the token's embedded expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenRevoked is returned for a well-formed token missing from the session store.
	ErrTokenRevoked = errors.New("token revoked")
)

// Claims is the signed payload: {"user": {"id", "username"}, "exp", "iat"}.
type Claims struct {
	User domain.Identity `json:"user"`
	jwt.RegisteredClaims
}

// TokenService issues and checks HS256 session tokens. A token is trusted only
// when its signature and expiry verify AND it is still present in the store.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	store  session.Store
	now    func() time.Time
}

type TokenOption func(*TokenService)

// WithClock overrides the time source used for expiry and validation.
func WithClock(now func() time.Time) TokenOption {
	return func(s *TokenService) {
		s.now = now
	}
}

// NewTokenService builds a TokenService. ttl governs both the embedded expiry
// and the lifetime of the store entry.
func NewTokenService(secret string, ttl time.Duration, store session.Store, opts ...TokenOption) *TokenService {
	s := &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		store:  store,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TTL reports the lifetime given to newly issued tokens.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token for identity and records it as active.
func (s *TokenService) Issue(ctx context.Context, identity domain.Identity) (string, error) {
	now := s.now()
	claims := Claims{
		User: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	if err := s.store.Set(ctx, token, token, s.ttl); err != nil {
		return "", fmt.Errorf("store token: %w", err)
	}
	return token, nil
}

// Verify checks signature and expiry and returns the embedded identity. It
// does not consult the store.
func (s *TokenService) Verify(token string) (domain.Identity, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Identity{}, ErrTokenExpired
		}
		return domain.Identity{}, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if claims.User.UserID <= 0 || claims.User.Username == "" {
		return domain.Identity{}, fmt.Errorf("%w: missing user claim", ErrTokenInvalid)
	}
	return claims.User, nil
}

// IsActive reports whether token is still present in the store.
func (s *TokenService) IsActive(ctx context.Context, token string) (bool, error) {
	return s.store.Exists(ctx, token)
}

// Revoke removes token from the store. Revoking twice is harmless.
func (s *TokenService) Revoke(ctx context.Context, token string) error {
	if err := s.store.Delete(ctx, token); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// Authenticate runs Verify and then the store membership gate.
func (s *TokenService) Authenticate(ctx context.Context, token string) (domain.Identity, error) {
	identity, err := s.Verify(token)
	if err != nil {
		return domain.Identity{}, err
	}
	active, err := s.IsActive(ctx, token)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("check token: %w", err)
	}
	if !active {
		return domain.Identity{}, ErrTokenRevoked
	}
	return identity, nil
}
