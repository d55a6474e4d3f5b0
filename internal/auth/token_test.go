package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-server/internal/domain"
	"blog-server/internal/session"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTokenService(t *testing.T, ttl time.Duration) (*TokenService, *fakeClock, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := NewTokenService("it", ttl, session.NewRedisStore(client), WithClock(clock.Now))
	return svc, clock, mr
}

var alice = domain.Identity{UserID: 7, Username: "alice01"}

func TestTokenService_RoundTrip(t *testing.T) {
	svc, _, mr := newTokenService(t, time.Hour)
	ctx := context.Background()

	token, err := svc.Issue(ctx, alice)
	require.NoError(t, err)

	got, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, alice, got)

	got, err = svc.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, alice, got)

	// the store entry is self-referential and lives as long as the token
	v, err := mr.Get(token)
	require.NoError(t, err)
	assert.Equal(t, token, v)
	assert.Equal(t, time.Hour, mr.TTL(token))
}

func TestTokenService_ClaimShape(t *testing.T) {
	svc, clock, _ := newTokenService(t, time.Hour)

	token, err := svc.Issue(context.Background(), alice)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)

	user, ok := claims["user"].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 7, user["id"])
	assert.Equal(t, "alice01", user["username"])
	assert.EqualValues(t, clock.now.Add(time.Hour).Unix(), claims["exp"])
}

func TestTokenService_Deterministic(t *testing.T) {
	svc, _, _ := newTokenService(t, time.Hour)
	ctx := context.Background()

	a, err := svc.Issue(ctx, alice)
	require.NoError(t, err)
	b, err := svc.Issue(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestTokenService_ExpiryBoundary(t *testing.T) {
	svc, clock, _ := newTokenService(t, time.Hour)
	issuedAt := clock.now

	token, err := svc.Issue(context.Background(), alice)
	require.NoError(t, err)

	clock.now = issuedAt.Add(time.Hour - time.Second)
	_, err = svc.Verify(token)
	require.NoError(t, err)

	clock.now = issuedAt.Add(time.Hour)
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)

	clock.now = issuedAt.Add(2 * time.Hour)
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_RevokeGate(t *testing.T) {
	svc, _, _ := newTokenService(t, time.Hour)
	ctx := context.Background()

	token, err := svc.Issue(ctx, alice)
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(ctx, token))

	active, err := svc.IsActive(ctx, token)
	require.NoError(t, err)
	assert.False(t, active)

	// still decodes, but is no longer trusted
	_, err = svc.Verify(token)
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, token)
	assert.ErrorIs(t, err, ErrTokenRevoked)

	// idempotent
	require.NoError(t, svc.Revoke(ctx, token))
	active, err = svc.IsActive(ctx, token)
	require.NoError(t, err)
	assert.False(t, active)
}

func TestTokenService_CacheExpiryRevokes(t *testing.T) {
	svc, _, mr := newTokenService(t, time.Hour)
	ctx := context.Background()

	token, err := svc.Issue(ctx, alice)
	require.NoError(t, err)

	mr.FastForward(time.Hour)
	_, err = svc.Authenticate(ctx, token)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestTokenService_RejectsTampering(t *testing.T) {
	svc, clock, _ := newTokenService(t, time.Hour)
	ctx := context.Background()

	token, err := svc.Issue(ctx, alice)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	forged := parts[0] + "." + parts[1] + "x." + parts[2]
	_, err = svc.Verify(forged)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	other := NewTokenService("other-secret", time.Hour, nil, WithClock(clock.Now))
	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = svc.Verify("not.a.jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = svc.Verify("")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_RejectsOtherAlgorithms(t *testing.T) {
	svc, clock, _ := newTokenService(t, time.Hour)

	claims := Claims{
		User: alice,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(clock.now.Add(time.Hour)),
		},
	}
	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("it"))
	require.NoError(t, err)
	_, err = svc.Verify(hs512)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.Verify(none)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_RequiresExpiryAndUser(t *testing.T) {
	svc, clock, _ := newTokenService(t, time.Hour)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{User: alice}).SignedString([]byte("it"))
	require.NoError(t, err)
	_, err = svc.Verify(noExp)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(clock.now.Add(time.Hour))},
	}).SignedString([]byte("it"))
	require.NoError(t, err)
	_, err = svc.Verify(noUser)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
