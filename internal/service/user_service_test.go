package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-server/internal/auth"
	"blog-server/internal/domain"
)

func TestUserService_RegisterDuplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u, err := f.userSvc.Register(ctx, "alice01", "Secret123")
	require.NoError(t, err)
	assert.Equal(t, "alice01", u.Username)
	assert.Empty(t, u.PasswordHash)

	stored, err := f.users.GetByUsername(ctx, "alice01")
	require.NoError(t, err)
	assert.Equal(t, "5c90b96a75d4f9d5a1cfaa6f532afdc8", stored.PasswordHash)

	_, err = f.userSvc.Register(ctx, "alice01", "Other456")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	stored, err = f.users.GetByUsername(ctx, "alice01")
	require.NoError(t, err)
	assert.Equal(t, "5c90b96a75d4f9d5a1cfaa6f532afdc8", stored.PasswordHash)
}

func TestUserService_Login(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.userSvc.Register(ctx, "alice01", "Secret123")
	require.NoError(t, err)

	_, err = f.userSvc.Login(ctx, "nobody", "Secret123")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = f.userSvc.Login(ctx, "alice01", "WrongPass")
	assert.ErrorIs(t, err, ErrCredentialMismatch)

	token, err := f.userSvc.Login(ctx, "alice01", "Secret123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.True(t, f.redis.Exists(token))
	assert.Equal(t, time.Hour, f.redis.TTL(token))

	identity, err := f.tokens.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "alice01", identity.Username)
	assert.Positive(t, identity.UserID)
}

func TestUserService_ChangePassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.userSvc.Register(ctx, "alice01", "Secret123")
	require.NoError(t, err)
	token, err := f.userSvc.Login(ctx, "alice01", "Secret123")
	require.NoError(t, err)
	identity, err := f.tokens.Authenticate(ctx, token)
	require.NoError(t, err)

	err = f.userSvc.ChangePassword(ctx, identity, token, PasswordChange{OldPassword: "Secret123", NewPassword: "NewPass1"})
	assert.ErrorIs(t, err, ErrPasswordIncomplete)

	err = f.userSvc.ChangePassword(ctx, identity, token, PasswordChange{OldPassword: "Nope1234", NewPassword: "NewPass1", RePassword: "NewPass1"})
	assert.ErrorIs(t, err, ErrOldPasswordMismatch)

	err = f.userSvc.ChangePassword(ctx, identity, token, PasswordChange{OldPassword: "Secret123", NewPassword: "NewPass1", RePassword: "NewPass2"})
	assert.ErrorIs(t, err, ErrPasswordConfirmMismatch)

	// failed attempts leave the session alone
	assert.True(t, f.redis.Exists(token))

	err = f.userSvc.ChangePassword(ctx, identity, token, PasswordChange{OldPassword: "Secret123", NewPassword: "NewPass1", RePassword: "NewPass1"})
	require.NoError(t, err)

	assert.False(t, f.redis.Exists(token))
	_, err = f.tokens.Authenticate(ctx, token)
	assert.ErrorIs(t, err, auth.ErrTokenRevoked)

	_, err = f.userSvc.Login(ctx, "alice01", "Secret123")
	assert.ErrorIs(t, err, ErrCredentialMismatch)
	_, err = f.userSvc.Login(ctx, "alice01", "NewPass1")
	require.NoError(t, err)
}

func TestUserService_ProfileAndAvatar(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u, err := f.userSvc.Register(ctx, "alice01", "Secret123")
	require.NoError(t, err)
	identity := domain.Identity{UserID: u.ID, Username: u.Username}

	require.NoError(t, f.userSvc.UpdateProfile(ctx, identity, "Alice", "alice@example.com"))
	require.NoError(t, f.userSvc.UpdateAvatar(ctx, identity, "https://cdn.example.com/a.png"))

	got, err := f.userSvc.Profile(ctx, identity)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Nickname)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, "https://cdn.example.com/a.png", got.AvatarURL)
	assert.Empty(t, got.PasswordHash)

	_, err = f.userSvc.Profile(ctx, domain.Identity{UserID: 404, Username: "ghost"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_Logout(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.userSvc.Register(ctx, "alice01", "Secret123")
	require.NoError(t, err)
	token, err := f.userSvc.Login(ctx, "alice01", "Secret123")
	require.NoError(t, err)

	require.NoError(t, f.userSvc.Logout(ctx, token))
	require.NoError(t, f.userSvc.Logout(ctx, token))
	assert.False(t, f.redis.Exists(token))
}

type failingTokens struct{}

func (failingTokens) Issue(context.Context, domain.Identity) (string, error) {
	return "", errors.New("boom")
}

func (failingTokens) Revoke(context.Context, string) error { return errors.New("boom") }

func TestUserService_TokenFailuresSurface(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := NewUserService(f.users, auth.MD5Hasher{}, failingTokens{})

	u, err := svc.Register(ctx, "alice01", "Secret123")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice01", "Secret123")
	assert.ErrorContains(t, err, "issue token")

	err = svc.ChangePassword(ctx, domain.Identity{UserID: u.ID, Username: u.Username}, "tok",
		PasswordChange{OldPassword: "Secret123", NewPassword: "NewPass1", RePassword: "NewPass1"})
	assert.ErrorContains(t, err, "token not revoked")
}
