package service

import (
	"context"
	"errors"
	"fmt"

	"blog-server/internal/auth"
	"blog-server/internal/domain"
	"blog-server/internal/repository"
)

var (
	// ErrUserNotFound indicates that no user has the given username.
	ErrUserNotFound = errors.New("user not found")
	// ErrCredentialMismatch indicates that the supplied password is wrong.
	ErrCredentialMismatch = errors.New("credential mismatch")
	// ErrUserAlreadyExists is returned when attempting to register with an existing username.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrPasswordIncomplete is returned when a password change omits a field.
	ErrPasswordIncomplete = errors.New("password fields incomplete")
	// ErrOldPasswordMismatch is returned when the current password does not match.
	ErrOldPasswordMismatch = errors.New("old password mismatch")
	// ErrPasswordConfirmMismatch is returned when new and repeated passwords differ.
	ErrPasswordConfirmMismatch = errors.New("new password confirmation mismatch")
)

// Tokens is the slice of the session token service the user service needs.
type Tokens interface {
	Issue(ctx context.Context, identity domain.Identity) (string, error)
	Revoke(ctx context.Context, token string) error
}

// UserService describes user lifecycle operations. Calls acting on the
// current user take the request's identity explicitly.
type UserService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, token string) error
	Profile(ctx context.Context, identity domain.Identity) (*domain.User, error)
	UpdateProfile(ctx context.Context, identity domain.Identity, nickname, email string) error
	UpdateAvatar(ctx context.Context, identity domain.Identity, avatarURL string) error
	ChangePassword(ctx context.Context, identity domain.Identity, token string, change PasswordChange) error
}

// PasswordChange carries the three fields of a password change request.
type PasswordChange struct {
	OldPassword string
	NewPassword string
	RePassword  string
}

type userService struct {
	users  repository.UserRepository
	hasher auth.PasswordHasher
	tokens Tokens
}

func NewUserService(users repository.UserRepository, hasher auth.PasswordHasher, tokens Tokens) UserService {
	return &userService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register stores a new credential. Username uniqueness is left to the
// repository's constraint.
func (s *userService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
	}
	if _, err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	return sanitizeUser(user), nil
}

func (s *userService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", ErrCredentialMismatch
	}

	token, err := s.tokens.Issue(ctx, domain.Identity{UserID: user.ID, Username: user.Username})
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

func (s *userService) Logout(ctx context.Context, token string) error {
	return s.tokens.Revoke(ctx, token)
}

func (s *userService) Profile(ctx context.Context, identity domain.Identity) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return sanitizeUser(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, identity domain.Identity, nickname, email string) error {
	return s.users.UpdateProfile(ctx, identity.UserID, nickname, email)
}

func (s *userService) UpdateAvatar(ctx context.Context, identity domain.Identity, avatarURL string) error {
	return s.users.UpdateAvatar(ctx, identity.UserID, avatarURL)
}

// ChangePassword replaces the caller's password and revokes token, forcing a
// new login.
func (s *userService) ChangePassword(ctx context.Context, identity domain.Identity, token string, change PasswordChange) error {
	if change.OldPassword == "" || change.NewPassword == "" || change.RePassword == "" {
		return ErrPasswordIncomplete
	}

	user, err := s.users.GetByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if !s.hasher.Verify(change.OldPassword, user.PasswordHash) {
		return ErrOldPasswordMismatch
	}
	if change.NewPassword != change.RePassword {
		return ErrPasswordConfirmMismatch
	}

	hash, err := s.hasher.Hash(change.NewPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	if err := s.tokens.Revoke(ctx, token); err != nil {
		return fmt.Errorf("password updated but token not revoked: %w", err)
	}
	return nil
}

func sanitizeUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	return &domain.User{
		ID:        user.ID,
		Username:  user.Username,
		Nickname:  user.Nickname,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
