package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"blog-server/internal/domain"
	"blog-server/internal/repository"
)

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	nickname TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL DEFAULT '',
	user_pic TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createUsersTable); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	res, err := r.db.ExecContext(ctx, `
INSERT INTO users (username, password_hash, nickname, email, user_pic, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		user.Username,
		user.PasswordHash,
		user.Nickname,
		user.Email,
		user.AvatarURL,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return 0, classify(err, "insert user")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("user last insert id: %w", err)
	}
	user.ID = id
	return id, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, username, password_hash, nickname, email, user_pic, created_at, updated_at
FROM users
WHERE username = ?`,
		username,
	)
	return scanUser(row)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, username, password_hash, nickname, email, user_pic, created_at, updated_at
FROM users
WHERE id = ?`,
		id,
	)
	return scanUser(row)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE users
SET password_hash=?, updated_at=?
WHERE id=?`,
		passwordHash,
		time.Now().UTC(),
		id,
	)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return checkAffected(res, "update password")
}

func (r *UserRepository) UpdateAvatar(ctx context.Context, id int64, avatarURL string) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE users
SET user_pic=?, updated_at=?
WHERE id=?`,
		avatarURL,
		time.Now().UTC(),
		id,
	)
	if err != nil {
		return fmt.Errorf("update avatar: %w", err)
	}
	return checkAffected(res, "update avatar")
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id int64, nickname, email string) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE users
SET nickname=?, email=?, updated_at=?
WHERE id=?`,
		nickname,
		email,
		time.Now().UTC(),
		id,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return checkAffected(res, "update profile")
}

func scanUser(row interface {
	Scan(dest ...any) error
}) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Nickname,
		&user.Email,
		&user.AvatarURL,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user: %w", repository.ErrNotFound)
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &user, nil
}
