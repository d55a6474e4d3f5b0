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

const createCategoriesTable = `
CREATE TABLE IF NOT EXISTS categories (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	category_name TEXT NOT NULL,
	category_alias TEXT NOT NULL,
	create_user INTEGER NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,
	FOREIGN KEY(create_user) REFERENCES users(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_categories_create_user ON categories(create_user);
`

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) repository.CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createCategoriesTable); err != nil {
		return fmt.Errorf("create categories table: %w", err)
	}
	return nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) (int64, error) {
	now := time.Now().UTC()
	category.CreatedAt = now
	category.UpdatedAt = now

	res, err := r.db.ExecContext(ctx, `
INSERT INTO categories (category_name, category_alias, create_user, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)`,
		category.Name,
		category.Alias,
		category.OwnerID,
		category.CreatedAt,
		category.UpdatedAt,
	)
	if err != nil {
		return 0, classify(err, "insert category")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("category last insert id: %w", err)
	}
	category.ID = id
	return id, nil
}

func (r *CategoryRepository) Get(ctx context.Context, ownerID, id int64) (*domain.Category, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, category_name, category_alias, create_user, created_at, updated_at
FROM categories
WHERE id=? AND create_user=?`,
		id,
		ownerID,
	)
	return scanCategory(row)
}

func (r *CategoryRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, category_name, category_alias, create_user, created_at, updated_at
FROM categories
WHERE create_user=?
ORDER BY id ASC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *category)
	}

	return categories, rows.Err()
}

func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	category.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
UPDATE categories
SET category_name=?, category_alias=?, updated_at=?
WHERE id=? AND create_user=?`,
		category.Name,
		category.Alias,
		category.UpdatedAt,
		category.ID,
		category.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return checkAffected(res, "update category")
}

func (r *CategoryRepository) Delete(ctx context.Context, ownerID, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id=? AND create_user=?`, id, ownerID)
	if err != nil {
		return classify(err, "delete category")
	}
	return checkAffected(res, "delete category")
}

func scanCategory(scanner interface {
	Scan(dest ...any) error
}) (*domain.Category, error) {
	var category domain.Category
	if err := scanner.Scan(
		&category.ID,
		&category.Name,
		&category.Alias,
		&category.OwnerID,
		&category.CreatedAt,
		&category.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("category: %w", repository.ErrNotFound)
		}
		return nil, fmt.Errorf("scan category: %w", err)
	}
	return &category, nil
}
