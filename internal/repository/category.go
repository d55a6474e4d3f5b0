package repository

import (
	"context"

	"blog-server/internal/domain"
)

// CategoryRepository persists categories. Every read and write is scoped to
// the owning user; rows of other owners behave as ErrNotFound.
type CategoryRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, category *domain.Category) (int64, error)
	Get(ctx context.Context, ownerID, id int64) (*domain.Category, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, ownerID, id int64) error
}
