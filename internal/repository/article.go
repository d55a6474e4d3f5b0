package repository

import (
	"context"

	"blog-server/internal/domain"
)

// ArticleRepository persists articles, scoped to the owning user.
type ArticleRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, article *domain.Article) (int64, error)
	Get(ctx context.Context, ownerID, id int64) (*domain.Article, error)
	List(ctx context.Context, ownerID int64, filter domain.ArticleFilter, limit, offset int) ([]domain.Article, int64, error)
	Update(ctx context.Context, article *domain.Article) error
	Delete(ctx context.Context, ownerID, id int64) error
}
