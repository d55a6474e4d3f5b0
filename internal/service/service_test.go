package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"blog-server/internal/auth"
	"blog-server/internal/repository"
	"blog-server/internal/repository/sqlite"
	"blog-server/internal/session"
)

type fixture struct {
	users      repository.UserRepository
	categories repository.CategoryRepository
	articles   repository.ArticleRepository
	tokens     *auth.TokenService
	redis      *miniredis.Miniredis

	userSvc     UserService
	categorySvc CategoryService
	articleSvc  ArticleService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	f := &fixture{
		users:      sqlite.NewUserRepository(db),
		categories: sqlite.NewCategoryRepository(db),
		articles:   sqlite.NewArticleRepository(db),
	}
	require.NoError(t, f.users.Init(ctx))
	require.NoError(t, f.categories.Init(ctx))
	require.NoError(t, f.articles.Init(ctx))

	f.redis = miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: f.redis.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	f.tokens = auth.NewTokenService("it", time.Hour, session.NewRedisStore(client))

	f.userSvc = NewUserService(f.users, auth.MD5Hasher{}, f.tokens)
	f.categorySvc = NewCategoryService(f.categories)
	f.articleSvc = NewArticleService(f.articles, f.categories)
	return f
}
