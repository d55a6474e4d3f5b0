package service

import (
	"context"
	"errors"

	"blog-server/internal/domain"
	"blog-server/internal/repository"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// ErrArticleNotFound is returned for unknown articles and for articles of other users.
var ErrArticleNotFound = errors.New("article not found")

// ArticleInput holds the writable fields of an article.
type ArticleInput struct {
	Title      string
	Content    string
	CoverImg   string
	State      domain.ArticleState
	CategoryID int64
}

// ListQuery selects one page of the owner's articles.
type ListQuery struct {
	PageNum  int
	PageSize int
	Filter   domain.ArticleFilter
}

// ArticleService manages the articles of a single owner.
type ArticleService interface {
	Add(ctx context.Context, owner domain.Identity, in ArticleInput) (*domain.Article, error)
	List(ctx context.Context, owner domain.Identity, q ListQuery) (domain.Page[domain.Article], error)
	Get(ctx context.Context, owner domain.Identity, id int64) (*domain.Article, error)
	Update(ctx context.Context, owner domain.Identity, id int64, in ArticleInput) (*domain.Article, error)
	Delete(ctx context.Context, owner domain.Identity, id int64) error
}

type articleService struct {
	articles   repository.ArticleRepository
	categories repository.CategoryRepository
}

func NewArticleService(articles repository.ArticleRepository, categories repository.CategoryRepository) ArticleService {
	return &articleService{
		articles:   articles,
		categories: categories,
	}
}

func (s *articleService) Add(ctx context.Context, owner domain.Identity, in ArticleInput) (*domain.Article, error) {
	if err := s.ensureCategory(ctx, owner, in.CategoryID); err != nil {
		return nil, err
	}

	article := &domain.Article{OwnerID: owner.UserID}
	applyInput(article, in)
	if _, err := s.articles.Create(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *articleService) List(ctx context.Context, owner domain.Identity, q ListQuery) (domain.Page[domain.Article], error) {
	pageNum, pageSize := normalizePage(q.PageNum, q.PageSize)

	items, total, err := s.articles.List(ctx, owner.UserID, q.Filter, pageSize, (pageNum-1)*pageSize)
	if err != nil {
		return domain.Page[domain.Article]{}, err
	}
	return domain.Page[domain.Article]{Total: total, Items: items}, nil
}

func (s *articleService) Get(ctx context.Context, owner domain.Identity, id int64) (*domain.Article, error) {
	article, err := s.articles.Get(ctx, owner.UserID, id)
	if err != nil {
		return nil, articleError(err)
	}
	return article, nil
}

func (s *articleService) Update(ctx context.Context, owner domain.Identity, id int64, in ArticleInput) (*domain.Article, error) {
	article, err := s.articles.Get(ctx, owner.UserID, id)
	if err != nil {
		return nil, articleError(err)
	}
	if err := s.ensureCategory(ctx, owner, in.CategoryID); err != nil {
		return nil, err
	}

	applyInput(article, in)
	if err := s.articles.Update(ctx, article); err != nil {
		return nil, articleError(err)
	}
	return article, nil
}

func (s *articleService) Delete(ctx context.Context, owner domain.Identity, id int64) error {
	return articleError(s.articles.Delete(ctx, owner.UserID, id))
}

func (s *articleService) ensureCategory(ctx context.Context, owner domain.Identity, categoryID int64) error {
	if _, err := s.categories.Get(ctx, owner.UserID, categoryID); err != nil {
		return categoryError(err)
	}
	return nil
}

func applyInput(article *domain.Article, in ArticleInput) {
	article.Title = in.Title
	article.Content = in.Content
	article.CoverImg = in.CoverImg
	article.State = in.State
	article.CategoryID = in.CategoryID
}

func normalizePage(pageNum, pageSize int) (int, int) {
	if pageNum < 1 {
		pageNum = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return pageNum, pageSize
}

func articleError(err error) error {
	if err != nil && errors.Is(err, repository.ErrNotFound) {
		return ErrArticleNotFound
	}
	return err
}
