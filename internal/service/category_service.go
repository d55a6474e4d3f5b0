package service

import (
	"context"
	"errors"

	"blog-server/internal/domain"
	"blog-server/internal/repository"
)

var (
	// ErrCategoryNotFound is returned for unknown categories and for categories of other users.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrCategoryInUse is returned when deleting a category that still has articles.
	ErrCategoryInUse = errors.New("category in use")
)

// CategoryService manages the categories of a single owner.
type CategoryService interface {
	Add(ctx context.Context, owner domain.Identity, name, alias string) (*domain.Category, error)
	List(ctx context.Context, owner domain.Identity) ([]domain.Category, error)
	Get(ctx context.Context, owner domain.Identity, id int64) (*domain.Category, error)
	Update(ctx context.Context, owner domain.Identity, id int64, name, alias string) (*domain.Category, error)
	Delete(ctx context.Context, owner domain.Identity, id int64) error
}

type categoryService struct {
	categories repository.CategoryRepository
}

func NewCategoryService(categories repository.CategoryRepository) CategoryService {
	return &categoryService{categories: categories}
}

func (s *categoryService) Add(ctx context.Context, owner domain.Identity, name, alias string) (*domain.Category, error) {
	category := &domain.Category{
		Name:    name,
		Alias:   alias,
		OwnerID: owner.UserID,
	}
	if _, err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) List(ctx context.Context, owner domain.Identity) ([]domain.Category, error) {
	return s.categories.ListByOwner(ctx, owner.UserID)
}

func (s *categoryService) Get(ctx context.Context, owner domain.Identity, id int64) (*domain.Category, error) {
	category, err := s.categories.Get(ctx, owner.UserID, id)
	if err != nil {
		return nil, categoryError(err)
	}
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, owner domain.Identity, id int64, name, alias string) (*domain.Category, error) {
	category, err := s.categories.Get(ctx, owner.UserID, id)
	if err != nil {
		return nil, categoryError(err)
	}
	category.Name = name
	category.Alias = alias
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, categoryError(err)
	}
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, owner domain.Identity, id int64) error {
	return categoryError(s.categories.Delete(ctx, owner.UserID, id))
}

func categoryError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return ErrCategoryNotFound
	case errors.Is(err, repository.ErrInUse):
		return ErrCategoryInUse
	default:
		return err
	}
}
