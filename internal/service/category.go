package service

import (
	"context"
	"errors"

	"github.com/libraria/libraria-go/internal/model"
	"github.com/libraria/libraria-go/internal/repository"
)

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrDuplicateCategoryName = errors.New("category name already exists")
)

// CategoryService handles category business logic.
type CategoryService struct {
	repo *repository.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// Create creates a new category. Name uniqueness is enforced by the
// database constraint and surfaced as ErrDuplicateCategoryName.
func (s *CategoryService) Create(ctx context.Context, req model.CategoryRequest) (model.CategoryResponse, error) {
	category := &model.Category{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicateCategoryName) {
			return model.CategoryResponse{}, ErrDuplicateCategoryName
		}
		return model.CategoryResponse{}, err
	}

	return categoryToResponse(category, 0), nil
}

// GetAll retrieves all categories with their book counts.
func (s *CategoryService) GetAll(ctx context.Context) ([]model.CategoryResponse, error) {
	categories, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []model.CategoryResponse{}
	}
	return categories, nil
}

// GetByID retrieves a single category.
func (s *CategoryService) GetByID(ctx context.Context, id int64) (model.CategoryResponse, error) {
	category, bookCount, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return model.CategoryResponse{}, ErrCategoryNotFound
		}
		return model.CategoryResponse{}, err
	}
	return categoryToResponse(category, bookCount), nil
}

// Update overwrites a category's name and description.
func (s *CategoryService) Update(ctx context.Context, id int64, req model.CategoryRequest) (model.CategoryResponse, error) {
	category, bookCount, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return model.CategoryResponse{}, ErrCategoryNotFound
		}
		return model.CategoryResponse{}, err
	}

	category.Name = req.Name
	category.Description = req.Description

	if err := s.repo.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicateCategoryName) {
			return model.CategoryResponse{}, ErrDuplicateCategoryName
		}
		return model.CategoryResponse{}, err
	}

	return categoryToResponse(category, bookCount), nil
}

// Delete removes a category. The storage-level cascade deletes every
// book referencing it in the same statement.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return ErrCategoryNotFound
	}
	return err
}

func categoryToResponse(c *model.Category, bookCount int) model.CategoryResponse {
	return model.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		BookCount:   bookCount,
	}
}
