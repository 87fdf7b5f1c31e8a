package service

import (
	"context"
	"errors"
	"fmt"

	"catalog-api/internal/domain"
	"catalog-api/internal/repository"
	"catalog-api/internal/schema"
)

// CategoryService defines the interface for category business logic
type CategoryService interface {
	ListCategories(ctx context.Context) (*schema.CategoryListResponse, error)
	GetCategory(ctx context.Context, id int64) (*schema.CategoryResponse, error)
	CreateCategory(ctx context.Context, data schema.CategoryCreate) (*schema.CategoryResponse, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new instance of CategoryService
func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) ListCategories(ctx context.Context) (*schema.CategoryListResponse, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return schema.NewCategoryListResponse(categories), nil
}

func (s *categoryService) GetCategory(ctx context.Context, id int64) (*schema.CategoryResponse, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, &NotFoundError{Resource: "category", ID: id}
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	resp := schema.NewCategoryResponse(category)
	return &resp, nil
}

// CreateCategory returns repository.ErrCategoryAlreadyExists when the name is taken
func (s *categoryService) CreateCategory(ctx context.Context, data schema.CategoryCreate) (*schema.CategoryResponse, error) {
	category := &domain.Category{
		Name:        data.Name,
		Description: data.Description,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	resp := schema.NewCategoryResponse(category)
	return &resp, nil
}
