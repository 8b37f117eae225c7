package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/recyclezone/marketplace/internal/domain/catalog"
	"github.com/recyclezone/marketplace/internal/domain/shared"
)

// CategoryService handles category operations
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo catalog.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// List returns all categories by name
func (s *CategoryService) List(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	responses := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = CategoryResponse{ID: c.ID, Name: c.Name, ImageURL: c.ImageURL}
	}
	return responses, nil
}

// Create adds a category
func (s *CategoryService) Create(ctx context.Context, name, imageURL string) (shared.InsertResult, error) {
	category, err := catalog.NewCategory(name, imageURL)
	if err != nil {
		return shared.InsertResult{}, err
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return shared.InsertResult{}, shared.NewDomainError("ALREADY_EXISTS", "Category already exists")
		}
		return shared.InsertResult{}, fmt.Errorf("failed to create category: %w", err)
	}
	return shared.NewInsertResult(category.ID), nil
}
