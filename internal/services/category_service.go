package services

import (
	"errors"
	"fmt"

	"gostore/internal/models"
	"gostore/internal/repositories"
)

// CategoryService handles business logic for catalog categories.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// Create adds a category. Fails with ErrConflict on a duplicate name.
func (s *CategoryService) Create(name string) (*models.Category, error) {
	existing, err := s.repo.GetByName(name)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing category: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("category with name %s: %w", name, ErrConflict)
	}

	category := &models.Category{Name: name}
	if err := s.repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// List returns a page of categories, never more than MaxPageSize.
func (s *CategoryService) List(offset, limit int) ([]models.Category, error) {
	offset, limit = clampPage(offset, limit)
	return s.repo.GetAll(offset, limit)
}

// Get returns one category or ErrNotFound.
func (s *CategoryService) Get(id uint) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("category with id %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return category, nil
}

// Update renames a category or fails with ErrNotFound.
func (s *CategoryService) Update(id uint, name string) (*models.Category, error) {
	category, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	category.Name = name
	if err := s.repo.Update(category); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("category with id %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return category, nil
}

// Delete removes a category or fails with ErrNotFound.
func (s *CategoryService) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("category with id %d: %w", id, ErrNotFound)
		}
		return err
	}
	return nil
}
