package services

import (
	"errors"
	"fmt"

	"gostore/internal/models"
	"gostore/internal/repositories"
)

// ProductService handles business logic for catalog products.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// ProductUpdate carries a partial update; nil fields are left untouched.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Quantity    *int
	CategoryID  *uint
}

// Create adds a product. Fails with ErrConflict on a duplicate name.
func (s *ProductService) Create(product *models.Product) error {
	existing, err := s.repo.GetByName(product.Name)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("failed to check existing product: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("product with name %s: %w", product.Name, ErrConflict)
	}
	return s.repo.Create(product)
}

// List returns a page of products, never more than MaxPageSize.
func (s *ProductService) List(offset, limit int) ([]models.Product, error) {
	offset, limit = clampPage(offset, limit)
	return s.repo.GetAll(offset, limit)
}

// Get returns one product or ErrNotFound.
func (s *ProductService) Get(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("product with id %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return product, nil
}

// Update applies the fields present in the payload and leaves the rest
// untouched. Fails with ErrNotFound for an unknown id.
func (s *ProductService) Update(id uint, update ProductUpdate) (*models.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.Price != nil {
		product.Price = *update.Price
	}
	if update.Quantity != nil {
		product.Quantity = *update.Quantity
	}
	if update.CategoryID != nil {
		product.CategoryID = update.CategoryID
	}

	if err := s.repo.Update(product); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("product with id %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return product, nil
}

// Delete removes a product or fails with ErrNotFound.
func (s *ProductService) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("product with id %d: %w", id, ErrNotFound)
		}
		return err
	}
	return nil
}
