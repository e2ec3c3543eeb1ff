package repositories

import "gostore/internal/models"

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	Create(product *models.Product) error
	GetAll(offset, limit int) ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	GetByName(name string) (*models.Product, error)
	Update(product *models.Product) error
	Delete(id uint) error
}
