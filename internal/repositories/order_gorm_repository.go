package repositories

import (
	"fmt"

	"gostore/internal/models"

	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{db: db}
}

// CreateFromCart inserts the order and its details and clears the cart's
// line items inside a single transaction.
func (r *GORMOrderRepository) CreateFromCart(order *models.Order, cartID uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		return tx.Delete(&models.CartItem{}, "cart_id = ?", cartID).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create order from cart %d: %w", cartID, err)
	}
	return nil
}

// GetAllByCustomer retrieves all orders for one customer.
func (r *GORMOrderRepository) GetAllByCustomer(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.
		Preload("Details.Product").
		Preload("User").
		Find(&orders, "customer_id = ?", customerID).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get orders for customer %d: %w", customerID, err)
	}
	return orders, nil
}
