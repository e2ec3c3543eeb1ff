package repositories

import "gostore/internal/models"

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// CreateFromCart persists the order (with its details) and empties the
	// source cart in one transaction, so a failure on either side leaves
	// no partially-applied state.
	CreateFromCart(order *models.Order, cartID uint) error
	// GetAllByCustomer returns the customer's orders with details, product
	// display data and the owning user preloaded.
	GetAllByCustomer(customerID uint) ([]models.Order, error)
}
