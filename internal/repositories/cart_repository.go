package repositories

import "gostore/internal/models"

// CartRepository defines the interface for cart and cart-item data access.
type CartRepository interface {
	Create(cart *models.Cart) error
	// GetByUserID returns the user's cart with its line items and their
	// product display data preloaded.
	GetByUserID(userID uint) (*models.Cart, error)
	AddItem(item *models.CartItem) error
	// RemoveItem deletes one line item, scoped to the given cart so a
	// caller can never remove another user's item.
	RemoveItem(cartID, itemID uint) error
}
