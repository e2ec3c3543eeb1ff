package models

import "time"

// Cart is a user's mutable collection of prospective purchase line items.
// A user has at most one cart; it is created lazily on the first add and
// survives checkout empty for reuse.
type Cart struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"index"`
	CreatedDate time.Time `json:"created_date" gorm:"autoCreateTime"`

	Items []CartItem `json:"cart_items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// CartItem is one product line within a cart. Every add appends a fresh
// quantity-1 line; the same product can appear on several lines.
type CartItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CartID      uint      `json:"cart_id" gorm:"index"`
	ProductID   uint      `json:"product_id" gorm:"index"`
	Quantity    int       `json:"quantity" gorm:"default:1"`
	CreatedDate time.Time `json:"created_date" gorm:"autoCreateTime"`

	Product *Product `json:"product,omitempty"`
}

// TableName overrides the default pluralization.
func (CartItem) TableName() string {
	return "cart_items"
}
