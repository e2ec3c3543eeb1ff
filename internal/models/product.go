package models

// Product represents a catalog item available for purchase.
//
// Quantity is the stock on hand. Add-to-cart refuses products with no stock
// but does not reserve or decrement it; see the checkout notes in DESIGN.md.
type Product struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"type:varchar(50);not null"`
	Description string  `json:"description" gorm:"type:varchar(255)"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	CategoryID  *uint   `json:"category_id"`

	Category *Category `json:"category,omitempty"`

	CartItems    []CartItem    `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	OrderDetails []OrderDetail `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}
