package models

import "time"

// OrderStatus is the fulfillment state of an order. New orders start PENDING.
type OrderStatus string

const (
	OrderStatusPending                    OrderStatus = "pending"
	OrderStatusAwaitingPayment            OrderStatus = "awaiting_payment"
	OrderStatusAwaitingFulfillment        OrderStatus = "awaiting_fulfillment"
	OrderStatusAwaitingShipment           OrderStatus = "awaiting_shipment"
	OrderStatusAwaitingPickup             OrderStatus = "awaiting_pickup"
	OrderStatusPartiallyShipped           OrderStatus = "partially_shipped"
	OrderStatusShipped                    OrderStatus = "shipped"
	OrderStatusCancelled                  OrderStatus = "cancelled"
	OrderStatusDeclined                   OrderStatus = "declined"
	OrderStatusRefunded                   OrderStatus = "refunded"
	OrderStatusManualVerificationRequired OrderStatus = "manual_verification_required"
)

// Order is an immutable record of a checkout, with its own line-item
// snapshots. The cart it came from is emptied but kept.
type Order struct {
	ID              uint        `json:"id" gorm:"primaryKey"`
	OrderNumber     string      `json:"order_number" gorm:"uniqueIndex;type:varchar(36)"`
	CustomerID      uint        `json:"customer_id" gorm:"index;not null"`
	OrderDate       time.Time   `json:"order_date" gorm:"autoCreateTime"`
	OrderAmount     float64     `json:"order_amount"`
	Status          OrderStatus `json:"status" gorm:"type:varchar(32);default:pending"`
	ShippingAddress string      `json:"shipping_address" gorm:"type:varchar(50)"`

	User    *User         `json:"user_info,omitempty" gorm:"foreignKey:CustomerID"`
	Details []OrderDetail `json:"order_details" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderDetail is the snapshot of one cart line item at order time.
type OrderDetail struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	OrderID     uint      `json:"order_id" gorm:"index;not null"`
	ProductID   uint      `json:"product_id" gorm:"index;not null"`
	Quantity    int       `json:"quantity" gorm:"default:1"`
	CreatedDate time.Time `json:"created_date" gorm:"autoCreateTime"`

	Product *Product `json:"product,omitempty"`
}

// TableName overrides the default pluralization.
func (OrderDetail) TableName() string {
	return "order_details"
}
