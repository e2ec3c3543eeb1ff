package services

import (
	"errors"
	"fmt"
	"log"

	"gostore/internal/models"
	"gostore/internal/repositories"

	"github.com/google/uuid"
)

// placeholderShippingAddress stands in until the store collects real
// shipping addresses at checkout.
const placeholderShippingAddress = "123 Main St, Anytown, CA 12345"

// OrderEventPublisher publishes order lifecycle events to the message
// broker. A nil publisher disables publication without failing checkout.
type OrderEventPublisher interface {
	PublishOrderCreated(event map[string]interface{}) error
}

// OrderService handles the checkout workflow.
type OrderService struct {
	orderRepo repositories.OrderRepository
	cartRepo  repositories.CartRepository
	userRepo  repositories.UserRepository
	publisher OrderEventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(
	orderRepo repositories.OrderRepository,
	cartRepo repositories.CartRepository,
	userRepo repositories.UserRepository,
	publisher OrderEventPublisher,
) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		userRepo:  userRepo,
		publisher: publisher,
	}
}

// Checkout converts the user's cart into an order. The order amount is the
// sum of each line item's unit product price, one order detail is written
// per line item, and the cart's items are cleared — order creation and cart
// clearing commit in a single transaction. The cart row itself survives,
// empty, for reuse.
func (s *OrderService) Checkout(userID uint) (*models.Order, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("user with id %d does not exist: %w", userID, ErrNotFound)
		}
		return nil, err
	}

	cart, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("cart for user %d does not exist: %w", userID, ErrNotFound)
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, fmt.Errorf("cart for user %d: %w", userID, ErrEmptyCart)
	}

	var total float64
	details := make([]models.OrderDetail, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.Product != nil {
			total += item.Product.Price
		}
		details = append(details, models.OrderDetail{
			ProductID: item.ProductID,
			Quantity:  1,
		})
	}

	order := &models.Order{
		OrderNumber:     uuid.NewString(),
		CustomerID:      user.ID,
		OrderAmount:     total,
		Status:          models.OrderStatusPending,
		ShippingAddress: placeholderShippingAddress,
		Details:         details,
	}

	if err := s.orderRepo.CreateFromCart(order, cart.ID); err != nil {
		return nil, err
	}
	order.User = user

	s.publishOrderCreated(order)
	return order, nil
}

// Orders returns all orders belonging to the user, newest data preloaded.
func (s *OrderService) Orders(userID uint) ([]models.Order, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("user with id %d does not exist: %w", userID, ErrNotFound)
		}
		return nil, err
	}
	return s.orderRepo.GetAllByCustomer(userID)
}

// publishOrderCreated emits an order.created event. Publication failures are
// logged, not surfaced; the order is already committed.
func (s *OrderService) publishOrderCreated(order *models.Order) {
	if s.publisher == nil {
		return
	}

	event := map[string]interface{}{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"customer_id":  order.CustomerID,
		"status":       string(order.Status),
		"total":        order.OrderAmount,
	}
	if err := s.publisher.PublishOrderCreated(event); err != nil {
		log.Printf("Warning: failed to publish order created event for order %d: %v", order.ID, err)
	}
}
