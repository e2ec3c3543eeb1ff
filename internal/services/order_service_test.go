package services_test

import (
	"testing"

	"gostore/internal/models"
	"gostore/internal/repositories"
	"gostore/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newOrderService(publisher services.OrderEventPublisher) (*services.OrderService, *MockOrderRepository, *MockCartRepository, *MockUserRepository) {
	orderRepo := new(MockOrderRepository)
	cartRepo := new(MockCartRepository)
	userRepo := new(MockUserRepository)
	return services.NewOrderService(orderRepo, cartRepo, userRepo, publisher), orderRepo, cartRepo, userRepo
}

func TestOrderService_Checkout_UserMissing(t *testing.T) {
	service, orderRepo, _, userRepo := newOrderService(nil)

	userRepo.On("GetByID", uint(42)).Return(nil, repositories.ErrNotFound).Once()

	_, err := service.Checkout(42)
	assert.ErrorIs(t, err, services.ErrNotFound)
	orderRepo.AssertNotCalled(t, "CreateFromCart")
}

func TestOrderService_Checkout_CartMissing(t *testing.T) {
	service, orderRepo, cartRepo, userRepo := newOrderService(nil)

	userRepo.On("GetByID", models.DemoUserID).Return(&models.User{ID: models.DemoUserID}, nil).Once()
	cartRepo.On("GetByUserID", models.DemoUserID).Return(nil, repositories.ErrNotFound).Once()

	_, err := service.Checkout(models.DemoUserID)
	assert.ErrorIs(t, err, services.ErrNotFound)
	orderRepo.AssertNotCalled(t, "CreateFromCart")
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	service, orderRepo, cartRepo, userRepo := newOrderService(nil)

	userRepo.On("GetByID", models.DemoUserID).Return(&models.User{ID: models.DemoUserID}, nil).Once()
	cartRepo.On("GetByUserID", models.DemoUserID).Return(&models.Cart{ID: 3, UserID: models.DemoUserID}, nil).Once()

	_, err := service.Checkout(models.DemoUserID)
	assert.ErrorIs(t, err, services.ErrEmptyCart)
	// An empty cart must not produce an order.
	orderRepo.AssertNotCalled(t, "CreateFromCart")
}

func TestOrderService_Checkout(t *testing.T) {
	publisher := new(MockOrderEventPublisher)
	service, orderRepo, cartRepo, userRepo := newOrderService(publisher)

	user := &models.User{ID: models.DemoUserID, Name: "Demo User", Email: "demo@demo.com"}
	product := &models.Product{ID: 7, Name: "Headphones", Price: 19.99, Quantity: 5}
	cart := &models.Cart{
		ID:     3,
		UserID: models.DemoUserID,
		Items: []models.CartItem{
			{ID: 1, CartID: 3, ProductID: 7, Quantity: 1, Product: product},
			{ID: 2, CartID: 3, ProductID: 7, Quantity: 1, Product: product},
		},
	}

	userRepo.On("GetByID", models.DemoUserID).Return(user, nil).Once()
	cartRepo.On("GetByUserID", models.DemoUserID).Return(cart, nil).Once()
	orderRepo.On("CreateFromCart", mock.AnythingOfType("*models.Order"), uint(3)).Return(nil).Once()
	publisher.On("PublishOrderCreated", mock.AnythingOfType("map[string]interface {}")).Return(nil).Once()

	order, err := service.Checkout(models.DemoUserID)
	assert.NoError(t, err)

	// Two quantity-1 lines of a 19.99 product total 39.98.
	assert.InDelta(t, 39.98, order.OrderAmount, 0.001)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Len(t, order.Details, 2)
	for _, detail := range order.Details {
		assert.Equal(t, uint(7), detail.ProductID)
		assert.Equal(t, 1, detail.Quantity)
	}
	assert.NotEmpty(t, order.OrderNumber)
	assert.Equal(t, "123 Main St, Anytown, CA 12345", order.ShippingAddress)
	assert.Equal(t, user, order.User)

	orderRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestOrderService_Checkout_PublisherFailureDoesNotFailCheckout(t *testing.T) {
	publisher := new(MockOrderEventPublisher)
	service, orderRepo, cartRepo, userRepo := newOrderService(publisher)

	product := &models.Product{ID: 7, Price: 10, Quantity: 1}
	cart := &models.Cart{ID: 3, UserID: models.DemoUserID, Items: []models.CartItem{
		{ID: 1, CartID: 3, ProductID: 7, Quantity: 1, Product: product},
	}}

	userRepo.On("GetByID", models.DemoUserID).Return(&models.User{ID: models.DemoUserID}, nil).Once()
	cartRepo.On("GetByUserID", models.DemoUserID).Return(cart, nil).Once()
	orderRepo.On("CreateFromCart", mock.AnythingOfType("*models.Order"), uint(3)).Return(nil).Once()
	publisher.On("PublishOrderCreated", mock.Anything).Return(assert.AnError).Once()

	// The order is already committed; a broker failure only logs.
	order, err := service.Checkout(models.DemoUserID)
	assert.NoError(t, err)
	assert.NotNil(t, order)
	publisher.AssertExpectations(t)
}

func TestOrderService_Orders(t *testing.T) {
	service, orderRepo, _, userRepo := newOrderService(nil)

	userRepo.On("GetByID", models.DemoUserID).Return(&models.User{ID: models.DemoUserID}, nil).Once()
	expected := []models.Order{{ID: 1, CustomerID: models.DemoUserID, OrderAmount: 39.98}}
	orderRepo.On("GetAllByCustomer", models.DemoUserID).Return(expected, nil).Once()

	orders, err := service.Orders(models.DemoUserID)
	assert.NoError(t, err)
	assert.Equal(t, expected, orders)

	userRepo.On("GetByID", uint(42)).Return(nil, repositories.ErrNotFound).Once()
	_, err = service.Orders(42)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
