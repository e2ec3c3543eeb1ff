package services

import (
	"errors"
	"fmt"

	"gostore/internal/models"
	"gostore/internal/repositories"
)

// CartService handles the cart workflow for an explicit principal. Every
// method takes the acting user's ID; the hardcoded demo user only enters the
// picture when that ID is models.DemoUserID and the row does not exist yet.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
	userRepo    repositories.UserRepository
}

// NewCartService creates a new CartService.
func NewCartService(
	cartRepo repositories.CartRepository,
	productRepo repositories.ProductRepository,
	userRepo repositories.UserRepository,
) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// AddItem puts one unit of a product into the user's cart. The product must
// exist and have stock on hand; the stock itself is only read here, never
// decremented. Each call appends a fresh quantity-1 line item, so adding the
// same product twice yields two lines.
func (s *CartService) AddItem(userID, productID uint) error {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("product with id %d does not exist: %w", productID, ErrNotFound)
		}
		return err
	}
	if product.Quantity <= 0 {
		return fmt.Errorf("product with id %d: %w", productID, ErrOutOfStock)
	}

	if err := s.ensureUser(userID); err != nil {
		return err
	}

	cart, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return err
		}
		// First add for this user: create the cart with the line item
		// attached.
		return s.cartRepo.Create(&models.Cart{
			UserID: userID,
			Items: []models.CartItem{
				{ProductID: product.ID, Quantity: 1},
			},
		})
	}

	return s.cartRepo.AddItem(&models.CartItem{
		CartID:    cart.ID,
		ProductID: product.ID,
		Quantity:  1,
	})
}

// Items returns the user's cart with its line items and product display
// data. Fails with ErrNotFound when the user or cart does not exist.
func (s *CartService) Items(userID uint) (*models.Cart, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
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
	return cart, nil
}

// RemoveItem deletes one line item from the user's cart. Fails with
// ErrNotFound when the cart does not exist or the item is not in it.
func (s *CartService) RemoveItem(userID, cartItemID uint) error {
	cart, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("cart for user %d does not exist: %w", userID, ErrNotFound)
		}
		return err
	}

	if err := s.cartRepo.RemoveItem(cart.ID, cartItemID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("cart item with id %d: %w", cartItemID, ErrNotFound)
		}
		return err
	}
	return nil
}

// ensureUser checks the principal exists, provisioning the demo user on
// first contact. Unknown non-demo principals fail with ErrNotFound.
func (s *CartService) ensureUser(userID uint) error {
	_, err := s.userRepo.GetByID(userID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return err
	}
	if userID != models.DemoUserID {
		return fmt.Errorf("user with id %d does not exist: %w", userID, ErrNotFound)
	}

	demo, err := models.NewDemoUser()
	if err != nil {
		return err
	}
	return s.userRepo.Create(demo)
}
