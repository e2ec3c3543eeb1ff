package handlers

import (
	"log"

	"gostore/internal/middleware"
	"gostore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the principal's cart.
type CartHandler struct {
	service *services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/carts")
	cartRoutes.Post("/add", h.HandleAddToCart)
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Delete("/:cart_item_id", h.HandleRemoveCartItem)
}

// HandleAddToCart adds one unit of the product named in the product_id
// query parameter to the principal's cart.
func (h *CartHandler) HandleAddToCart(c *fiber.Ctx) error {
	productID := c.QueryInt("product_id")
	if productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "product_id query parameter must be a positive integer",
		})
	}

	if err := h.service.AddItem(middleware.UserID(c), uint(productID)); err != nil {
		log.Printf("Error adding product %d to cart: %v", productID, err)
		return respondServiceError(c, err, "Could not add item to cart")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "Item added to cart",
	})
}

// HandleGetCart returns the principal's cart with its line items.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	cart, err := h.service.Items(middleware.UserID(c))
	if err != nil {
		return respondServiceError(c, err, "Could not retrieve cart")
	}
	return c.JSON(cart)
}

// HandleRemoveCartItem deletes one line item from the principal's cart.
func (h *CartHandler) HandleRemoveCartItem(c *fiber.Ctx) error {
	itemID, err := c.ParamsInt("cart_item_id")
	if err != nil || itemID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid cart item id",
		})
	}

	if err := h.service.RemoveItem(middleware.UserID(c), uint(itemID)); err != nil {
		return respondServiceError(c, err, "Could not remove cart item")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
