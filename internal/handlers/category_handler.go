package handlers

import (
	"log"

	"gostore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for catalog categories. Categories
// live under /products/categories, mirroring the catalog hierarchy.
type CategoryHandler struct {
	service  *services.CategoryService
	validate *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the category routes with the Fiber app.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/products/categories")
	categoryRoutes.Get("/", h.HandleListCategories)
	categoryRoutes.Post("/", h.HandleCreateCategory)
	categoryRoutes.Get("/:category_id", h.HandleGetCategory)
	categoryRoutes.Put("/:category_id", h.HandleUpdateCategory)
	categoryRoutes.Delete("/:category_id", h.HandleDeleteCategory)
}

// CategoryRequest is the payload for creating or renaming a category.
type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=3,max=50"`
}

// HandleCreateCategory creates a category; duplicate names conflict.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	category, err := h.service.Create(req.Name)
	if err != nil {
		log.Printf("Error creating category: %v", err)
		return respondServiceError(c, err, "Could not create category")
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleListCategories returns a page of categories.
func (h *CategoryHandler) HandleListCategories(c *fiber.Ctx) error {
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", services.MaxPageSize)

	categories, err := h.service.List(offset, limit)
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		return respondServiceError(c, err, "Could not retrieve categories")
	}
	return c.JSON(categories)
}

// HandleGetCategory returns one category by id.
func (h *CategoryHandler) HandleGetCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("category_id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid category id",
		})
	}

	category, err := h.service.Get(uint(id))
	if err != nil {
		return respondServiceError(c, err, "Could not retrieve category")
	}
	return c.JSON(category)
}

// HandleUpdateCategory renames a category.
func (h *CategoryHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("category_id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid category id",
		})
	}

	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	category, err := h.service.Update(uint(id), req.Name)
	if err != nil {
		return respondServiceError(c, err, "Could not update category")
	}
	return c.JSON(category)
}

// HandleDeleteCategory removes a category by id.
func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("category_id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid category id",
		})
	}

	if err := h.service.Delete(uint(id)); err != nil {
		return respondServiceError(c, err, "Could not delete category")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
