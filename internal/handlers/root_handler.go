package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RootHandler serves the root redirect, the route index and the database
// liveness probe.
type RootHandler struct {
	db *gorm.DB
}

// NewRootHandler creates a new RootHandler.
func NewRootHandler(db *gorm.DB) *RootHandler {
	return &RootHandler{db: db}
}

// RegisterRoutes registers the root routes with the Fiber app.
func (h *RootHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleRoot)
	router.Get("/docs", h.HandleDocs)
	router.Get("/db_ready", h.HandleDBReady)
}

// HandleRoot redirects to the route index.
func (h *RootHandler) HandleRoot(c *fiber.Ctx) error {
	return c.Redirect("/docs", fiber.StatusTemporaryRedirect)
}

// HandleDocs returns an index of the available routes.
func (h *RootHandler) HandleDocs(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"users":      "/users/",
		"login":      "/users/login",
		"categories": "/products/categories/",
		"products":   "/products/",
		"cart":       "/carts/",
		"orders":     "/orders/",
		"liveness":   "/db_ready",
	})
}

// HandleDBReady pings the database and reports whether it is reachable.
func (h *RootHandler) HandleDBReady(c *fiber.Ctx) error {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		log.Printf("Database liveness check failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Database is not ready.")
	}
	return c.SendString("Database is ready.")
}
