package handlers

import (
	"gostore/internal/middleware"
	"gostore/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

// NewApp assembles the Fiber application: request logging, principal
// resolution and every route group.
func NewApp(
	db *gorm.DB,
	userService *services.UserService,
	categoryService *services.CategoryService,
	productService *services.ProductService,
	cartService *services.CartService,
	orderService *services.OrderService,
) *fiber.App {
	app := fiber.New()
	app.Use(logger.New())
	app.Use(middleware.Principal(userService))

	NewRootHandler(db).RegisterRoutes(app)
	NewUserHandler(userService).RegisterRoutes(app)
	// Categories register first so /products/categories is not shadowed by
	// the /products/:product_id routes.
	NewCategoryHandler(categoryService).RegisterRoutes(app)
	NewProductHandler(productService).RegisterRoutes(app)
	NewCartHandler(cartService).RegisterRoutes(app)
	NewOrderHandler(orderService).RegisterRoutes(app)

	return app
}
