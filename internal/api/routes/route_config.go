package routes

import (
	"FoodGuard-Backend/internal/api/handlers"
	"FoodGuard-Backend/internal/middleware"
	"FoodGuard-Backend/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	FoodHandler         handlers.FoodHandler
	HealthHandler       handlers.HealthHandler
	NotificationHandler handlers.NotificationHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.FoodItems()
	c.Health()
	c.Notifications()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Put("/health-profile", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateHealthProfile)
		user.Put("/notification-preferences", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateNotificationPreferences)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) FoodItems() {
	foodItems := c.App.Group("/api/v1/food-items", c.Middleware.AuthMiddleware(c.JWTService))
	foodItems.Get("/dashboard", c.FoodHandler.GetDashboardStats)
	foodItems.Get("/expiring", c.FoodHandler.GetExpiringItems)

	// Basic CRUD operations
	foodItems.Post("", c.FoodHandler.AddFoodItem)
	foodItems.Get("", c.FoodHandler.GetFoodItems)
	foodItems.Get("/:id", c.FoodHandler.GetFoodItemDetails)
	foodItems.Put("/:id", c.FoodHandler.UpdateFoodItem)
	foodItems.Delete("/:id", c.FoodHandler.DeleteFoodItem)

	// Special operations
	foodItems.Post("/image", c.FoodHandler.UploadFoodImage)
	foodItems.Post("/:id/consume", c.FoodHandler.MarkAsConsumed)
	foodItems.Post("/:id/discard", c.FoodHandler.MarkAsDiscarded)
}

func (c *Config) Health() {
	health := c.App.Group("/api/v1/health", c.Middleware.AuthMiddleware(c.JWTService))
	health.Get("/food-items/:id/risk", c.HealthHandler.EvaluateFood)
	health.Get("/food-items/:id/alternatives", c.HealthHandler.GetAlternatives)
	health.Get("/inventory/risk", c.HealthHandler.EvaluateInventory)
	health.Post("/check-product", c.HealthHandler.CheckProduct)
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api/v1/notifications", c.Middleware.AuthMiddleware(c.JWTService))
	notifications.Get("", c.NotificationHandler.GetNotifications)
	notifications.Patch("/:id/read", c.NotificationHandler.MarkAsRead)
}
