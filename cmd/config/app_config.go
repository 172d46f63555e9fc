package config

import (
	"FoodGuard-Backend/internal/api/handlers"
	"FoodGuard-Backend/internal/api/routes"
	"FoodGuard-Backend/internal/middleware"
	"FoodGuard-Backend/internal/utils"
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func NewApp(services *Services) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName: "FoodGuard-Backend",
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		return nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, fmt.Errorf("error opening access log: %w", err)
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Handler
	userHandler := handlers.NewUserHandler(services.UserService, validator)
	foodHandler := handlers.NewFoodHandler(services.FoodService, validator)
	healthHandler := handlers.NewHealthHandler(services.HealthService, validator)
	notificationHandler := handlers.NewNotificationHandler(services.NotificationService)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		FoodHandler:         foodHandler,
		HealthHandler:       healthHandler,
		NotificationHandler: notificationHandler,
		Middleware:          middlewares,
		JWTService:          services.JWTService,
	}
	routesConfig.Setup()
	return app, nil
}
