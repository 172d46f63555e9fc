package main

import (
	"FoodGuard-Backend/cmd/config"
	migration "FoodGuard-Backend/cmd/database/migrate"
	"FoodGuard-Backend/internal/utils"
	"FoodGuard-Backend/internal/utils/logger"
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	utils.LoadConfig()

	log, err := logger.NewLogger(utils.GetConfig("LOG_LEVEL"), utils.GetConfig("LOG_FORMAT"), "foodguard-api")
	if err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}
	defer log.Sync()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatal("Database connection failed", zap.Error(err))
	}
	if err := migration.Migrate(db); err != nil {
		log.Fatal("Database migration failed", zap.Error(err))
	}

	services, err := config.NewServices(db, log)
	if err != nil {
		log.Fatal("Failed to wire services", zap.Error(err))
	}
	defer services.Close()

	app, err := config.NewApp(services)
	if err != nil {
		log.Fatal("Failed to build app", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := ":" + utils.GetConfigOr("PORT", "8080")
	serveErr := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", addr))
		serveErr <- app.Listen(addr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			log.Fatal("Server stopped", zap.Error(err))
		}
	case <-ctx.Done():
		log.Info("Shutting down gracefully, press Ctrl+C again to force")
		stop()
		if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
			log.Error("Server forced to shutdown", zap.Error(err))
		}
	}
	log.Info("Server exiting")
}
