// Command digest is run by an external scheduler. It evaluates every user's
// inventory, sends risk alerts for non-safe items and one expiry digest per user.
package main

import (
	"FoodGuard-Backend/cmd/config"
	"FoodGuard-Backend/entities"
	"FoodGuard-Backend/internal/utils"
	"FoodGuard-Backend/internal/utils/logger"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

const batchSize = 100

func main() {
	utils.LoadConfig()

	log, err := logger.NewLogger(utils.GetConfig("LOG_LEVEL"), utils.GetConfig("LOG_FORMAT"), "foodguard-digest")
	if err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}

	if err := run(log); err != nil {
		log.Error("Digest run failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
	_ = log.Sync()
}

func run(log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := config.ConnectDB()
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database unreachable: %w", err)
	}

	services, err := config.NewServices(db, log)
	if err != nil {
		return err
	}
	defer services.Close()

	var users, failed, evaluated, alerts, expiring int
	err = services.UserRepository.ForEachUser(ctx, batchSize, func(u *entities.User) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		users++
		result, err := services.HealthService.RunDigest(ctx, u)
		if err != nil {
			// one user's failure must not stop the others
			failed++
			log.Warn("Digest failed for user", zap.String("user_id", u.ID.String()), zap.Error(err))
			return nil
		}
		evaluated += result.Evaluated
		alerts += result.RiskAlerts
		expiring += result.ExpiryItems
		return nil
	})

	log.Info("Digest run finished",
		zap.Int("users", users),
		zap.Int("failed_users", failed),
		zap.Int("items_evaluated", evaluated),
		zap.Int("risk_alerts", alerts),
		zap.Int("expiring_items", expiring),
	)
	return err
}
