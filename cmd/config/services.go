package config

import (
	"FoodGuard-Backend/internal/utils"
	"FoodGuard-Backend/internal/utils/mailing"
	"FoodGuard-Backend/internal/utils/storage"
	"FoodGuard-Backend/pkg/food"
	"FoodGuard-Backend/pkg/health"
	"FoodGuard-Backend/pkg/jwt"
	"FoodGuard-Backend/pkg/notification"
	"FoodGuard-Backend/pkg/nutrition"
	"FoodGuard-Backend/pkg/risk"
	"FoodGuard-Backend/pkg/user"
	"context"
	"fmt"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"strings"
	"time"
)

// Services holds everything both the API server and the digest command need.
type Services struct {
	UserRepository user.UserRepository
	FoodRepository food.FoodRepository

	JWTService          jwt.JWTService
	UserService         user.UserService
	FoodService         food.FoodService
	HealthService       health.HealthService
	NotificationService notification.NotificationService

	redis *redis.Client
	mqtt  mqtt.Client
}

func NewServices(db *gorm.DB, logger *zap.Logger) (*Services, error) {
	s := &Services{}

	kb := risk.DefaultKnowledgeBase()
	if path := utils.GetConfig("KNOWLEDGE_BASE_PATH"); path != "" {
		loaded, err := risk.LoadKnowledgeBase(path)
		if err != nil {
			return nil, err
		}
		kb = loaded
		logger.Info("Knowledge base override loaded", zap.String("path", path))
	}
	evaluator := risk.NewEvaluator(kb, logger.Named("risk"))

	var products nutrition.Provider
	if baseURL := utils.GetConfig("NUTRITION_API_URL"); baseURL != "" {
		client, err := nutrition.NewClient(
			baseURL,
			time.Duration(utils.GetConfigInt("NUTRITION_TIMEOUT_SECONDS", 5))*time.Second,
			utils.GetConfigInt("NUTRITION_CACHE_SIZE", nutrition.DefaultCacheSize),
			logger.Named("nutrition"),
		)
		if err != nil {
			return nil, err
		}
		products = client
	}

	if addr := utils.GetConfig("REDIS_ADDR"); addr != "" {
		s.redis = redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: utils.GetConfig("REDIS_PASSWORD"),
			DB:       utils.GetConfigInt("REDIS_DB", 0),
		})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := s.redis.Ping(ctx).Err(); err != nil {
			// cooldown degrades to "always send", so keep starting
			logger.Warn("Redis unreachable", zap.String("addr", addr), zap.Error(err))
		}
	}

	// Repository
	s.UserRepository = user.NewUserRepository(db)
	s.FoodRepository = food.NewFoodRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)

	channels, err := s.channels(notificationRepository, logger)
	if err != nil {
		return nil, err
	}
	var cooldown notification.Cooldown
	if s.redis != nil {
		cooldown = notification.NewRedisCooldown(s.redis,
			time.Duration(utils.GetConfigInt("NOTIFY_COOLDOWN_MINUTES", 60))*time.Minute)
	}

	// Service
	s.JWTService = jwt.NewJWTService()
	s.UserService = user.NewUserService(s.UserRepository, s.JWTService)
	s.FoodService = food.NewFoodService(s.FoodRepository, storage.NewAwsS3(), products, logger.Named("food"))
	s.NotificationService = notification.NewNotificationService(notificationRepository, channels, cooldown, logger.Named("notification"))
	s.HealthService = health.NewHealthService(
		s.FoodRepository,
		s.UserRepository,
		evaluator,
		products,
		s.NotificationService,
		health.Config{
			Concurrency:       utils.GetConfigInt("EVAL_CONCURRENCY", health.DefaultConcurrency),
			AlternativesLimit: utils.GetConfigInt("ALTERNATIVES_LIMIT", risk.DefaultAlternativesLimit),
		},
		logger.Named("health"),
	)
	return s, nil
}

// channels builds the delivery channels. ALERT_PUBLISHER picks the external
// publisher: "stream" (default when Redis is configured), "mqtt" or "none".
func (s *Services) channels(repo notification.NotificationRepository, logger *zap.Logger) ([]notification.Channel, error) {
	channels := []notification.Channel{notification.NewInAppChannel(repo)}

	if utils.GetConfig("SMTP_HOST") != "" {
		channels = append(channels, notification.NewEmailChannel(mailing.NewMailer(mailing.LoadMailConfig())))
	}

	mode := strings.ToLower(utils.GetConfig("ALERT_PUBLISHER"))
	if mode == "" && s.redis != nil {
		mode = "stream"
	}
	switch mode {
	case "stream":
		if s.redis == nil {
			return nil, fmt.Errorf("ALERT_PUBLISHER=stream requires REDIS_ADDR")
		}
		stream := utils.GetConfigOr("ALERT_STREAM", "foodguard:alerts")
		channels = append(channels, notification.NewExternalChannel(notification.NewStreamPublisher(s.redis, stream)))
	case "mqtt":
		publisher, client, err := notification.NewMQTTPublisher(notification.MQTTConfig{
			Broker:   utils.GetConfig("MQTT_BROKER"),
			ClientID: utils.GetConfigOr("MQTT_CLIENT_ID", "foodguard-backend"),
			Username: utils.GetConfig("MQTT_USERNAME"),
			Password: utils.GetConfig("MQTT_PASSWORD"),
			Topic:    utils.GetConfig("MQTT_TOPIC"),
		})
		if err != nil {
			return nil, err
		}
		s.mqtt = client
		channels = append(channels, notification.NewExternalChannel(publisher))
	case "none", "":
		logger.Info("External alert delivery disabled")
	default:
		return nil, fmt.Errorf("unknown ALERT_PUBLISHER %q", mode)
	}
	return channels, nil
}

func (s *Services) Close() {
	if s.mqtt != nil {
		s.mqtt.Disconnect(250)
	}
	if s.redis != nil {
		_ = s.redis.Close()
	}
}
