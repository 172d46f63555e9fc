package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cooldown suppresses repeats of the same alert within a window.
type Cooldown interface {
	// Allow reports whether key may fire now, and if so starts its window.
	Allow(ctx context.Context, key string) (bool, error)
	// Release ends the window for key early.
	Release(ctx context.Context, key string) error
}

type RedisCooldown struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

func NewRedisCooldown(client *redis.Client, ttl time.Duration) *RedisCooldown {
	return &RedisCooldown{client: client, ttl: ttl, prefix: "foodguard:notify:"}
}

func (c *RedisCooldown) Allow(ctx context.Context, key string) (bool, error) {
	if c.ttl <= 0 {
		return true, nil
	}
	ok, err := c.client.SetNX(ctx, c.prefix+key, 1, c.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("cooldown check failed: %w", err)
	}
	return ok, nil
}

func (c *RedisCooldown) Release(ctx context.Context, key string) error {
	if c.ttl <= 0 {
		return nil
	}
	if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
		return fmt.Errorf("cooldown release failed: %w", err)
	}
	return nil
}

// cooldownKey identifies an alert by who, what and how bad; the digest is keyed by day.
func cooldownKey(alert *Alert) string {
	if alert.FoodItemID != "" {
		return fmt.Sprintf("%s:%s:%s", alert.UserID, alert.FoodItemID, alert.SeverityLabel)
	}
	return fmt.Sprintf("%s:%s:%s", alert.UserID, alert.Type, alert.CreatedAt.Format("2006-01-02"))
}
