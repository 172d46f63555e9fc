package domain

import (
	"encoding/json"
	"errors"
	"time"
)

const (
	NotificationTypeRiskAlert    = "risk_alert"
	NotificationTypeExpiryDigest = "expiry_digest"
)

var (
	MessageSuccessGetNotifications     = "notifications retrieved successfully"
	MessageSuccessMarkNotificationRead = "notification marked as read"

	MessageFailedGetNotifications     = "failed to retrieve notifications"
	MessageFailedMarkNotificationRead = "failed to mark notification as read"

	ErrNotificationNotFound = errors.New("notification not found")
)

type NotificationResponse struct {
	ID         string          `json:"id"`
	FoodItemID string          `json:"food_item_id,omitempty"`
	Type       string          `json:"type"`
	Severity   string          `json:"severity"`
	Title      string          `json:"title"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data,omitempty"`
	IsRead     bool            `json:"is_read"`
	ReadAt     *time.Time      `json:"read_at,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}
