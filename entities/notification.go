package entities

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"time"
)

type Notification struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID      `gorm:"type:uuid;index" json:"user_id"`
	FoodItemID *uuid.UUID     `gorm:"type:uuid" json:"food_item_id,omitempty"`
	Type       string         `json:"type"`     // "risk_alert", "expiry_digest"
	Severity   string         `json:"severity"` // "CRITICAL", "HIGH", "MEDIUM", "LOW"
	Title      string         `json:"title"`
	Message    string         `gorm:"type:text" json:"message"`
	Data       datatypes.JSON `gorm:"type:jsonb" json:"data,omitempty"`
	IsRead     bool           `json:"is_read"`
	ReadAt     *time.Time     `json:"read_at,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
