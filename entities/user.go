package entities

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type (
	User struct {
		ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
		Name     string    `json:"name"`
		Email    string    `gorm:"uniqueIndex" json:"email"`
		Password string    `json:"-"`
		Phone    string    `json:"phone,omitempty"`
		Role     string    `json:"role"`

		Allergies               datatypes.JSONType[[]HealthCondition]       `gorm:"type:jsonb" json:"allergies"`
		Diseases                datatypes.JSONType[[]HealthCondition]       `gorm:"type:jsonb" json:"diseases"`
		Medications             datatypes.JSONType[[]HealthCondition]       `gorm:"type:jsonb" json:"medications"`
		Symptoms                datatypes.JSONType[[]HealthCondition]       `gorm:"type:jsonb" json:"symptoms"`
		DietaryPreferences      datatypes.JSONType[[]string]                `gorm:"type:jsonb" json:"dietary_preferences"`
		NotificationPreferences datatypes.JSONType[NotificationPreferences] `gorm:"type:jsonb" json:"notification_preferences"`

		FoodItems []*FoodItem `gorm:"foreignKey:UserID"`
		Timestamp
	}

	// HealthCondition is one allergy, disease, medication or symptom entry.
	HealthCondition struct {
		Name      string `json:"name"`
		Severity  string `json:"severity,omitempty"`
		Frequency string `json:"frequency,omitempty"`
	}

	NotificationPreferences struct {
		Email    bool `json:"email"`
		SMS      bool `json:"sms"`
		WhatsApp bool `json:"whatsapp"`
		InApp    bool `json:"inApp"`
		Push     bool `json:"push"`
	}
)

func DefaultNotificationPreferences() NotificationPreferences {
	return NotificationPreferences{Email: true, InApp: true}
}
