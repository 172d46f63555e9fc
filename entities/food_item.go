package entities

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"time"
)

type (
	FoodItem struct {
		ID            uuid.UUID                           `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
		UserID        uuid.UUID                           `gorm:"type:uuid;index" json:"user_id"`
		Name          string                              `json:"name"`
		Brand         string                              `json:"brand,omitempty"`
		Category      string                              `json:"category"`
		Barcode       string                              `gorm:"index" json:"barcode,omitempty"`
		Ingredients   datatypes.JSONType[[]string]        `gorm:"type:jsonb" json:"ingredients"`
		Allergens     datatypes.JSONType[[]string]        `gorm:"type:jsonb" json:"allergens"`
		Nutrition     datatypes.JSONType[*NutritionFacts] `gorm:"type:jsonb" json:"nutrition,omitempty"`
		Quantity      int                                 `json:"quantity"`
		UnitMeasure   string                              `json:"unit_measure"`
		ExpiryDate    time.Time                           `json:"expiry_date"`
		IsPackaged    bool                                `json:"is_packaged"`
		ImageURL      string                              `json:"image_url,omitempty"`
		Status        string                              `json:"status"`     // "active", "consumed", "discarded"
		RiskLevel     string                              `json:"risk_level"` // last overall risk, "" until evaluated
		RiskCheckedAt *time.Time                          `json:"risk_checked_at,omitempty"`

		User *User `gorm:"foreignKey:UserID"`
		Timestamp
	}

	// NutritionFacts holds values per 100g unless ServingSize says otherwise.
	NutritionFacts struct {
		Macronutrients map[string]float64 `json:"macronutrients,omitempty"`
		Micronutrients map[string]float64 `json:"micronutrients,omitempty"`
		ServingSize    string             `json:"servingSize,omitempty"`
	}
)
