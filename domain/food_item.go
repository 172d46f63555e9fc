package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	FoodStatusActive    = "active"
	FoodStatusConsumed  = "consumed"
	FoodStatusDiscarded = "discarded"

	ExpiryStatusExpired       = "expired"
	ExpiryStatusExpiringToday = "expiring-today"
	ExpiryStatusExpiringSoon  = "expiring-soon"
	ExpiryStatusExpiringWeek  = "expiring-week"
	ExpiryStatusSafe          = "safe"
)

var FoodCategories = []string{
	"dairy", "meat", "seafood", "produce", "bakery", "snacks",
	"beverages", "frozen", "canned", "condiments", "grains", "other",
}

var (
	MessageSuccessAddFoodItem       = "food item added successfully"
	MessageSuccessUpdateFoodItem    = "food item updated successfully"
	MessageSuccessDeleteFoodItem    = "food item deleted successfully"
	MessageSuccessGetFoodItems      = "food items retrieved successfully"
	MessageSuccessUploadFoodImage   = "food image uploaded successfully"
	MessageSuccessMarkAsConsumed    = "food item marked as consumed"
	MessageSuccessMarkAsDiscarded   = "food item marked as discarded"
	MessageSuccessGetDashboardStats = "dashboard statistics retrieved successfully"

	MessageFailedAddFoodItem       = "failed to add food item"
	MessageFailedUpdateFoodItem    = "failed to update food item"
	MessageFailedDeleteFoodItem    = "failed to delete food item"
	MessageFailedGetFoodItems      = "failed to retrieve food items"
	MessageFailedUploadFoodImage   = "failed to upload food image"
	MessageFailedMarkAsConsumed    = "failed to mark food item as consumed"
	MessageFailedMarkAsDiscarded   = "failed to mark food item as discarded"
	MessageFailedGetDashboardStats = "failed to retrieve dashboard statistics"

	ErrFoodItemNotFound   = errors.New("food item not found")
	ErrInvalidExpiryDate  = errors.New("invalid expiry date")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrInvalidImageFormat = errors.New("invalid image format")
	ErrUnauthorizedAccess = errors.New("unauthorized access to food item")
	ErrFoodItemNotActive  = errors.New("food item is no longer active")
	ErrInvalidExpiryTier  = errors.New("invalid expiry status filter")
)

type (
	NutritionRequest struct {
		Macronutrients map[string]float64 `json:"macronutrients"`
		Micronutrients map[string]float64 `json:"micronutrients"`
		ServingSize    string             `json:"servingSize"`
	}

	AddFoodItemRequest struct {
		Name        string            `json:"name" validate:"required_without=Barcode"`
		Brand       string            `json:"brand"`
		Category    string            `json:"category" validate:"omitempty,food_category"`
		Barcode     string            `json:"barcode" validate:"omitempty,numeric,min=8,max=14"`
		Ingredients IngredientList    `json:"ingredients"`
		Allergens   []string          `json:"allergens"`
		Nutrition   *NutritionRequest `json:"nutrition"`
		Quantity    int               `json:"quantity" validate:"required,min=1"`
		UnitMeasure string            `json:"unit_measure" validate:"required"`
		ExpiryDate  string            `json:"expiry_date" validate:"required"`
		IsPackaged  bool              `json:"is_packaged"`
	}

	UpdateFoodItemRequest struct {
		Name        string            `json:"name" validate:"omitempty"`
		Brand       string            `json:"brand" validate:"omitempty"`
		Category    string            `json:"category" validate:"omitempty,food_category"`
		Ingredients IngredientList    `json:"ingredients"`
		Allergens   []string          `json:"allergens"`
		Nutrition   *NutritionRequest `json:"nutrition"`
		Quantity    int               `json:"quantity" validate:"omitempty,min=1"`
		UnitMeasure string            `json:"unit_measure" validate:"omitempty"`
		ExpiryDate  string            `json:"expiry_date" validate:"omitempty"`
		IsPackaged  *bool             `json:"is_packaged"`
	}

	UploadFoodImageRequest struct {
		FoodItemID string                `json:"food_id" form:"food_id" validate:"required,uuid"`
		Image      *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	FoodItemResponse struct {
		ID              string            `json:"id"`
		Name            string            `json:"name"`
		Brand           string            `json:"brand,omitempty"`
		Category        string            `json:"category"`
		Barcode         string            `json:"barcode,omitempty"`
		Ingredients     []string          `json:"ingredients"`
		Allergens       []string          `json:"allergens"`
		Nutrition       *NutritionRequest `json:"nutrition,omitempty"`
		Quantity        int               `json:"quantity"`
		UnitMeasure     string            `json:"unit_measure"`
		ExpiryDate      time.Time         `json:"expiry_date"`
		IsPackaged      bool              `json:"is_packaged"`
		Status          string            `json:"status"`
		ImageURL        string            `json:"image_url,omitempty"`
		IsExpired       bool              `json:"isExpired"`
		DaysUntilExpiry int               `json:"daysUntilExpiry"`
		ExpiryStatus    string            `json:"expiryStatus"`
		RiskLevel       string            `json:"risk_level,omitempty"`
		RiskCheckedAt   *time.Time        `json:"risk_checked_at,omitempty"`
		CreatedAt       time.Time         `json:"created_at"`
	}

	DashboardStatsResponse struct {
		TotalItems     int64            `json:"total_items"`
		ActiveItems    int64            `json:"active_items"`
		ConsumedItems  int64            `json:"consumed_items"`
		DiscardedItems int64            `json:"discarded_items"`
		ByExpiry       map[string]int64 `json:"by_expiry"`
		ByRisk         map[string]int64 `json:"by_risk"`
	}
)
