package domain

import (
	"FoodGuard-Backend/pkg/risk"
	"errors"
	"time"
)

var (
	MessageSuccessEvaluateFood      = "food risk evaluated successfully"
	MessageSuccessEvaluateInventory = "inventory risk evaluated successfully"
	MessageSuccessCheckProduct      = "product checked successfully"
	MessageSuccessGetAlternatives   = "alternatives retrieved successfully"

	MessageFailedEvaluateFood      = "failed to evaluate food risk"
	MessageFailedEvaluateInventory = "failed to evaluate inventory risk"
	MessageFailedCheckProduct      = "failed to check product"
	MessageFailedGetAlternatives   = "failed to retrieve alternatives"

	ErrProductNotFound = errors.New("product not found")
)

type (
	CheckProductRequest struct {
		Name        string            `json:"name" validate:"required_without=Barcode"`
		Brand       string            `json:"brand"`
		Category    string            `json:"category" validate:"omitempty,food_category"`
		Barcode     string            `json:"barcode" validate:"omitempty,numeric,min=8,max=14"`
		Ingredients IngredientList    `json:"ingredients"`
		Allergens   []string          `json:"allergens"`
		Nutrition   *NutritionRequest `json:"nutrition"`
	}

	FoodRiskResponse struct {
		FoodItemID   string             `json:"foodItemId,omitempty"`
		Name         string             `json:"name"`
		Brand        string             `json:"brand,omitempty"`
		Category     string             `json:"category,omitempty"`
		Verdict      risk.Verdict       `json:"verdict"`
		Alternatives []risk.Alternative `json:"alternatives"`
		Substitutes  []string           `json:"substitutes"`
		CheckedAt    time.Time          `json:"checkedAt"`
	}

	InventoryRiskItem struct {
		FoodItemID   string        `json:"foodItemId"`
		Name         string        `json:"name"`
		Brand        string        `json:"brand,omitempty"`
		OverallRisk  risk.Severity `json:"overallRisk"`
		FindingCount int           `json:"findingCount"`
		Headline     string        `json:"headline"`
	}

	InventoryRiskResponse struct {
		Items     []InventoryRiskItem `json:"items"`
		Summary   map[string]int      `json:"summary"`
		Truncated bool                `json:"truncated"`
	}

	AlternativesResponse struct {
		FoodItemID   string             `json:"foodItemId"`
		OverallRisk  risk.Severity      `json:"overallRisk"`
		Alternatives []risk.Alternative `json:"alternatives"`
		Substitutes  []string           `json:"substitutes"`
	}
)
