package food

import (
	"FoodGuard-Backend/domain"
	"FoodGuard-Backend/entities"
	"FoodGuard-Backend/pkg/risk"
	"strings"
	"time"
)

func ToFoodItemResponse(item *entities.FoodItem, now time.Time) domain.FoodItemResponse {
	expiry := ComputeExpiry(item.ExpiryDate, now)

	resp := domain.FoodItemResponse{
		ID:              item.ID.String(),
		Name:            item.Name,
		Brand:           item.Brand,
		Category:        item.Category,
		Barcode:         item.Barcode,
		Ingredients:     nonNil(item.Ingredients.Data()),
		Allergens:       nonNil(item.Allergens.Data()),
		Quantity:        item.Quantity,
		UnitMeasure:     item.UnitMeasure,
		ExpiryDate:      item.ExpiryDate,
		IsPackaged:      item.IsPackaged,
		Status:          item.Status,
		ImageURL:        item.ImageURL,
		IsExpired:       expiry.IsExpired,
		DaysUntilExpiry: expiry.DaysUntilExpiry,
		ExpiryStatus:    expiry.Status,
		RiskLevel:       item.RiskLevel,
		RiskCheckedAt:   item.RiskCheckedAt,
		CreatedAt:       item.CreatedAt,
	}
	if n := item.Nutrition.Data(); n != nil {
		resp.Nutrition = &domain.NutritionRequest{
			Macronutrients: n.Macronutrients,
			Micronutrients: n.Micronutrients,
			ServingSize:    n.ServingSize,
		}
	}
	return resp
}

func NutritionFromRequest(req *domain.NutritionRequest) *entities.NutritionFacts {
	if req == nil {
		return nil
	}
	return &entities.NutritionFacts{
		Macronutrients: lowerKeys(req.Macronutrients),
		Micronutrients: lowerKeys(req.Micronutrients),
		ServingSize:    req.ServingSize,
	}
}

// ToRiskFood projects a stored item onto the shape the risk engine reads.
func ToRiskFood(item *entities.FoodItem) risk.Food {
	food := risk.Food{
		ID:          item.ID.String(),
		Name:        item.Name,
		Brand:       item.Brand,
		Category:    item.Category,
		Ingredients: item.Ingredients.Data(),
		Allergens:   item.Allergens.Data(),
	}
	if n := item.Nutrition.Data(); n != nil {
		food.Nutrition = &risk.Nutrition{
			Macronutrients: n.Macronutrients,
			Micronutrients: n.Micronutrients,
		}
	}
	return food
}

func lowerKeys(m map[string]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
