package utils

import (
	"FoodGuard-Backend/domain"
	"github.com/go-playground/validator/v10"
	"strings"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()
	_ = Validate.RegisterValidation("dietary_preference", func(fl validator.FieldLevel) bool {
		return domain.IsDietaryPreference(fl.Field().String())
	})
	_ = Validate.RegisterValidation("food_category", func(fl validator.FieldLevel) bool {
		v := strings.ToLower(strings.TrimSpace(fl.Field().String()))
		for _, c := range domain.FoodCategories {
			if c == v {
				return true
			}
		}
		return false
	})
}
