package food

import (
	"FoodGuard-Backend/domain"
	"FoodGuard-Backend/entities"
	"FoodGuard-Backend/internal/utils/storage"
	"FoodGuard-Backend/pkg/nutrition"
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"strings"
	"time"
)

type (
	FoodService interface {
		AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, userID string) (domain.FoodItemResponse, error)
		UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest, userID string) error
		DeleteFoodItem(ctx context.Context, id string, userID string) error
		GetFoodItems(ctx context.Context, userID string, status string, expiryStatus string, page, limit int) ([]domain.FoodItemResponse, int64, error)
		GetFoodItemByID(ctx context.Context, id string, userID string) (domain.FoodItemResponse, error)
		GetExpiringItems(ctx context.Context, userID string, days int) ([]domain.FoodItemResponse, error)
		UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest, userID string) error
		MarkAsConsumed(ctx context.Context, id string, userID string) error
		MarkAsDiscarded(ctx context.Context, id string, userID string) error
		GetDashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error)
	}

	foodService struct {
		foodRepository FoodRepository
		s3             storage.AwsS3
		products       nutrition.Provider
		logger         *zap.Logger
		now            func() time.Time
	}
)

// NewFoodService wires the inventory service. products may be nil, in which
// case barcodes are stored without enrichment.
func NewFoodService(foodRepository FoodRepository, s3 storage.AwsS3, products nutrition.Provider, logger *zap.Logger) FoodService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &foodService{
		foodRepository: foodRepository,
		s3:             s3,
		products:       products,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *foodService) AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, userID string) (domain.FoodItemResponse, error) {
	expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return domain.FoodItemResponse{}, domain.ErrInvalidExpiryDate
	}

	if req.Quantity <= 0 {
		return domain.FoodItemResponse{}, domain.ErrInvalidQuantity
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FoodItemResponse{}, domain.ErrParseUUID
	}

	foodItem := &entities.FoodItem{
		ID:          uuid.New(),
		UserID:      userUUID,
		Name:        strings.TrimSpace(req.Name),
		Brand:       strings.TrimSpace(req.Brand),
		Category:    strings.ToLower(req.Category),
		Barcode:     req.Barcode,
		Ingredients: datatypes.NewJSONType([]string(req.Ingredients)),
		Allergens:   datatypes.NewJSONType(req.Allergens),
		Nutrition:   datatypes.NewJSONType(NutritionFromRequest(req.Nutrition)),
		Quantity:    req.Quantity,
		UnitMeasure: req.UnitMeasure,
		ExpiryDate:  expiryDate,
		IsPackaged:  req.IsPackaged,
		Status:      domain.FoodStatusActive,
	}

	if req.Barcode != "" {
		s.enrich(ctx, foodItem)
	}
	if foodItem.Name == "" {
		return domain.FoodItemResponse{}, domain.ErrProductNotFound
	}
	if foodItem.Category == "" {
		foodItem.Category = "other"
	}

	if err := s.foodRepository.AddFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return ToFoodItemResponse(foodItem, s.now()), nil
}

// enrich fills whatever the user left blank from the nutrition provider.
// A failed lookup leaves the item as submitted.
func (s *foodService) enrich(ctx context.Context, foodItem *entities.FoodItem) {
	if s.products == nil {
		return
	}
	product, err := s.products.LookupBarcode(ctx, foodItem.Barcode)
	if err != nil {
		s.logger.Warn("Barcode lookup failed, continuing without enrichment",
			zap.String("barcode", foodItem.Barcode),
			zap.Error(err),
		)
		return
	}
	ApplyProduct(foodItem, product)
}

// ApplyProduct copies provider data into the blank fields of foodItem.
func ApplyProduct(foodItem *entities.FoodItem, product *nutrition.Product) {
	if foodItem.Name == "" {
		foodItem.Name = product.Name
	}
	if foodItem.Brand == "" {
		foodItem.Brand = product.Brand
	}
	if foodItem.Category == "" {
		foodItem.Category = MatchCategory(product.Categories)
	}
	if len(foodItem.Ingredients.Data()) == 0 {
		foodItem.Ingredients = datatypes.NewJSONType(product.Ingredients)
	}
	if len(foodItem.Allergens.Data()) == 0 {
		foodItem.Allergens = datatypes.NewJSONType(product.Allergens)
	}
	if foodItem.Nutrition.Data() == nil && product.Nutrition != nil {
		foodItem.Nutrition = datatypes.NewJSONType(&entities.NutritionFacts{
			Macronutrients: product.Nutrition.Macronutrients,
			Micronutrients: product.Nutrition.Micronutrients,
			ServingSize:    product.ServingSize,
		})
	}
}

// MatchCategory picks the first provider category that is one of ours.
func MatchCategory(categories []string) string {
	for _, c := range categories {
		c = strings.ToLower(strings.TrimSpace(c))
		for _, known := range domain.FoodCategories {
			if c == known {
				return known
			}
		}
	}
	return ""
}

func (s *foodService) UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest, userID string) error {
	foodItem, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		foodItem.Name = req.Name
	}
	if req.Brand != "" {
		foodItem.Brand = req.Brand
	}
	if req.Category != "" {
		foodItem.Category = strings.ToLower(req.Category)
	}
	if req.Ingredients != nil {
		foodItem.Ingredients = datatypes.NewJSONType([]string(req.Ingredients))
	}
	if req.Allergens != nil {
		foodItem.Allergens = datatypes.NewJSONType(req.Allergens)
	}
	if req.Nutrition != nil {
		foodItem.Nutrition = datatypes.NewJSONType(NutritionFromRequest(req.Nutrition))
	}
	if req.Quantity > 0 {
		foodItem.Quantity = req.Quantity
	}
	if req.UnitMeasure != "" {
		foodItem.UnitMeasure = req.UnitMeasure
	}
	if req.ExpiryDate != "" {
		expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.ErrInvalidExpiryDate
		}
		foodItem.ExpiryDate = expiryDate
	}
	if req.IsPackaged != nil {
		foodItem.IsPackaged = *req.IsPackaged
	}

	// contents may have changed, the cached verdict no longer applies
	if req.Ingredients != nil || req.Allergens != nil || req.Nutrition != nil || req.Name != "" || req.Brand != "" || req.Category != "" {
		foodItem.RiskLevel = ""
		foodItem.RiskCheckedAt = nil
	}

	return s.foodRepository.UpdateFoodItem(ctx, foodItem)
}

func (s *foodService) DeleteFoodItem(ctx context.Context, id string, userID string) error {
	foodItem, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return err
	}

	if foodItem.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(foodItem.ImageURL)
		if objectKey != "" {
			if err := s.s3.DeleteFile(objectKey); err != nil {
				s.logger.Warn("Failed to delete food image", zap.String("key", objectKey), zap.Error(err))
			}
		}
	}

	return s.foodRepository.DeleteFoodItem(ctx, id)
}

func (s *foodService) GetFoodItems(ctx context.Context, userID string, status string, expiryStatus string, page, limit int) ([]domain.FoodItemResponse, int64, error) {
	now := s.now()
	filter := FoodItemFilter{Status: status}
	if expiryStatus != "" {
		from, before, ok := ExpiryRange(expiryStatus, now)
		if !ok {
			return nil, 0, domain.ErrInvalidExpiryTier
		}
		filter.ExpiresFrom, filter.ExpiresBefore = from, before
	}

	foodItems, count, err := s.foodRepository.GetFoodItems(ctx, userID, filter, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.FoodItemResponse, 0, len(foodItems))
	for _, item := range foodItems {
		response = append(response, ToFoodItemResponse(item, now))
	}

	return response, count, nil
}

func (s *foodService) GetFoodItemByID(ctx context.Context, id string, userID string) (domain.FoodItemResponse, error) {
	foodItem, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}
	return ToFoodItemResponse(foodItem, s.now()), nil
}

// GetExpiringItems lists active items that expire within the next days
// calendar days, today included. Already expired items are not listed.
func (s *foodService) GetExpiringItems(ctx context.Context, userID string, days int) ([]domain.FoodItemResponse, error) {
	if days <= 0 {
		days = 3
	}
	now := s.now()
	start := day(now)
	end := start.AddDate(0, 0, days+1)

	foodItems, err := s.foodRepository.GetFoodItemsByExpiryRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	response := make([]domain.FoodItemResponse, 0, len(foodItems))
	for _, item := range foodItems {
		response = append(response, ToFoodItemResponse(item, now))
	}
	return response, nil
}

func (s *foodService) UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest, userID string) error {
	foodItem, err := s.getOwned(ctx, req.FoodItemID, userID)
	if err != nil {
		return err
	}

	fileName := fmt.Sprintf("food-item-%s", foodItem.ID.String())

	var objectKey string
	var uploadErr error
	existingKey := ""
	if foodItem.ImageURL != "" {
		existingKey = s.s3.GetObjectKeyFromLink(foodItem.ImageURL)
	}
	if existingKey != "" {
		objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "food-items", storage.AllowImage...)
	}
	if uploadErr != nil {
		return uploadErr
	}

	foodItem.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	return s.foodRepository.UpdateFoodItem(ctx, foodItem)
}

func (s *foodService) MarkAsConsumed(ctx context.Context, id string, userID string) error {
	return s.changeStatus(ctx, id, userID, domain.FoodStatusConsumed)
}

func (s *foodService) MarkAsDiscarded(ctx context.Context, id string, userID string) error {
	return s.changeStatus(ctx, id, userID, domain.FoodStatusDiscarded)
}

func (s *foodService) changeStatus(ctx context.Context, id string, userID string, status string) error {
	foodItem, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return err
	}
	if foodItem.Status != domain.FoodStatusActive {
		return domain.ErrFoodItemNotActive
	}
	return s.foodRepository.UpdateStatus(ctx, id, status)
}

func (s *foodService) GetDashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error) {
	counts, err := s.foodRepository.CountByStatus(ctx, userID)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	active, err := s.foodRepository.GetActiveFoodItems(ctx, userID)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	stats := domain.DashboardStatsResponse{
		ActiveItems:    counts[domain.FoodStatusActive],
		ConsumedItems:  counts[domain.FoodStatusConsumed],
		DiscardedItems: counts[domain.FoodStatusDiscarded],
		ByExpiry: map[string]int64{
			domain.ExpiryStatusExpired:       0,
			domain.ExpiryStatusExpiringToday: 0,
			domain.ExpiryStatusExpiringSoon:  0,
			domain.ExpiryStatusExpiringWeek:  0,
			domain.ExpiryStatusSafe:          0,
		},
		ByRisk: map[string]int64{},
	}
	for _, n := range counts {
		stats.TotalItems += n
	}

	now := s.now()
	for _, item := range active {
		stats.ByExpiry[ComputeExpiry(item.ExpiryDate, now).Status]++
		level := item.RiskLevel
		if level == "" {
			level = "unchecked"
		}
		stats.ByRisk[level]++
	}

	return stats, nil
}

func (s *foodService) getOwned(ctx context.Context, id string, userID string) (*entities.FoodItem, error) {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodItemNotFound
		}
		return nil, err
	}

	if foodItem.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedAccess
	}
	return foodItem, nil
}
