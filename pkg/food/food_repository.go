package food

import (
	"FoodGuard-Backend/domain"
	"FoodGuard-Backend/entities"
	"context"
	"gorm.io/gorm"
	"time"
)

type (
	// FoodItemFilter narrows GetFoodItems. Zero values mean "no constraint".
	FoodItemFilter struct {
		Status        string
		ExpiresFrom   *time.Time
		ExpiresBefore *time.Time
	}

	FoodRepository interface {
		AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error)
		UpdateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		DeleteFoodItem(ctx context.Context, id string) error
		GetFoodItems(ctx context.Context, userID string, filter FoodItemFilter, page, limit int) ([]*entities.FoodItem, int64, error)
		GetActiveFoodItems(ctx context.Context, userID string) ([]*entities.FoodItem, error)
		GetFoodItemsByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.FoodItem, error)
		UpdateStatus(ctx context.Context, id string, status string) error
		UpdateRiskLevel(ctx context.Context, id string, riskLevel string, checkedAt time.Time) error
		CountByStatus(ctx context.Context, userID string) (map[string]int64, error)
	}

	foodRepository struct {
		db *gorm.DB
	}

	statusCount struct {
		Status string
		Count  int64
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Create(foodItem).Error
}

func (r *foodRepository) GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error) {
	var foodItem entities.FoodItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&foodItem).Error; err != nil {
		return nil, err
	}
	return &foodItem, nil
}

func (r *foodRepository) UpdateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Save(foodItem).Error
}

func (r *foodRepository) DeleteFoodItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodItem{}).Error
}

func (r *foodRepository) GetFoodItems(ctx context.Context, userID string, filter FoodItemFilter, page, limit int) ([]*entities.FoodItem, int64, error) {
	var foodItems []*entities.FoodItem
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.FoodItem{}).Where("user_id = ?", userID)

	if filter.Status != "all" && filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ExpiresFrom != nil {
		query = query.Where("expiry_date >= ?", *filter.ExpiresFrom)
	}
	if filter.ExpiresBefore != nil {
		query = query.Where("expiry_date < ?", *filter.ExpiresBefore)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("expiry_date asc").Find(&foodItems).Error; err != nil {
		return nil, 0, err
	}

	return foodItems, count, nil
}

func (r *foodRepository) GetActiveFoodItems(ctx context.Context, userID string) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, domain.FoodStatusActive).
		Order("expiry_date asc").
		Find(&foodItems).Error; err != nil {
		return nil, err
	}
	return foodItems, nil
}

// GetFoodItemsByExpiryRange returns active items expiring in [startDate, endDate).
func (r *foodRepository) GetFoodItemsByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND expiry_date >= ? AND expiry_date < ? AND status = ?",
			userID, startDate, endDate, domain.FoodStatusActive).
		Order("expiry_date asc").
		Find(&foodItems).Error; err != nil {
		return nil, err
	}

	return foodItems, nil
}

func (r *foodRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	return r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status}).Error
}

func (r *foodRepository) UpdateRiskLevel(ctx context.Context, id string, riskLevel string, checkedAt time.Time) error {
	return r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"risk_level":      riskLevel,
			"risk_checked_at": checkedAt,
		}).Error
}

func (r *foodRepository) CountByStatus(ctx context.Context, userID string) (map[string]int64, error) {
	var rows []statusCount
	if err := r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Select("status, count(*) as count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
