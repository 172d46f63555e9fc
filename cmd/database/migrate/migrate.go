package migration

import (
	"FoodGuard-Backend/entities"
	"fmt"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// uuid_generate_v4() backs every primary key default
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";").Error; err != nil {
		return fmt.Errorf("error creating uuid-ossp extension: %w", err)
	}

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		return fmt.Errorf("error migrating user table: %w", err)
	}
	if err := db.AutoMigrate(&entities.FoodItem{}); err != nil {
		return fmt.Errorf("error migrating food item table: %w", err)
	}
	if err := db.AutoMigrate(&entities.Notification{}); err != nil {
		return fmt.Errorf("error migrating notification table: %w", err)
	}
	return nil
}
