package food

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockFoodDB(t *testing.T) (sqlmock.Sqlmock, FoodRepository) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return mock, NewFoodRepository(db)
}

func TestCountByStatus(t *testing.T) {
	mock, repo := setupMockFoodDB(t)
	userID := uuid.New().String()

	mock.ExpectQuery(`SELECT status, count\(\*\) as count FROM "food_items" WHERE user_id = \$1 GROUP BY .status.`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("active", 4).
			AddRow("consumed", 2))

	counts, err := repo.CountByStatus(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"active": 4, "consumed": 2}, counts)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFoodItemByID_NotFound(t *testing.T) {
	mock, repo := setupMockFoodDB(t)
	id := uuid.New().String()

	mock.ExpectQuery(`SELECT \* FROM "food_items" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	item, err := repo.GetFoodItemByID(context.Background(), id)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, item)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFoodItemByID_Found(t *testing.T) {
	mock, repo := setupMockFoodDB(t)
	id := uuid.New()
	userID := uuid.New()
	expiry := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "food_items" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "ingredients", "expiry_date", "status"}).
			AddRow(id.String(), userID.String(), "Peanut Butter Cookies", `["wheat flour","peanut butter"]`, expiry, "active"))

	item, err := repo.GetFoodItemByID(context.Background(), id.String())

	require.NoError(t, err)
	assert.Equal(t, id, item.ID)
	assert.Equal(t, userID, item.UserID)
	assert.Equal(t, []string{"wheat flour", "peanut butter"}, item.Ingredients.Data())
	assert.Equal(t, expiry, item.ExpiryDate)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRiskLevel(t *testing.T) {
	mock, repo := setupMockFoodDB(t)
	id := uuid.New().String()
	at := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	mock.ExpectExec(`UPDATE "food_items" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateRiskLevel(context.Background(), id, "risky", at))
	require.NoError(t, mock.ExpectationsWereMet())
}
