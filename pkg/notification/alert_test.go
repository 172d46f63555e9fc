package notification

import (
	"FoodGuard-Backend/domain"
	"FoodGuard-Backend/entities"
	"FoodGuard-Backend/pkg/risk"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func testUser(prefs entities.NotificationPreferences) *entities.User {
	return &entities.User{
		ID:                      uuid.New(),
		Name:                    "Dewi",
		Email:                   "dewi@example.com",
		NotificationPreferences: datatypes.NewJSONType(prefs),
	}
}

func testItem(name string, expiry time.Time) *entities.FoodItem {
	return &entities.FoodItem{ID: uuid.New(), Name: name, Brand: "Acme", ExpiryDate: expiry}
}

func evaluate(t *testing.T, food risk.Food, profile risk.Profile) risk.Verdict {
	t.Helper()
	return risk.NewEvaluator(nil, nil).Evaluate(food, profile)
}

func TestBuildRiskAlert_Labels(t *testing.T) {
	user := testUser(entities.DefaultNotificationPreferences())
	item := testItem("Peanut Butter Cookies", time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC))

	verdict := evaluate(t,
		risk.Food{Name: item.Name, Ingredients: []string{"wheat flour", "peanut butter", "sugar"}},
		risk.Profile{Allergies: []risk.Condition{{Name: "peanuts"}}},
	)
	alert := BuildRiskAlert(user, item, verdict)
	require.NotNil(t, alert)

	assert.Equal(t, SeverityCritical, alert.SeverityLabel)
	assert.Equal(t, domain.NotificationTypeRiskAlert, alert.Type)
	assert.Equal(t, "Critical health alert: Peanut Butter Cookies", alert.Title)
	assert.Contains(t, alert.Message, "contains peanut")
	assert.Equal(t, verdict.Recommendations, alert.Recommendations)
	require.Len(t, alert.FoodItems, 1)
	assert.Equal(t, "Acme", alert.FoodItems[0].Brand)
	require.NotNil(t, alert.FoodItems[0].ExpiryDate)
	assert.Equal(t, item.ID.String(), alert.FoodItemID)
}

func TestBuildRiskAlert_SafeHasNoPayload(t *testing.T) {
	verdict := evaluate(t, risk.Food{Name: "Plain Water"}, risk.Profile{})

	assert.Nil(t, BuildRiskAlert(testUser(entities.NotificationPreferences{}), testItem("Plain Water", time.Time{}), verdict))
}

func TestSeverityLabel(t *testing.T) {
	assert.Equal(t, "CRITICAL", SeverityLabel(risk.Harmful))
	assert.Equal(t, "HIGH", SeverityLabel(risk.Risky))
	assert.Equal(t, "MEDIUM", SeverityLabel(risk.Moderate))
	assert.Equal(t, "", SeverityLabel(risk.Safe))
}

func TestBuildExpiryDigest(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	user := testUser(entities.DefaultNotificationPreferences())

	items := []*entities.FoodItem{
		testItem("Milk", today.AddDate(0, 0, -1)),
		testItem("Bread", today),
		testItem("Cheese", today.AddDate(0, 0, 2)),
		testItem("Rice", today.AddDate(0, 1, 0)),
	}

	alert := BuildExpiryDigest(user, items, now)
	require.NotNil(t, alert)

	assert.Equal(t, SeverityHigh, alert.SeverityLabel)
	assert.Equal(t, domain.NotificationTypeExpiryDigest, alert.Type)
	assert.Len(t, alert.FoodItems, 3)
	assert.Equal(t, []string{
		"Discard Milk: it expired 1 day(s) ago",
		"Use Bread today",
		"Use Cheese within 2 day(s)",
	}, alert.Recommendations)
	assert.Equal(t, "1 expired, 1 expiring today, 1 expiring within 3 days.", alert.Message)

	assert.Nil(t, BuildExpiryDigest(user, items[3:], now))

	soonOnly := BuildExpiryDigest(user, items[2:3], now)
	require.NotNil(t, soonOnly)
	assert.Equal(t, SeverityLow, soonOnly.SeverityLabel)
}

func TestRenderEmail(t *testing.T) {
	expiry := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	body, err := RenderEmail(&Alert{
		Title:           "Health warning: <Crackers>",
		SeverityLabel:   SeverityHigh,
		Message:         "Salted Crackers contains salt.",
		FoodItems:       []AlertFoodItem{{Name: "Salted Crackers", Brand: "Acme", ExpiryDate: &expiry}},
		Recommendations: []string{"Avoid foods high in sodium"},
	})
	require.NoError(t, err)

	assert.Contains(t, body, "Health warning: &lt;Crackers&gt;")
	assert.Contains(t, body, "Salted Crackers (Acme), expires 2026-03-12")
	assert.Contains(t, body, "<li>Avoid foods high in sodium</li>")
}
