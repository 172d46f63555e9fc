package utils

import (
	"FoodGuard-Backend/domain"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_YAMLWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
DB_HOST: db.internal
DB_PORT: "5432"
EVAL_CONCURRENCY: "4"
ALERT_PUBLISHER: stream
`), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("ALERT_PUBLISHER", "mqtt")

	LoadConfig()

	assert.Equal(t, "db.internal", GetConfig("DB_HOST"))
	assert.Equal(t, "mqtt", GetConfig("ALERT_PUBLISHER"))
	assert.Equal(t, 4, GetConfigInt("EVAL_CONCURRENCY", 8))
	assert.Equal(t, "", GetConfig("NOT_A_KEY"))
}

func TestGetConfigInt_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("ALTERNATIVES_LIMIT", "three")
	t.Setenv("NOTIFY_COOLDOWN_MINUTES", "")

	LoadConfig()

	assert.Equal(t, 3, GetConfigInt("ALTERNATIVES_LIMIT", 3))
	assert.Equal(t, 60, GetConfigInt("NOTIFY_COOLDOWN_MINUTES", 60))
	assert.Equal(t, "json", GetConfigOr("LOG_FORMAT_UNKNOWN", "json"))
}

func TestValidator_CustomRules(t *testing.T) {
	InitValidator()

	ok := domain.UpdateHealthProfileRequest{DietaryPreferences: []string{"low-sugar", "Vegan"}}
	assert.NoError(t, Validate.Struct(ok))

	bad := domain.UpdateHealthProfileRequest{DietaryPreferences: []string{"carnivore"}}
	assert.Error(t, Validate.Struct(bad))

	req := domain.CheckProductRequest{Name: "Cookies", Category: "snacks"}
	assert.NoError(t, Validate.Struct(req))
	req.Category = "toys"
	assert.Error(t, Validate.Struct(req))

	assert.Error(t, Validate.Struct(domain.CheckProductRequest{}))
}

func TestHashPassword(t *testing.T) {
	hashed, err := HashPassword("correct horse")
	require.NoError(t, err)

	assert.NotEqual(t, "correct horse", hashed)
	assert.True(t, CheckPassword(hashed, "correct horse"))
	assert.False(t, CheckPassword(hashed, "battery staple"))
}
