package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionList_AcceptsStringsAndObjects(t *testing.T) {
	var req UpdateHealthProfileRequest
	body := `{
		"allergies": ["Peanuts", " ", {"name": " Shellfish ", "severity": "high"}],
		"diseases": [{"name": "Diabetes"}, {"name": ""}],
		"symptoms": [{"name": "headache", "frequency": "weekly"}],
		"dietaryPreferences": ["low-sugar"]
	}`

	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, ConditionList{
		{Name: "Peanuts"},
		{Name: "Shellfish", Severity: "high"},
	}, req.Allergies)
	assert.Equal(t, ConditionList{{Name: "Diabetes"}}, req.Diseases)
	assert.Equal(t, "weekly", req.Symptoms[0].Frequency)
	assert.Empty(t, req.Medications)
}

func TestConditionList_RejectsOtherShapes(t *testing.T) {
	var l ConditionList
	assert.Error(t, json.Unmarshal([]byte(`"Peanuts"`), &l))
	assert.Error(t, json.Unmarshal([]byte(`[42]`), &l))
}

func TestIngredientList(t *testing.T) {
	var joined IngredientList
	require.NoError(t, json.Unmarshal([]byte(`"wheat flour, peanut butter ,, sugar"`), &joined))
	assert.Equal(t, IngredientList{"wheat flour", "peanut butter", "sugar"}, joined)

	var list IngredientList
	require.NoError(t, json.Unmarshal([]byte(`["oats", " ", "honey"]`), &list))
	assert.Equal(t, IngredientList{"oats", "honey"}, list)

	var bad IngredientList
	assert.Error(t, json.Unmarshal([]byte(`{"a": 1}`), &bad))
}

func TestIsDietaryPreference(t *testing.T) {
	assert.True(t, IsDietaryPreference("Low-Sugar"))
	assert.True(t, IsDietaryPreference("kosher"))
	assert.False(t, IsDietaryPreference("carnivore"))
}
