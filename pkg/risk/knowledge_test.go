package risk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKnowledgeBase_Memoized(t *testing.T) {
	assert.Same(t, DefaultKnowledgeBase(), DefaultKnowledgeBase())
}

func TestKnowledgeBase_Lookups(t *testing.T) {
	kb := DefaultKnowledgeBase()

	rule, key, ok := kb.Disease("  High Blood Pressure ")
	require.True(t, ok)
	assert.Equal(t, "hypertension", key)
	assert.Contains(t, rule.Avoid, "sodium")

	_, _, ok = kb.Disease("unknown")
	assert.False(t, ok)

	assert.Contains(t, kb.AllergenGroup("NUTS"), "almond")
	assert.Equal(t, []string{"kiwi"}, kb.AllergenGroup("Kiwi"))
	assert.Nil(t, kb.AllergenGroup(" "))

	limit, ok := kb.Threshold("Sodium")
	require.True(t, ok)
	assert.Equal(t, 600.0, limit)

	triggers, key, ok := kb.SymptomTriggers("Migraine")
	require.True(t, ok)
	assert.Equal(t, "headache", key)
	assert.Contains(t, triggers, "msg")

	require.Len(t, kb.Heuristics("Diabetes"), 1)
	assert.Empty(t, kb.Heuristics("gout"))
}

func TestNewKnowledgeBase_CopiesTables(t *testing.T) {
	tables := DefaultTables()
	kb := NewKnowledgeBase(tables, nil)

	tables.AllergenGroups["sesame"][0] = "changed"

	assert.Equal(t, "sesame", kb.AllergenGroup("sesame")[0])
}

func TestLoadKnowledgeBase_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "knowledge.yaml")
	content := `
diseases:
  pku:
    avoid: [Aspartame, phenylalanine]
    consequence: Phenylalanine builds up in the blood
disease_aliases:
  phenylketonuria: pku
nutrient_thresholds:
  sugar: 10
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	kb, err := LoadKnowledgeBase(path)
	require.NoError(t, err)

	rule, key, ok := kb.Disease("Phenylketonuria")
	require.True(t, ok)
	assert.Equal(t, "pku", key)
	assert.Equal(t, []string{"aspartame", "phenylalanine"}, rule.Avoid)

	limit, _ := kb.Threshold("sugar")
	assert.Equal(t, 10.0, limit)

	_, _, ok = kb.Disease("diabetes")
	assert.True(t, ok)
	assert.Len(t, kb.Heuristics("diabetes"), 1)
}

func TestLoadKnowledgeBase_OverrideReplacesRegardlessOfCase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "knowledge.yaml")
	content := `
diseases:
  Diabetes:
    avoid: [xylitol]
    consequence: Custom diabetes rule
nutrient_thresholds:
  Sugar: 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	for i := 0; i < 20; i++ {
		kb, err := LoadKnowledgeBase(path)
		require.NoError(t, err)

		rule, key, ok := kb.Disease("diabetes")
		require.True(t, ok)
		assert.Equal(t, "diabetes", key)
		assert.Equal(t, []string{"xylitol"}, rule.Avoid)
		assert.Equal(t, "Custom diabetes rule", rule.Consequence)

		limit, _ := kb.Threshold("sugar")
		assert.Equal(t, 3.0, limit)
	}
}

func TestMergeTables_NormalizesKeys(t *testing.T) {
	merged := mergeTables(DefaultTables(), Tables{
		Diseases: map[string]DiseaseRule{" Diabetes ": {Avoid: []string{"xylitol"}}},
	})

	assert.Equal(t, []string{"xylitol"}, merged.Diseases["diabetes"].Avoid)
	assert.NotContains(t, merged.Diseases, " Diabetes ")
	assert.Len(t, merged.Diseases, len(DefaultTables().Diseases))
}

func TestLoadKnowledgeBase_Errors(t *testing.T) {
	_, err := LoadKnowledgeBase(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("diseases: [not, a, map"), 0o600))
	_, err = LoadKnowledgeBase(path)
	assert.Error(t, err)
}
