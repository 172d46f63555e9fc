package risk

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func setupEvaluator(t *testing.T) *Evaluator {
	t.Helper()
	return NewEvaluator(DefaultKnowledgeBase(), zap.NewNop())
}

func names(list ...string) []Condition {
	out := make([]Condition, 0, len(list))
	for _, n := range list {
		out = append(out, Condition{Name: n})
	}
	return out
}

func TestEvaluate_PeanutAllergyIsHarmful(t *testing.T) {
	e := setupEvaluator(t)

	v := e.Evaluate(Food{
		Name:        "Peanut Butter Cookies",
		Ingredients: []string{"wheat flour, peanut butter, sugar"},
	}, Profile{Allergies: names("peanuts")})

	assert.Equal(t, Harmful, v.OverallRisk)
	require.Len(t, v.Allergens, 1)
	assert.Contains(t, v.Allergens[0].Found, "peanut")
	assert.Equal(t, Harmful, v.Allergens[0].Severity)
	assert.Equal(t, "peanuts", v.Allergens[0].Subject)
	assert.Equal(t, Headline(Harmful), v.Recommendations[0])
}

func TestEvaluate_DiabetesHeuristicWithoutNutrition(t *testing.T) {
	e := setupEvaluator(t)

	v := e.Evaluate(Food{
		Name:     "Glucose Biscuits",
		Category: "snacks",
	}, Profile{Diseases: names("diabetes")})

	require.Len(t, v.Diseases, 1)
	f := v.Diseases[0]
	assert.Equal(t, Risky, f.Severity)
	assert.Equal(t, TriggerHeuristic, f.Trigger)
	assert.Equal(t, "sugar (heuristic)", f.Found)
	assert.Equal(t, Risky, v.OverallRisk)
}

func TestEvaluate_HeuristicSkippedWhenNutrientKnown(t *testing.T) {
	e := setupEvaluator(t)

	v := e.Evaluate(Food{
		Name:      "Glucose Biscuits",
		Category:  "snacks",
		Nutrition: &Nutrition{Macronutrients: map[string]float64{"sugar": 4}},
	}, Profile{Diseases: names("diabetes")})

	assert.Empty(t, v.Diseases)
	assert.Equal(t, Safe, v.OverallRisk)
}

func TestEvaluate_SodiumThreshold(t *testing.T) {
	e := setupEvaluator(t)

	v := e.Evaluate(Food{
		Name:      "Cup Soup",
		Nutrition: &Nutrition{Micronutrients: map[string]float64{"sodium": 700}},
	}, Profile{Diseases: names("hypertension")})

	require.Len(t, v.Diseases, 1)
	assert.Equal(t, "sodium (high)", v.Diseases[0].Found)
	assert.Equal(t, TriggerNutrition, v.Diseases[0].Trigger)
	assert.Equal(t, Risky, v.Diseases[0].Severity)
}

func TestEvaluate_SodiumAtThresholdDoesNotFire(t *testing.T) {
	e := setupEvaluator(t)

	v := e.Evaluate(Food{
		Name:      "Cup Soup",
		Nutrition: &Nutrition{Micronutrients: map[string]float64{"sodium": 600}},
	}, Profile{Diseases: names("hypertension")})

	assert.Empty(t, v.Diseases)
}

func TestEvaluate_EmptyInputsAreSafe(t *testing.T) {
	e := setupEvaluator(t)

	v := e.Evaluate(Food{}, Profile{})

	assert.Equal(t, Safe, v.OverallRisk)
	assert.Equal(t, []string{"✅ This product appears safe for your health profile."}, v.Recommendations)
	assert.NotNil(t, v.Allergens)
	assert.Empty(t, v.Allergens)
	assert.Empty(t, v.Diseases)
	assert.Empty(t, v.DrugInteractions)
	assert.Empty(t, v.Symptoms)
}

func TestEvaluate_LowSugarEscalatesLimitFinding(t *testing.T) {
	e := setupEvaluator(t)
	food := Food{
		Name:        "Oat Crunch Bar",
		Ingredients: []string{"oats, glucose syrup, salt"},
		Nutrition:   &Nutrition{Macronutrients: map[string]float64{"sugar": 8}},
	}

	plain := e.Evaluate(food, Profile{Diseases: names("diabetes")})
	require.Len(t, plain.Diseases, 1)
	assert.Equal(t, Moderate, plain.Diseases[0].Severity)
	assert.Equal(t, Moderate, plain.OverallRisk)

	adjusted := e.Evaluate(food, Profile{
		Diseases:           names("diabetes"),
		DietaryPreferences: []string{"low-sugar"},
	})
	require.Len(t, adjusted.Diseases, 1)
	assert.Equal(t, "glucose syrup", adjusted.Diseases[0].Found)
	assert.Equal(t, Risky, adjusted.Diseases[0].Severity)
	assert.Equal(t, Risky, adjusted.OverallRisk)
}

func TestEvaluate_LowFatHasNoDefaultEffect(t *testing.T) {
	e := setupEvaluator(t)
	food := Food{
		Name:        "Cheddar",
		Category:    "cheese",
		Ingredients: []string{"pasteurised milk, salt, cultures"},
		Nutrition:   &Nutrition{Macronutrients: map[string]float64{"fat": 33}},
	}
	profile := Profile{Diseases: names("high cholesterol")}

	plain := e.Evaluate(food, profile)
	assert.Equal(t, Moderate, plain.OverallRisk)

	profile.DietaryPreferences = []string{"low-fat"}
	withPreference := e.Evaluate(food, profile)
	assert.Equal(t, Moderate, withPreference.OverallRisk)
	for _, f := range withPreference.Diseases {
		assert.Equal(t, Moderate, f.Severity, f.Found)
	}
}

func TestEvaluate_CustomPreferenceRule(t *testing.T) {
	lowFat := PreferenceRule{
		Preference: "low-fat",
		Kind:       KindDisease,
		Disease:    "high cholesterol",
		From:       Moderate,
		To:         Risky,
		Match: func(f Finding) bool {
			return strings.Contains(f.Found, "fat")
		},
	}
	e := setupEvaluator(t).WithPreferenceRules(append(DefaultPreferenceRules(), lowFat))
	food := Food{
		Name:      "Cheddar",
		Category:  "cheese",
		Nutrition: &Nutrition{Macronutrients: map[string]float64{"fat": 33}},
	}

	v := e.Evaluate(food, Profile{
		Diseases:           names("high cholesterol"),
		DietaryPreferences: []string{"low-fat"},
	})
	assert.Equal(t, Risky, v.OverallRisk)

	// the base evaluator keeps the built-in rules
	base := setupEvaluator(t).Evaluate(food, Profile{
		Diseases:           names("high cholesterol"),
		DietaryPreferences: []string{"low-fat"},
	})
	assert.Equal(t, Moderate, base.OverallRisk)
}

func TestEvaluate_SharedKeywordAcrossDiseases(t *testing.T) {
	e := setupEvaluator(t)

	v := e.Evaluate(Food{
		Name:        "Salted Crackers",
		Ingredients: []string{"wheat flour", "salt", "palm oil"},
		Nutrition:   &Nutrition{Micronutrients: map[string]float64{"sodium": 900}},
	}, Profile{Diseases: names("hypertension", "kidney disease")})

	require.Len(t, v.Diseases, 3)
	assert.Equal(t, "hypertension", v.Diseases[0].Subject)
	assert.Equal(t, "sodium (high)", v.Diseases[0].Found)
	assert.Equal(t, "salt", v.Diseases[1].Found)
	assert.Equal(t, TriggerIngredient, v.Diseases[1].Trigger)
	assert.Equal(t, "kidney disease", v.Diseases[2].Subject)
	assert.Equal(t, "sodium (high)", v.Diseases[2].Found)

	assert.Equal(t, []string{
		Headline(Risky),
		"Avoid foods high in sodium",
		"Avoid foods high in salt",
	}, v.Recommendations)
}

func TestEvaluate_Deterministic(t *testing.T) {
	e := setupEvaluator(t)
	food := Food{
		Name:        "Chocolate Milk",
		Brand:       "Farm Fresh",
		Ingredients: []string{"milk", "sugar", "cocoa", "caffeine"},
		Nutrition:   &Nutrition{Macronutrients: map[string]float64{"sugar": 22}},
	}
	profile := Profile{
		Allergies:          names("Dairy"),
		Diseases:           names("Type 2 Diabetes", "GERD"),
		Medications:        names("Ciprofloxacin"),
		Symptoms:           names("Headache"),
		DietaryPreferences: []string{"low-sugar"},
	}

	first, err := json.Marshal(e.Evaluate(food, profile))
	require.NoError(t, err)
	second, err := json.Marshal(e.Evaluate(food, profile))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestEvaluate_CaseInsensitiveSynonyms(t *testing.T) {
	e := setupEvaluator(t)
	profile := Profile{Allergies: names("Nuts")}

	upper := e.Evaluate(Food{Name: "Trail Mix", Ingredients: []string{"Contains PEANUTS"}}, profile)
	lower := e.Evaluate(Food{Name: "Trail Mix", Ingredients: []string{"contains peanuts"}}, profile)

	require.NotEmpty(t, upper.Allergens)
	assert.Equal(t, upper.Allergens, lower.Allergens)
	assert.Equal(t, Harmful, upper.OverallRisk)
}

func TestEvaluate_AllergenOutranksEverything(t *testing.T) {
	e := setupEvaluator(t)

	v := e.Evaluate(Food{
		Name:        "Sesame Snack",
		Ingredients: []string{"sesame", "msg"},
	}, Profile{
		Allergies: names("sesame"),
		Symptoms:  names("headache"),
	})

	require.Len(t, v.Allergens, 1)
	require.Len(t, v.Symptoms, 1)
	assert.Equal(t, Moderate, v.Symptoms[0].Severity)
	assert.Equal(t, Harmful, v.OverallRisk)
}

func TestEvaluate_OverallRiskIsMaxOfFindings(t *testing.T) {
	e := setupEvaluator(t)
	cases := []struct {
		name    string
		food    Food
		profile Profile
	}{
		{"symptom only", Food{Name: "Cabbage Slaw"}, Profile{Symptoms: names("bloating")}},
		{"drug avoid", Food{Name: "Grapefruit Juice"}, Profile{Medications: names("Lipitor")}},
		{"drug limit", Food{Name: "Kale Chips"}, Profile{Medications: names("warfarin")}},
		{"nothing matches", Food{Name: "Plain Water"}, Profile{Diseases: names("gout")}},
		{"unknown terms", Food{Name: "Bread"}, Profile{Diseases: names("made up illness"), Medications: names("unobtainium")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := e.Evaluate(tc.food, tc.profile)
			want := Safe
			for _, f := range v.All() {
				want = MaxSeverity(want, f.Severity)
			}
			assert.Equal(t, want, v.OverallRisk)
			assert.Equal(t, len(v.All()) == 0, v.IsSafe())
			assert.Equal(t, Headline(v.OverallRisk), v.Recommendations[0])
		})
	}
}

func TestEvaluate_AliasesResolve(t *testing.T) {
	e := setupEvaluator(t)

	v := e.Evaluate(Food{Name: "Grapefruit Juice"}, Profile{Medications: names("Atorvastatin")})

	require.Len(t, v.DrugInteractions, 1)
	assert.Equal(t, "Atorvastatin", v.DrugInteractions[0].Subject)
	assert.Equal(t, "statins", v.DrugInteractions[0].Key)
	assert.Equal(t, Harmful, v.DrugInteractions[0].Severity)
}

func TestEvaluate_LogsUnknownTerms(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	e := NewEvaluator(nil, zap.New(core))

	v := e.Evaluate(Food{Name: "Bread"}, Profile{
		Diseases:    names("Dragon Pox"),
		Medications: names("Elixir"),
		Symptoms:    names("Sneezing"),
	})

	assert.Equal(t, Safe, v.OverallRisk)
	assert.Equal(t, 1, logs.FilterMessage("unknown disease in health profile").Len())
	assert.Equal(t, 1, logs.FilterMessage("unknown medication in health profile").Len())
	assert.Equal(t, 1, logs.FilterMessage("unknown symptom in health profile").Len())
}

func TestEvaluate_SmallerKnowledgeBase(t *testing.T) {
	kb := NewKnowledgeBase(Tables{
		Diseases: map[string]DiseaseRule{
			"pku": {Avoid: []string{"aspartame"}, Consequence: "Phenylalanine builds up"},
		},
	}, nil)
	e := NewEvaluator(kb, nil)

	v := e.Evaluate(Food{Name: "Diet Cola", Ingredients: []string{"water", "Aspartame"}}, Profile{
		Diseases: names("PKU", "diabetes"),
	})

	require.Len(t, v.Diseases, 1)
	assert.Equal(t, "aspartame", v.Diseases[0].Found)
}
