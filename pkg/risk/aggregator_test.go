package risk

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_DedupKeepsFirstOccurrence(t *testing.T) {
	v := Aggregate(Verdict{
		Diseases: []Finding{
			{Kind: KindDisease, Severity: Risky, Recommendation: "Avoid foods high in sodium"},
			{Kind: KindDisease, Severity: Moderate, Recommendation: "Consume in moderation: contains caffeine"},
			{Kind: KindDisease, Severity: Risky, Recommendation: "Avoid foods high in sodium"},
		},
		Symptoms: []Finding{
			{Kind: KindSymptomTrigger, Severity: Moderate, Recommendation: ""},
		},
	})

	assert.Equal(t, Risky, v.OverallRisk)
	assert.Equal(t, []string{
		Headline(Risky),
		"Avoid foods high in sodium",
		"Consume in moderation: contains caffeine",
	}, v.Recommendations)
}

func TestAggregate_OrderIndependentRisk(t *testing.T) {
	a := Finding{Kind: KindSymptomTrigger, Severity: Moderate}
	b := Finding{Kind: KindDrugInteraction, Severity: Harmful}

	first := Aggregate(Verdict{Symptoms: []Finding{a}, DrugInteractions: []Finding{b}})
	second := Aggregate(Verdict{DrugInteractions: []Finding{b}, Symptoms: []Finding{a}})

	assert.Equal(t, Harmful, first.OverallRisk)
	assert.Equal(t, first.OverallRisk, second.OverallRisk)
}

func TestAdjustForPreferences_NeverLowers(t *testing.T) {
	in := Verdict{Diseases: []Finding{
		{Kind: KindDisease, Key: "diabetes", Severity: Moderate, Found: "glucose syrup"},
		{Kind: KindDisease, Key: "diabetes", Severity: Risky, Found: "sugar (heuristic)", Trigger: TriggerHeuristic},
		{Kind: KindDisease, Key: "diabetes", Severity: Moderate, Found: "honey"},
		{Kind: KindDisease, Key: "hypertension", Severity: Moderate, Found: "sugar"},
		{Kind: KindDisease, Key: "high cholesterol", Severity: Moderate, Found: "saturated fat"},
	}}

	out := AdjustForPreferences(in, []string{"Low-Sugar", "low-fat"}, DefaultPreferenceRules())

	require.Len(t, out.Diseases, len(in.Diseases))
	for i := range in.Diseases {
		assert.GreaterOrEqual(t, int(out.Diseases[i].Severity), int(in.Diseases[i].Severity))
	}
	assert.Equal(t, Risky, out.Diseases[0].Severity)
	assert.Equal(t, Risky, out.Diseases[1].Severity)
	assert.Equal(t, Moderate, out.Diseases[2].Severity)
	assert.Equal(t, Moderate, out.Diseases[3].Severity)
	// low-fat has no built-in rule
	assert.Equal(t, Moderate, out.Diseases[4].Severity)

	// input left untouched
	assert.Equal(t, Moderate, in.Diseases[0].Severity)
}

func TestAdjustForPreferences_NoActiveRule(t *testing.T) {
	in := Verdict{Diseases: []Finding{{Kind: KindDisease, Key: "diabetes", Severity: Moderate, Found: "glucose syrup"}}}

	out := AdjustForPreferences(in, []string{"vegan"}, DefaultPreferenceRules())

	assert.Equal(t, Moderate, out.Diseases[0].Severity)
}

func TestFinding_MarshalJSON(t *testing.T) {
	raw, err := json.Marshal(Finding{
		Kind:           KindDrugInteraction,
		Severity:       Harmful,
		Subject:        "Warfarin",
		Key:            "warfarin",
		Found:          "cranberry",
		Trigger:        TriggerIngredient,
		Consequence:    "Bleeding risk",
		Recommendation: "Do not combine cranberry with Warfarin",
	})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "drug_interaction", got["type"])
	assert.Equal(t, "harmful", got["severity"])
	assert.Equal(t, "Warfarin", got["medication"])
	assert.Equal(t, "cranberry", got["found"])
	assert.NotContains(t, got, "longTermConsequence")
	assert.NotContains(t, got, "Key")
}

func TestParseSeverity(t *testing.T) {
	s, err := ParseSeverity(" Risky ")
	require.NoError(t, err)
	assert.Equal(t, Risky, s)

	_, err = ParseSeverity("catastrophic")
	assert.Error(t, err)

	assert.Equal(t, Safe, MaxSeverity())
}
