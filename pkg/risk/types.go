package risk

import (
	"encoding/json"
	"strings"
)

type Kind string

const (
	KindAllergen        Kind = "allergen"
	KindDisease         Kind = "disease"
	KindDrugInteraction Kind = "drug_interaction"
	KindSymptomTrigger  Kind = "symptom_trigger"
)

// subjectField is the JSON key naming the matched profile entry for each kind.
func (k Kind) subjectField() string {
	switch k {
	case KindAllergen:
		return "allergen"
	case KindDisease:
		return "disease"
	case KindDrugInteraction:
		return "medication"
	case KindSymptomTrigger:
		return "symptom"
	}
	return "subject"
}

// Trigger records which check produced a finding.
type Trigger string

const (
	TriggerIngredient Trigger = "ingredient"
	TriggerNutrition  Trigger = "nutrition"
	TriggerHeuristic  Trigger = "heuristic"
)

type (
	// Food is the minimal shape of a food record the engine reads.
	Food struct {
		ID          string
		Name        string
		Brand       string
		Category    string
		Ingredients []string
		Allergens   []string
		Nutrition   *Nutrition
	}

	// Nutrition holds nutrient values per 100g (or per declared serving).
	// Keys are lowercase nutrient names such as "sugar" or "sodium".
	Nutrition struct {
		Macronutrients map[string]float64 `json:"macronutrients,omitempty" yaml:"macronutrients"`
		Micronutrients map[string]float64 `json:"micronutrients,omitempty" yaml:"micronutrients"`
	}

	// Condition is one canonical health profile entry.
	Condition struct {
		Name      string `json:"name"`
		Severity  string `json:"severity,omitempty"`
		Frequency string `json:"frequency,omitempty"`
	}

	Profile struct {
		Allergies          []Condition
		Diseases           []Condition
		Medications        []Condition
		Symptoms           []Condition
		DietaryPreferences []string
	}

	Finding struct {
		Kind                Kind
		Severity            Severity
		Subject             string
		// Key is the knowledge base entry Subject resolved to, e.g. "diabetes" for "Type 2 Diabetes".
		Key                 string
		Found               string
		Trigger             Trigger
		Consequence         string
		LongTermConsequence string
		Recommendation      string
	}

	Verdict struct {
		Allergens        []Finding `json:"allergens"`
		Diseases         []Finding `json:"diseases"`
		DrugInteractions []Finding `json:"drugInteractions"`
		Symptoms         []Finding `json:"symptoms"`
		OverallRisk      Severity  `json:"overallRisk"`
		Recommendations  []string  `json:"recommendations"`
	}
)

// Value looks the nutrient up in macro then micro nutrients.
func (n *Nutrition) Value(nutrient string) (float64, bool) {
	if n == nil {
		return 0, false
	}
	key := strings.ToLower(nutrient)
	if v, ok := n.Macronutrients[key]; ok {
		return v, true
	}
	if v, ok := n.Micronutrients[key]; ok {
		return v, true
	}
	return 0, false
}

// Empty reports whether no nutrient values are present.
func (n *Nutrition) Empty() bool {
	return n == nil || (len(n.Macronutrients) == 0 && len(n.Micronutrients) == 0)
}

// MarshalJSON writes the discriminant field (allergen, disease, medication or symptom)
// next to the common finding fields.
func (f Finding) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"type":           f.Kind,
		"severity":       f.Severity,
		"found":          f.Found,
		"consequence":    f.Consequence,
		"recommendation": f.Recommendation,
	}
	if f.Trigger != "" {
		out["trigger"] = f.Trigger
	}
	if f.LongTermConsequence != "" {
		out["longTermConsequence"] = f.LongTermConsequence
	}
	out[f.Kind.subjectField()] = f.Subject
	return json.Marshal(out)
}

// All returns every finding in checker order.
func (v Verdict) All() []Finding {
	all := make([]Finding, 0, len(v.Allergens)+len(v.Diseases)+len(v.DrugInteractions)+len(v.Symptoms))
	all = append(all, v.Allergens...)
	all = append(all, v.Diseases...)
	all = append(all, v.DrugInteractions...)
	all = append(all, v.Symptoms...)
	return all
}

func (v Verdict) IsSafe() bool {
	return v.OverallRisk == Safe
}
