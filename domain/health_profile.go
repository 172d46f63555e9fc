package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ConditionEntry is the canonical form of one health profile entry.
type ConditionEntry struct {
	Name      string `json:"name"`
	Severity  string `json:"severity,omitempty"`
	Frequency string `json:"frequency,omitempty"`
}

// ConditionList accepts either plain strings or {name, severity, frequency}
// objects, mixed freely, and normalizes them to ConditionEntry values.
// Blank names are dropped.
type ConditionList []ConditionEntry

func (l *ConditionList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("condition list must be an array: %w", err)
	}

	out := make(ConditionList, 0, len(raw))
	for _, item := range raw {
		var name string
		if err := json.Unmarshal(item, &name); err == nil {
			if name = strings.TrimSpace(name); name != "" {
				out = append(out, ConditionEntry{Name: name})
			}
			continue
		}

		var entry ConditionEntry
		if err := json.Unmarshal(item, &entry); err != nil {
			return fmt.Errorf("condition entry must be a string or an object with a name: %w", err)
		}
		entry.Name = strings.TrimSpace(entry.Name)
		if entry.Name == "" {
			continue
		}
		out = append(out, entry)
	}
	*l = out
	return nil
}

// IngredientList accepts a comma-joined string or an array of strings.
type IngredientList []string

func (l *IngredientList) UnmarshalJSON(data []byte) error {
	var joined string
	if err := json.Unmarshal(data, &joined); err == nil {
		*l = splitComma(joined)
		return nil
	}

	var parts []string
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("ingredients must be a string or an array of strings: %w", err)
	}
	out := make(IngredientList, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	*l = out
	return nil
}

func splitComma(s string) IngredientList {
	out := IngredientList{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

var DietaryPreferences = []string{
	"low-sugar", "low-sodium", "low-fat", "vegan", "vegetarian",
	"gluten-free", "dairy-free", "keto", "halal", "kosher",
}

func IsDietaryPreference(v string) bool {
	for _, p := range DietaryPreferences {
		if strings.EqualFold(p, strings.TrimSpace(v)) {
			return true
		}
	}
	return false
}
