package risk

import (
	"fmt"
	"strings"
)

// CheckAllergens emits one harmful finding per synonym keyword that appears in
// any token. Several keywords of the same group each produce their own finding.
func CheckAllergens(kb *KnowledgeBase, tokens []string, allergies []Condition) []Finding {
	var findings []Finding
	for _, allergy := range allergies {
		name := strings.TrimSpace(allergy.Name)
		if name == "" {
			continue
		}
		for _, keyword := range kb.AllergenGroup(name) {
			if _, ok := matchToken(tokens, keyword); !ok {
				continue
			}
			findings = append(findings, Finding{
				Kind:           KindAllergen,
				Severity:       Harmful,
				Subject:        name,
				Key:            strings.ToLower(name),
				Found:          keyword,
				Trigger:        TriggerIngredient,
				Consequence:    fmt.Sprintf("Contains %s, which can cause a severe allergic reaction", keyword),
				Recommendation: fmt.Sprintf("Do not consume: this product contains %s allergens", strings.ToLower(name)),
			})
		}
	}
	return findings
}
