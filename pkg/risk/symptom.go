package risk

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

func CheckSymptoms(kb *KnowledgeBase, tokens []string, symptoms []Condition, log *zap.Logger) []Finding {
	var findings []Finding
	for _, symptom := range symptoms {
		name := strings.TrimSpace(symptom.Name)
		if name == "" {
			continue
		}
		triggers, key, ok := kb.SymptomTriggers(name)
		if !ok {
			log.Debug("unknown symptom in health profile", zap.String("symptom", name))
			continue
		}
		for _, keyword := range triggers {
			if _, ok := matchToken(tokens, keyword); !ok {
				continue
			}
			findings = append(findings, Finding{
				Kind:           KindSymptomTrigger,
				Severity:       Moderate,
				Subject:        name,
				Key:            key,
				Found:          keyword,
				Trigger:        TriggerIngredient,
				Consequence:    fmt.Sprintf("May trigger or worsen %s", strings.ToLower(name)),
				Recommendation: fmt.Sprintf("Watch for %s after eating this product", strings.ToLower(name)),
			})
		}
	}
	return findings
}
