package risk

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

func CheckDrugInteractions(kb *KnowledgeBase, tokens []string, medications []Condition, log *zap.Logger) []Finding {
	var findings []Finding
	for _, med := range medications {
		name := strings.TrimSpace(med.Name)
		if name == "" {
			continue
		}
		rule, key, ok := kb.Drug(name)
		if !ok {
			log.Debug("unknown medication in health profile", zap.String("medication", name))
			continue
		}

		for _, keyword := range rule.Avoid {
			if _, ok := matchToken(tokens, keyword); !ok {
				continue
			}
			findings = append(findings, Finding{
				Kind:           KindDrugInteraction,
				Severity:       Harmful,
				Subject:        name,
				Key:            key,
				Found:          keyword,
				Trigger:        TriggerIngredient,
				Consequence:    rule.Consequence,
				Recommendation: fmt.Sprintf("Do not combine %s with %s", keyword, name),
			})
		}
		for _, keyword := range rule.Limit {
			if _, ok := matchToken(tokens, keyword); !ok {
				continue
			}
			findings = append(findings, Finding{
				Kind:           KindDrugInteraction,
				Severity:       Moderate,
				Subject:        name,
				Key:            key,
				Found:          keyword,
				Trigger:        TriggerIngredient,
				Consequence:    rule.Consequence,
				Recommendation: fmt.Sprintf("Limit %s while taking %s and keep intake consistent", keyword, name),
			})
		}
	}
	return findings
}
