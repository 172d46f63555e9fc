package risk

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// CheckDiseases matches every avoid and limit keyword of each known disease.
// Avoid keywords fire on an ingredient match, a nutrient above its threshold
// or a registered heuristic, and yield risky findings. Limit keywords use the
// first two triggers and yield moderate findings.
func CheckDiseases(kb *KnowledgeBase, food Food, tokens []string, diseases []Condition, log *zap.Logger) []Finding {
	var findings []Finding
	for _, disease := range diseases {
		name := strings.TrimSpace(disease.Name)
		if name == "" {
			continue
		}
		rule, key, ok := kb.Disease(name)
		if !ok {
			log.Debug("unknown disease in health profile", zap.String("disease", name))
			continue
		}
		heuristics := kb.Heuristics(key)

		for _, keyword := range rule.Avoid {
			found, trigger, ok := matchDiseaseKeyword(kb, food, tokens, keyword)
			if !ok {
				if h, has := heuristicFor(heuristics, keyword); has && h.Fn != nil {
					if _, present := food.Nutrition.Value(h.Nutrient); !present && h.Fn(food, tokens) {
						found, trigger, ok = keyword+" (heuristic)", TriggerHeuristic, true
					}
				}
			}
			if !ok {
				continue
			}
			findings = append(findings, Finding{
				Kind:                KindDisease,
				Severity:            Risky,
				Subject:             name,
				Key:                 key,
				Found:               found,
				Trigger:             trigger,
				Consequence:         rule.Consequence,
				LongTermConsequence: rule.LongTermConsequence,
				Recommendation:      fmt.Sprintf("Avoid foods high in %s", keyword),
			})
		}

		for _, keyword := range rule.Limit {
			found, trigger, ok := matchDiseaseKeyword(kb, food, tokens, keyword)
			if !ok {
				continue
			}
			findings = append(findings, Finding{
				Kind:                KindDisease,
				Severity:            Moderate,
				Subject:             name,
				Key:                 key,
				Found:               found,
				Trigger:             trigger,
				Consequence:         rule.Consequence,
				LongTermConsequence: rule.LongTermConsequence,
				Recommendation:      fmt.Sprintf("Consume in moderation: contains %s", keyword),
			})
		}
	}
	return findings
}

// matchDiseaseKeyword tries the ingredient tokens first, then the nutrient threshold.
func matchDiseaseKeyword(kb *KnowledgeBase, food Food, tokens []string, keyword string) (string, Trigger, bool) {
	if _, ok := matchToken(tokens, keyword); ok {
		return keyword, TriggerIngredient, true
	}
	limit, ok := kb.Threshold(keyword)
	if !ok {
		return "", "", false
	}
	if v, present := food.Nutrition.Value(keyword); present && v > limit {
		return keyword + " (high)", TriggerNutrition, true
	}
	return "", "", false
}
