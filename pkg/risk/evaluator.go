package risk

import (
	"go.uber.org/zap"
)

// Evaluator runs every checker against one food and one profile. It holds no
// mutable state and may be shared between goroutines.
type Evaluator struct {
	kb    *KnowledgeBase
	rules []PreferenceRule
	log   *zap.Logger
}

// NewEvaluator falls back to the default knowledge base and a no-op logger when given nil.
func NewEvaluator(kb *KnowledgeBase, log *zap.Logger) *Evaluator {
	if kb == nil {
		kb = DefaultKnowledgeBase()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Evaluator{
		kb:    kb,
		rules: DefaultPreferenceRules(),
		log:   log,
	}
}

// WithPreferenceRules returns a copy of e using rules instead of the defaults.
func (e *Evaluator) WithPreferenceRules(rules []PreferenceRule) *Evaluator {
	cp := *e
	cp.rules = append([]PreferenceRule(nil), rules...)
	return &cp
}

func (e *Evaluator) KnowledgeBase() *KnowledgeBase {
	return e.kb
}

// Evaluate always returns a complete verdict. Unknown profile terms are
// logged and skipped.
func (e *Evaluator) Evaluate(food Food, profile Profile) Verdict {
	tokens := ExtractTokens(food)

	for _, a := range profile.Allergies {
		if a.Name != "" && !e.kb.HasAllergenGroup(a.Name) {
			e.log.Debug("allergy has no synonym group, matching literally", zap.String("allergy", a.Name))
		}
	}

	v := Verdict{
		Allergens:        nonNil(CheckAllergens(e.kb, tokens, profile.Allergies)),
		Diseases:         nonNil(CheckDiseases(e.kb, food, tokens, profile.Diseases, e.log)),
		DrugInteractions: nonNil(CheckDrugInteractions(e.kb, tokens, profile.Medications, e.log)),
		Symptoms:         nonNil(CheckSymptoms(e.kb, tokens, profile.Symptoms, e.log)),
	}
	v = AdjustForPreferences(v, profile.DietaryPreferences, e.rules)
	v = Aggregate(v)

	if v.OverallRisk != Safe {
		e.log.Debug("food evaluated",
			zap.String("food", food.Name),
			zap.Stringer("overall_risk", v.OverallRisk),
			zap.Int("findings", len(v.All())),
		)
	}
	return v
}

func nonNil(f []Finding) []Finding {
	if f == nil {
		return []Finding{}
	}
	return f
}
