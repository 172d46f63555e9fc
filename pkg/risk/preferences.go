package risk

import "strings"

// PreferenceRule raises findings of one kind from From to To when the user
// holds Preference. Disease restricts the rule to one knowledge base key;
// empty means any subject. Match decides per finding.
type PreferenceRule struct {
	Preference string
	Kind       Kind
	Disease    string
	From       Severity
	To         Severity
	Match      func(f Finding) bool
}

// DefaultPreferenceRules returns the built-in escalation rules. Only low-sugar
// escalates, and only diabetes findings.
func DefaultPreferenceRules() []PreferenceRule {
	return []PreferenceRule{
		{
			Preference: "low-sugar",
			Kind:       KindDisease,
			Disease:    "diabetes",
			From:       Moderate,
			To:         Risky,
			Match: func(f Finding) bool {
				return f.Trigger == TriggerHeuristic || containsAny(f.Found, "sugar", "glucose")
			},
		},
	}
}

// AdjustForPreferences returns a copy of v with matching findings escalated.
// A rule never lowers a severity.
func AdjustForPreferences(v Verdict, preferences []string, rules []PreferenceRule) Verdict {
	active := make(map[string]bool, len(preferences))
	for _, p := range preferences {
		active[strings.ToLower(strings.TrimSpace(p))] = true
	}

	var applicable []PreferenceRule
	for _, r := range rules {
		if active[strings.ToLower(r.Preference)] {
			applicable = append(applicable, r)
		}
	}
	if len(applicable) == 0 {
		return v
	}

	v.Allergens = escalate(v.Allergens, applicable)
	v.Diseases = escalate(v.Diseases, applicable)
	v.DrugInteractions = escalate(v.DrugInteractions, applicable)
	v.Symptoms = escalate(v.Symptoms, applicable)
	return v
}

func escalate(findings []Finding, rules []PreferenceRule) []Finding {
	if len(findings) == 0 {
		return findings
	}
	out := make([]Finding, len(findings))
	copy(out, findings)
	for i := range out {
		for _, r := range rules {
			if r.Kind != out[i].Kind || out[i].Severity != r.From || r.To <= r.From {
				continue
			}
			if r.Disease != "" && !strings.EqualFold(r.Disease, out[i].Key) {
				continue
			}
			if r.Match != nil && !r.Match(out[i]) {
				continue
			}
			out[i].Severity = r.To
		}
	}
	return out
}
