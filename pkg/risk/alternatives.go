package risk

import (
	"sort"
	"strings"
)

const DefaultAlternativesLimit = 3

type Alternative struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Brand    string `json:"brand,omitempty"`
	Category string `json:"category,omitempty"`
}

// FindAlternatives picks up to limit foods from pool, which the caller has
// already filtered to safe verdicts. Same-category candidates win; the rest of
// the pool is used only when none share the category. Safe foods get none.
func FindAlternatives(food Food, verdict Verdict, pool []Food, limit int) []Alternative {
	if verdict.IsSafe() {
		return nil
	}
	if limit <= 0 {
		limit = DefaultAlternativesLimit
	}

	var sameCategory, others []Food
	for _, c := range pool {
		if sameFood(food, c) {
			continue
		}
		if food.Category != "" && strings.EqualFold(c.Category, food.Category) {
			sameCategory = append(sameCategory, c)
		} else {
			others = append(others, c)
		}
	}

	picked := sameCategory
	if len(picked) == 0 {
		picked = others
	}
	if len(picked) > limit {
		picked = picked[:limit]
	}

	out := make([]Alternative, 0, len(picked))
	for _, c := range picked {
		out = append(out, Alternative{ID: c.ID, Name: c.Name, Brand: c.Brand, Category: c.Category})
	}
	return out
}

func sameFood(a, b Food) bool {
	if a.ID != "" && b.ID != "" {
		return a.ID == b.ID
	}
	return strings.EqualFold(a.Name, b.Name) && strings.EqualFold(a.Brand, b.Brand)
}

// SuggestSubstitutes returns static substitutes for staples found in the food,
// plus the disease-specific ones for the profile's diseases. Substitutes that
// would hit one of the user's allergies are left out.
func SuggestSubstitutes(kb *KnowledgeBase, food Food, profile Profile) []string {
	tokens := ExtractTokens(food)

	var out []string
	seen := map[string]bool{}
	add := func(table map[string][]string) {
		for _, term := range sortedKeys(table) {
			if _, ok := matchToken(tokens, term); !ok {
				continue
			}
			for _, s := range table[term] {
				if seen[s] || len(CheckAllergens(kb, []string{strings.ToLower(s)}, profile.Allergies)) > 0 {
					continue
				}
				seen[s] = true
				out = append(out, s)
			}
		}
	}

	add(kb.substitutions)
	for _, d := range profile.Diseases {
		_, key, ok := kb.Disease(d.Name)
		if !ok {
			continue
		}
		if table, ok := kb.diseaseSubstitutions[key]; ok {
			add(table)
		}
	}
	return out
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
