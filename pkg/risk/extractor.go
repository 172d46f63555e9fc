package risk

import "strings"

// SplitIngredients splits a comma-joined ingredient string into trimmed parts.
func SplitIngredients(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ExtractTokens flattens a food into the lowercase tokens the checkers search:
// ingredients, explicit allergen tags, then name, brand and category.
func ExtractTokens(food Food) []string {
	tokens := make([]string, 0, len(food.Ingredients)+len(food.Allergens)+3)
	add := func(v string) {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			tokens = append(tokens, v)
		}
	}

	for _, ing := range food.Ingredients {
		// a single element may still hold a comma-joined list
		for _, part := range SplitIngredients(ing) {
			add(part)
		}
	}
	for _, a := range food.Allergens {
		add(a)
	}
	add(food.Name)
	add(food.Brand)
	add(food.Category)

	return tokens
}
