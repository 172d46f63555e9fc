package risk

import "strings"

// HeuristicFunc reports whether a food probably carries the risk a keyword
// stands for when structured nutrition data cannot say.
type HeuristicFunc func(food Food, tokens []string) bool

// Heuristic is attached to one avoid keyword of a disease. It only runs when
// Nutrient is missing from the food's nutrition map.
type Heuristic struct {
	Keyword  string
	Nutrient string
	Fn       HeuristicFunc
}

var (
	sugarKeywords      = []string{"glucose", "sugar", "sucrose", "fructose", "corn syrup", "jaggery", "maltodextrin", "sweet"}
	sugaryFoodKeywords = []string{"biscuit", "cookie", "candy", "cake", "soda", "juice", "dessert", "chocolate", "pastry"}
)

// DefaultHeuristics returns the built-in registry. Only diabetes has one today.
func DefaultHeuristics() map[string][]Heuristic {
	return map[string][]Heuristic{
		"diabetes": {
			{
				Keyword:  "sugar",
				Nutrient: "sugar",
				Fn: func(food Food, tokens []string) bool {
					return LooksDiabetesRisky(food.Name, food.Category, tokens)
				},
			},
		},
	}
}

// LooksDiabetesRisky flags probable sugar load from names and ingredients alone.
// Known false positive: "sugar-free" still contains "sugar".
func LooksDiabetesRisky(name, category string, tokens []string) bool {
	haystack := strings.ToLower(name + " " + category + " " + strings.Join(tokens, " "))
	return containsAny(haystack, sugarKeywords...) || containsAny(haystack, sugaryFoodKeywords...)
}

func heuristicFor(hs []Heuristic, keyword string) (Heuristic, bool) {
	for _, h := range hs {
		if strings.EqualFold(h.Keyword, keyword) {
			return h, true
		}
	}
	return Heuristic{}, false
}
