package risk

import "strings"

// ContainsKeyword is the only matching rule the checkers use: a case-insensitive
// substring test. It over-matches on purpose ("nut" hits "coconut").
func ContainsKeyword(haystack, needle string) bool {
	needle = strings.ToLower(strings.TrimSpace(needle))
	if needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), needle)
}

// matchToken returns the first token containing keyword.
func matchToken(tokens []string, keyword string) (string, bool) {
	for _, t := range tokens {
		if ContainsKeyword(t, keyword) {
			return t, true
		}
	}
	return "", false
}

func containsAny(haystack string, keywords ...string) bool {
	for _, k := range keywords {
		if ContainsKeyword(haystack, k) {
			return true
		}
	}
	return false
}
