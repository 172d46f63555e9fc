package risk

var headlines = map[Severity]string{
	Harmful:  "⚠️ AVOID completely - this product poses serious health risks for you.",
	Risky:    "⚠️ This product is not recommended for your health profile.",
	Moderate: "⚡ Consume with caution and in moderation.",
	Safe:     "✅ This product appears safe for your health profile.",
}

// Headline is the first recommendation shown for an overall risk level.
func Headline(s Severity) string {
	return headlines[s]
}

// Aggregate fills OverallRisk and Recommendations from the four finding lists.
// The headline comes first, then finding recommendations in checker order,
// with duplicates dropped at their later occurrences.
func Aggregate(v Verdict) Verdict {
	all := v.All()

	levels := make([]Severity, 0, len(all))
	for _, f := range all {
		levels = append(levels, f.Severity)
	}
	v.OverallRisk = MaxSeverity(levels...)

	recs := []string{Headline(v.OverallRisk)}
	seen := map[string]bool{recs[0]: true}
	for _, f := range all {
		if f.Recommendation == "" || seen[f.Recommendation] {
			continue
		}
		seen[f.Recommendation] = true
		recs = append(recs, f.Recommendation)
	}
	v.Recommendations = recs
	return v
}
