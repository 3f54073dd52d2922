package search

import (
	"fmt"
	"strings"
)

// generateRelevanceReason builds a short human-readable explanation for a
// search result. Explanatory metadata only, never used for ranking.
func generateRelevanceReason(query, content string, score float64) string {
	queryWords := strings.Fields(strings.ToLower(query))
	contentWords := make(map[string]struct{})
	for _, word := range strings.Fields(strings.ToLower(content)) {
		contentWords[word] = struct{}{}
	}

	var common []string
	for _, word := range queryWords {
		if _, ok := contentWords[word]; ok {
			common = append(common, word)
		}
	}

	if len(common) > 0 {
		if len(common) > 3 {
			common = common[:3]
		}
		return fmt.Sprintf("Contains relevant terms: %s", strings.Join(common, ", "))
	}

	switch {
	case score > 0.5:
		return "High semantic similarity to your query"
	case score > 0.3:
		return "Moderate semantic relevance"
	default:
		return "Related content found"
	}
}
