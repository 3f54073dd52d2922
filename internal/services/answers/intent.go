package answers

import (
	"strings"

	"github.com/ternarybob/respondo/internal/models"
)

var definitionMarkers = []string{"what is", "what are", "define", "definition", "meaning"}

// ClassifyIntent classifies a question by cheap lexical rules, checked in
// priority order: definition markers, how-to markers, leading "why",
// otherwise general.
func ClassifyIntent(question string) models.QuestionIntent {
	q := strings.ToLower(question)

	for _, marker := range definitionMarkers {
		if strings.Contains(q, marker) {
			return models.IntentDefinition
		}
	}
	if strings.Contains(q, "how to") || strings.Contains(q, "how do") {
		return models.IntentHowTo
	}
	if strings.HasPrefix(q, "why") {
		return models.IntentWhy
	}
	return models.IntentGeneral
}
