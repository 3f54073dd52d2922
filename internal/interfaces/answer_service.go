package interfaces

import (
	"github.com/ternarybob/respondo/internal/models"
)

// AnswerService synthesizes an answer from ranked search results
type AnswerService interface {
	// Answer classifies the question intent, extracts candidate sentences
	// from the top results, and computes a confidence score. Empty results
	// produce a fixed fallback answer with confidence 0.
	Answer(question string, results []models.SearchResult) *models.QAResult
}
