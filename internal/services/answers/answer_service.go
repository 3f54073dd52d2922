package answers

import (
	"regexp"
	"strings"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/respondo/internal/interfaces"
	"github.com/ternarybob/respondo/internal/models"
)

const fallbackAnswer = "I couldn't find relevant information in your documents to answer " +
	"this question. Please try rephrasing your question or upload more relevant documents."

// minSentenceLength filters fragments out of candidate sentences
const minSentenceLength = 20

// contextResults is how many top results feed the answer context
const contextResults = 3

var sentenceSplitter = regexp.MustCompile(`[.!?]+`)

var howToMarkers = []string{"first", "then", "next", "finally", "step", "process"}
var whyMarkers = []string{"because", "since", "due to", "reason", "cause", "result"}

// Service implements AnswerService with heuristic sentence extraction
type Service struct {
	logger arbor.ILogger
}

// NewService creates a new answer synthesis service
func NewService(logger arbor.ILogger) interfaces.AnswerService {
	return &Service{logger: logger}
}

// Answer synthesizes an answer from ranked search results. Results must
// already be sorted by descending score.
func (s *Service) Answer(question string, results []models.SearchResult) *models.QAResult {
	if len(results) == 0 {
		return &models.QAResult{
			Question:   question,
			Answer:     fallbackAnswer,
			Sources:    []models.SearchResult{},
			Confidence: 0,
			Timestamp:  time.Now(),
		}
	}

	intent := ClassifyIntent(question)
	answer := s.synthesize(intent, results)
	confidence := calculateConfidence(results)

	s.logger.Debug().
		Str("intent", string(intent)).
		Int("sources", len(results)).
		Float64("confidence", confidence).
		Msg("Answer synthesized")

	return &models.QAResult{
		Question:   question,
		Answer:     answer,
		Sources:    results,
		Confidence: confidence,
		Timestamp:  time.Now(),
	}
}

// synthesize extracts candidate sentences from the top results and
// formats them per intent
func (s *Service) synthesize(intent models.QuestionIntent, results []models.SearchResult) string {
	top := results
	if len(top) > contextResults {
		top = top[:contextResults]
	}
	contents := make([]string, len(top))
	for i, result := range top {
		contents[i] = result.Chunk.Content
	}
	sentences := candidateSentences(strings.Join(contents, "\n\n"))

	switch intent {
	case models.IntentDefinition:
		return "Based on the documents, " + strings.Join(takeFirst(sentences, 2), ". ") + "."

	case models.IntentHowTo:
		steps := filterByMarkers(sentences, howToMarkers)
		if len(steps) > 0 {
			return "Here's what I found in the documents:\n\n" + strings.Join(takeFirst(steps, 3), ".\n\n") + "."
		}
		return "Based on the available information: " + strings.Join(takeFirst(sentences, 2), ". ") + "."

	case models.IntentWhy:
		explanations := filterByMarkers(sentences, whyMarkers)
		if len(explanations) > 0 {
			return "According to the documents: " + strings.Join(takeFirst(explanations, 2), ". ") + "."
		}
		return "Based on the available information: " + strings.Join(takeFirst(sentences, 2), ". ") + "."

	default:
		return "Based on your documents:\n\n" + strings.Join(takeFirst(sentences, 3), ".\n\n") + "."
	}
}

// calculateConfidence rewards both strong top-match quality and
// corroboration by multiple results, capped at 1.0
func calculateConfidence(results []models.SearchResult) float64 {
	var sum, top float64
	for _, result := range results {
		sum += result.Score
		if result.Score > top {
			top = result.Score
		}
	}
	avg := sum / float64(len(results))

	base := (avg + top) / 2
	bonus := float64(len(results)) / 5
	if bonus > 1 {
		bonus = 1
	}

	confidence := base + bonus*0.2
	if confidence > 1 {
		confidence = 1
	}
	return confidence
}

// candidateSentences splits context into sentences and keeps those long
// enough to carry meaning
func candidateSentences(context string) []string {
	var sentences []string
	for _, raw := range sentenceSplitter.Split(context, -1) {
		sentence := strings.TrimSpace(raw)
		if len(sentence) > minSentenceLength {
			sentences = append(sentences, sentence)
		}
	}
	return sentences
}

func filterByMarkers(sentences, markers []string) []string {
	var matched []string
	for _, sentence := range sentences {
		lower := strings.ToLower(sentence)
		for _, marker := range markers {
			if strings.Contains(lower, marker) {
				matched = append(matched, sentence)
				break
			}
		}
	}
	return matched
}

func takeFirst(sentences []string, n int) []string {
	if len(sentences) > n {
		return sentences[:n]
	}
	return sentences
}
