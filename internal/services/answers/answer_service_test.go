package answers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/respondo/internal/models"
)

func newTestService() *Service {
	return NewService(arbor.NewLogger()).(*Service)
}

func resultWithContent(content string, score float64) models.SearchResult {
	return models.SearchResult{
		Chunk: models.DocumentChunk{
			ID:         "chunk-1",
			DocumentID: "doc-1",
			Content:    content,
		},
		Document: models.Document{ID: "doc-1", Name: "fixture.txt"},
		Score:    score,
	}
}

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		question string
		want     models.QuestionIntent
	}{
		{"What is a mammal?", models.IntentDefinition},
		{"what are the main components", models.IntentDefinition},
		{"Please define the term", models.IntentDefinition},
		{"Give me the meaning of this", models.IntentDefinition},
		{"How to deploy the service?", models.IntentHowTo},
		{"how do I configure logging", models.IntentHowTo},
		{"Why does the build fail?", models.IntentWhy},
		{"Tell me about the project", models.IntentGeneral},
		// Definition markers outrank how-to markers
		{"What is how to guide?", models.IntentDefinition},
		// "why" must lead the question, not merely appear
		{"Explain why this happens", models.IntentGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyIntent(tt.question))
		})
	}
}

func TestAnswerEmptyResults(t *testing.T) {
	svc := newTestService()

	result := svc.Answer("What is a mammal?", nil)
	require.NotNil(t, result)
	assert.Equal(t, "What is a mammal?", result.Question)
	assert.Contains(t, result.Answer, "couldn't find relevant information")
	assert.Empty(t, result.Sources)
	assert.Zero(t, result.Confidence)
	assert.False(t, result.Timestamp.IsZero())
}

func TestAnswerDefinition(t *testing.T) {
	svc := newTestService()

	results := []models.SearchResult{
		resultWithContent("Cats are mammals that hunt small prey. Dogs are mammals too and live with humans. Fish are not mammals at all.", 0.8),
	}
	result := svc.Answer("What is a mammal?", results)

	assert.True(t, strings.HasPrefix(result.Answer, "Based on the documents, "))
	assert.Contains(t, result.Answer, "Cats are mammals")
	assert.Equal(t, results, result.Sources)
}

func TestAnswerHowToWithSteps(t *testing.T) {
	svc := newTestService()

	results := []models.SearchResult{
		resultWithContent("First you install the binary on the host. Then you edit the configuration file. The weather was nice on deployment day.", 0.7),
	}
	result := svc.Answer("How do I deploy this?", results)

	assert.True(t, strings.HasPrefix(result.Answer, "Here's what I found in the documents:"))
	assert.Contains(t, result.Answer, "First you install the binary")
	assert.NotContains(t, result.Answer, "weather")
}

func TestAnswerHowToFallback(t *testing.T) {
	svc := newTestService()

	results := []models.SearchResult{
		resultWithContent("The service runs continuously in the background. Restarting requires operator privileges on the host.", 0.7),
	}
	result := svc.Answer("How do I restart it?", results)

	assert.True(t, strings.HasPrefix(result.Answer, "Based on the available information: "))
}

func TestAnswerWhyWithExplanations(t *testing.T) {
	svc := newTestService()

	results := []models.SearchResult{
		resultWithContent("The build fails because the cache directory is missing. The logs are verbose during startup sequences.", 0.7),
	}
	result := svc.Answer("Why does the build fail?", results)

	assert.True(t, strings.HasPrefix(result.Answer, "According to the documents: "))
	assert.Contains(t, result.Answer, "because the cache directory is missing")
}

func TestAnswerGeneral(t *testing.T) {
	svc := newTestService()

	results := []models.SearchResult{
		resultWithContent("The platform handles ingestion of uploaded files. Retrieval happens over embedded chunk vectors. Answers come from extracted sentences.", 0.6),
	}
	result := svc.Answer("Tell me about the platform", results)

	assert.True(t, strings.HasPrefix(result.Answer, "Based on your documents:"))
}

func TestAnswerUsesTopThreeResultsOnly(t *testing.T) {
	svc := newTestService()

	results := []models.SearchResult{
		resultWithContent("Alpha content sentence that is long enough to keep.", 0.9),
		resultWithContent("Beta content sentence that is long enough to keep.", 0.8),
		resultWithContent("Gamma content sentence that is long enough to keep.", 0.7),
		resultWithContent("Delta content sentence that is long enough to keep.", 0.6),
	}
	result := svc.Answer("Tell me everything", results)

	assert.NotContains(t, result.Answer, "Delta")
	// All ranked results remain as sources even when only the top three
	// feed the answer text
	assert.Len(t, result.Sources, 4)
}

func TestCalculateConfidenceBounds(t *testing.T) {
	tests := []struct {
		name    string
		scores  []float64
		wantMin float64
		wantMax float64
	}{
		{"single weak result", []float64{0.15}, 0, 1},
		{"single strong result", []float64{0.95}, 0, 1},
		{"many strong results", []float64{0.99, 0.98, 0.97, 0.96, 0.95, 0.94}, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var results []models.SearchResult
			for _, score := range tt.scores {
				results = append(results, resultWithContent("content long enough to keep around", score))
			}
			confidence := calculateConfidence(results)
			assert.GreaterOrEqual(t, confidence, tt.wantMin)
			assert.LessOrEqual(t, confidence, tt.wantMax)
		})
	}
}

func TestCalculateConfidenceFormula(t *testing.T) {
	results := []models.SearchResult{
		resultWithContent("some content that is long enough", 0.8),
		resultWithContent("some content that is long enough", 0.4),
	}

	// avg=0.6, top=0.8, base=0.7, bonus=min(2/5,1)*0.2=0.08
	confidence := calculateConfidence(results)
	assert.InDelta(t, 0.78, confidence, 1e-9)
}

func TestCalculateConfidenceCappedAtOne(t *testing.T) {
	var results []models.SearchResult
	for i := 0; i < 10; i++ {
		results = append(results, resultWithContent("some content that is long enough", 1.0))
	}
	assert.Equal(t, 1.0, calculateConfidence(results))
}
