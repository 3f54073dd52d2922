package embeddings

import (
	"context"
	"math"
	"regexp"
	"strings"
	"sync"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/respondo/internal/interfaces"
	"github.com/ternarybob/respondo/internal/models"
)

// Dimension is the fixed embedding vector length
const Dimension = 384

const modelName = "lexical-signature-v1"

var nonWordPattern = regexp.MustCompile(`[^\w\s]`)

// stopWords is the closed filter list applied before vocabulary lookup
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
	"with": {}, "by": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"be": {}, "been": {}, "have": {}, "has": {}, "had": {}, "do": {},
	"does": {}, "did": {}, "will": {}, "would": {}, "could": {}, "should": {},
}

// vocabulary maps the fixed 20-term vocabulary to its rank (1-based).
// Rank order matters: it drives both the simulated IDF and the vector slot.
var vocabulary = buildVocabulary()

func buildVocabulary() map[string]int {
	terms := []string{
		"document", "text", "content", "information", "data", "analysis",
		"report", "research", "study", "project", "system", "process",
		"method", "result", "conclusion", "summary", "overview",
		"introduction", "background", "objective",
	}
	vocab := make(map[string]int, len(terms))
	for i, term := range terms {
		vocab[term] = i + 1
	}
	return vocab
}

// Service implements EmbeddingService with a deterministic lexical
// signature. It is a pure function of the input text: no learned state,
// no external calls, bit-identical output for identical input.
type Service struct {
	logger arbor.ILogger
}

// NewService creates a new embedding service
func NewService(logger arbor.ILogger) interfaces.EmbeddingService {
	return &Service{logger: logger}
}

// GenerateEmbedding maps text to a 384-dimension L2-normalized vector.
// Text with no vocabulary signal yields the zero vector.
func (s *Service) GenerateEmbedding(ctx context.Context, text string) ([]float64, error) {
	words := preprocess(text)
	vector := make([]float64, Dimension)

	if len(words) == 0 {
		return vector, nil
	}

	counts := make(map[string]int, len(words))
	for _, word := range words {
		counts[word]++
	}
	totalWords := float64(len(words))

	// Accumulate per occurrence so repeated vocabulary terms weigh more
	for _, word := range words {
		rank, ok := vocabulary[word]
		if !ok {
			continue
		}
		slot := rank % Dimension
		tf := float64(counts[word]) / totalWords
		idf := math.Log(1000 / float64(rank)) // simulated IDF by vocabulary rank
		vector[slot] += tf * idf
	}

	normalize(vector)
	return vector, nil
}

// EmbedChunks sets embeddings on chunks in place. Chunks are independent,
// so each is embedded on its own goroutine with index-addressed writes.
func (s *Service) EmbedChunks(ctx context.Context, chunks []models.DocumentChunk) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var wg sync.WaitGroup
	for i := range chunks {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			vector, _ := s.GenerateEmbedding(ctx, chunks[i].Content)
			chunks[i].Embedding = vector
		}(i)
	}
	wg.Wait()

	s.logger.Debug().
		Int("chunks", len(chunks)).
		Int("dimension", Dimension).
		Msg("Chunk embeddings generated")

	return nil
}

// GenerateQueryEmbedding generates an embedding for a search query. The
// lexical signature treats queries and documents identically.
func (s *Service) GenerateQueryEmbedding(ctx context.Context, query string) ([]float64, error) {
	return s.GenerateEmbedding(ctx, query)
}

// ModelName returns the embedding model identifier
func (s *Service) ModelName() string {
	return modelName
}

// Dimension returns the embedding dimension
func (s *Service) Dimension() int {
	return Dimension
}

// CosineSimilarity returns the cosine similarity of two vectors. Vectors
// of different lengths are incomparable and score 0; a zero-magnitude
// vector also scores 0.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	magnitude := math.Sqrt(normA) * math.Sqrt(normB)
	if magnitude == 0 {
		return 0
	}
	return dot / magnitude
}

// preprocess lowercases, strips non-word characters, and drops short
// tokens and stop words
func preprocess(text string) []string {
	cleaned := nonWordPattern.ReplaceAllString(strings.ToLower(text), " ")

	var words []string
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= 2 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		words = append(words, word)
	}
	return words
}

// normalize scales the vector to unit length, leaving the zero vector
// unchanged
func normalize(vector []float64) {
	var sum float64
	for _, v := range vector {
		sum += v * v
	}
	magnitude := math.Sqrt(sum)
	if magnitude == 0 {
		return
	}
	for i := range vector {
		vector[i] /= magnitude
	}
}
