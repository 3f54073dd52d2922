package embeddings

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/respondo/internal/models"
)

func newTestService() *Service {
	return NewService(arbor.NewLogger()).(*Service)
}

func magnitude(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

func TestGenerateEmbeddingDeterminism(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	text := "This document presents a research study and analysis of the system."
	first, err := svc.GenerateEmbedding(ctx, text)
	require.NoError(t, err)
	second, err := svc.GenerateEmbedding(ctx, text)
	require.NoError(t, err)

	require.Len(t, first, Dimension)
	assert.Equal(t, first, second, "same input must yield a bit-identical vector")
}

func TestGenerateEmbeddingNormalized(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	vector, err := svc.GenerateEmbedding(ctx, "This document presents a research study and analysis of the system.")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, magnitude(vector), 1e-9, "non-zero embedding must be unit length")
}

func TestGenerateEmbeddingEmptyText(t *testing.T) {
	svc := newTestService()

	vector, err := svc.GenerateEmbedding(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, vector, Dimension)
	assert.Zero(t, magnitude(vector), "empty text must yield the zero vector")
}

func TestGenerateEmbeddingNoVocabularySignal(t *testing.T) {
	svc := newTestService()

	// None of these words are in the fixed vocabulary
	vector, err := svc.GenerateEmbedding(context.Background(), "Cats are mammals. Dogs are mammals too.")
	require.NoError(t, err)
	assert.Zero(t, magnitude(vector), "text without vocabulary terms yields the zero vector")
}

func TestGenerateEmbeddingStopWordsIgnored(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	with, err := svc.GenerateEmbedding(ctx, "the document and the data")
	require.NoError(t, err)
	without, err := svc.GenerateEmbedding(ctx, "document data")
	require.NoError(t, err)

	assert.Equal(t, without, with, "stop words must not affect the vector")
}

func TestEmbedChunks(t *testing.T) {
	svc := newTestService()

	chunks := []models.DocumentChunk{
		{ID: "c0", Content: "This document covers the project overview and objective."},
		{ID: "c1", Content: "The analysis method produced a clear result and conclusion."},
		{ID: "c2", Content: ""},
	}
	require.NoError(t, svc.EmbedChunks(context.Background(), chunks))

	for i, chunk := range chunks {
		require.Len(t, chunk.Embedding, Dimension, "chunk %d missing embedding", i)
	}
	assert.InDelta(t, 1.0, magnitude(chunks[0].Embedding), 1e-9)
	assert.InDelta(t, 1.0, magnitude(chunks[1].Embedding), 1e-9)
	assert.Zero(t, magnitude(chunks[2].Embedding))

	// Batch embedding must match single embedding exactly
	single, err := svc.GenerateEmbedding(context.Background(), chunks[0].Content)
	require.NoError(t, err)
	assert.Equal(t, single, chunks[0].Embedding)
}

func TestEmbedChunksCancelledContext(t *testing.T) {
	svc := newTestService()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	chunks := []models.DocumentChunk{
		{ID: "c0", Content: "This document covers the project overview and objective."},
	}
	err := svc.EmbedChunks(ctx, chunks)
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, chunks[0].Embedding, "no embedding may be set after cancellation")
}

func TestCosineSimilaritySelf(t *testing.T) {
	svc := newTestService()

	vector, err := svc.GenerateEmbedding(context.Background(), "research data analysis report")
	require.NoError(t, err)
	require.NotZero(t, magnitude(vector))

	assert.InDelta(t, 1.0, CosineSimilarity(vector, vector), 1e-9)
}

func TestCosineSimilaritySymmetric(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	a, _ := svc.GenerateEmbedding(ctx, "document content summary")
	b, _ := svc.GenerateEmbedding(ctx, "system process method")

	assert.Equal(t, CosineSimilarity(a, b), CosineSimilarity(b, a))
}

func TestCosineSimilarityEdgeCases(t *testing.T) {
	zero := make([]float64, Dimension)
	unit := make([]float64, Dimension)
	unit[0] = 1

	assert.Zero(t, CosineSimilarity(unit, zero), "zero vector scores 0")
	assert.Zero(t, CosineSimilarity(unit, []float64{1, 0}), "length mismatch scores 0")
}
