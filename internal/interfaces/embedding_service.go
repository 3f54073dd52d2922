package interfaces

import (
	"context"

	"github.com/ternarybob/respondo/internal/models"
)

// EmbeddingService generates vector embeddings for text. The bundled
// implementation is a deterministic lexical signature; the interface allows
// a learned model to be substituted without touching search or synthesis.
type EmbeddingService interface {
	// Generate embedding for raw text. Same text always yields the same
	// vector.
	GenerateEmbedding(ctx context.Context, text string) ([]float64, error)

	// Generate and set embeddings for chunks in place. Chunks are
	// independent and embedded concurrently.
	EmbedChunks(ctx context.Context, chunks []models.DocumentChunk) error

	// Generate query embedding (may differ from document embedding for
	// learned models)
	GenerateQueryEmbedding(ctx context.Context, query string) ([]float64, error)

	// Model information
	ModelName() string
	Dimension() int
}
