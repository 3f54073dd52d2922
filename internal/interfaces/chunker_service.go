package interfaces

import (
	"github.com/ternarybob/respondo/internal/models"
)

// ChunkerService splits document text into overlapping, size-bounded
// segments suitable for embedding and retrieval
type ChunkerService interface {
	// Split returns chunk texts of roughly targetSize characters with soft
	// overlap carried by whole sentences. Empty input yields no chunks.
	Split(text string, targetSize, overlap int) []string

	// BuildChunks constructs chunk records for a document from chunk texts,
	// resolving character offsets and derived metadata
	BuildChunks(doc *models.Document, texts []string) []models.DocumentChunk
}
