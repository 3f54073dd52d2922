package interfaces

import (
	"context"

	"github.com/ternarybob/respondo/internal/models"
)

// DocumentService orchestrates the ingest and query pipelines:
// chunk -> embed -> store on ingest, search -> synthesize on query.
type DocumentService interface {
	// Ingest chunks, embeds, and stores decoded document text. The
	// document is created only after chunking and embedding complete.
	Ingest(ctx context.Context, name, contentType, text string, size int64) (*models.Document, error)

	// GetDocuments returns all stored documents with chunks attached
	GetDocuments(ctx context.Context) ([]*models.Document, error)

	// GetDocument returns a single document by ID
	GetDocument(ctx context.Context, id string) (*models.Document, error)

	// DeleteDocument removes a document and all of its chunks
	DeleteDocument(ctx context.Context, id string) error

	// AskQuestion retrieves relevant chunks and synthesizes an answer.
	// Empty or whitespace-only questions are rejected here, before the
	// retrieval core is reached.
	AskQuestion(ctx context.Context, question string) (*models.QAResult, error)

	// History returns the session-scoped question/answer history, oldest
	// first
	History() []models.QAResult

	GetStats(ctx context.Context) (*models.DocumentStats, error)
}
