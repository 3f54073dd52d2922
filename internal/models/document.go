package models

import (
	"time"
)

// Document represents an ingested document with its decoded text content
type Document struct {
	// Identity
	ID   string `json:"id"`   // doc_{uuid}
	Name string `json:"name"` // Display name (original filename)

	// Declared media type of the uploaded file (text/plain, text/markdown, application/pdf)
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"` // Original byte size

	// Full decoded text content
	Content string `json:"content"`

	// Short preview of the content (first 200 characters)
	Summary string `json:"summary,omitempty"`

	// Owned chunks, attached on read in stored position order. Persisted
	// as separate records keyed by chunk ID; the document record itself is
	// stored with Chunks cleared.
	Chunks []DocumentChunk `json:"chunks,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// DocumentChunk is a bounded, possibly-overlapping segment of a document's
// text, the unit of embedding and retrieval. Immutable once created except
// for Embedding, which is set exactly once during ingest.
type DocumentChunk struct {
	ID         string `json:"id"`          // {documentID}-chunk-{position}
	DocumentID string `json:"document_id"` // Owning document (lookup only)

	Content    string `json:"content"`
	StartIndex int    `json:"start_index"` // Character offset into document text
	EndIndex   int    `json:"end_index"`   // StartIndex + len(Content)
	Position   int    `json:"position"`    // 0-based chunk order within the document

	// 384-dim L2-normalized lexical signature, nil until embedding has run
	Embedding []float64 `json:"embedding,omitempty"`

	Metadata ChunkMetadata `json:"metadata"`
}

// ChunkMetadata holds derived chunk attributes
type ChunkMetadata struct {
	WordCount int    `json:"word_count"`
	Section   string `json:"section"` // "Section {1-based position}"
}

// DocumentStats represents corpus-level statistics
type DocumentStats struct {
	TotalDocuments int       `json:"total_documents"`
	TotalChunks    int       `json:"total_chunks"`
	LastUpdated    time.Time `json:"last_updated"`
}
