package common

import (
	"fmt"

	"github.com/google/uuid"
)

// NewDocumentID generates a unique document ID with the "doc_" prefix
// Format: doc_<uuid>
func NewDocumentID() string {
	return "doc_" + uuid.New().String()
}

// NewChunkID generates a chunk ID derived from the owning document
// Format: <documentID>-chunk-<position>
func NewChunkID(documentID string, position int) string {
	return fmt.Sprintf("%s-chunk-%d", documentID, position)
}
