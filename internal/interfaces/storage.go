package interfaces

import (
	"github.com/ternarybob/respondo/internal/models"
)

// DocumentStorage persists documents and their chunk records
type DocumentStorage interface {
	// StoreDocument persists the document and every owned chunk in one
	// transaction. Partial writes are not observable: on failure nothing
	// is persisted.
	StoreDocument(doc *models.Document) error

	// GetDocument returns a single document with its chunks attached.
	// Returns models.ErrNotFound if the id is unknown.
	GetDocument(id string) (*models.Document, error)

	// GetDocuments returns all stored documents with chunks attached,
	// in stable key order.
	GetDocuments() ([]*models.Document, error)

	// DeleteDocument removes the document and cascades to all chunks with
	// a matching DocumentID. Deleting a non-existent id is a no-op.
	DeleteDocument(id string) error

	CountDocuments() (int, error)
	CountChunks() (int, error)
	GetStats() (*models.DocumentStats, error)
}

// StorageManager provides access to all storage services
type StorageManager interface {
	DocumentStorage() DocumentStorage

	// DB returns the underlying database connection for maintenance tasks
	DB() interface{}

	Close() error
}
