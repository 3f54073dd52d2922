package badger

import (
	"fmt"
	"time"

	badgerdb "github.com/dgraph-io/badger/v4"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/respondo/internal/interfaces"
	"github.com/ternarybob/respondo/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// DocumentStorage implements the DocumentStorage interface for Badger.
// Documents and chunks are separate record types; the document record is
// stored with Chunks cleared and chunks are reattached on read.
type DocumentStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewDocumentStorage creates a new DocumentStorage instance
func NewDocumentStorage(db *BadgerDB, logger arbor.ILogger) interfaces.DocumentStorage {
	return &DocumentStorage{
		db:     db,
		logger: logger,
	}
}

// available reports whether the underlying store has been initialized
func (s *DocumentStorage) available() bool {
	return s.db != nil && s.db.Store() != nil
}

// StoreDocument persists the document and all of its chunks in a single
// badger transaction. On failure nothing is persisted.
func (s *DocumentStorage) StoreDocument(doc *models.Document) error {
	if !s.available() {
		return models.ErrStorageUnavailable
	}
	if doc.ID == "" {
		return fmt.Errorf("document ID is required")
	}

	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now()
	}

	// Store the document record without its chunks
	record := *doc
	record.Chunks = nil

	store := s.db.Store()
	err := store.Badger().Update(func(tx *badgerdb.Txn) error {
		if err := store.TxUpsert(tx, record.ID, &record); err != nil {
			return fmt.Errorf("failed to store document record: %w", err)
		}
		for i := range doc.Chunks {
			chunk := doc.Chunks[i]
			if err := store.TxUpsert(tx, chunk.ID, &chunk); err != nil {
				return fmt.Errorf("failed to store chunk %s: %w", chunk.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store document: %w", err)
	}

	s.logger.Debug().
		Str("doc_id", doc.ID).
		Int("chunks", len(doc.Chunks)).
		Msg("Document stored")

	return nil
}

// GetDocument returns a single document with its chunks attached
func (s *DocumentStorage) GetDocument(id string) (*models.Document, error) {
	if !s.available() {
		return nil, models.ErrStorageUnavailable
	}

	var doc models.Document
	if err := s.db.Store().Get(id, &doc); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	chunks, err := s.chunksFor(id)
	if err != nil {
		return nil, err
	}
	doc.Chunks = chunks

	return &doc, nil
}

// GetDocuments returns all stored documents with chunks attached, in key
// order (stable within a session)
func (s *DocumentStorage) GetDocuments() ([]*models.Document, error) {
	if !s.available() {
		return nil, models.ErrStorageUnavailable
	}

	var docs []models.Document
	if err := s.db.Store().Find(&docs, nil); err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	result := make([]*models.Document, len(docs))
	for i := range docs {
		chunks, err := s.chunksFor(docs[i].ID)
		if err != nil {
			return nil, err
		}
		docs[i].Chunks = chunks
		result[i] = &docs[i]
	}
	return result, nil
}

// DeleteDocument removes the document and cascades to all chunks with a
// matching DocumentID. Safe to call on a non-existent id.
func (s *DocumentStorage) DeleteDocument(id string) error {
	if !s.available() {
		return models.ErrStorageUnavailable
	}

	store := s.db.Store()
	err := store.Badger().Update(func(tx *badgerdb.Txn) error {
		if err := store.TxDelete(tx, id, &models.Document{}); err != nil && err != badgerhold.ErrNotFound {
			return fmt.Errorf("failed to delete document record: %w", err)
		}
		if err := store.TxDeleteMatching(tx, &models.DocumentChunk{},
			badgerhold.Where("DocumentID").Eq(id)); err != nil {
			return fmt.Errorf("failed to delete chunks: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	s.logger.Debug().Str("doc_id", id).Msg("Document deleted")
	return nil
}

// CountDocuments returns the total number of stored documents
func (s *DocumentStorage) CountDocuments() (int, error) {
	if !s.available() {
		return 0, models.ErrStorageUnavailable
	}
	count, err := s.db.Store().Count(&models.Document{}, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return int(count), nil
}

// CountChunks returns the total number of stored chunks
func (s *DocumentStorage) CountChunks() (int, error) {
	if !s.available() {
		return 0, models.ErrStorageUnavailable
	}
	count, err := s.db.Store().Count(&models.DocumentChunk{}, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count chunks: %w", err)
	}
	return int(count), nil
}

// GetStats returns corpus-level statistics
func (s *DocumentStorage) GetStats() (*models.DocumentStats, error) {
	docs, err := s.CountDocuments()
	if err != nil {
		return nil, err
	}
	chunks, err := s.CountChunks()
	if err != nil {
		return nil, err
	}
	return &models.DocumentStats{
		TotalDocuments: docs,
		TotalChunks:    chunks,
		LastUpdated:    time.Now(),
	}, nil
}

// chunksFor loads the chunk records for a document in position order
func (s *DocumentStorage) chunksFor(documentID string) ([]models.DocumentChunk, error) {
	var chunks []models.DocumentChunk
	err := s.db.Store().Find(&chunks,
		badgerhold.Where("DocumentID").Eq(documentID).SortBy("Position"))
	if err != nil {
		return nil, fmt.Errorf("failed to load chunks for %s: %w", documentID, err)
	}
	return chunks, nil
}
