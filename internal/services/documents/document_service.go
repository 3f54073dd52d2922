package documents

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/respondo/internal/common"
	"github.com/ternarybob/respondo/internal/interfaces"
	"github.com/ternarybob/respondo/internal/models"
)

// summaryLength is how many leading characters form the document summary
const summaryLength = 200

// Service implements DocumentService. It owns the call sequence of the
// pipeline and the session-scoped question history; the algorithmic work
// lives in the chunker, embedding, search, and answer services.
type Service struct {
	storage          interfaces.DocumentStorage
	chunker          interfaces.ChunkerService
	embeddingService interfaces.EmbeddingService
	searchService    interfaces.SearchService
	answerService    interfaces.AnswerService
	config           *common.IngestConfig
	searchLimit      int
	logger           arbor.ILogger

	historyMu sync.Mutex
	history   []models.QAResult
}

// NewService creates a new document service
func NewService(
	storage interfaces.DocumentStorage,
	chunker interfaces.ChunkerService,
	embeddingService interfaces.EmbeddingService,
	searchService interfaces.SearchService,
	answerService interfaces.AnswerService,
	config *common.Config,
	logger arbor.ILogger,
) interfaces.DocumentService {
	return &Service{
		storage:          storage,
		chunker:          chunker,
		embeddingService: embeddingService,
		searchService:    searchService,
		answerService:    answerService,
		config:           &config.Ingest,
		searchLimit:      config.Search.DefaultLimit,
		logger:           logger,
	}
}

// Ingest runs the ingest pipeline: chunk the decoded text, embed every
// chunk, then persist document and chunks atomically. The document only
// exists once the whole pipeline has completed.
func (s *Service) Ingest(ctx context.Context, name, contentType, text string, size int64) (*models.Document, error) {
	if s.config.MaxTextSize > 0 && len(text) > s.config.MaxTextSize {
		return nil, fmt.Errorf("document text of %d bytes exceeds limit of %d", len(text), s.config.MaxTextSize)
	}

	doc := &models.Document{
		ID:          common.NewDocumentID(),
		Name:        name,
		ContentType: contentType,
		Size:        size,
		Content:     text,
		Summary:     summarize(text),
		CreatedAt:   time.Now(),
	}

	texts := s.chunker.Split(text, s.config.ChunkSize, s.config.ChunkOverlap)
	doc.Chunks = s.chunker.BuildChunks(doc, texts)

	if err := s.embeddingService.EmbedChunks(ctx, doc.Chunks); err != nil {
		return nil, fmt.Errorf("failed to embed chunks: %w", err)
	}

	if err := s.storage.StoreDocument(doc); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("doc_id", doc.ID).
		Str("name", name).
		Str("content_type", contentType).
		Int("chunks", len(doc.Chunks)).
		Msg("Document ingested")

	return doc, nil
}

// GetDocuments returns all stored documents with chunks attached
func (s *Service) GetDocuments(ctx context.Context) ([]*models.Document, error) {
	return s.storage.GetDocuments()
}

// GetDocument returns a single document by ID
func (s *Service) GetDocument(ctx context.Context, id string) (*models.Document, error) {
	return s.storage.GetDocument(id)
}

// DeleteDocument removes a document and all of its chunks
func (s *Service) DeleteDocument(ctx context.Context, id string) error {
	if err := s.storage.DeleteDocument(id); err != nil {
		return err
	}
	s.logger.Info().Str("doc_id", id).Msg("Document deleted")
	return nil
}

// AskQuestion runs the query pipeline: retrieve similar chunks, then
// synthesize an answer. Empty questions are rejected here; they never
// reach the retrieval core.
func (s *Service) AskQuestion(ctx context.Context, question string) (*models.QAResult, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("question cannot be empty")
	}

	results, err := s.searchService.SearchSimilarChunks(ctx, question, s.searchLimit)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	answer := s.answerService.Answer(question, results)

	s.historyMu.Lock()
	s.history = append(s.history, *answer)
	s.historyMu.Unlock()

	s.logger.Info().
		Str("question", question).
		Int("sources", len(answer.Sources)).
		Float64("confidence", answer.Confidence).
		Msg("Question answered")

	return answer, nil
}

// History returns a copy of the session question/answer history, oldest
// first
func (s *Service) History() []models.QAResult {
	s.historyMu.Lock()
	defer s.historyMu.Unlock()

	history := make([]models.QAResult, len(s.history))
	copy(history, s.history)
	return history
}

// GetStats returns corpus-level statistics
func (s *Service) GetStats(ctx context.Context) (*models.DocumentStats, error) {
	return s.storage.GetStats()
}

func summarize(text string) string {
	runes := []rune(text)
	if len(runes) <= summaryLength {
		return text
	}
	return string(runes[:summaryLength])
}
