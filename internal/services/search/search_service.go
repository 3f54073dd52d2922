package search

import (
	"context"
	"fmt"
	"sort"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/respondo/internal/interfaces"
	"github.com/ternarybob/respondo/internal/models"
	"github.com/ternarybob/respondo/internal/services/embeddings"
)

const (
	// RelevanceFloor is the minimum similarity score for a chunk to be
	// included in results
	RelevanceFloor = 0.1

	// DefaultLimit is used when the caller passes a non-positive limit
	DefaultLimit = 5
)

// Service implements SearchService with a full linear scan over stored
// chunk embeddings. Corpus sizes here are small; an index structure would
// have to preserve the relevance floor and ranking contract.
type Service struct {
	storage          interfaces.DocumentStorage
	embeddingService interfaces.EmbeddingService
	logger           arbor.ILogger
}

// NewService creates a new search service
func NewService(
	storage interfaces.DocumentStorage,
	embeddingService interfaces.EmbeddingService,
	logger arbor.ILogger,
) interfaces.SearchService {
	return &Service{
		storage:          storage,
		embeddingService: embeddingService,
		logger:           logger,
	}
}

// SearchSimilarChunks embeds the query and scores every stored chunk that
// has an embedding. Results below the relevance floor are dropped; the
// rest are sorted by descending score (stable over encounter order) and
// truncated to limit.
func (s *Service) SearchSimilarChunks(ctx context.Context, query string, limit int) ([]models.SearchResult, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	queryVector, err := s.embeddingService.GenerateQueryEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	docs, err := s.storage.GetDocuments()
	if err != nil {
		return nil, err
	}

	var results []models.SearchResult
	for _, doc := range docs {
		// The scan is the cost driver on large corpora; honor cancellation
		// between documents
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, chunk := range doc.Chunks {
			if chunk.Embedding == nil {
				continue
			}
			score := embeddings.CosineSimilarity(queryVector, chunk.Embedding)
			if score <= RelevanceFloor {
				continue
			}
			results = append(results, models.SearchResult{
				Chunk:           chunk,
				Document:        *doc,
				Score:           score,
				RelevanceReason: generateRelevanceReason(query, chunk.Content, score),
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}

	s.logger.Debug().
		Str("query", query).
		Int("results", len(results)).
		Msg("Similarity search complete")

	return results, nil
}
