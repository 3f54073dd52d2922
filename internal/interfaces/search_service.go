package interfaces

import (
	"context"

	"github.com/ternarybob/respondo/internal/models"
)

// SearchService performs similarity-ranked retrieval over stored chunk
// embeddings. This is intentionally a full linear scan over the corpus;
// an index would have to preserve the relevance floor and ranking contract.
type SearchService interface {
	// SearchSimilarChunks embeds the query, scores every stored chunk by
	// cosine similarity, drops scores at or below the relevance floor,
	// and returns up to limit results sorted by descending score.
	SearchSimilarChunks(ctx context.Context, query string, limit int) ([]models.SearchResult, error)
}
