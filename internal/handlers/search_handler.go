package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/respondo/internal/interfaces"
)

// SearchHandler handles similarity search HTTP requests
type SearchHandler struct {
	searchService interfaces.SearchService
	defaultLimit  int
	maxLimit      int
	logger        arbor.ILogger
}

// NewSearchHandler creates a new search handler with dependencies
func NewSearchHandler(searchService interfaces.SearchService, defaultLimit, maxLimit int, logger arbor.ILogger) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		defaultLimit:  defaultLimit,
		maxLimit:      maxLimit,
		logger:        logger,
	}
}

// SearchHandler handles GET /api/search?q=query requests
func (h *SearchHandler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		WriteError(w, http.StatusBadRequest, "q query parameter is required")
		return
	}

	limit := h.defaultLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil {
			limit = parsed
		}
	}

	// Clamp limit to valid range
	if limit <= 0 {
		limit = h.defaultLimit
	}
	if limit > h.maxLimit {
		limit = h.maxLimit
	}

	h.logger.Info().
		Str("query", query).
		Int("limit", limit).
		Msg("Search request received")

	results, err := h.searchService.SearchSimilarChunks(r.Context(), query, limit)
	if err != nil {
		h.logger.Error().Err(err).Str("query", query).Msg("Search failed")
		WriteError(w, http.StatusInternalServerError, "Search failed")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"query":   query,
		"results": results,
		"count":   len(results),
	})
}
