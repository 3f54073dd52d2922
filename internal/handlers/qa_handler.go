package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/respondo/internal/interfaces"
)

// QAHandler handles question answering HTTP requests
type QAHandler struct {
	documentService interfaces.DocumentService
	logger          arbor.ILogger
}

// NewQAHandler creates a new question answering handler with dependencies
func NewQAHandler(documentService interfaces.DocumentService, logger arbor.ILogger) *QAHandler {
	return &QAHandler{
		documentService: documentService,
		logger:          logger,
	}
}

type askRequest struct {
	Question string `json:"question"`
}

// AskHandler handles POST /api/ask requests
func (h *QAHandler) AskHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		WriteError(w, http.StatusBadRequest, "question is required")
		return
	}

	h.logger.Info().Str("question", question).Msg("Question received")

	result, err := h.documentService.AskQuestion(r.Context(), question)
	if err != nil {
		h.logger.Error().Err(err).Str("question", question).Msg("Failed to answer question")
		WriteError(w, http.StatusInternalServerError, "Failed to answer question")
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// HistoryHandler handles GET /api/history requests
func (h *QAHandler) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	history := h.documentService.History()

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"history": history,
		"count":   len(history),
	})
}
