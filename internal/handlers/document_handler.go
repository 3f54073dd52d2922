package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/respondo/internal/interfaces"
	"github.com/ternarybob/respondo/internal/models"
)

// DocumentHandler handles document upload and management HTTP requests
type DocumentHandler struct {
	documentService interfaces.DocumentService
	intakeService   interfaces.IntakeService
	maxUploadSize   int64
	logger          arbor.ILogger
}

// NewDocumentHandler creates a new document handler with dependencies
func NewDocumentHandler(documentService interfaces.DocumentService, intakeService interfaces.IntakeService, maxUploadSize int64, logger arbor.ILogger) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		intakeService:   intakeService,
		maxUploadSize:   maxUploadSize,
		logger:          logger,
	}
}

// UploadHandler handles POST /api/documents requests. The request body is
// the raw file content; the media type comes from the Content-Type header
// and the display name from the ?name= query parameter.
func (h *DocumentHandler) UploadHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		WriteError(w, http.StatusBadRequest, "name query parameter is required")
		return
	}

	contentType := r.Header.Get("Content-Type")

	body, err := io.ReadAll(io.LimitReader(r.Body, h.maxUploadSize+1))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}
	if int64(len(body)) > h.maxUploadSize {
		WriteError(w, http.StatusRequestEntityTooLarge, "Document exceeds maximum upload size")
		return
	}
	if len(body) == 0 {
		WriteError(w, http.StatusBadRequest, "Request body is empty")
		return
	}

	ctx := r.Context()

	text, err := h.intakeService.ExtractText(ctx, name, contentType, body)
	if err != nil {
		if errors.Is(err, models.ErrUnsupportedFormat) {
			WriteError(w, http.StatusUnsupportedMediaType, "Unsupported document format: "+contentType)
			return
		}
		h.logger.Error().Err(err).Str("name", name).Msg("Failed to extract document text")
		WriteError(w, http.StatusUnprocessableEntity, "Failed to extract text from document")
		return
	}

	doc, err := h.documentService.Ingest(ctx, name, contentType, text, int64(len(body)))
	if err != nil {
		h.logger.Error().Err(err).Str("name", name).Msg("Failed to ingest document")
		WriteError(w, http.StatusInternalServerError, "Failed to ingest document")
		return
	}

	h.logger.Info().
		Str("document_id", doc.ID).
		Str("name", doc.Name).
		Int("chunks", len(doc.Chunks)).
		Msg("Document ingested")

	WriteJSON(w, http.StatusCreated, doc)
}

// ListHandler handles GET /api/documents requests
func (h *DocumentHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	docs, err := h.documentService.GetDocuments(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list documents")
		WriteError(w, http.StatusInternalServerError, "Failed to list documents")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"documents": docs,
		"count":     len(docs),
	})
}

// GetHandler handles GET /api/documents/{id} requests
func (h *DocumentHandler) GetHandler(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	doc, err := h.documentService.GetDocument(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "Document not found: "+id)
			return
		}
		h.logger.Error().Err(err).Str("document_id", id).Msg("Failed to get document")
		WriteError(w, http.StatusInternalServerError, "Failed to get document")
		return
	}

	WriteJSON(w, http.StatusOK, doc)
}

// DeleteHandler handles DELETE /api/documents/{id} requests
func (h *DocumentHandler) DeleteHandler(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodDelete) {
		return
	}

	if err := h.documentService.DeleteDocument(r.Context(), id); err != nil {
		h.logger.Error().Err(err).Str("document_id", id).Msg("Failed to delete document")
		WriteError(w, http.StatusInternalServerError, "Failed to delete document")
		return
	}

	h.logger.Info().Str("document_id", id).Msg("Document deleted")
	WriteSuccess(w, "Document deleted")
}
