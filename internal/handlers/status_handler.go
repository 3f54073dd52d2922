package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/respondo/internal/common"
	"github.com/ternarybob/respondo/internal/interfaces"
)

// StatusHandler handles service status HTTP requests
type StatusHandler struct {
	documentService interfaces.DocumentService
	intakeService   interfaces.IntakeService
	logger          arbor.ILogger
}

// NewStatusHandler creates a new status handler with dependencies
func NewStatusHandler(documentService interfaces.DocumentService, intakeService interfaces.IntakeService, logger arbor.ILogger) *StatusHandler {
	return &StatusHandler{
		documentService: documentService,
		intakeService:   intakeService,
		logger:          logger,
	}
}

// StatusHandler handles GET /api/status requests
func (h *StatusHandler) StatusHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	status := map[string]interface{}{
		"status":          "ok",
		"version":         common.Version,
		"build":           common.Build,
		"supported_types": h.intakeService.SupportedTypes(),
	}

	stats, err := h.documentService.GetStats(r.Context())
	if err != nil {
		h.logger.Warn().Err(err).Msg("Failed to collect document stats")
		status["status"] = "degraded"
	} else {
		status["documents"] = stats.TotalDocuments
		status["chunks"] = stats.TotalChunks
		status["last_updated"] = stats.LastUpdated
	}

	WriteJSON(w, http.StatusOK, status)
}
