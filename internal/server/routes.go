package server

import (
	"net/http"
	"strings"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// API routes - Documents
	mux.HandleFunc("/api/documents", s.handleDocumentsRoute) // GET (list), POST (upload)
	mux.HandleFunc("/api/documents/", s.handleDocumentRoutes) // GET/DELETE /{id}

	// API routes - Search
	mux.HandleFunc("/api/search", s.app.SearchHandler.SearchHandler)

	// API routes - Question answering
	mux.HandleFunc("/api/ask", s.app.QAHandler.AskHandler)
	mux.HandleFunc("/api/history", s.app.QAHandler.HistoryHandler)

	// API routes - System
	mux.HandleFunc("/api/status", s.app.StatusHandler.StatusHandler)

	// 404 handler for unmatched API routes
	mux.HandleFunc("/api/", s.notFoundHandler)

	return mux
}

// handleDocumentsRoute routes /api/documents collection requests
func (s *Server) handleDocumentsRoute(w http.ResponseWriter, r *http.Request) {
	RouteResourceCollection(w, r,
		s.app.DocumentHandler.ListHandler,
		s.app.DocumentHandler.UploadHandler)
}

// handleDocumentRoutes routes /api/documents/{id} requests
func (s *Server) handleDocumentRoutes(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/documents/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.app.DocumentHandler.GetHandler(w, r, id)
	case http.MethodDelete:
		s.app.DocumentHandler.DeleteHandler(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// notFoundHandler returns 404 for unmatched API routes
func (s *Server) notFoundHandler(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "Not found", http.StatusNotFound)
}
