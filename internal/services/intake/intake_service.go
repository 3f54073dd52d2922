package intake

import (
	"context"
	"fmt"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/respondo/internal/interfaces"
	"github.com/ternarybob/respondo/internal/models"
)

// Service implements IntakeService. It decodes uploaded bytes into plain
// text per declared media type; nothing downstream parses binary formats.
type Service struct {
	logger arbor.ILogger
}

// Compile-time assertion
var _ interfaces.IntakeService = (*Service)(nil)

// NewService creates a new intake service
func NewService(logger arbor.ILogger) *Service {
	return &Service{logger: logger}
}

// ExtractText decodes data into text for the given media type
func (s *Service) ExtractText(ctx context.Context, name, contentType string, data []byte) (string, error) {
	switch normalizeContentType(contentType, name) {
	case "text/plain":
		return string(data), nil

	case "text/markdown":
		text, err := markdownToText(data)
		if err != nil {
			return "", fmt.Errorf("failed to decode markdown %s: %w", name, err)
		}
		return text, nil

	case "application/pdf":
		text, err := s.extractPDFText(ctx, name, data)
		if err != nil {
			return "", fmt.Errorf("failed to decode PDF %s: %w", name, err)
		}
		return text, nil

	default:
		return "", fmt.Errorf("%w: %s", models.ErrUnsupportedFormat, contentType)
	}
}

// SupportedTypes lists the media types intake can decode
func (s *Service) SupportedTypes() []string {
	return []string{"text/plain", "text/markdown", "application/pdf"}
}

// normalizeContentType resolves the effective media type from the declared
// type, falling back to the filename extension when the type is generic
func normalizeContentType(contentType, name string) string {
	// Strip parameters like "; charset=utf-8"
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	contentType = strings.TrimSpace(strings.ToLower(contentType))

	if contentType == "" || contentType == "application/octet-stream" {
		lower := strings.ToLower(name)
		switch {
		case strings.HasSuffix(lower, ".md"), strings.HasSuffix(lower, ".markdown"):
			return "text/markdown"
		case strings.HasSuffix(lower, ".txt"):
			return "text/plain"
		case strings.HasSuffix(lower, ".pdf"):
			return "application/pdf"
		}
	}
	return contentType
}
