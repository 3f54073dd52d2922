package interfaces

import (
	"context"
)

// IntakeService decodes uploaded file bytes into plain text per declared
// media type. No binary parsing happens downstream of intake.
type IntakeService interface {
	// ExtractText returns the decoded text for the given media type.
	// Returns models.ErrUnsupportedFormat for types it cannot decode.
	ExtractText(ctx context.Context, name, contentType string, data []byte) (string, error)

	// SupportedTypes lists the media types intake can decode
	SupportedTypes() []string
}
