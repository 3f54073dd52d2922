package intake

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// extractPDFText extracts text content from PDF bytes using pdfcpu.
// pdfcpu has no direct text extraction, so page content streams are
// extracted to a scratch directory and concatenated.
func (s *Service) extractPDFText(ctx context.Context, name string, data []byte) (string, error) {
	tempDir, err := os.MkdirTemp("", "respondo-pdf")
	if err != nil {
		return "", fmt.Errorf("failed to create scratch directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	tempFile := filepath.Join(tempDir, "upload.pdf")
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write temp PDF file: %w", err)
	}

	pdfCtx, err := api.ReadContextFile(tempFile)
	if err != nil {
		return "", fmt.Errorf("failed to read PDF context: %w", err)
	}
	pageCount := pdfCtx.PageCount

	outDir := filepath.Join(tempDir, "pages")
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create extraction directory: %w", err)
	}

	conf := model.NewDefaultConfiguration()
	if err := api.ExtractContentFile(tempFile, outDir, nil, conf); err != nil {
		return "", fmt.Errorf("failed to extract PDF content: %w", err)
	}

	// Collect per-page content files in page order
	pageTexts := make(map[int]string)
	files, err := os.ReadDir(outDir)
	if err != nil {
		return "", fmt.Errorf("failed to read extracted PDF content: %w", err)
	}
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		content, err := os.ReadFile(filepath.Join(outDir, file.Name()))
		if err != nil {
			continue
		}
		var pageNum int
		if _, err := fmt.Sscanf(file.Name(), "Content_page_%d", &pageNum); err != nil {
			if _, err := fmt.Sscanf(file.Name(), "page_%d", &pageNum); err != nil {
				continue
			}
		}
		pageTexts[pageNum] = string(content)
	}

	var builder strings.Builder
	for pageNum := 1; pageNum <= pageCount; pageNum++ {
		if text, ok := pageTexts[pageNum]; ok && text != "" {
			if builder.Len() > 0 {
				builder.WriteString("\n\n")
			}
			builder.WriteString(text)
		}
	}

	s.logger.Debug().
		Str("name", name).
		Int("pages", pageCount).
		Int("text_length", builder.Len()).
		Msg("PDF text extracted")

	return builder.String(), nil
}
