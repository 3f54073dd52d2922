package chunker

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/respondo/internal/common"
	"github.com/ternarybob/respondo/internal/interfaces"
	"github.com/ternarybob/respondo/internal/models"
)

const (
	// DefaultTargetSize is the target chunk size in characters
	DefaultTargetSize = 1000

	// DefaultOverlap is the nominal overlap budget. The actual overlap is
	// carried by whole sentences, not a hard character count; the
	// parameter is retained for interface compatibility.
	DefaultOverlap = 200

	// minChunkLength is the noise floor: shorter chunks are dropped
	minChunkLength = 50
)

var sentenceSplitter = regexp.MustCompile(`[.!?]+`)

// Service implements ChunkerService
type Service struct {
	logger arbor.ILogger
}

// NewService creates a new chunker service
func NewService(logger arbor.ILogger) interfaces.ChunkerService {
	return &Service{logger: logger}
}

// Split splits text into sentence-based chunks of roughly targetSize
// characters. Whenever adding a sentence would overflow the target, the
// buffer is flushed and the next buffer is seeded with the last two
// sentences of the flushed chunk to provide soft overlap.
func (s *Service) Split(text string, targetSize, overlap int) []string {
	if targetSize <= 0 {
		targetSize = DefaultTargetSize
	}

	var chunks []string
	var current string
	currentSize := 0

	for _, raw := range sentenceSplitter.Split(text, -1) {
		sentence := strings.TrimSpace(raw)
		if sentence == "" {
			continue
		}

		if currentSize+len(sentence) > targetSize && len(current) > 0 {
			chunks = append(chunks, strings.TrimSpace(current))

			// Seed the next buffer with the last two sentences of the
			// flushed chunk, concatenated with the new sentence
			pieces := sentenceSplitter.Split(current, -1)
			if len(pieces) > 2 {
				pieces = pieces[len(pieces)-2:]
			}
			current = strings.Join(pieces, ". ") + sentence
			currentSize = len(current)
		} else {
			if current != "" {
				current += ". " + sentence
			} else {
				current = sentence
			}
			currentSize = len(current)
		}
	}

	if strings.TrimSpace(current) != "" {
		chunks = append(chunks, strings.TrimSpace(current))
	}

	// Drop very small chunks as noise
	filtered := chunks[:0]
	for _, chunk := range chunks {
		if len(chunk) > minChunkLength {
			filtered = append(filtered, chunk)
		}
	}

	return filtered
}

// BuildChunks constructs chunk records for a document from chunk texts.
// Offsets are resolved by first occurrence of the chunk text in the
// document content: if a chunk's text also appears earlier in the
// document, the offset points at the earlier occurrence. Known
// limitation, kept for behavior parity.
func (s *Service) BuildChunks(doc *models.Document, texts []string) []models.DocumentChunk {
	chunks := make([]models.DocumentChunk, 0, len(texts))
	for i, text := range texts {
		start := strings.Index(doc.Content, text)
		chunks = append(chunks, models.DocumentChunk{
			ID:         common.NewChunkID(doc.ID, i),
			DocumentID: doc.ID,
			Content:    text,
			StartIndex: start,
			EndIndex:   start + len(text),
			Position:   i,
			Metadata: models.ChunkMetadata{
				WordCount: len(strings.Fields(text)),
				Section:   fmt.Sprintf("Section %d", i+1),
			},
		})
	}

	s.logger.Debug().
		Str("doc_id", doc.ID).
		Int("chunks", len(chunks)).
		Msg("Chunk records built")

	return chunks
}
