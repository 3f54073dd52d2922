package documents

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/respondo/internal/common"
	"github.com/ternarybob/respondo/internal/interfaces"
	"github.com/ternarybob/respondo/internal/services/answers"
	"github.com/ternarybob/respondo/internal/services/chunker"
	"github.com/ternarybob/respondo/internal/services/embeddings"
	"github.com/ternarybob/respondo/internal/services/search"
	"github.com/ternarybob/respondo/internal/storage/badger"
)

func newPipeline(t *testing.T) interfaces.DocumentService {
	t.Helper()

	logger := arbor.NewLogger()
	config := common.DefaultConfig()
	config.Storage.Badger.Path = t.TempDir()

	manager, err := badger.NewManager(logger, &config.Storage.Badger)
	require.NoError(t, err)
	t.Cleanup(func() { manager.Close() })

	storage := manager.DocumentStorage()
	chunkerService := chunker.NewService(logger)
	embeddingService := embeddings.NewService(logger)
	searchService := search.NewService(storage, embeddingService, logger)
	answerService := answers.NewService(logger)

	return NewService(storage, chunkerService, embeddingService, searchService, answerService, config, logger)
}

func TestIngestAndRetrieve(t *testing.T) {
	svc := newPipeline(t)
	ctx := context.Background()

	text := "This document presents a research study and analysis of the system. " +
		"The project objective is a full overview of the process and method. " +
		"The conclusion summarizes the result of the data analysis."
	doc, err := svc.Ingest(ctx, "study.txt", "text/plain", text, int64(len(text)))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc.ID, "doc_"))
	assert.NotEmpty(t, doc.Chunks)
	for _, chunk := range doc.Chunks {
		assert.NotNil(t, chunk.Embedding, "every chunk must be embedded during ingest")
	}
	assert.True(t, strings.HasPrefix(text, doc.Summary))
	assert.LessOrEqual(t, len(doc.Summary), 200)

	docs, err := svc.GetDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, doc.ID, docs[0].ID)
	assert.Len(t, docs[0].Chunks, len(doc.Chunks))
}

func TestAskQuestionDefinition(t *testing.T) {
	svc := newPipeline(t)
	ctx := context.Background()

	text := "This document presents a research study and analysis of the system. " +
		"The analysis shows the system processes data in overlapping segments carefully."
	_, err := svc.Ingest(ctx, "study.txt", "text/plain", text, int64(len(text)))
	require.NoError(t, err)

	result, err := svc.AskQuestion(ctx, "What is the analysis of the system?")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.Answer, "Based on the documents, "))
	assert.NotEmpty(t, result.Sources)
	assert.Greater(t, result.Confidence, 0.0)
	assert.LessOrEqual(t, result.Confidence, 1.0)
}

func TestAskQuestionEmptyCorpus(t *testing.T) {
	svc := newPipeline(t)

	result, err := svc.AskQuestion(context.Background(), "What is a mammal?")
	require.NoError(t, err)

	assert.Contains(t, result.Answer, "couldn't find relevant information")
	assert.Empty(t, result.Sources)
	assert.Zero(t, result.Confidence)
}

func TestAskQuestionRejectsEmptyQuestion(t *testing.T) {
	svc := newPipeline(t)

	_, err := svc.AskQuestion(context.Background(), "   ")
	assert.Error(t, err, "whitespace-only questions are rejected before the core")
}

func TestHistoryAccumulates(t *testing.T) {
	svc := newPipeline(t)
	ctx := context.Background()

	assert.Empty(t, svc.History())

	_, err := svc.AskQuestion(ctx, "What is the first question?")
	require.NoError(t, err)
	_, err = svc.AskQuestion(ctx, "What is the second question?")
	require.NoError(t, err)

	history := svc.History()
	require.Len(t, history, 2)
	assert.Equal(t, "What is the first question?", history[0].Question)
	assert.Equal(t, "What is the second question?", history[1].Question)
}

func TestDeleteDocumentRemovesFromSearch(t *testing.T) {
	svc := newPipeline(t)
	ctx := context.Background()

	text := "This document presents a research study and analysis of the system. " +
		"The objective is a complete overview of the data processing method."
	doc, err := svc.Ingest(ctx, "study.txt", "text/plain", text, int64(len(text)))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDocument(ctx, doc.ID))

	docs, err := svc.GetDocuments(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)

	result, err := svc.AskQuestion(ctx, "What is the analysis of the system?")
	require.NoError(t, err)
	assert.Empty(t, result.Sources, "deleted documents must not surface in answers")
}

func TestIngestRejectsOversizeText(t *testing.T) {
	logger := arbor.NewLogger()
	config := common.DefaultConfig()
	config.Storage.Badger.Path = t.TempDir()
	config.Ingest.MaxTextSize = 10

	manager, err := badger.NewManager(logger, &config.Storage.Badger)
	require.NoError(t, err)
	t.Cleanup(func() { manager.Close() })

	storage := manager.DocumentStorage()
	embeddingService := embeddings.NewService(logger)
	svc := NewService(storage, chunker.NewService(logger), embeddingService,
		search.NewService(storage, embeddingService, logger), answers.NewService(logger), config, logger)

	_, err = svc.Ingest(context.Background(), "big.txt", "text/plain", "this text is longer than ten bytes", 34)
	assert.Error(t, err)
}
