package app

import (
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/respondo/internal/common"
	"github.com/ternarybob/respondo/internal/handlers"
	"github.com/ternarybob/respondo/internal/interfaces"
	"github.com/ternarybob/respondo/internal/services/answers"
	"github.com/ternarybob/respondo/internal/services/chunker"
	"github.com/ternarybob/respondo/internal/services/documents"
	"github.com/ternarybob/respondo/internal/services/embeddings"
	"github.com/ternarybob/respondo/internal/services/intake"
	"github.com/ternarybob/respondo/internal/services/maintenance"
	"github.com/ternarybob/respondo/internal/services/search"
	"github.com/ternarybob/respondo/internal/storage"
)

// App holds all application components and dependencies
type App struct {
	Config         *common.Config
	Logger         arbor.ILogger
	StorageManager interfaces.StorageManager

	// Pipeline services
	ChunkerService   interfaces.ChunkerService
	EmbeddingService interfaces.EmbeddingService
	SearchService    interfaces.SearchService
	AnswerService    interfaces.AnswerService
	DocumentService  interfaces.DocumentService
	IntakeService    interfaces.IntakeService

	// Background maintenance
	MaintenanceService *maintenance.Service

	// HTTP handlers
	DocumentHandler *handlers.DocumentHandler
	SearchHandler   *handlers.SearchHandler
	QAHandler       *handlers.QAHandler
	StatusHandler   *handlers.StatusHandler
}

// New creates and wires all application components
func New(config *common.Config, logger arbor.ILogger) (*App, error) {
	a := &App{
		Config: config,
		Logger: logger,
	}

	// Storage
	storageManager, err := storage.NewStorageManager(logger, config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	a.StorageManager = storageManager
	documentStorage := storageManager.DocumentStorage()

	// Pipeline services
	a.ChunkerService = chunker.NewService(logger)
	a.EmbeddingService = embeddings.NewService(logger)
	a.SearchService = search.NewService(documentStorage, a.EmbeddingService, logger)
	a.AnswerService = answers.NewService(logger)
	a.DocumentService = documents.NewService(
		documentStorage,
		a.ChunkerService,
		a.EmbeddingService,
		a.SearchService,
		a.AnswerService,
		config,
		logger,
	)
	a.IntakeService = intake.NewService(logger)

	// Background maintenance
	if config.Maintenance.Enabled {
		a.MaintenanceService = maintenance.NewService(storageManager, logger)
		if err := a.MaintenanceService.Start(config.Maintenance.Schedule); err != nil {
			a.StorageManager.Close()
			return nil, fmt.Errorf("failed to start maintenance service: %w", err)
		}
	}

	// HTTP handlers
	a.DocumentHandler = handlers.NewDocumentHandler(a.DocumentService, a.IntakeService, int64(config.Ingest.MaxTextSize), logger)
	a.SearchHandler = handlers.NewSearchHandler(a.SearchService, config.Search.DefaultLimit, config.Search.MaxLimit, logger)
	a.QAHandler = handlers.NewQAHandler(a.DocumentService, logger)
	a.StatusHandler = handlers.NewStatusHandler(a.DocumentService, a.IntakeService, logger)

	logger.Info().
		Str("db_path", config.Storage.Badger.Path).
		Msg("Application initialized")

	return a, nil
}

// Close shuts down application components in reverse dependency order
func (a *App) Close() error {
	if a.MaintenanceService != nil {
		a.MaintenanceService.Stop()
	}

	if a.StorageManager != nil {
		if err := a.StorageManager.Close(); err != nil {
			a.Logger.Error().Err(err).Msg("Failed to close storage")
			return err
		}
	}

	a.Logger.Info().Msg("Application closed")
	return nil
}
