package maintenance

import (
	"fmt"
	"sync"

	badgerdb "github.com/dgraph-io/badger/v4"
	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/respondo/internal/interfaces"
	"github.com/timshannon/badgerhold/v4"
)

// Service runs scheduled storage maintenance: badger value-log garbage
// collection and corpus stats logging
type Service struct {
	storage interfaces.StorageManager
	cron    *cron.Cron
	logger  arbor.ILogger

	mu      sync.Mutex
	running bool
}

// NewService creates a new maintenance service
func NewService(storage interfaces.StorageManager, logger arbor.ILogger) *Service {
	return &Service{
		storage: storage,
		cron:    cron.New(),
		logger:  logger,
	}
}

// Start begins scheduled maintenance with the given cron expression
func (s *Service) Start(schedule string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("maintenance scheduler already running")
	}
	if schedule == "" {
		schedule = "@every 10m"
	}

	if _, err := s.cron.AddFunc(schedule, s.run); err != nil {
		return fmt.Errorf("invalid maintenance schedule %q: %w", schedule, err)
	}

	s.cron.Start()
	s.running = true

	s.logger.Info().Str("schedule", schedule).Msg("Storage maintenance scheduled")
	return nil
}

// Stop halts scheduled maintenance, waiting for a running pass to finish
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.running = false

	s.logger.Info().Msg("Storage maintenance stopped")
}

// run executes one maintenance pass
func (s *Service) run() {
	stats, err := s.storage.DocumentStorage().GetStats()
	if err != nil {
		s.logger.Warn().Err(err).Msg("Maintenance: failed to read corpus stats")
	} else {
		s.logger.Info().
			Int("documents", stats.TotalDocuments).
			Int("chunks", stats.TotalChunks).
			Msg("Corpus stats")
	}

	store, ok := s.storage.DB().(*badgerhold.Store)
	if !ok || store == nil {
		return
	}

	// Badger reclaims value-log space only when asked. ErrNoRewrite just
	// means there was nothing worth collecting.
	if err := store.Badger().RunValueLogGC(0.5); err != nil && err != badgerdb.ErrNoRewrite {
		s.logger.Debug().Err(err).Msg("Value log GC pass skipped")
	}
}
