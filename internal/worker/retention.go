package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// HistoryFacade exposes the subset of application functionality required
// by the retention sweeper.
type HistoryFacade interface {
	PurgeHistory(ctx context.Context, days int) (int64, error)
}

// RetentionSweeper permanently deletes archived orders past the retention
// window: once at startup, then on every tick. A failed sweep is logged
// and swallowed, never fatal.
type RetentionSweeper struct {
	facade   HistoryFacade
	days     int
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewRetentionSweeper constructs the sweeper.
func NewRetentionSweeper(facade HistoryFacade, days int, interval time.Duration, logger *slog.Logger) *RetentionSweeper {
	if days <= 0 {
		days = 7
	}
	if interval <= 0 {
		interval = time.Hour
	}
	return &RetentionSweeper{
		facade:   facade,
		days:     days,
		interval: interval,
		logger:   logger,
	}
}

// Start launches the background sweep loop.
func (s *RetentionSweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.run(runCtx)
}

// Stop cancels the loop and waits for an in-flight sweep to finish.
func (s *RetentionSweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *RetentionSweeper) run(ctx context.Context) {
	defer s.wg.Done()

	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *RetentionSweeper) sweep(ctx context.Context) {
	deleted, err := s.facade.PurgeHistory(ctx, s.days)
	if err != nil {
		s.logger.Error("history purge failed", slog.String("error", err.Error()))
		return
	}
	if deleted > 0 {
		s.logger.Info("history purged",
			slog.Int64("deleted", deleted),
			slog.Int("retention_days", s.days),
		)
	}
}
