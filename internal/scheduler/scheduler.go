package scheduler

import (
	"context"
	"sync"
	"time"

	"feedrelay/backend/internal/logger"
	"feedrelay/backend/internal/service"
)

// Scheduler runs the store stats collection on a fixed interval.
type Scheduler struct {
	stats      service.StatsService
	interval   time.Duration
	stopCh     chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	cancelFunc context.CancelFunc // cancels the current collection
	mu         sync.Mutex         // protects cancelFunc
}

func New(stats service.StatsService, interval time.Duration) *Scheduler {
	return &Scheduler{
		stats:    stats,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("scheduler started", "module", "scheduler", "action", "collect", "resource", "stats", "result", "ok", "interval_ms", s.interval.Milliseconds())
}

// Stop cancels an in-flight collection and waits for the loop to exit. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		if s.cancelFunc != nil {
			s.cancelFunc()
		}
		s.mu.Unlock()

		close(s.stopCh)
		s.wg.Wait()
		logger.Info("scheduler stopped", "module", "scheduler", "action", "collect", "resource", "stats", "result", "ok")
	})
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	// Run immediately on start
	s.collect()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.collect()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) collect() {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)

	s.mu.Lock()
	s.cancelFunc = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.cancelFunc = nil
		s.mu.Unlock()
	}()

	if err := s.stats.Collect(ctx); err != nil {
		if ctx.Err() != nil {
			logger.Warn("stats collection cancelled", "module", "scheduler", "action", "collect", "resource", "stats", "result", "cancelled")
			return
		}
		logger.Error("stats collection failed", "module", "scheduler", "action", "collect", "resource", "stats", "result", "failed", "error", err)
	}
}
