package service

import (
	"context"

	"feedrelay/backend/internal/logger"
	"feedrelay/backend/internal/metrics"
	"feedrelay/backend/internal/repository"
)

// StatsService refreshes the store gauges exported on /metrics.
type StatsService interface {
	Collect(ctx context.Context) error
}

type statsService struct {
	stats repository.StatsRepository
}

func NewStatsService(stats repository.StatsRepository) StatsService {
	return &statsService{stats: stats}
}

func (s *statsService) Collect(ctx context.Context) error {
	totals, err := s.stats.Totals(ctx)
	if err != nil {
		return storeError("collect store totals", err)
	}

	metrics.StoreFeeds.Set(float64(totals.Feeds))
	metrics.StoreFailedFeeds.Set(float64(totals.FailedFeeds))
	metrics.StoreProfiles.Set(float64(totals.Profiles))

	logger.Debug("store totals collected", "module", "service", "action", "collect", "resource", "stats", "result", "ok",
		"feeds", totals.Feeds, "failed_feeds", totals.FailedFeeds, "profiles", totals.Profiles)
	return nil
}
