package repository

import (
	"context"
	"fmt"

	sqlbuilder "github.com/huandu/go-sqlbuilder"
)

// StoreTotals is a point-in-time count over every server.
type StoreTotals struct {
	Feeds       int
	FailedFeeds int
	Profiles    int
}

type StatsRepository interface {
	Totals(ctx context.Context) (StoreTotals, error)
}

type statsRepository struct {
	db dbtx
}

func NewStatsRepository(db dbtx) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Totals(ctx context.Context) (StoreTotals, error) {
	var totals StoreTotals

	feeds := sqlbuilder.NewSelectBuilder()
	feeds.Select("COUNT(*)").From("feeds")
	if err := r.count(ctx, feeds, &totals.Feeds); err != nil {
		return StoreTotals{}, fmt.Errorf("count feeds: %w", err)
	}

	failed := sqlbuilder.NewSelectBuilder()
	failed.Select("COUNT(*)").From("feeds").Where(
		failed.Exists(sqlbuilder.NewSelectBuilder().Select("1").From("fail_records").Where("fail_records.url = feeds.url")),
	)
	if err := r.count(ctx, failed, &totals.FailedFeeds); err != nil {
		return StoreTotals{}, fmt.Errorf("count failed feeds: %w", err)
	}

	profiles := sqlbuilder.NewSelectBuilder()
	profiles.Select("COUNT(*)").From("server_profiles")
	if err := r.count(ctx, profiles, &totals.Profiles); err != nil {
		return StoreTotals{}, fmt.Errorf("count profiles: %w", err)
	}

	return totals, nil
}

func (r *statsRepository) count(ctx context.Context, sb *sqlbuilder.SelectBuilder, dest *int) error {
	query, args := sb.BuildWithFlavor(sqlbuilder.SQLite)
	return r.db.QueryRowContext(ctx, query, args...).Scan(dest)
}
