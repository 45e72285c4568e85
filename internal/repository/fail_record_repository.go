package repository

import (
	"context"
	"fmt"

	sqlbuilder "github.com/huandu/go-sqlbuilder"
)

// FailRecordRepository reads failure markers. Records are written by the
// delivery side, never by this service.
type FailRecordRepository interface {
	// ExistingURLs returns the subset of urls that currently have a record.
	ExistingURLs(ctx context.Context, urls []string) (map[string]struct{}, error)
}

type failRecordRepository struct {
	db dbtx
}

func NewFailRecordRepository(db dbtx) FailRecordRepository {
	return &failRecordRepository{db: db}
}

func (r *failRecordRepository) ExistingURLs(ctx context.Context, urls []string) (map[string]struct{}, error) {
	found := make(map[string]struct{}, len(urls))
	if len(urls) == 0 {
		return found, nil
	}

	args := make([]any, len(urls))
	for i, u := range urls {
		args[i] = u
	}
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select("url").From("fail_records").Where(sb.In("url", args...))
	query, queryArgs := sb.BuildWithFlavor(sqlbuilder.SQLite)

	rows, err := r.db.QueryContext(ctx, query, queryArgs...)
	if err != nil {
		return nil, fmt.Errorf("list fail records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, fmt.Errorf("scan fail record: %w", err)
		}
		found[u] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate fail records: %w", err)
	}
	return found, nil
}
