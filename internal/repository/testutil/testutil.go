// Package testutil provides a migrated SQLite database and seed helpers for tests.
package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"feedrelay/backend/internal/db"
	"feedrelay/backend/internal/model"
	"feedrelay/backend/internal/repository"
)

// NewTestDB opens a fresh database in a temp dir and closes it when the test ends.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return database
}

// SeedFeed stores feed and returns it with its generated ID.
func SeedFeed(t *testing.T, database *sql.DB, feed model.Feed) model.Feed {
	t.Helper()
	if feed.ChannelID == "" {
		feed.ChannelID = "channel-1"
	}
	if feed.URL == "" {
		feed.URL = "https://example.com/" + feed.Title + ".xml"
	}
	created, err := repository.NewFeedRepository(database).Create(context.Background(), feed)
	require.NoError(t, err)
	return created
}

// SeedFailRecord marks url as failing.
func SeedFailRecord(t *testing.T, database *sql.DB, url string) {
	t.Helper()
	_, err := database.Exec(
		`INSERT INTO fail_records (url, reason, failed_at, alerted) VALUES (?, ?, ?, 0)`,
		url, "connection refused", time.Now().UTC().Format(time.RFC3339Nano),
	)
	require.NoError(t, err)
}
