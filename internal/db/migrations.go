package db

import (
	"database/sql"
	"fmt"
)

// Feed documents keep their list and embed payloads as JSON text columns.
const baseSchema = `
CREATE TABLE IF NOT EXISTS feeds (
  id INTEGER PRIMARY KEY,
  guild_id TEXT NOT NULL,
  channel_id TEXT NOT NULL,
  url TEXT NOT NULL,
  title TEXT NOT NULL,
  text TEXT,
  disabled TEXT,
  check_titles INTEGER NOT NULL DEFAULT 0,
  check_dates INTEGER NOT NULL DEFAULT 0,
  img_previews INTEGER NOT NULL DEFAULT 1,
  img_links_existence INTEGER NOT NULL DEFAULT 1,
  format_tables INTEGER NOT NULL DEFAULT 0,
  split_message INTEGER NOT NULL DEFAULT 0,
  webhook_id TEXT,
  ncomparisons TEXT NOT NULL DEFAULT '[]',
  pcomparisons TEXT NOT NULL DEFAULT '[]',
  embeds TEXT NOT NULL DEFAULT '[]',
  added_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_feeds_guild_added ON feeds(guild_id, added_at DESC);
CREATE INDEX IF NOT EXISTS idx_feeds_url ON feeds(url);

CREATE TABLE IF NOT EXISTS fail_records (
  url TEXT PRIMARY KEY,
  reason TEXT,
  failed_at TEXT NOT NULL,
  alerted INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS server_profiles (
  guild_id TEXT PRIMARY KEY,
  date_format TEXT,
  date_language TEXT,
  timezone TEXT,
  updated_at TEXT NOT NULL
);
`

type columnMigration struct {
	table      string
	column     string
	definition string
}

// columnMigrations are applied in order to databases created by older builds.
var columnMigrations = []columnMigration{
	{table: "feeds", column: "direct_subscribers", definition: "INTEGER NOT NULL DEFAULT 0"},
}

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}
	for _, m := range columnMigrations {
		if err := addColumnIfMissing(db, m); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}
	return nil
}

func addColumnIfMissing(db *sql.DB, m columnMigration) error {
	var count int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?`,
		m.table, m.column,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("check %s.%s column: %w", m.table, m.column, err)
	}
	if count > 0 {
		return nil
	}
	stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", m.table, m.column, m.definition)
	if _, err := db.Exec(stmt); err != nil {
		return fmt.Errorf("add %s.%s column: %w", m.table, m.column, err)
	}
	return nil
}
