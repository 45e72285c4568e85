package db_test

import (
	"database/sql"
	"net/url"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"feedrelay/backend/internal/db"

	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")
	database, err := db.Open(dbPath)
	require.NoError(t, err)
	require.NotNil(t, database)
	defer database.Close()

	for _, table := range []string{"feeds", "fail_records", "server_profiles"} {
		var name string
		err = database.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err)
		require.Equal(t, table, name)
	}

	var count int
	err = database.QueryRow(`SELECT COUNT(*) FROM pragma_table_info('feeds') WHERE name = 'direct_subscribers'`).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, db.Migrate(database))
	require.NoError(t, db.Migrate(database))
}

func TestBuildDSN_AllPragmasInDSN(t *testing.T) {
	dsn := db.BuildDSN("mydb.sqlite")
	require.Contains(t, dsn, "file:mydb.sqlite")

	decoded, err := url.QueryUnescape(dsn)
	require.NoError(t, err)

	for _, pragma := range []string{
		"journal_mode(WAL)",
		"foreign_keys(ON)",
		"busy_timeout(30000)",
		"synchronous(NORMAL)",
	} {
		require.Contains(t, decoded, pragma, "DSN must contain pragma: "+pragma)
	}
}

func TestMigrate_ClosedDB(t *testing.T) {
	database, err := sql.Open("sqlite", "file::memory:?cache=shared")
	require.NoError(t, err)
	require.NoError(t, database.Close())

	err = db.Migrate(database)
	require.Error(t, err)
}

func TestFold_MatchesSQLFunction(t *testing.T) {
	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer database.Close()

	for _, input := range []string{"ÜBER News", "Café", "https://Blog.MÜLLER.de/Feed.xml", "plain"} {
		var folded string
		require.NoError(t, database.QueryRow("SELECT "+db.FoldFunc+"(?)", input).Scan(&folded))
		require.Equal(t, db.Fold(input), folded, input)
	}
	require.Equal(t, db.Fold("über news"), db.Fold("ÜBER NEWS"))

	var null sql.NullString
	require.NoError(t, database.QueryRow("SELECT "+db.FoldFunc+"(NULL)").Scan(&null))
	require.False(t, null.Valid)
}
