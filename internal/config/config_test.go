package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Server.Addr)
	require.Equal(t, "UTC", cfg.Defaults.Timezone)
	require.Equal(t, "en", cfg.Defaults.DateLanguage)
	require.NotEmpty(t, cfg.Defaults.DateFormat)
	require.Equal(t, 10, cfg.API.DefaultPageSize)
	require.Equal(t, 15*time.Second, cfg.Discord.Timeout)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "custom.yaml")
	content := `
server:
  addr: ":9000"
defaults:
  timezone: "Europe/Oslo"
  date_language: "nb"
discord:
  timeout: 5s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("FEEDRELAY_DEFAULTS_DATE_LANGUAGE", "de")
	t.Setenv("FEEDRELAY_DISCORD_BOT_TOKEN", "bot-token")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":9000", cfg.Server.Addr)
	require.Equal(t, "Europe/Oslo", cfg.Defaults.Timezone)
	require.Equal(t, "de", cfg.Defaults.DateLanguage)
	require.Equal(t, "bot-token", cfg.Discord.BotToken)
	require.Equal(t, 5*time.Second, cfg.Discord.Timeout)
}

func TestLoad_InvalidNodeID(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("FEEDRELAY_SNOWFLAKE_NODE_ID", "5000")

	_, err := Load("")
	require.Error(t, err)
	require.Contains(t, err.Error(), "snowflake.node_id")
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"FEEDRELAY_SERVER_ADDR", "server.addr"},
		{"FEEDRELAY_SERVER_LOG_LEVEL", "server.log_level"},
		{"FEEDRELAY_DEFAULTS_MAX_FEEDS", "defaults.max_feeds"},
		{"FEEDRELAY_CONFIG", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, envTransformFunc(tt.in))
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Database.Path = " "
	cfg.API.DefaultPageSize = 500
	err := cfg.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "database.path")
	require.Contains(t, err.Error(), "default_page_size")
}

func TestLoad_StatsInterval(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, time.Minute, cfg.Server.StatsInterval)

	t.Setenv("FEEDRELAY_SERVER_STATS_INTERVAL", "-1s")
	_, err = Load("")
	require.Error(t, err)
	require.Contains(t, err.Error(), "server.stats_interval")
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
