package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	AppName    = "FeedRelay"
	AppVersion = "1.0.0"
	AppRepo    = "https://github.com/feedrelay/feedrelay"
)

// UserAgent follows the format the upstream chat platform requires for bot clients.
var UserAgent = "DiscordBot (" + AppRepo + ", " + AppVersion + ")"

// EnvPrefix is stripped from environment variables before they are mapped to config keys.
const EnvPrefix = "FEEDRELAY_"

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = EnvPrefix + "CONFIG"

// DefaultConfigPaths are searched in order when no explicit path is given.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
}

type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Discord   DiscordConfig   `koanf:"discord"`
	Defaults  DefaultsConfig  `koanf:"defaults"`
	API       APIConfig       `koanf:"api"`
	Snowflake SnowflakeConfig `koanf:"snowflake"`
}

type ServerConfig struct {
	Addr      string `koanf:"addr"`
	LogLevel  string `koanf:"log_level"`
	StaticDir string `koanf:"static_dir"`

	// StatsInterval is how often store gauges are refreshed. Zero disables collection.
	StatsInterval time.Duration `koanf:"stats_interval"`
}

type DatabaseConfig struct {
	Path string `koanf:"path"`
}

type DiscordConfig struct {
	APIBaseURL        string        `koanf:"api_base_url"`
	BotToken          string        `koanf:"bot_token"`
	RequestsPerSecond int           `koanf:"requests_per_second"`
	Timeout           time.Duration `koanf:"timeout"`
	ProxyURL          string        `koanf:"proxy_url"`
	BreakerFailures   uint32        `koanf:"breaker_failures"`
	BreakerTimeout    time.Duration `koanf:"breaker_timeout"`
}

// DefaultsConfig holds the process-wide fallbacks used whenever a server has no stored override.
type DefaultsConfig struct {
	DateFormat         string `koanf:"date_format"`
	DateLanguage       string `koanf:"date_language"`
	Timezone           string `koanf:"timezone"`
	MaxFeeds           int    `koanf:"max_feeds"`
	Webhooks           bool   `koanf:"webhooks"`
	RefreshRateSeconds int    `koanf:"refresh_rate_seconds"`
}

type APIConfig struct {
	DefaultPageSize int `koanf:"default_page_size"`
	MaxPageSize     int `koanf:"max_page_size"`
}

type SnowflakeConfig struct {
	NodeID int64 `koanf:"node_id"`
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:          ":8080",
			LogLevel:      "info",
			StaticDir:     "",
			StatsInterval: time.Minute,
		},
		Database: DatabaseConfig{
			Path: "./data/feedrelay.db",
		},
		Discord: DiscordConfig{
			APIBaseURL:        "https://discord.com/api/v10",
			RequestsPerSecond: 40,
			Timeout:           15 * time.Second,
			BreakerFailures:   5,
			BreakerTimeout:    30 * time.Second,
		},
		Defaults: DefaultsConfig{
			DateFormat:         "ddd, D MMMM YYYY, h:mm A z",
			DateLanguage:       "en",
			Timezone:           "UTC",
			MaxFeeds:           5,
			Webhooks:           false,
			RefreshRateSeconds: 600,
		},
		API: APIConfig{
			DefaultPageSize: 10,
			MaxPageSize:     100,
		},
		Snowflake: SnowflakeConfig{
			NodeID: 1,
		},
	}
}

// Load builds the configuration from struct defaults, an optional YAML file and
// FEEDRELAY_* environment variables, in increasing priority. An empty path
// falls back to FEEDRELAY_CONFIG and then DefaultConfigPaths.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Database.Path) == "" {
		errs = append(errs, errors.New("database.path is required"))
	}
	if c.Snowflake.NodeID < 0 || c.Snowflake.NodeID > 1023 {
		errs = append(errs, fmt.Errorf("snowflake.node_id must be within 0-1023, got %d", c.Snowflake.NodeID))
	}
	if c.API.DefaultPageSize <= 0 || c.API.MaxPageSize <= 0 {
		errs = append(errs, errors.New("api page sizes must be positive"))
	}
	if c.API.DefaultPageSize > c.API.MaxPageSize {
		errs = append(errs, errors.New("api.default_page_size must not exceed api.max_page_size"))
	}
	if c.Server.StatsInterval < 0 {
		errs = append(errs, errors.New("server.stats_interval must not be negative"))
	}
	if c.Defaults.MaxFeeds < 0 {
		errs = append(errs, errors.New("defaults.max_feeds must not be negative"))
	}
	return errors.Join(errs...)
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, candidate := range DefaultConfigPaths {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// envTransformFunc maps FEEDRELAY_SERVER_LOG_LEVEL to server.log_level.
// Only the first underscore separates the section from the key.
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	if key == "config" {
		return ""
	}
	return strings.Replace(key, "_", ".", 1)
}
