package common

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string            `toml:"environment"` // "development" or "production"
	Server      ServerConfig      `toml:"server"`
	Storage     StorageConfig     `toml:"storage"`
	Logging     LoggingConfig     `toml:"logging"`
	Ingest      IngestConfig      `toml:"ingest"`
	Search      SearchConfig      `toml:"search"`
	Maintenance MaintenanceConfig `toml:"maintenance"`
}

type ServerConfig struct {
	Port int    `toml:"port" validate:"gte=1,lte=65535"`
	Host string `toml:"host" validate:"required"`
}

type StorageConfig struct {
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig represents BadgerDB-specific configuration
type BadgerConfig struct {
	Path           string `toml:"path" validate:"required"` // Database directory path
	ResetOnStartup bool   `toml:"reset_on_startup"`         // Delete database on startup for clean test runs
}

type LoggingConfig struct {
	Level      string   `toml:"level" validate:"oneof=debug info warn error"`
	Output     []string `toml:"output"`      // "stdout", "file"
	TimeFormat string   `toml:"time_format"` // Time format for logs
}

// IngestConfig controls document chunking during ingest
type IngestConfig struct {
	ChunkSize    int `toml:"chunk_size" validate:"gt=0"`     // Target chunk size in characters
	ChunkOverlap int `toml:"chunk_overlap" validate:"gte=0"` // Overlap budget in characters
	MaxTextSize  int `toml:"max_text_size" validate:"gt=0"`  // Reject decoded text larger than this
}

// SearchConfig controls retrieval behavior
type SearchConfig struct {
	DefaultLimit int `toml:"default_limit" validate:"gt=0"` // Result count when the caller gives none
	MaxLimit     int `toml:"max_limit" validate:"gt=0"`     // Hard cap on requested result counts
}

// MaintenanceConfig controls scheduled storage maintenance
type MaintenanceConfig struct {
	Enabled  bool   `toml:"enabled"`
	Schedule string `toml:"schedule"` // Cron schedule, e.g. "@every 10m"
}

// DefaultConfig returns the built-in configuration defaults
func DefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port: 8085,
			Host: "localhost",
		},
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path: "./data/respondo",
			},
		},
		Logging: LoggingConfig{
			Level:      "info",
			Output:     []string{"stdout"},
			TimeFormat: "15:04:05",
		},
		Ingest: IngestConfig{
			ChunkSize:    1000,
			ChunkOverlap: 200,
			MaxTextSize:  10 * 1024 * 1024,
		},
		Search: SearchConfig{
			DefaultLimit: 5,
			MaxLimit:     50,
		},
		Maintenance: MaintenanceConfig{
			Enabled:  true,
			Schedule: "@every 10m",
		},
	}
}

// LoadFromFiles loads configuration in priority order:
// defaults -> config files (later files override earlier) -> environment
func LoadFromFiles(paths ...string) (*Config, error) {
	config := DefaultConfig()

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// ApplyFlagOverrides applies command-line flag values (highest priority)
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

func applyEnvOverrides(config *Config) {
	if v := os.Getenv("RESPONDO_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			config.Server.Port = port
		}
	}
	if v := os.Getenv("RESPONDO_HOST"); v != "" {
		config.Server.Host = v
	}
	if v := os.Getenv("RESPONDO_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
	if v := os.Getenv("RESPONDO_DB_PATH"); v != "" {
		config.Storage.Badger.Path = v
	}
}
