package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// HTTP server
	Port string `yaml:"port"`

	// Storage
	Backend      string `yaml:"backend"` // file | sqlite | memory
	DataDir      string `yaml:"data_dir"`
	SQLiteDBPath string `yaml:"sqlite_db_path"`

	// Logging
	LogLevel string `yaml:"log_level"`
}

// Load builds the configuration: defaults, then an optional YAML file,
// then environment variables on top. A .env file is honored when
// present.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:         "8082",
		Backend:      "file",
		DataDir:      "./data",
		SQLiteDBPath: "./data/fintrack.db",
		LogLevel:     "info",
	}

	cfg.applyFile(os.Getenv("FINTRACK_CONFIG"))

	cfg.Port = getEnv("FINTRACK_PORT", cfg.Port)
	cfg.Backend = getEnv("FINTRACK_BACKEND", cfg.Backend)
	cfg.DataDir = getEnv("FINTRACK_DATA_DIR", cfg.DataDir)
	cfg.SQLiteDBPath = getEnv("FINTRACK_SQLITE_DB_PATH", cfg.SQLiteDBPath)
	cfg.LogLevel = getEnv("FINTRACK_LOG_LEVEL", cfg.LogLevel)

	return cfg
}

// applyFile overlays values from a YAML config file. A missing path is
// fine; an unreadable or unparseable file is ignored the same way a
// corrupt record is: the defaults stand.
func (c *Config) applyFile(path string) {
	if path == "" {
		if _, err := os.Stat("fintrack.yaml"); err != nil {
			return
		}
		path = "fintrack.yaml"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	_ = yaml.Unmarshal(data, c)
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.Backend {
	case "file":
		if c.DataDir == "" {
			errors = append(errors, "data directory cannot be empty when using file backend")
		}
	case "sqlite":
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		}
	case "memory":
	default:
		errors = append(errors, fmt.Sprintf("invalid backend '%s': must be one of [file sqlite memory]", c.Backend))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// SlogLevel maps the configured level onto slog.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
