package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"FINTRACK_PORT", "FINTRACK_BACKEND", "FINTRACK_DATA_DIR", "FINTRACK_SQLITE_DB_PATH", "FINTRACK_LOG_LEVEL", "FINTRACK_CONFIG"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()
	if cfg.Port != "8082" {
		t.Errorf("default port expected 8082, got %s", cfg.Port)
	}
	if cfg.Backend != "file" {
		t.Errorf("default backend expected file, got %s", cfg.Backend)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("default log level expected info, got %s", cfg.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("FINTRACK_PORT", "9000")
	t.Setenv("FINTRACK_BACKEND", "sqlite")
	t.Setenv("FINTRACK_SQLITE_DB_PATH", "/tmp/x.db")
	t.Setenv("FINTRACK_LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.Port != "9000" || cfg.Backend != "sqlite" || cfg.SQLiteDBPath != "/tmp/x.db" {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.SlogLevel())
	}
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fintrack.yaml")
	if err := os.WriteFile(path, []byte("port: \"7777\"\nbackend: memory\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("FINTRACK_CONFIG", path)
	os.Unsetenv("FINTRACK_PORT")
	os.Unsetenv("FINTRACK_BACKEND")

	cfg := Load()
	if cfg.Port != "7777" || cfg.Backend != "memory" {
		t.Errorf("yaml overlay not applied: %+v", cfg)
	}

	// Env still wins over the file.
	t.Setenv("FINTRACK_PORT", "8888")
	cfg = Load()
	if cfg.Port != "8888" {
		t.Errorf("env must override yaml, got %s", cfg.Port)
	}
}

func TestLoadIgnoresUnreadableConfigFile(t *testing.T) {
	t.Setenv("FINTRACK_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	os.Unsetenv("FINTRACK_PORT")

	cfg := Load()
	if cfg.Port != "8082" {
		t.Errorf("missing config file must leave defaults, got %s", cfg.Port)
	}
}

func TestValidate(t *testing.T) {
	base := Config{Port: "8082", Backend: "file", DataDir: "./data", SQLiteDBPath: "./data/x.db", LogLevel: "info"}

	cases := []struct {
		name    string
		mut     func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"bad port", func(c *Config) { c.Port = "abc" }, "invalid port"},
		{"port out of range", func(c *Config) { c.Port = "70000" }, "invalid port"},
		{"bad backend", func(c *Config) { c.Backend = "redis" }, "invalid backend"},
		{"file backend without dir", func(c *Config) { c.Backend = "file"; c.DataDir = "" }, "data directory"},
		{"sqlite backend without path", func(c *Config) { c.Backend = "sqlite"; c.SQLiteDBPath = "" }, "SQLite database path"},
		{"memory backend needs nothing", func(c *Config) { c.Backend = "memory"; c.DataDir = ""; c.SQLiteDBPath = "" }, ""},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, "invalid log level"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mut(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Config{Port: "abc", Backend: "redis", LogLevel: "verbose"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"invalid port", "invalid backend", "invalid log level"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("combined error missing %q: %v", want, err)
		}
	}
}
