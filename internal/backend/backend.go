// Package backend selects and opens the key-value store the tracker
// persists into.
package backend

import (
	"fmt"

	"fintrack/internal/log"
	"fintrack/internal/storage"
)

// Type identifies a storage backend.
type Type string

const (
	FileBackend   Type = "file"
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

// IsValid reports whether the type names a known backend.
func (t Type) IsValid() bool {
	switch t {
	case FileBackend, SQLiteBackend, MemoryBackend:
		return true
	}
	return false
}

// Config carries the settings a backend needs to open.
type Config struct {
	Type         Type
	DataDir      string
	SQLiteDBPath string
}

// Factory opens storage backends.
type Factory struct {
	logger *log.Logger
}

func NewFactory(logger *log.Logger) *Factory {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &Factory{logger: logger.WithComponent(log.ComponentStorage)}
}

// Open creates the configured backend. The caller owns Close on the
// returned KV.
func (f *Factory) Open(config Config) (storage.KV, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case SQLiteBackend:
		kv, err := storage.NewSQLiteKV(config.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite backend: %w", err)
		}
		f.logger.Info("Initialized sqlite backend",
			log.FieldBackend, string(config.Type),
			"db_path", config.SQLiteDBPath)
		return kv, nil
	case MemoryBackend:
		f.logger.Info("Initialized memory backend", log.FieldBackend, string(config.Type))
		return storage.NewMemoryKV(), nil
	default:
		kv, err := storage.NewFileKV(config.DataDir)
		if err != nil {
			return nil, fmt.Errorf("initialize file backend: %w", err)
		}
		f.logger.Info("Initialized file backend",
			log.FieldBackend, string(config.Type),
			"data_dir", config.DataDir)
		return kv, nil
	}
}
