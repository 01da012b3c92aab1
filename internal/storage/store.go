// Package storage implements the record store: five independently
// persisted entries over a pluggable key-value backend.
package storage

import (
	"context"
	"encoding/json"

	"fintrack/internal/core"
	"fintrack/internal/log"
)

// Keys of the persisted entries. Each holds one JSON document.
const (
	KeyTransactions = "transactions"
	KeyBudgets      = "budgets"
	KeyGoals        = "goals"
	KeyCurrency     = "currency"
	KeyDarkMode     = "darkMode"
)

// KV is the backing persistent key-value mechanism.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

// Store owns loading and saving the tracker state. It is the only
// component that touches the backing store.
type Store struct {
	kv     KV
	logger *log.Logger
}

func New(kv KV, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &Store{kv: kv, logger: logger.WithComponent(log.ComponentStorage)}
}

// Load reconstructs the full state. Absent or corrupt entries fall back
// to their defaults instead of failing: a record that cannot be parsed
// is treated as if it were never written, and the session continues.
func (s *Store) Load(ctx context.Context) *core.State {
	return &core.State{
		Transactions: loadKey[[]core.Transaction](ctx, s, KeyTransactions, nil),
		Budgets:      loadKey[[]core.Budget](ctx, s, KeyBudgets, nil),
		Goals:        loadKey[[]core.Goal](ctx, s, KeyGoals, nil),
		Settings: core.Settings{
			Currency: loadKey(ctx, s, KeyCurrency, core.DefaultCurrency),
			DarkMode: loadKey(ctx, s, KeyDarkMode, false),
		},
	}
}

// SaveTransactions persists the transaction collection.
func (s *Store) SaveTransactions(ctx context.Context, txs []core.Transaction) error {
	return s.saveKey(ctx, KeyTransactions, txs)
}

// SaveBudgets persists the budget collection. The derived Spent field is
// excluded by the Budget JSON shape, so only ground truth is written.
func (s *Store) SaveBudgets(ctx context.Context, budgets []core.Budget) error {
	return s.saveKey(ctx, KeyBudgets, budgets)
}

// SaveGoals persists the goal collection.
func (s *Store) SaveGoals(ctx context.Context, goals []core.Goal) error {
	return s.saveKey(ctx, KeyGoals, goals)
}

// SaveSettings persists both scalar settings under their own keys.
func (s *Store) SaveSettings(ctx context.Context, settings core.Settings) error {
	if err := s.saveKey(ctx, KeyCurrency, settings.Currency); err != nil {
		return err
	}
	return s.saveKey(ctx, KeyDarkMode, settings.DarkMode)
}

func (s *Store) Close() error {
	return s.kv.Close()
}

func (s *Store) saveKey(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := s.kv.Put(ctx, key, data); err != nil {
		return err
	}
	s.logger.DebugContext(ctx, "Record saved",
		log.FieldOperation, log.OpSave,
		log.FieldKey, key,
		"bytes", len(data))
	return nil
}

func loadKey[T any](ctx context.Context, s *Store, key string, def T) T {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to read record, using default",
			log.FieldKey, key, log.FieldError, err)
		return def
	}
	if !ok {
		return def
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		s.logger.WarnContext(ctx, "Corrupt record, using default",
			log.FieldKey, key, log.FieldError, err)
		return def
	}
	return v
}
