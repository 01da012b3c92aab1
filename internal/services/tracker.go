// Package services holds the Tracker, the single owner of the tracker
// state for the lifetime of a session. Every mutation persists the
// affected collection before returning; every derived value is
// recomputed from the ledger on read.
package services

import (
	"context"
	"sync"

	"fintrack/internal/core"
	"fintrack/internal/log"
	"fintrack/internal/storage"
)

// Tracker owns the in-memory collections and drives the record store.
// A mutex confines all mutation to one logical owner even when the
// tracker is driven from concurrent HTTP handlers.
type Tracker struct {
	mu     sync.Mutex
	state  *core.State
	store  *storage.Store
	logger *log.Logger
}

// NewTracker loads persisted state and returns a ready tracker.
func NewTracker(ctx context.Context, store *storage.Store, logger *log.Logger) *Tracker {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	state := store.Load(ctx)
	logger.InfoContext(ctx, "State loaded",
		log.FieldOperation, log.OpLoad,
		"transactions", len(state.Transactions),
		"budgets", len(state.Budgets),
		"goals", len(state.Goals))
	return &Tracker{
		state:  state,
		store:  store,
		logger: logger,
	}
}

// Snapshot returns a value copy of the full state with all derived
// fields refreshed, suitable for export.
func (t *Tracker) Snapshot() core.State {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.refreshSpentLocked()
	return core.State{
		Transactions: append([]core.Transaction(nil), t.state.Transactions...),
		Budgets:      append([]core.Budget(nil), t.state.Budgets...),
		Goals:        append([]core.Goal(nil), t.state.Goals...),
		Settings:     t.state.Settings,
	}
}

// Summary returns the three headline totals.
func (t *Tracker) Summary() core.Summary {
	t.mu.Lock()
	defer t.mu.Unlock()
	return core.Totals(t.state.Transactions)
}

// ExpenseDistribution returns per-category expense totals for charting.
func (t *Tracker) ExpenseDistribution() []core.CategoryAmount {
	t.mu.Lock()
	defer t.mu.Unlock()
	return core.ExpenseDistribution(t.state.Transactions)
}

// MonthlySeries returns per-month income/expense buckets for charting.
func (t *Tracker) MonthlySeries() []core.MonthFlow {
	t.mu.Lock()
	defer t.mu.Unlock()
	return core.MonthlySeries(t.state.Transactions)
}

// DailyExpenseSeries returns per-day expense totals for charting.
func (t *Tracker) DailyExpenseSeries() []core.DayAmount {
	t.mu.Lock()
	defer t.mu.Unlock()
	return core.DailyExpenseSeries(t.state.Transactions)
}

// refreshSpentLocked recomputes the derived Spent cache for every
// budget from the current ledger. Callers hold the mutex.
func (t *Tracker) refreshSpentLocked() {
	for i := range t.state.Budgets {
		t.state.Budgets[i].Spent = core.BudgetSpend(t.state.Transactions, t.state.Budgets[i].Category)
	}
}
