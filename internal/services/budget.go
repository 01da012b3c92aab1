package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"fintrack/internal/core"
	"fintrack/internal/log"
)

// CreateBudget adds a budget for a category. At most one budget may
// exist per category (case-sensitive exact match) at any time.
func (t *Tracker) CreateBudget(ctx context.Context, category string, limit core.Money) (core.Budget, error) {
	b := core.Budget{
		ID:       uuid.NewString(),
		Category: category,
		Limit:    limit,
	}
	if err := b.Validate(); err != nil {
		return core.Budget{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for _, existing := range t.state.Budgets {
		if existing.Category == category {
			return core.Budget{}, core.ErrDuplicateCategory
		}
	}
	t.state.Budgets = append(t.state.Budgets, b)
	if err := t.store.SaveBudgets(ctx, t.state.Budgets); err != nil {
		return core.Budget{}, fmt.Errorf("persist budgets: %w", err)
	}
	t.refreshSpentLocked()

	t.logger.InfoContext(ctx, "Budget created",
		log.FieldOperation, log.OpCreate,
		log.FieldRecordID, b.ID,
		log.FieldCategory, b.Category,
		"limit_cents", b.Limit.Cents)
	return b, nil
}

// UpdateBudget edits a budget in place. When the category changes, the
// duplicate check runs against all other budgets. Updating a missing id
// is a no-op.
func (t *Tracker) UpdateBudget(ctx context.Context, id, category string, limit core.Money) (core.Budget, bool, error) {
	candidate := core.Budget{ID: id, Category: category, Limit: limit}
	if err := candidate.Validate(); err != nil {
		return core.Budget{}, false, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	idx := -1
	for i, b := range t.state.Budgets {
		if b.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return core.Budget{}, false, nil
	}
	if category != t.state.Budgets[idx].Category {
		for _, other := range t.state.Budgets {
			if other.ID != id && other.Category == category {
				return core.Budget{}, true, core.ErrDuplicateCategory
			}
		}
	}
	t.state.Budgets[idx].Category = category
	t.state.Budgets[idx].Limit = limit
	if err := t.store.SaveBudgets(ctx, t.state.Budgets); err != nil {
		return core.Budget{}, true, fmt.Errorf("persist budgets: %w", err)
	}
	t.refreshSpentLocked()

	t.logger.InfoContext(ctx, "Budget updated",
		log.FieldOperation, log.OpUpdate,
		log.FieldRecordID, id,
		log.FieldCategory, category)
	return t.state.Budgets[idx], true, nil
}

// DeleteBudget deletes by id; a missing id is a no-op.
func (t *Tracker) DeleteBudget(ctx context.Context, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	kept := t.state.Budgets[:0]
	removed := false
	for _, b := range t.state.Budgets {
		if b.ID == id {
			removed = true
			continue
		}
		kept = append(kept, b)
	}
	if !removed {
		return nil
	}
	t.state.Budgets = kept
	if err := t.store.SaveBudgets(ctx, t.state.Budgets); err != nil {
		return fmt.Errorf("persist budgets: %w", err)
	}

	t.logger.InfoContext(ctx, "Budget deleted",
		log.FieldOperation, log.OpDelete,
		log.FieldRecordID, id)
	return nil
}

// Budgets lists all budgets with Spent freshly recomputed from the
// ledger.
func (t *Tracker) Budgets() []core.Budget {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.refreshSpentLocked()
	return append([]core.Budget(nil), t.state.Budgets...)
}
