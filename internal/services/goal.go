package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"fintrack/internal/core"
	"fintrack/internal/log"
)

// CreateGoal adds a savings goal. Saved is authoritative state, not
// derived from the ledger; it starts at whatever the caller already put
// aside.
func (t *Tracker) CreateGoal(ctx context.Context, name string, target, saved core.Money) (core.Goal, error) {
	g := core.Goal{
		ID:     uuid.NewString(),
		Name:   name,
		Target: target,
		Saved:  saved,
	}
	if err := g.Validate(); err != nil {
		return core.Goal{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.Goals = append(t.state.Goals, g)
	if err := t.store.SaveGoals(ctx, t.state.Goals); err != nil {
		return core.Goal{}, fmt.Errorf("persist goals: %w", err)
	}

	t.logger.InfoContext(ctx, "Goal created",
		log.FieldOperation, log.OpCreate,
		log.FieldRecordID, g.ID,
		"name", g.Name,
		"target_cents", g.Target.Cents)
	return g, nil
}

// UpdateGoal edits a goal in place. Updating a missing id is a no-op.
func (t *Tracker) UpdateGoal(ctx context.Context, id, name string, target, saved core.Money) (core.Goal, bool, error) {
	candidate := core.Goal{ID: id, Name: name, Target: target, Saved: saved}
	if err := candidate.Validate(); err != nil {
		return core.Goal{}, false, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for i, g := range t.state.Goals {
		if g.ID != id {
			continue
		}
		t.state.Goals[i].Name = name
		t.state.Goals[i].Target = target
		t.state.Goals[i].Saved = saved
		if err := t.store.SaveGoals(ctx, t.state.Goals); err != nil {
			return core.Goal{}, true, fmt.Errorf("persist goals: %w", err)
		}
		t.logger.InfoContext(ctx, "Goal updated",
			log.FieldOperation, log.OpUpdate,
			log.FieldRecordID, id)
		return t.state.Goals[i], true, nil
	}
	return core.Goal{}, false, nil
}

// Contribute accumulates onto a goal's saved amount. The contribution
// must be positive; a failed check leaves the goal untouched.
// Contributing to a missing id is a no-op.
func (t *Tracker) Contribute(ctx context.Context, id string, amount core.Money) (core.Goal, bool, error) {
	if amount.Cents <= 0 {
		return core.Goal{}, false, core.ErrInvalidAmount
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for i, g := range t.state.Goals {
		if g.ID != id {
			continue
		}
		t.state.Goals[i].Saved = t.state.Goals[i].Saved.Add(amount)
		if err := t.store.SaveGoals(ctx, t.state.Goals); err != nil {
			return core.Goal{}, true, fmt.Errorf("persist goals: %w", err)
		}
		t.logger.InfoContext(ctx, "Goal contribution",
			log.FieldOperation, log.OpContribute,
			log.FieldRecordID, id,
			log.FieldAmountCents, amount.Cents,
			"saved_cents", t.state.Goals[i].Saved.Cents)
		return t.state.Goals[i], true, nil
	}
	return core.Goal{}, false, nil
}

// DeleteGoal deletes by id; a missing id is a no-op.
func (t *Tracker) DeleteGoal(ctx context.Context, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	kept := t.state.Goals[:0]
	removed := false
	for _, g := range t.state.Goals {
		if g.ID == id {
			removed = true
			continue
		}
		kept = append(kept, g)
	}
	if !removed {
		return nil
	}
	t.state.Goals = kept
	if err := t.store.SaveGoals(ctx, t.state.Goals); err != nil {
		return fmt.Errorf("persist goals: %w", err)
	}

	t.logger.InfoContext(ctx, "Goal deleted",
		log.FieldOperation, log.OpDelete,
		log.FieldRecordID, id)
	return nil
}

// Goals lists all goals.
func (t *Tracker) Goals() []core.Goal {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]core.Goal(nil), t.state.Goals...)
}
