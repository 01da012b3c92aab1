package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"fintrack/internal/core"
	"fintrack/internal/log"
)

// TransactionInput carries the caller-collected fields for a new
// transaction. How the collaborator gathered them (form, API body,
// CLI flags) is not this layer's concern.
type TransactionInput struct {
	Description   string
	Amount        core.Money
	Type          core.TxType
	Category      string
	Date          core.Date
	PaymentMethod string
}

// AddTransaction inserts a transaction under a freshly generated id.
// No duplicate detection is performed: two identical submissions are
// two transactions.
func (t *Tracker) AddTransaction(ctx context.Context, in TransactionInput) (core.Transaction, error) {
	tx := core.Transaction{
		ID:            uuid.NewString(),
		Description:   in.Description,
		Amount:        in.Amount,
		Type:          in.Type,
		Category:      in.Category,
		Date:          in.Date,
		PaymentMethod: in.PaymentMethod,
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.Transactions = append(t.state.Transactions, tx)
	if err := t.store.SaveTransactions(ctx, t.state.Transactions); err != nil {
		return core.Transaction{}, fmt.Errorf("persist transactions: %w", err)
	}
	t.refreshSpentLocked()

	t.logger.InfoContext(ctx, "Transaction added",
		log.FieldOperation, log.OpCreate,
		log.FieldRecordID, tx.ID,
		log.FieldCategory, tx.Category,
		log.FieldAmountCents, tx.Amount.Cents,
		"type", string(tx.Type))
	return tx, nil
}

// RemoveTransaction deletes by id. Removing an id that is no longer
// present is a no-op, not an error; the record may already be gone.
func (t *Tracker) RemoveTransaction(ctx context.Context, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	kept := t.state.Transactions[:0]
	removed := false
	for _, tx := range t.state.Transactions {
		if tx.ID == id {
			removed = true
			continue
		}
		kept = append(kept, tx)
	}
	if !removed {
		return nil
	}
	t.state.Transactions = kept
	if err := t.store.SaveTransactions(ctx, t.state.Transactions); err != nil {
		return fmt.Errorf("persist transactions: %w", err)
	}
	t.refreshSpentLocked()

	t.logger.InfoContext(ctx, "Transaction removed",
		log.FieldOperation, log.OpDelete,
		log.FieldRecordID, id)
	return nil
}

// ReplaceTransaction is remove-then-reinsert: the edited transaction
// receives a new id. Keep this exact semantic; external references to
// the old id are expected to break across an edit. The returned bool
// reports whether the id existed; replacing a missing id is a no-op.
func (t *Tracker) ReplaceTransaction(ctx context.Context, id string, in TransactionInput) (core.Transaction, bool, error) {
	tx := core.Transaction{
		ID:            uuid.NewString(),
		Description:   in.Description,
		Amount:        in.Amount,
		Type:          in.Type,
		Category:      in.Category,
		Date:          in.Date,
		PaymentMethod: in.PaymentMethod,
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, false, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	kept := t.state.Transactions[:0]
	found := false
	for _, old := range t.state.Transactions {
		if old.ID == id {
			found = true
			continue
		}
		kept = append(kept, old)
	}
	if !found {
		return core.Transaction{}, false, nil
	}
	t.state.Transactions = append(kept, tx)
	if err := t.store.SaveTransactions(ctx, t.state.Transactions); err != nil {
		return core.Transaction{}, true, fmt.Errorf("persist transactions: %w", err)
	}
	t.refreshSpentLocked()

	t.logger.InfoContext(ctx, "Transaction replaced",
		log.FieldOperation, log.OpUpdate,
		"old_id", id,
		log.FieldRecordID, tx.ID)
	return tx, true, nil
}

// Transactions lists the full ledger, most recent first. Ties keep
// their original relative order.
func (t *Tracker) Transactions() []core.Transaction {
	t.mu.Lock()
	defer t.mu.Unlock()
	return core.SortedByDateDesc(t.state.Transactions)
}
