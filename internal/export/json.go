// Package export serializes tracker state: a full-fidelity JSON
// snapshot, a flat CSV of the ledger, and a formatted report document.
package export

import (
	"encoding/json"
	"fmt"

	"fintrack/internal/core"
)

// Document is the structured snapshot format: the three collections
// verbatim, suitable for later re-import.
type Document struct {
	Transactions []core.Transaction `json:"transactions"`
	Budgets      []core.Budget      `json:"budgets"`
	Goals        []core.Goal        `json:"goals"`
}

// JSON renders the full state as an indented document.
func JSON(state core.State) ([]byte, error) {
	doc := Document{
		Transactions: state.Transactions,
		Budgets:      state.Budgets,
		Goals:        state.Goals,
	}
	if doc.Transactions == nil {
		doc.Transactions = []core.Transaction{}
	}
	if doc.Budgets == nil {
		doc.Budgets = []core.Budget{}
	}
	if doc.Goals == nil {
		doc.Goals = []core.Goal{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return data, nil
}

// ImportJSON parses a snapshot back into its collections.
func ImportJSON(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("parse snapshot: %w", err)
	}
	return doc, nil
}
