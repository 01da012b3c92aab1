package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"fintrack/internal/core"
)

// CSVHeader is the fixed column set of the tabular export.
var CSVHeader = []string{"ID", "Description", "Amount", "Type", "Category", "Date", "Payment Method"}

// CSV renders the ledger as one row per transaction. Fields containing
// the delimiter are quoted by the writer, so descriptions with commas
// stay parseable.
func CSV(ledger []core.Transaction) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(CSVHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, t := range ledger {
		row := []string{
			t.ID,
			t.Description,
			t.Amount.String(),
			string(t.Type),
			t.Category,
			t.Date.String(),
			t.PaymentMethod,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
