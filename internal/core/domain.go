package core

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

const (
	Income  TxType = "income"
	Expense TxType = "expense"
)

// DefaultCurrency is the symbol used when no currency has ever been chosen.
const DefaultCurrency = "₹"

type (
	TxType string

	Date struct {
		time.Time
	}

	// Transaction is a single ledger entry. Transactions are immutable once
	// created; an edit is a delete followed by a reinsert under a new ID.
	Transaction struct {
		ID            string `json:"id"`
		Description   string `json:"description"`
		Amount        Money  `json:"amount"`
		Type          TxType `json:"type"`
		Category      string `json:"category"`
		Date          Date   `json:"date"`
		PaymentMethod string `json:"paymentMethod"`
	}

	Budget struct {
		ID       string `json:"id"`
		Category string `json:"category"`
		Limit    Money  `json:"limit"`
		// Spent is a cache recomputed from the ledger before every read.
		// It is never persisted and never trusted as ground truth.
		Spent Money `json:"-"`
	}

	Goal struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Target Money  `json:"target"`
		Saved  Money  `json:"saved"`
	}

	Settings struct {
		Currency string `json:"currency"`
		DarkMode bool   `json:"darkMode"`
	}

	// State holds everything the tracker knows for one session.
	State struct {
		Transactions []Transaction
		Budgets      []Budget
		Goals        []Goal
		Settings     Settings
	}
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidLimit    = errors.New("invalid budget limit")
	ErrInvalidTarget   = errors.New("invalid goal target")
	ErrInvalidSaved    = errors.New("invalid saved amount")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidType     = errors.New("invalid transaction type")
	ErrEmptyCategory   = errors.New("empty category")
	ErrEmptyName       = errors.New("empty goal name")
	ErrDuplicateCategory = errors.New("budget already exists for this category")
)

// DefaultSettings returns the settings used when nothing has been persisted yet.
func DefaultSettings() Settings {
	return Settings{Currency: DefaultCurrency, DarkMode: false}
}

const dateLayout = "2006-01-02"

// ParseDate parses an ISO calendar date (YYYY-MM-DD).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

// Month returns the year-month bucket (YYYY-MM) this date falls into.
func (d Date) Month() string {
	return d.Format("2006-01")
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (t TxType) Validate() error {
	switch t {
	case Income, Expense:
		return nil
	default:
		return ErrInvalidType
	}
}

func (t Transaction) Validate() error {
	if err := t.Type.Validate(); err != nil {
		return err
	}
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if t.Amount.Cents < 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (b Budget) Validate() error {
	if strings.TrimSpace(b.Category) == "" {
		return ErrEmptyCategory
	}
	if b.Limit.Cents <= 0 {
		return ErrInvalidLimit
	}
	return nil
}

func (g Goal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return ErrEmptyName
	}
	if g.Target.Cents <= 0 {
		return ErrInvalidTarget
	}
	if g.Saved.Cents < 0 {
		return ErrInvalidSaved
	}
	return nil
}
