package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fintrack/internal/core"
	"fintrack/internal/log"
)

// ErrEmptyCurrency rejects a blank currency symbol.
var ErrEmptyCurrency = errors.New("empty currency symbol")

// SetCurrency changes the display symbol. The symbol is a cosmetic
// label; no conversion of stored amounts happens.
func (t *Tracker) SetCurrency(ctx context.Context, symbol string) error {
	if strings.TrimSpace(symbol) == "" {
		return ErrEmptyCurrency
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.Settings.Currency = symbol
	if err := t.store.SaveSettings(ctx, t.state.Settings); err != nil {
		return fmt.Errorf("persist settings: %w", err)
	}
	t.logger.InfoContext(ctx, "Currency changed",
		log.FieldOperation, log.OpUpdate,
		"currency", symbol)
	return nil
}

// SetDarkMode flips the theme flag.
func (t *Tracker) SetDarkMode(ctx context.Context, enabled bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.Settings.DarkMode = enabled
	if err := t.store.SaveSettings(ctx, t.state.Settings); err != nil {
		return fmt.Errorf("persist settings: %w", err)
	}
	return nil
}

// Settings returns the current scalar settings.
func (t *Tracker) Settings() core.Settings {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.Settings
}
