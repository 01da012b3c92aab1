package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fintrack/internal/config"
	"fintrack/internal/core"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print totals, budget usage and goal progress",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := config.Load()
		if err := cfg.Validate(); err != nil {
			return err
		}
		logger := newLogger(cfg)

		tracker, store, err := openTracker(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer store.Close()

		cur := tracker.Settings().Currency
		summary := tracker.Summary()
		fmt.Printf("Income:   %s\n", summary.Income.Display(cur))
		fmt.Printf("Expenses: %s\n", summary.Expenses.Display(cur))
		fmt.Printf("Balance:  %s\n", summary.Balance.Display(cur))

		budgets := tracker.Budgets()
		if len(budgets) > 0 {
			fmt.Println("\nBudgets:")
			for _, b := range budgets {
				pct := core.BudgetProgress(b.Spent, b.Limit)
				fmt.Printf("  %-20s %s / %s (%.0f%%, %s)\n",
					b.Category, b.Spent.Display(cur), b.Limit.Display(cur),
					pct, severityOf(b))
			}
		}

		goals := tracker.Goals()
		if len(goals) > 0 {
			fmt.Println("\nGoals:")
			for _, g := range goals {
				fmt.Printf("  %-20s %s / %s (%.0f%%)\n",
					g.Name, g.Saved.Display(cur), g.Target.Display(cur),
					core.GoalProgress(g.Saved, g.Target))
			}
		}
		return nil
	},
}

func severityOf(b core.Budget) core.Severity {
	raw := 0.0
	if b.Limit.Cents > 0 {
		raw = b.Spent.Float() / b.Limit.Float() * 100
	}
	return core.BudgetSeverity(raw)
}
