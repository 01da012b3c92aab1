package export

import (
	"fmt"
	"strings"
	"time"

	"fintrack/internal/core"
)

// recentLimit caps the transaction section of the report.
const recentLimit = 10

// LinesPerPage is the fixed vertical extent of one report page.
const LinesPerPage = 28

// ReportLines assembles the formatted report content in fixed order:
// report date, the three totals, budgets, goals, then up to the 10
// most-recent transactions. The page layout engine is external; this
// supplies exactly the content and ordering it must draw.
func ReportLines(state core.State, now time.Time) []string {
	cur := state.Settings.Currency
	summary := core.Totals(state.Transactions)

	lines := []string{
		"Personal Finance Report",
		"",
		"Report Date: " + now.Format("2006-01-02"),
		"Total Income: " + summary.Income.Display(cur),
		"Total Expenses: " + summary.Expenses.Display(cur),
		"Balance: " + summary.Balance.Display(cur),
		"",
		"Budgets",
	}
	for _, b := range state.Budgets {
		// Spend is derived on the export path, never read from the record.
		spent := core.BudgetSpend(state.Transactions, b.Category)
		lines = append(lines, fmt.Sprintf("%s: %s / %s", b.Category, spent.Display(cur), b.Limit.Display(cur)))
	}

	lines = append(lines, "", "Goals")
	for _, g := range state.Goals {
		lines = append(lines, fmt.Sprintf("%s: %s / %s", g.Name, g.Saved.Display(cur), g.Target.Display(cur)))
	}

	lines = append(lines, "", "Recent Transactions",
		"Date | Description | Category | Amount | Type")
	recent := core.SortedByDateDesc(state.Transactions)
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}
	for _, t := range recent {
		lines = append(lines, fmt.Sprintf("%s | %s | %s | %s | %s",
			t.Date, t.Description, t.Category, t.Amount.Display(cur), t.Type))
	}
	return lines
}

// Paginate splits report lines into fixed-height pages.
func Paginate(lines []string, perPage int) [][]string {
	if perPage <= 0 {
		perPage = LinesPerPage
	}
	var pages [][]string
	for start := 0; start < len(lines); start += perPage {
		end := start + perPage
		if end > len(lines) {
			end = len(lines)
		}
		pages = append(pages, lines[start:end])
	}
	return pages
}

// Report renders the paginated document as text, pages separated by a
// form feed.
func Report(state core.State, now time.Time) []byte {
	pages := Paginate(ReportLines(state, now), LinesPerPage)
	rendered := make([]string, len(pages))
	for i, page := range pages {
		rendered[i] = strings.Join(page, "\n")
	}
	return []byte(strings.Join(rendered, "\n\f\n") + "\n")
}
