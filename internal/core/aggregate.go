package core

import "sort"

// Severity classifies how much of a budget has been used.
type Severity string

const (
	SeverityNormal   Severity = "normal"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

type (
	// Summary holds the three headline totals derived from the ledger.
	Summary struct {
		Income   Money `json:"income"`
		Expenses Money `json:"expenses"`
		Balance  Money `json:"balance"`
	}

	// CategoryAmount is an expense total for one category.
	CategoryAmount struct {
		Category string `json:"category"`
		Amount   Money  `json:"amount"`
	}

	// MonthFlow is the income/expense pair for one YYYY-MM bucket.
	MonthFlow struct {
		Month   string `json:"month"`
		Income  Money  `json:"income"`
		Expense Money  `json:"expense"`
	}

	// DayAmount is the expense total for one calendar date.
	DayAmount struct {
		Date   string `json:"date"`
		Amount Money  `json:"amount"`
	}
)

// All functions below are pure: they derive views from a ledger snapshot
// and never mutate it. The collections are personal-scale, so everything
// is recomputed in full on every read rather than maintained
// incrementally; staleness bugs cost more than the recompute does.

// Totals folds the ledger into income, expenses and their balance.
func Totals(ledger []Transaction) Summary {
	var s Summary
	for _, t := range ledger {
		switch t.Type {
		case Income:
			s.Income = s.Income.Add(t.Amount)
		case Expense:
			s.Expenses = s.Expenses.Add(t.Amount)
		}
	}
	s.Balance = s.Income.Sub(s.Expenses)
	return s
}

// BudgetSpend sums expense amounts whose category matches exactly
// (case-sensitive). Income in the same category does not count.
func BudgetSpend(ledger []Transaction, category string) Money {
	var spent Money
	for _, t := range ledger {
		if t.Type == Expense && t.Category == category {
			spent = spent.Add(t.Amount)
		}
	}
	return spent
}

// BudgetProgress returns the used percentage of a budget, capped at 100.
// A non-positive limit yields 0 rather than a division by zero; raw
// overspend is still derivable from spent - limit.
func BudgetProgress(spent, limit Money) float64 {
	if limit.Cents <= 0 {
		return 0
	}
	pct := spent.Float() / limit.Float() * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// BudgetSeverity bands a raw (uncapped) usage percentage. 80 is still
// normal, 100 is still warning.
func BudgetSeverity(pct float64) Severity {
	switch {
	case pct > 100:
		return SeverityCritical
	case pct > 80:
		return SeverityWarning
	default:
		return SeverityNormal
	}
}

// GoalProgress returns the saved percentage of a goal, capped at 100.
func GoalProgress(saved, target Money) float64 {
	if target.Cents <= 0 {
		return 0
	}
	pct := saved.Float() / target.Float() * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// ExpenseDistribution groups expense transactions by category. Categories
// keep the order of their first occurrence in the ledger, which pins
// chart color assignment across renders.
func ExpenseDistribution(ledger []Transaction) []CategoryAmount {
	index := make(map[string]int)
	var out []CategoryAmount
	for _, t := range ledger {
		if t.Type != Expense {
			continue
		}
		i, ok := index[t.Category]
		if !ok {
			i = len(out)
			index[t.Category] = i
			out = append(out, CategoryAmount{Category: t.Category})
		}
		out[i].Amount = out[i].Amount.Add(t.Amount)
	}
	return out
}

// MonthlySeries buckets all transactions by year-month, ascending.
func MonthlySeries(ledger []Transaction) []MonthFlow {
	buckets := make(map[string]*MonthFlow)
	for _, t := range ledger {
		month := t.Date.Month()
		b, ok := buckets[month]
		if !ok {
			b = &MonthFlow{Month: month}
			buckets[month] = b
		}
		switch t.Type {
		case Income:
			b.Income = b.Income.Add(t.Amount)
		case Expense:
			b.Expense = b.Expense.Add(t.Amount)
		}
	}
	months := make([]string, 0, len(buckets))
	for m := range buckets {
		months = append(months, m)
	}
	sort.Strings(months)
	out := make([]MonthFlow, 0, len(months))
	for _, m := range months {
		out = append(out, *buckets[m])
	}
	return out
}

// DailyExpenseSeries buckets expense transactions by exact date, ascending.
func DailyExpenseSeries(ledger []Transaction) []DayAmount {
	buckets := make(map[string]Money)
	for _, t := range ledger {
		if t.Type != Expense {
			continue
		}
		day := t.Date.String()
		buckets[day] = buckets[day].Add(t.Amount)
	}
	days := make([]string, 0, len(buckets))
	for d := range buckets {
		days = append(days, d)
	}
	sort.Strings(days)
	out := make([]DayAmount, 0, len(days))
	for _, d := range days {
		out = append(out, DayAmount{Date: d, Amount: buckets[d]})
	}
	return out
}

// SortedByDateDesc returns a copy of the ledger ordered most recent
// first. Ties keep their original relative order; there is no secondary
// key.
func SortedByDateDesc(ledger []Transaction) []Transaction {
	out := append([]Transaction(nil), ledger...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date.Time)
	})
	return out
}
