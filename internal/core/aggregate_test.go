package core

import "testing"

func sampleLedger() []Transaction {
	return []Transaction{
		{ID: "1", Type: Income, Amount: Money{Cents: 100000}, Category: "Salary", Date: NewDate(2024, 1, 5)},
		{ID: "2", Type: Expense, Amount: Money{Cents: 20000}, Category: "Food", Date: NewDate(2024, 1, 10)},
		{ID: "3", Type: Expense, Amount: Money{Cents: 5000}, Category: "Food", Date: NewDate(2024, 2, 1)},
	}
}

func TestTotals(t *testing.T) {
	s := Totals(sampleLedger())
	if s.Income.Cents != 100000 || s.Expenses.Cents != 25000 || s.Balance.Cents != 75000 {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestTotalsEmptyLedger(t *testing.T) {
	s := Totals(nil)
	if s.Income.Cents != 0 || s.Expenses.Cents != 0 || s.Balance.Cents != 0 {
		t.Fatalf("expected zeros, got %+v", s)
	}
}

func TestTotalsBalanceIdentity(t *testing.T) {
	ledgers := [][]Transaction{
		nil,
		sampleLedger(),
		{{Type: Expense, Amount: Money{Cents: 9999}, Date: NewDate(2024, 3, 3)}},
		{
			{Type: Income, Amount: Money{Cents: 1}, Date: NewDate(2024, 1, 1)},
			{Type: Income, Amount: Money{Cents: 2}, Date: NewDate(2024, 1, 2)},
			{Type: Expense, Amount: Money{Cents: 7}, Date: NewDate(2024, 1, 3)},
		},
	}
	for i, ledger := range ledgers {
		s := Totals(ledger)
		if s.Balance.Cents != s.Income.Cents-s.Expenses.Cents {
			t.Fatalf("ledger %d: balance %d != income %d - expenses %d",
				i, s.Balance.Cents, s.Income.Cents, s.Expenses.Cents)
		}
	}
}

func TestBudgetSpend(t *testing.T) {
	ledger := sampleLedger()
	if got := BudgetSpend(ledger, "Food"); got.Cents != 25000 {
		t.Fatalf("Food spend expected 25000, got %d", got.Cents)
	}
	if got := BudgetSpend(ledger, "Travel"); got.Cents != 0 {
		t.Fatalf("Travel spend expected 0, got %d", got.Cents)
	}
	// Case-sensitive exact match
	if got := BudgetSpend(ledger, "food"); got.Cents != 0 {
		t.Fatalf("lowercase food expected 0, got %d", got.Cents)
	}
}

func TestBudgetSpendIgnoresOtherTypes(t *testing.T) {
	ledger := sampleLedger()
	before := BudgetSpend(ledger, "Food")

	// Income in the budget's category must not count as spend.
	ledger = append(ledger, Transaction{
		ID: "4", Type: Income, Amount: Money{Cents: 50000}, Category: "Food", Date: NewDate(2024, 2, 2),
	})
	if got := BudgetSpend(ledger, "Food"); got.Cents != before.Cents {
		t.Fatalf("income changed spend: %d -> %d", before.Cents, got.Cents)
	}
}

func TestBudgetProgress(t *testing.T) {
	cases := []struct {
		spent, limit int64
		want         float64
	}{
		{0, 10000, 0},
		{5000, 10000, 50},
		{10000, 10000, 100},
		{25000, 20000, 100}, // capped
		{5000, 0, 0},        // guard divide-by-zero
	}
	for _, tc := range cases {
		got := BudgetProgress(Money{Cents: tc.spent}, Money{Cents: tc.limit})
		if got != tc.want {
			t.Fatalf("progress(%d, %d) expected %v, got %v", tc.spent, tc.limit, tc.want, got)
		}
		if got < 0 || got > 100 {
			t.Fatalf("progress(%d, %d) out of range: %v", tc.spent, tc.limit, got)
		}
	}
}

func TestBudgetSeverity(t *testing.T) {
	cases := []struct {
		pct  float64
		want Severity
	}{
		{0, SeverityNormal},
		{80, SeverityNormal}, // boundary stays normal
		{80.1, SeverityWarning},
		{100, SeverityWarning}, // boundary stays warning
		{100.1, SeverityCritical},
		{125, SeverityCritical},
	}
	for _, tc := range cases {
		if got := BudgetSeverity(tc.pct); got != tc.want {
			t.Fatalf("severity(%v) expected %s, got %s", tc.pct, tc.want, got)
		}
	}
}

func TestOverspentBudgetScenario(t *testing.T) {
	// Budget of 200 with 250 spent: display caps at 100, band goes critical.
	spent := Money{Cents: 25000}
	limit := Money{Cents: 20000}
	if got := BudgetProgress(spent, limit); got != 100 {
		t.Fatalf("progress expected 100, got %v", got)
	}
	raw := spent.Float() / limit.Float() * 100
	if got := BudgetSeverity(raw); got != SeverityCritical {
		t.Fatalf("severity expected critical, got %s", got)
	}
}

func TestGoalProgress(t *testing.T) {
	if got := GoalProgress(Money{Cents: 15000}, Money{Cents: 50000}); got != 30 {
		t.Fatalf("expected 30, got %v", got)
	}
	if got := GoalProgress(Money{Cents: 60000}, Money{Cents: 50000}); got != 100 {
		t.Fatalf("expected cap at 100, got %v", got)
	}
	if got := GoalProgress(Money{Cents: 100}, Money{}); got != 0 {
		t.Fatalf("expected 0 for zero target, got %v", got)
	}
}

func TestExpenseDistribution(t *testing.T) {
	dist := ExpenseDistribution(sampleLedger())
	if len(dist) != 1 {
		t.Fatalf("expected one category, got %d", len(dist))
	}
	if dist[0].Category != "Food" || dist[0].Amount.Cents != 25000 {
		t.Fatalf("unexpected distribution: %+v", dist)
	}
}

func TestExpenseDistributionOrder(t *testing.T) {
	ledger := []Transaction{
		{Type: Expense, Amount: Money{Cents: 100}, Category: "Travel", Date: NewDate(2024, 1, 1)},
		{Type: Expense, Amount: Money{Cents: 200}, Category: "Food", Date: NewDate(2024, 1, 2)},
		{Type: Expense, Amount: Money{Cents: 300}, Category: "Travel", Date: NewDate(2024, 1, 3)},
	}
	dist := ExpenseDistribution(ledger)
	if len(dist) != 2 || dist[0].Category != "Travel" || dist[1].Category != "Food" {
		t.Fatalf("first-occurrence order not preserved: %+v", dist)
	}
	if dist[0].Amount.Cents != 400 {
		t.Fatalf("Travel expected 400, got %d", dist[0].Amount.Cents)
	}
}

func TestMonthlySeries(t *testing.T) {
	series := MonthlySeries(sampleLedger())
	want := []MonthFlow{
		{Month: "2024-01", Income: Money{Cents: 100000}, Expense: Money{Cents: 20000}},
		{Month: "2024-02", Income: Money{Cents: 0}, Expense: Money{Cents: 5000}},
	}
	if len(series) != len(want) {
		t.Fatalf("expected %d buckets, got %d", len(want), len(series))
	}
	for i := range want {
		if series[i] != want[i] {
			t.Fatalf("bucket %d expected %+v, got %+v", i, want[i], series[i])
		}
	}
}

func TestDailyExpenseSeries(t *testing.T) {
	ledger := append(sampleLedger(), Transaction{
		ID: "4", Type: Expense, Amount: Money{Cents: 1000}, Category: "Food", Date: NewDate(2024, 1, 10),
	})
	series := DailyExpenseSeries(ledger)
	want := []DayAmount{
		{Date: "2024-01-10", Amount: Money{Cents: 21000}},
		{Date: "2024-02-01", Amount: Money{Cents: 5000}},
	}
	if len(series) != len(want) {
		t.Fatalf("expected %d days, got %d", len(want), len(series))
	}
	for i := range want {
		if series[i] != want[i] {
			t.Fatalf("day %d expected %+v, got %+v", i, want[i], series[i])
		}
	}
}

func TestSortedByDateDesc(t *testing.T) {
	ledger := []Transaction{
		{ID: "a", Type: Expense, Amount: Money{Cents: 1}, Date: NewDate(2024, 1, 1)},
		{ID: "b", Type: Expense, Amount: Money{Cents: 2}, Date: NewDate(2024, 3, 1)},
		{ID: "c", Type: Expense, Amount: Money{Cents: 3}, Date: NewDate(2024, 3, 1)},
		{ID: "d", Type: Expense, Amount: Money{Cents: 4}, Date: NewDate(2024, 2, 1)},
	}
	sorted := SortedByDateDesc(ledger)

	gotIDs := make([]string, len(sorted))
	for i, tx := range sorted {
		gotIDs[i] = tx.ID
	}
	// b and c tie on date and keep their relative order.
	want := []string{"b", "c", "d", "a"}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, gotIDs)
		}
	}

	// Input slice untouched.
	if ledger[0].ID != "a" {
		t.Fatalf("input mutated: %+v", ledger)
	}
}
