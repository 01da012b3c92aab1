package http

import (
	"net/http"
	"time"

	"fintrack/internal/core"
	"fintrack/internal/export"
	"fintrack/internal/services"
)

type transactionRequest struct {
	Description   string      `json:"description"`
	Amount        core.Money  `json:"amount"`
	Type          core.TxType `json:"type"`
	Category      string      `json:"category"`
	Date          core.Date   `json:"date"`
	PaymentMethod string      `json:"paymentMethod"`
}

func (req transactionRequest) input() services.TransactionInput {
	return services.TransactionInput{
		Description:   req.Description,
		Amount:        req.Amount,
		Type:          req.Type,
		Category:      req.Category,
		Date:          req.Date,
		PaymentMethod: req.PaymentMethod,
	}
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	txs := s.tracker.Transactions()
	if txs == nil {
		txs = []core.Transaction{}
	}
	respondJSON(w, http.StatusOK, txs)
}

func (s *Server) handleAddTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	tx, err := s.tracker.AddTransaction(r.Context(), req.input())
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, tx)
}

func (s *Server) handleReplaceTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	tx, found, err := s.tracker.ReplaceTransaction(r.Context(), r.PathValue("id"), req.input())
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	if !found {
		// The record may already be gone; that is not an error.
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respondJSON(w, http.StatusOK, tx)
}

func (s *Server) handleRemoveTransaction(w http.ResponseWriter, r *http.Request) {
	if err := s.tracker.RemoveTransaction(r.Context(), r.PathValue("id")); err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type budgetRequest struct {
	Category string     `json:"category"`
	Limit    core.Money `json:"limit"`
}

// budgetView is the presentation shape of a budget: the persisted
// fields plus the derived spend, progress and severity band.
type budgetView struct {
	ID       string        `json:"id"`
	Category string        `json:"category"`
	Limit    core.Money    `json:"limit"`
	Spent    core.Money    `json:"spent"`
	Progress float64       `json:"progress"`
	Severity core.Severity `json:"severity"`
}

func newBudgetView(b core.Budget) budgetView {
	raw := 0.0
	if b.Limit.Cents > 0 {
		raw = b.Spent.Float() / b.Limit.Float() * 100
	}
	return budgetView{
		ID:       b.ID,
		Category: b.Category,
		Limit:    b.Limit,
		Spent:    b.Spent,
		Progress: core.BudgetProgress(b.Spent, b.Limit),
		Severity: core.BudgetSeverity(raw),
	}
}

func (s *Server) handleListBudgets(w http.ResponseWriter, r *http.Request) {
	budgets := s.tracker.Budgets()
	views := make([]budgetView, len(budgets))
	for i, b := range budgets {
		views[i] = newBudgetView(b)
	}
	respondJSON(w, http.StatusOK, views)
}

func (s *Server) handleCreateBudget(w http.ResponseWriter, r *http.Request) {
	var req budgetRequest
	if !decodeBody(w, r, &req) {
		return
	}
	b, err := s.tracker.CreateBudget(r.Context(), req.Category, req.Limit)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, newBudgetView(b))
}

func (s *Server) handleUpdateBudget(w http.ResponseWriter, r *http.Request) {
	var req budgetRequest
	if !decodeBody(w, r, &req) {
		return
	}
	b, found, err := s.tracker.UpdateBudget(r.Context(), r.PathValue("id"), req.Category, req.Limit)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	if !found {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respondJSON(w, http.StatusOK, newBudgetView(b))
}

func (s *Server) handleDeleteBudget(w http.ResponseWriter, r *http.Request) {
	if err := s.tracker.DeleteBudget(r.Context(), r.PathValue("id")); err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type goalRequest struct {
	Name   string     `json:"name"`
	Target core.Money `json:"target"`
	Saved  core.Money `json:"saved"`
}

type goalView struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Target   core.Money `json:"target"`
	Saved    core.Money `json:"saved"`
	Progress float64    `json:"progress"`
}

func newGoalView(g core.Goal) goalView {
	return goalView{
		ID:       g.ID,
		Name:     g.Name,
		Target:   g.Target,
		Saved:    g.Saved,
		Progress: core.GoalProgress(g.Saved, g.Target),
	}
}

func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	goals := s.tracker.Goals()
	views := make([]goalView, len(goals))
	for i, g := range goals {
		views[i] = newGoalView(g)
	}
	respondJSON(w, http.StatusOK, views)
}

func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if !decodeBody(w, r, &req) {
		return
	}
	g, err := s.tracker.CreateGoal(r.Context(), req.Name, req.Target, req.Saved)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, newGoalView(g))
}

func (s *Server) handleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if !decodeBody(w, r, &req) {
		return
	}
	g, found, err := s.tracker.UpdateGoal(r.Context(), r.PathValue("id"), req.Name, req.Target, req.Saved)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	if !found {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respondJSON(w, http.StatusOK, newGoalView(g))
}

func (s *Server) handleContribute(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount core.Money `json:"amount"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	g, found, err := s.tracker.Contribute(r.Context(), r.PathValue("id"), req.Amount)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	if !found {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respondJSON(w, http.StatusOK, newGoalView(g))
}

func (s *Server) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	if err := s.tracker.DeleteGoal(r.Context(), r.PathValue("id")); err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.tracker.Summary())
}

func (s *Server) handleExpenseChart(w http.ResponseWriter, r *http.Request) {
	dist := s.tracker.ExpenseDistribution()
	if dist == nil {
		dist = []core.CategoryAmount{}
	}
	respondJSON(w, http.StatusOK, dist)
}

func (s *Server) handleMonthlyChart(w http.ResponseWriter, r *http.Request) {
	series := s.tracker.MonthlySeries()
	if series == nil {
		series = []core.MonthFlow{}
	}
	respondJSON(w, http.StatusOK, series)
}

func (s *Server) handleDailyChart(w http.ResponseWriter, r *http.Request) {
	series := s.tracker.DailyExpenseSeries()
	if series == nil {
		series = []core.DayAmount{}
	}
	respondJSON(w, http.StatusOK, series)
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.tracker.Settings())
}

func (s *Server) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	var req core.Settings
	if !decodeBody(w, r, &req) {
		return
	}
	if err := s.tracker.SetCurrency(r.Context(), req.Currency); err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	if err := s.tracker.SetDarkMode(r.Context(), req.DarkMode); err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, s.tracker.Settings())
}

func (s *Server) handleExportJSON(w http.ResponseWriter, r *http.Request) {
	data, err := export.JSON(s.tracker.Snapshot())
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="finance-data.json"`)
	_, _ = w.Write(data)
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	data, err := export.CSV(s.tracker.Transactions())
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="transactions.csv"`)
	_, _ = w.Write(data)
}

func (s *Server) handleExportReport(w http.ResponseWriter, r *http.Request) {
	data := export.Report(s.tracker.Snapshot(), time.Now())
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="finance-report.txt"`)
	_, _ = w.Write(data)
}
