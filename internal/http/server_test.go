package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fintrack/internal/services"
	"fintrack/internal/storage"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	tracker := services.NewTracker(context.Background(), storage.New(storage.NewMemoryKV(), nil), nil)
	srv := NewServer(":0", tracker, nil)
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, bytes.NewReader([]byte(body)))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestTransactionLifecycle(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/transactions",
		`{"description":"salary","amount":1000,"type":"income","category":"Salary","date":"2024-01-05","paymentMethod":"bank"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create expected 201, got %d", resp.StatusCode)
	}
	created := decode[map[string]any](t, resp)
	id, _ := created["id"].(string)
	if id == "" {
		t.Fatalf("missing id in response: %v", created)
	}

	resp = doJSON(t, http.MethodGet, ts.URL+"/api/summary", "")
	summary := decode[map[string]any](t, resp)
	if summary["income"] != 1000.0 || summary["balance"] != 1000.0 {
		t.Fatalf("unexpected summary: %v", summary)
	}

	// Edit hands back a fresh id.
	resp = doJSON(t, http.MethodPut, ts.URL+"/api/transactions/"+id,
		`{"description":"salary","amount":1100,"type":"income","category":"Salary","date":"2024-01-05","paymentMethod":"bank"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("replace expected 200, got %d", resp.StatusCode)
	}
	replaced := decode[map[string]any](t, resp)
	if replaced["id"] == id {
		t.Fatalf("replace must assign a new id")
	}

	// Deleting the stale id is a benign no-op.
	resp = doJSON(t, http.MethodDelete, ts.URL+"/api/transactions/"+id, "")
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete expected 204, got %d", resp.StatusCode)
	}
}

func TestBudgetValidationOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/budgets", `{"category":"Food","limit":200}`)
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create expected 201, got %d", resp.StatusCode)
	}

	resp = doJSON(t, http.MethodPost, ts.URL+"/api/budgets", `{"category":"Food","limit":300}`)
	resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate category expected 409, got %d", resp.StatusCode)
	}

	resp = doJSON(t, http.MethodPost, ts.URL+"/api/budgets", `{"category":"Travel","limit":0}`)
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("zero limit expected 422, got %d", resp.StatusCode)
	}
}

func TestBudgetViewCarriesDerivedFields(t *testing.T) {
	ts := newTestServer(t)

	doJSON(t, http.MethodPost, ts.URL+"/api/budgets", `{"category":"Food","limit":200}`).Body.Close()
	doJSON(t, http.MethodPost, ts.URL+"/api/transactions",
		`{"description":"shop","amount":250,"type":"expense","category":"Food","date":"2024-01-10","paymentMethod":"card"}`).Body.Close()

	resp := doJSON(t, http.MethodGet, ts.URL+"/api/budgets", "")
	budgets := decode[[]map[string]any](t, resp)
	if len(budgets) != 1 {
		t.Fatalf("expected one budget, got %d", len(budgets))
	}
	b := budgets[0]
	if b["spent"] != 250.0 {
		t.Fatalf("spent expected 250, got %v", b["spent"])
	}
	if b["progress"] != 100.0 {
		t.Fatalf("progress expected capped 100, got %v", b["progress"])
	}
	if b["severity"] != "critical" {
		t.Fatalf("severity expected critical, got %v", b["severity"])
	}
}

func TestGoalContributionOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/goals", `{"name":"Trip","target":500,"saved":0}`)
	goal := decode[map[string]any](t, resp)
	id := goal["id"].(string)

	resp = doJSON(t, http.MethodPost, ts.URL+"/api/goals/"+id+"/contribute", `{"amount":150}`)
	updated := decode[map[string]any](t, resp)
	if updated["saved"] != 150.0 || updated["progress"] != 30.0 {
		t.Fatalf("unexpected goal after contribution: %v", updated)
	}

	resp = doJSON(t, http.MethodPost, ts.URL+"/api/goals/"+id+"/contribute", `{"amount":-10}`)
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("negative contribution expected 422, got %d", resp.StatusCode)
	}
}

func TestExportEndpoints(t *testing.T) {
	ts := newTestServer(t)
	doJSON(t, http.MethodPost, ts.URL+"/api/transactions",
		`{"description":"shop","amount":20,"type":"expense","category":"Food","date":"2024-01-10","paymentMethod":"card"}`).Body.Close()

	resp := doJSON(t, http.MethodGet, ts.URL+"/api/export/json", "")
	doc := decode[map[string]any](t, resp)
	for _, key := range []string{"transactions", "budgets", "goals"} {
		if _, ok := doc[key]; !ok {
			t.Fatalf("export missing %q: %v", key, doc)
		}
	}

	resp = doJSON(t, http.MethodGet, ts.URL+"/api/export/csv", "")
	defer resp.Body.Close()
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "ID,Description,Amount,Type,Category,Date,Payment Method") {
		t.Fatalf("unexpected csv header: %q", buf.String())
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, http.MethodPut, ts.URL+"/api/settings", `{"currency":"$","darkMode":true}`)
	settings := decode[map[string]any](t, resp)
	if settings["currency"] != "$" || settings["darkMode"] != true {
		t.Fatalf("unexpected settings: %v", settings)
	}
}
