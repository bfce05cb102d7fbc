package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"trackpense/internal/core"
)

func (e *testEnv) authedRequest(t *testing.T, method, path string, form url.Values) *http.Request {
	t.Helper()
	var req *http.Request
	if form != nil {
		req = postForm(path, form)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.AddCookie(e.sessionCookie(t, "alice@example.com"))
	return req
}

func TestDashboardRedirectsAnonymousVisitor(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/" {
		t.Fatalf("redirect = %q, want /", loc)
	}
	if flash := flashFromResponse(t, rr); flash.Message != "Please log in first" {
		t.Fatalf("flash = %q", flash.Message)
	}
}

func TestDashboardShowsTotalsAndBreakdown(t *testing.T) {
	env := newTestEnv(t)
	env.addUser("alice@example.com", "secret")
	env.expenses.expenses = []core.Expense{
		{OwnerEmail: "alice@example.com", Amount: core.Money{Cents: 1500}, Category: "Food", Date: "2024-03-01"},
		{OwnerEmail: "alice@example.com", Amount: core.Money{Cents: 500}, Category: "Fun", Date: "2024-03-05"},
		{OwnerEmail: "bob@example.com", Amount: core.Money{Cents: 9900}, Category: "Food", Date: "2024-03-02"},
	}

	rr := env.do(t, env.authedRequest(t, http.MethodGet, "/dashboard", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	for _, want := range []string{
		"20.00",      // total over alice's expenses only
		"05.03.2024", // display format
		"Food", "Fun",
		"75%", "25%",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("dashboard body missing %q", want)
		}
	}
	if strings.Contains(body, "99.00") {
		t.Error("dashboard leaks another user's expense")
	}
}

func TestDashboardDefaultsBlankCategory(t *testing.T) {
	env := newTestEnv(t)
	env.addUser("alice@example.com", "secret")
	env.expenses.expenses = []core.Expense{
		{OwnerEmail: "alice@example.com", Amount: core.Money{Cents: 100}, Category: "", Date: "2024-01-01"},
	}

	rr := env.do(t, env.authedRequest(t, http.MethodGet, "/dashboard", nil))

	if !strings.Contains(rr.Body.String(), core.DefaultCategory) {
		t.Fatalf("body does not show %q for blank category", core.DefaultCategory)
	}
}

func TestCreateExpenseStoresAndRedirects(t *testing.T) {
	env := newTestEnv(t)
	env.addUser("alice@example.com", "secret")

	rr := env.do(t, env.authedRequest(t, http.MethodPost, "/dashboard", url.Values{
		"amount":      {"12,34"},
		"category":    {"Food"},
		"date":        {"2024-03-05"},
		"description": {"groceries"},
	}))

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/dashboard" {
		t.Fatalf("redirect = %q, want /dashboard", loc)
	}
	if flash := flashFromResponse(t, rr); flash.Level != "success" {
		t.Fatalf("flash level = %q, want success", flash.Level)
	}

	if len(env.expenses.expenses) != 1 {
		t.Fatalf("stored %d expenses, want 1", len(env.expenses.expenses))
	}
	got := env.expenses.expenses[0]
	if got.OwnerEmail != "alice@example.com" {
		t.Errorf("owner = %q", got.OwnerEmail)
	}
	if got.Amount.Cents != 1234 {
		t.Errorf("amount = %d cents, want 1234", got.Amount.Cents)
	}
	if got.Date != "2024-03-05" {
		t.Errorf("date = %q", got.Date)
	}
}

func TestCreateExpenseRejectsMalformedAmount(t *testing.T) {
	env := newTestEnv(t)
	env.addUser("alice@example.com", "secret")

	rr := env.do(t, env.authedRequest(t, http.MethodPost, "/dashboard", url.Values{
		"amount":   {"abc"},
		"category": {"Food"},
		"date":     {"2024-03-05"},
	}))

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rr.Code)
	}
	if len(env.expenses.expenses) != 0 {
		t.Fatal("malformed amount was stored")
	}
	flash := flashFromResponse(t, rr)
	if flash.Level != "danger" || flash.Message != "Invalid amount or date format" {
		t.Fatalf("flash = %+v", flash)
	}
}

func TestCreateExpenseRejectsInvalidDate(t *testing.T) {
	env := newTestEnv(t)
	env.addUser("alice@example.com", "secret")

	rr := env.do(t, env.authedRequest(t, http.MethodPost, "/dashboard", url.Values{
		"amount":   {"10"},
		"category": {"Food"},
		"date":     {"2024-13-40"},
	}))

	if len(env.expenses.expenses) != 0 {
		t.Fatal("invalid date was stored")
	}
	if flash := flashFromResponse(t, rr); flash.Message != "Invalid amount or date format" {
		t.Fatalf("flash = %q", flash.Message)
	}
}

func TestCreateExpenseRequiresMandatoryFields(t *testing.T) {
	env := newTestEnv(t)
	env.addUser("alice@example.com", "secret")

	rr := env.do(t, env.authedRequest(t, http.MethodPost, "/dashboard", url.Values{
		"amount": {"10"},
		"date":   {"2024-03-05"},
	}))

	if len(env.expenses.expenses) != 0 {
		t.Fatal("incomplete submission was stored")
	}
	if flash := flashFromResponse(t, rr); flash.Message != "Amount, category and date are required" {
		t.Fatalf("flash = %q", flash.Message)
	}
}

func TestCreateExpenseSetsServerSideOwnerAndTimestamp(t *testing.T) {
	env := newTestEnv(t)
	env.addUser("alice@example.com", "secret")

	before := time.Now().UTC()
	env.do(t, env.authedRequest(t, http.MethodPost, "/dashboard", url.Values{
		"amount":   {"1"},
		"category": {"Misc"},
		"date":     {"2024-03-05"},
	}))

	got := env.expenses.expenses[0]
	if got.CreatedAt.Before(before) {
		t.Errorf("created_at %v predates the request", got.CreatedAt)
	}
}
