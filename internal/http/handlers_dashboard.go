package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"trackpense/internal/core"
	applog "trackpense/internal/log"
)

var expenseSchema = Schema{
	{Name: "amount", Required: true, Parse: parseAmount},
	{Name: "category", Required: true},
	{Name: "date", Required: true, Parse: parseStoredDate},
	{Name: "description", Required: false},
}

type expenseRow struct {
	DateDisplay string
	Category    string
	Description string
	Amount      string
}

type breakdownRow struct {
	Name    string
	Value   string
	Percent int
}

type dashboardData struct {
	User      core.User
	Flash     Flash
	Total     string
	Expenses  []expenseRow
	Breakdown []breakdownRow
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(r)
	if !ok {
		setFlash(w, "Please log in first", "warning")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.renderDashboard(w, r, user)
	case http.MethodPost:
		s.handleCreateExpense(w, r, user)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) renderDashboard(w http.ResponseWriter, r *http.Request, user core.User) {
	expenses, err := s.expenses.ListByOwner(r.Context(), user.Email)
	if err != nil {
		slog.ErrorContext(r.Context(), "Dashboard expense list failed",
			applog.FieldError, err, applog.FieldUserEmail, user.Email)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	summary := core.Summarize(expenses)

	data := dashboardData{
		User:  user,
		Total: summary.Total.String(),
	}
	data.Flash, _ = popFlash(w, r)
	for _, e := range expenses {
		data.Expenses = append(data.Expenses, expenseRow{
			DateDisplay: core.DisplayDate(e.Date),
			Category:    e.CategoryOrDefault(),
			Description: e.Description,
			Amount:      e.Amount.String(),
		})
	}
	for _, share := range summary.ByCategory {
		data.Breakdown = append(data.Breakdown, breakdownRow{
			Name:    share.Name,
			Value:   share.Amount.String(),
			Percent: share.Percent,
		})
	}

	s.render(w, r, "dashboard.html", data)
}

// handleCreateExpense validates a submission and persists it. Whatever the
// outcome, the response is a redirect back to the dashboard carrying a
// one-shot status message; a rejected submission stores nothing.
func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request, user core.User) {
	redirect := func() { http.Redirect(w, r, "/dashboard", http.StatusSeeOther) }

	if err := r.ParseForm(); err != nil {
		setFlash(w, "Invalid form submission", "danger")
		redirect()
		return
	}

	values, err := expenseSchema.Parse(r.PostForm)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrMissingField):
			setFlash(w, "Amount, category and date are required", "danger")
		case errors.Is(err, core.ErrInvalidAmount), errors.Is(err, core.ErrInvalidDate):
			setFlash(w, "Invalid amount or date format", "danger")
		default:
			setFlash(w, "Invalid form submission", "danger")
		}
		redirect()
		return
	}

	expense := core.Expense{
		OwnerEmail:  user.Email,
		Amount:      core.Money{Cents: values.Int64("amount")},
		Category:    values.String("category"),
		Description: values.String("description"),
		Date:        values.String("date"),
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := s.expenses.Create(r.Context(), expense); err != nil {
		slog.ErrorContext(r.Context(), "Expense create failed",
			applog.FieldError, err, applog.FieldUserEmail, user.Email)
		setFlash(w, "Could not save the expense", "danger")
		redirect()
		return
	}

	setFlash(w, "Expense added", "success")
	redirect()
}
