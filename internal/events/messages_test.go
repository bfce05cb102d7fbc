package events

import (
	"testing"
	"time"

	"trackpense/internal/core"
)

func TestNewExpenseCreated(t *testing.T) {
	created := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	e := core.Expense{
		OwnerEmail: "alice@example.com",
		Amount:     core.Money{Cents: 1234},
		Category:   "Food",
		Date:       "2024-03-05",
		CreatedAt:  created,
	}

	msg := NewExpenseCreated(e)

	if msg.OwnerEmail != "alice@example.com" || msg.AmountCents != 1234 || msg.Category != "Food" || msg.Date != "2024-03-05" {
		t.Fatalf("NewExpenseCreated = %+v", msg)
	}
	if !msg.CreatedAt.Equal(created) {
		t.Fatalf("CreatedAt = %v, want %v", msg.CreatedAt, created)
	}
}

func TestNewExpenseCreatedBlankCategory(t *testing.T) {
	msg := NewExpenseCreated(core.Expense{OwnerEmail: "a@b.c", Date: "2024-01-01"})
	if msg.Category != core.DefaultCategory {
		t.Fatalf("Category = %q, want %q", msg.Category, core.DefaultCategory)
	}
}

func TestExpenseCreatedJSONRoundTrip(t *testing.T) {
	msg := NewExpenseCreated(core.Expense{
		OwnerEmail: "alice@example.com",
		Amount:     core.Money{Cents: 500},
		Category:   "Fun",
		Date:       "2024-01-10",
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
	})

	data, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	got, err := ExpenseCreatedFromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if got != msg {
		t.Fatalf("round trip = %+v, want %+v", got, msg)
	}
}
