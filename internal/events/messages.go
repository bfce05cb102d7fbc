package events

import (
	"encoding/json"
	"time"

	"trackpense/internal/core"
)

// ExpenseCreated is the message published after an expense record is
// persisted. It carries enough for a downstream consumer without requiring
// a read back from the store.
type ExpenseCreated struct {
	OwnerEmail  string    `json:"owner_email"`
	AmountCents int64     `json:"amount_cents"`
	Category    string    `json:"category"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewExpenseCreated builds the message for a persisted expense.
func NewExpenseCreated(e core.Expense) ExpenseCreated {
	return ExpenseCreated{
		OwnerEmail:  e.OwnerEmail,
		AmountCents: e.Amount.Cents,
		Category:    e.CategoryOrDefault(),
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
	}
}

// ToJSON converts the message to JSON bytes
func (m ExpenseCreated) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ExpenseCreatedFromJSON creates a message from JSON bytes
func ExpenseCreatedFromJSON(data []byte) (ExpenseCreated, error) {
	var msg ExpenseCreated
	if err := json.Unmarshal(data, &msg); err != nil {
		return ExpenseCreated{}, err
	}
	return msg, nil
}
