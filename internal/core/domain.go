package core

import (
	"errors"
	"strings"
	"time"
)

// DefaultCategory groups expenses whose stored category is blank.
const DefaultCategory = "Other"

type (
	Money struct {
		Cents int64
	}

	// User is an account record. Passwords are stored and compared in
	// plaintext for parity with the data this system inherits; see
	// DESIGN.md before relying on this in any hardened deployment.
	User struct {
		Name      string
		Email     string // unique, lowercased
		Password  string
		CreatedAt time.Time
	}

	Expense struct {
		OwnerEmail  string
		Amount      Money
		Category    string
		Description string
		Date        string // stored as "YYYY-MM-DD", string-sortable
		CreatedAt   time.Time
	}
)

var (
	ErrMissingField       = errors.New("missing required field")
	ErrDuplicateUser      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidDate        = errors.New("invalid date")
)

// NormalizeEmail trims surrounding whitespace and lowercases the address so
// equality lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return ErrMissingField
	}
	if strings.TrimSpace(u.Email) == "" {
		return ErrMissingField
	}
	if strings.TrimSpace(u.Password) == "" {
		return ErrMissingField
	}
	return nil
}

func (e Expense) Validate() error {
	if strings.TrimSpace(e.OwnerEmail) == "" {
		return ErrMissingField
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrMissingField
	}
	if err := ValidateStoredDate(e.Date); err != nil {
		return err
	}
	return nil
}

// CategoryOrDefault returns the expense category, falling back to
// DefaultCategory when the stored value is blank.
func (e Expense) CategoryOrDefault() string {
	if e.Category == "" {
		return DefaultCategory
	}
	return e.Category
}
