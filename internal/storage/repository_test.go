package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"trackpense/internal/core"
)

func openTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestUserRoundTrip(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	u := core.User{Name: "Alice", Email: "alice@example.com", Password: "secret", CreatedAt: time.Now().UTC()}
	if err := repo.CreateUser(ctx, u); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	got, err := repo.UserByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("UserByEmail: %v", err)
	}
	if got.Name != u.Name || got.Email != u.Email || got.Password != u.Password {
		t.Fatalf("UserByEmail = %+v, want %+v", got, u)
	}

	if _, err := repo.UserByEmail(ctx, "nobody@example.com"); !errors.Is(err, core.ErrUserNotFound) {
		t.Fatalf("missing user error = %v, want ErrUserNotFound", err)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	u := core.User{Name: "Alice", Email: "alice@example.com", Password: "secret", CreatedAt: time.Now().UTC()}
	if err := repo.CreateUser(ctx, u); err != nil {
		t.Fatalf("first CreateUser: %v", err)
	}

	u.Name = "Other Alice"
	if err := repo.CreateUser(ctx, u); !errors.Is(err, core.ErrDuplicateUser) {
		t.Fatalf("second CreateUser error = %v, want ErrDuplicateUser", err)
	}
}

func TestUserByCredentials(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	u := core.User{Name: "Alice", Email: "alice@example.com", Password: "secret", CreatedAt: time.Now().UTC()}
	if err := repo.CreateUser(ctx, u); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	if _, err := repo.UserByCredentials(ctx, "alice@example.com", "secret"); err != nil {
		t.Fatalf("matching credentials: %v", err)
	}
	if _, err := repo.UserByCredentials(ctx, "alice@example.com", "wrong"); !errors.Is(err, core.ErrUserNotFound) {
		t.Fatalf("wrong password error = %v, want ErrUserNotFound", err)
	}
}

func TestExpensesByOwner(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	for _, e := range []core.Expense{
		{OwnerEmail: "alice@example.com", Amount: core.Money{Cents: 1000}, Category: "Food", Date: "2024-01-10", CreatedAt: time.Now().UTC()},
		{OwnerEmail: "alice@example.com", Amount: core.Money{Cents: 500}, Category: "Fun", Description: "cinema", Date: "2023-12-31", CreatedAt: time.Now().UTC()},
		{OwnerEmail: "bob@example.com", Amount: core.Money{Cents: 900}, Category: "Food", Date: "2024-01-05", CreatedAt: time.Now().UTC()},
	} {
		if _, err := repo.CreateExpense(ctx, e); err != nil {
			t.Fatalf("CreateExpense: %v", err)
		}
	}

	got, err := repo.ExpensesByOwner(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("ExpensesByOwner: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expenses = %d, want 2", len(got))
	}
	for _, e := range got {
		if e.OwnerEmail != "alice@example.com" {
			t.Errorf("expense owner = %q, want alice@example.com", e.OwnerEmail)
		}
	}

	none, err := repo.ExpensesByOwner(ctx, "nobody@example.com")
	if err != nil {
		t.Fatalf("ExpensesByOwner (empty): %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expenses for unknown owner = %d, want 0", len(none))
	}
}
