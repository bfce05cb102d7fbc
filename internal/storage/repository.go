// Package storage implements the record store on SQLite. Records are only
// ever addressed by equality (email, owner) and every write is a single
// statement, so the database's own locking is the only concurrency control
// needed.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"trackpense/internal/core"
	applog "trackpense/internal/log"

	_ "modernc.org/sqlite"
)

type Repository struct {
	db  *sql.DB
	log *slog.Logger
}

func Open(dbPath string) (*Repository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repository{
		db:  db,
		log: slog.With(applog.FieldComponent, applog.ComponentStore),
	}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Ping reports whether the store is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// CreateUser inserts a new user record. The email unique index backs the
// pre-insert duplicate probe in the auth service, so a concurrent register
// with the same address still maps to core.ErrDuplicateUser.
func (r *Repository) CreateUser(ctx context.Context, u core.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (name, email, password, created_at) VALUES (?, ?, ?, ?)`,
		u.Name, u.Email, u.Password, u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return core.ErrDuplicateUser
		}
		return fmt.Errorf("create user: %w", err)
	}

	r.log.InfoContext(ctx, "User record created", applog.FieldUserEmail, u.Email)
	return nil
}

// UserByEmail looks up a user by normalized email. Returns
// core.ErrUserNotFound when no record matches.
func (r *Repository) UserByEmail(ctx context.Context, email string) (core.User, error) {
	var u core.User
	err := r.db.QueryRowContext(ctx,
		`SELECT name, email, password, created_at FROM users WHERE email = ?`,
		email).Scan(&u.Name, &u.Email, &u.Password, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return core.User{}, core.ErrUserNotFound
	}
	if err != nil {
		return core.User{}, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// UserByCredentials matches email and password exactly, mirroring the
// equality query the login flow performs against the record store.
func (r *Repository) UserByCredentials(ctx context.Context, email, password string) (core.User, error) {
	var u core.User
	err := r.db.QueryRowContext(ctx,
		`SELECT name, email, password, created_at FROM users WHERE email = ? AND password = ?`,
		email, password).Scan(&u.Name, &u.Email, &u.Password, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return core.User{}, core.ErrUserNotFound
	}
	if err != nil {
		return core.User{}, fmt.Errorf("get user by credentials: %w", err)
	}
	return u, nil
}

// CreateExpense inserts an expense record and returns its id.
func (r *Repository) CreateExpense(ctx context.Context, e core.Expense) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (owner_email, amount_cents, category, description, date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.OwnerEmail, e.Amount.Cents, e.Category, e.Description, e.Date, e.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("create expense: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("expense insert id: %w", err)
	}

	r.log.InfoContext(ctx, "Expense record created",
		applog.FieldExpenseID, id,
		applog.FieldUserEmail, e.OwnerEmail,
		applog.FieldAmount, e.Amount.Cents,
		applog.FieldCategory, e.Category,
		applog.FieldDate, e.Date)
	return id, nil
}

// ExpensesByOwner returns all expense records for one owner. Ordering is
// left to the aggregation step; the store promises nothing beyond equality
// filtering.
func (r *Repository) ExpensesByOwner(ctx context.Context, ownerEmail string) ([]core.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT owner_email, amount_cents, category, description, date, created_at
		 FROM expenses WHERE owner_email = ?`,
		ownerEmail)
	if err != nil {
		return nil, fmt.Errorf("list expenses for %s: %w", ownerEmail, err)
	}
	defer rows.Close()

	var expenses []core.Expense
	for rows.Next() {
		var e core.Expense
		if err := rows.Scan(&e.OwnerEmail, &e.Amount.Cents, &e.Category, &e.Description, &e.Date, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}
	return expenses, nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
