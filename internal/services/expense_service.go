// Package services orchestrates expense operations across the record
// store and the optional event feed.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"trackpense/internal/cache"
	"trackpense/internal/core"
	"trackpense/internal/events"
	applog "trackpense/internal/log"
)

const (
	listCacheSize = 256
	listCacheTTL  = 30 * time.Second
)

// ExpenseStore is the slice of the record store the service needs.
// *storage.Repository implements it.
type ExpenseStore interface {
	CreateExpense(ctx context.Context, e core.Expense) (int64, error)
	ExpensesByOwner(ctx context.Context, ownerEmail string) ([]core.Expense, error)
}

// EventPublisher publishes expense lifecycle messages. *events.Publisher
// implements it; a nil publisher disables the feed.
type EventPublisher interface {
	PublishExpenseCreated(ctx context.Context, msg events.ExpenseCreated) error
}

type ExpenseService struct {
	store     ExpenseStore
	publisher EventPublisher
	lists     *cache.LRU[[]core.Expense]
}

func NewExpenseService(store ExpenseStore, publisher EventPublisher) *ExpenseService {
	return &ExpenseService{
		store:     store,
		publisher: publisher,
		lists:     cache.NewLRU[[]core.Expense](listCacheSize, listCacheTTL),
	}
}

// Create persists the expense and publishes a created event. Publishing is
// best effort: a broker failure is logged and never rolls back or fails
// the stored record.
func (s *ExpenseService) Create(ctx context.Context, e core.Expense) (int64, error) {
	if err := e.Validate(); err != nil {
		return 0, err
	}

	id, err := s.store.CreateExpense(ctx, e)
	if err != nil {
		return 0, fmt.Errorf("save expense: %w", err)
	}
	s.lists.Invalidate(e.OwnerEmail)

	if s.publisher == nil {
		slog.DebugContext(ctx, "Event publisher not configured, skipping expense-created message")
		return id, nil
	}
	if err := s.publisher.PublishExpenseCreated(ctx, events.NewExpenseCreated(e)); err != nil {
		slog.ErrorContext(ctx, "Failed to publish expense-created message",
			applog.FieldExpenseID, id, applog.FieldError, err)
	}
	return id, nil
}

// ListByOwner returns all expenses belonging to one user. Results are
// served from a short-lived per-owner cache; writes through Create
// invalidate the owner's entry so a user always sees their own additions.
// Callers receive their own copy, so reordering it (the dashboard
// aggregation sorts in place) cannot race with a concurrent request.
func (s *ExpenseService) ListByOwner(ctx context.Context, ownerEmail string) ([]core.Expense, error) {
	if cached, ok := s.lists.Get(ownerEmail); ok {
		return slices.Clone(cached), nil
	}

	expenses, err := s.store.ExpensesByOwner(ctx, ownerEmail)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	s.lists.Set(ownerEmail, slices.Clone(expenses))
	return expenses, nil
}
