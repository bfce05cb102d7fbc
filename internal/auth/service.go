// Package auth resolves sessions to users and validates credentials.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"trackpense/internal/core"
	applog "trackpense/internal/log"
)

// Service implements registration, login and session resolution against a
// user store.
type Service struct {
	users UserStore
}

func NewService(users UserStore) *Service {
	return &Service{users: users}
}

// Register creates a new user account. Fields are trimmed; any blank field
// is a core.ErrMissingField, an already-registered email (compared
// case-insensitively) is a core.ErrDuplicateUser.
func (s *Service) Register(ctx context.Context, name, email, password string) (core.User, error) {
	u := core.User{
		Name:      strings.TrimSpace(name),
		Email:     core.NormalizeEmail(email),
		Password:  strings.TrimSpace(password),
		CreatedAt: time.Now().UTC(),
	}
	if err := u.Validate(); err != nil {
		return core.User{}, err
	}

	// Probe first so the common duplicate case never reaches the insert;
	// the unique index catches the register/register race.
	_, err := s.users.UserByEmail(ctx, u.Email)
	switch {
	case err == nil:
		return core.User{}, core.ErrDuplicateUser
	case !errors.Is(err, core.ErrUserNotFound):
		return core.User{}, fmt.Errorf("check existing user: %w", err)
	}

	if err := s.users.CreateUser(ctx, u); err != nil {
		if errors.Is(err, core.ErrDuplicateUser) {
			return core.User{}, core.ErrDuplicateUser
		}
		return core.User{}, fmt.Errorf("register user: %w", err)
	}

	slog.InfoContext(ctx, "User registered",
		applog.FieldComponent, applog.ComponentAuth, applog.FieldUserEmail, u.Email)
	return u, nil
}

// Login validates credentials by exact match on email and password. A miss
// on either is a core.ErrInvalidCredentials; blank input is a
// core.ErrMissingField.
func (s *Service) Login(ctx context.Context, email, password string) (core.User, error) {
	email = core.NormalizeEmail(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return core.User{}, core.ErrMissingField
	}

	u, err := s.users.UserByCredentials(ctx, email, password)
	if errors.Is(err, core.ErrUserNotFound) {
		return core.User{}, core.ErrInvalidCredentials
	}
	if err != nil {
		return core.User{}, fmt.Errorf("login: %w", err)
	}

	slog.InfoContext(ctx, "User logged in",
		applog.FieldComponent, applog.ComponentAuth, applog.FieldUserEmail, u.Email)
	return u, nil
}

// UserByEmail resolves a session-bound email back to its user record. A
// stale binding (user no longer exists) reports no user rather than an
// error.
func (s *Service) UserByEmail(ctx context.Context, email string) (core.User, bool, error) {
	u, err := s.users.UserByEmail(ctx, email)
	if errors.Is(err, core.ErrUserNotFound) {
		return core.User{}, false, nil
	}
	if err != nil {
		return core.User{}, false, fmt.Errorf("resolve session user: %w", err)
	}
	return u, true, nil
}
