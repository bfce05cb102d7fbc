package auth

import (
	"context"

	"trackpense/internal/core"
)

// UserStore is the slice of the record store the auth service needs.
// *storage.Repository implements it.
type UserStore interface {
	CreateUser(ctx context.Context, u core.User) error
	UserByEmail(ctx context.Context, email string) (core.User, error)
	UserByCredentials(ctx context.Context, email, password string) (core.User, error)
}
