// Package store holds the identity store: credential records plus the
// per-user financial fixtures. Two backends exist, an immutable in-memory
// fixture set and a sqlite-backed one.
package store

import (
	"context"
	"errors"

	"demo-bank/internal/models"
)

// ErrNotFound is returned when no user matches the requested username.
var ErrNotFound = errors.New("user not found")

// Store is the identity store contract. Lookup is a case-sensitive
// exact match on username.
type Store interface {
	FindUser(ctx context.Context, username string) (*models.User, error)
}
