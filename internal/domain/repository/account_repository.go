// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"lobby/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrAccountNotFound is returned when no account matches the lookup key.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateEmail is returned by Create when the email's unique index rejects the insert.
	ErrDuplicateEmail = errors.New("account email already exists")
)

// AccountRepository defines the persistence operations for accounts.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its normalised email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create inserts the account, relying on the store's unique index on email.
	// It returns ErrDuplicateEmail when another account already owns the email,
	// which is what closes the lookup-then-insert race in registration.
	Create(ctx context.Context, account *entity.Account) error
}
