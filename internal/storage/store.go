// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/cinebook/internal/models"
)

var (
	// ErrNotFound is returned when an update or lookup matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a primary key or unique constraint.
	ErrDuplicate = errors.New("record already exists")
)

// CredentialStore persists local accounts.
type CredentialStore interface {
	// CreateCredential inserts a new account.
	// Returns ErrDuplicate if the email is already registered.
	CreateCredential(ctx context.Context, cred *models.Credential) error

	// GetCredential returns the account for an email, or nil and no error if absent.
	GetCredential(ctx context.Context, email string) (*models.Credential, error)

	// CredentialExists reports whether an account exists for the email.
	CredentialExists(ctx context.Context, email string) (bool, error)

	// UpdatePasswordHash replaces the stored hash. Returns ErrNotFound for unknown emails.
	UpdatePasswordHash(ctx context.Context, email, hash string) error

	// UpdateCredentialName replaces the display name. Returns ErrNotFound for unknown emails.
	UpdateCredentialName(ctx context.Context, email, name string) error
}

// ProfileCache holds the single cached profile of the signed-in user.
type ProfileCache interface {
	// SaveProfile replaces whatever is cached with exactly one row.
	SaveProfile(ctx context.Context, profile *models.UserProfile) error

	// GetProfile returns the cached profile, or nil and no error if the cache is empty.
	GetProfile(ctx context.Context) (*models.UserProfile, error)

	// ClearProfile empties the cache.
	ClearProfile(ctx context.Context) error

	// UpdateProfileName renames the cached profile if it belongs to email.
	// Reports whether a row was updated.
	UpdateProfileName(ctx context.Context, email, name string) (bool, error)
}

// TicketStore persists purchased tickets.
type TicketStore interface {
	// CreateTicket inserts one ticket. Returns ErrDuplicate on a booking ID collision.
	CreateTicket(ctx context.Context, ticket *models.Ticket) error

	// GetTicket retrieves a ticket by booking ID. Returns ErrNotFound if absent.
	GetTicket(ctx context.Context, bookingID string) (*models.Ticket, error)

	// ListTicketsByUser returns the user's tickets, most recent showtime first.
	ListTicketsByUser(ctx context.Context, email string) ([]models.Ticket, error)

	// DeleteTicketsByUser removes every ticket owned by email and returns the count.
	DeleteTicketsByUser(ctx context.Context, email string) (int64, error)
}

// Store is the full local data store.
// This abstraction allows the services to be tested against any backend
// without depending on the SQLite implementation.
type Store interface {
	CredentialStore
	ProfileCache
	TicketStore

	// Close releases any resources held by the store.
	Close() error
}
