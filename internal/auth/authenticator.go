package auth

import (
	"context"

	"github.com/mmynk/cinebook/internal/models"
)

// Authenticator defines the local account operations.
// This abstraction lets the RPC layer be tested without a real store or hasher.
type Authenticator interface {
	// Register creates a new local account. The display name is optional.
	// Returns ErrDuplicateEmail if the normalized email is taken.
	Register(ctx context.Context, name, email, password string) (*models.Credential, error)

	// Login verifies the credentials and replaces the cached profile with the
	// signed-in user. Returns ErrWrongCredentials on unknown email or mismatch.
	Login(ctx context.Context, email, password string) (*models.UserProfile, error)

	// UpdatePassword changes the password after validating the request and
	// the old password.
	UpdatePassword(ctx context.Context, email, oldPassword, newPassword string) error

	// UpdateDisplayName renames the account and, best-effort, the cached profile.
	UpdateDisplayName(ctx context.Context, email, name string) (*NameUpdate, error)

	// ValidateCredential checks a new password against the change-password policy.
	ValidateCredential(credential string) error
}

// NameUpdate reports the outcome of a display-name change.
type NameUpdate struct {
	Name string

	// CacheUpdated is true when the cached profile belonged to this account
	// and was renamed too.
	CacheUpdated bool

	// CacheErr holds the profile-cache failure, if any. The account itself was
	// renamed; the caller decides whether to surface this.
	CacheErr error
}
