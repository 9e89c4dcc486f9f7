package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mmynk/cinebook/internal/models"
	"github.com/mmynk/cinebook/internal/storage"
)

// MinPasswordLength is enforced when changing a password.
const MinPasswordLength = 6

// Ensure LocalAuthenticator implements Authenticator
var _ Authenticator = (*LocalAuthenticator)(nil)

// LocalAuthenticator authenticates against the on-device credentials table.
type LocalAuthenticator struct {
	creds  storage.CredentialStore
	cache  storage.ProfileCache
	hasher *Hasher
}

// NewLocalAuthenticator creates a new local authenticator.
func NewLocalAuthenticator(creds storage.CredentialStore, cache storage.ProfileCache, hasher *Hasher) *LocalAuthenticator {
	if hasher == nil {
		hasher = DefaultHasher()
	}
	return &LocalAuthenticator{
		creds:  creds,
		cache:  cache,
		hasher: hasher,
	}
}

// ValidateCredential checks if the new password meets the minimum length.
func (a *LocalAuthenticator) ValidateCredential(credential string) error {
	if len(credential) < MinPasswordLength {
		return fmt.Errorf("%w: new password must be at least %d characters", ErrValidation, MinPasswordLength)
	}
	return nil
}

// Register creates a new account with a hashed password.
func (a *LocalAuthenticator) Register(ctx context.Context, name, email, password string) (*models.Credential, error) {
	email = models.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	exists, err := a.creds.CredentialExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	cred := models.NewCredential(email, strings.TrimSpace(name), hash)
	if err := a.creds.CreateCredential(ctx, cred); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	slog.Info("Account registered", "email", email)
	return cred, nil
}

// Login verifies the email and password and caches the signed-in profile.
func (a *LocalAuthenticator) Login(ctx context.Context, email, password string) (*models.UserProfile, error) {
	email = models.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrWrongCredentials
	}

	cred, err := a.creds.GetCredential(ctx, email)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		slog.Debug("Login for unknown email", "email", email)
		return nil, ErrWrongCredentials
	}

	ok, needsRehash, err := a.hasher.Verify(cred.PasswordHash, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrWrongCredentials
	}

	if needsRehash {
		a.rehash(ctx, email, password)
	}

	profile := cred.Profile()
	if err := a.cache.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}

	slog.Info("Login succeeded", "email", email)
	return profile, nil
}

// rehash upgrades a legacy or stale hash. Failure keeps the old hash, which
// still verifies.
func (a *LocalAuthenticator) rehash(ctx context.Context, email, password string) {
	hash, err := a.hasher.Hash(password)
	if err == nil {
		err = a.creds.UpdatePasswordHash(ctx, email, hash)
	}
	if err != nil {
		slog.Warn("Password rehash failed", "email", email, "error", err)
		return
	}
	slog.Info("Password hash upgraded", "email", email)
}

// UpdatePassword validates in a fixed order and writes only when every
// check passes.
func (a *LocalAuthenticator) UpdatePassword(ctx context.Context, email, oldPassword, newPassword string) error {
	email = models.NormalizeEmail(email)
	if email == "" || oldPassword == "" || newPassword == "" {
		return fmt.Errorf("%w: all fields are required", ErrValidation)
	}
	if err := a.ValidateCredential(newPassword); err != nil {
		return err
	}
	if newPassword == oldPassword {
		return fmt.Errorf("%w: new password must differ from the old one", ErrValidation)
	}

	cred, err := a.creds.GetCredential(ctx, email)
	if err != nil {
		return err
	}
	if cred == nil {
		return ErrAccountNotFound
	}

	ok, _, err := a.hasher.Verify(cred.PasswordHash, oldPassword)
	if err != nil {
		return err
	}
	if !ok {
		return ErrWrongOldPassword
	}

	hash, err := a.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := a.creds.UpdatePasswordHash(ctx, email, hash); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrAccountNotFound
		}
		return err
	}

	slog.Info("Password changed", "email", email)
	return nil
}

// UpdateDisplayName renames the account, then the cached profile if it is
// this account's. A blank name clears it.
func (a *LocalAuthenticator) UpdateDisplayName(ctx context.Context, email, name string) (*NameUpdate, error) {
	email = models.NormalizeEmail(email)
	name = strings.TrimSpace(name)
	if email == "" {
		return nil, ErrAccountNotFound
	}

	if err := a.creds.UpdateCredentialName(ctx, email, name); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	update := &NameUpdate{Name: name}
	update.CacheUpdated, update.CacheErr = a.cache.UpdateProfileName(ctx, email, name)
	if update.CacheErr != nil {
		slog.Warn("Cached profile rename failed", "email", email, "error", update.CacheErr)
	}

	slog.Info("Display name changed", "email", email)
	return update, nil
}
