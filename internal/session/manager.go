package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mmynk/cinebook/internal/models"
	"github.com/mmynk/cinebook/internal/storage"
)

// Key is the fixed vault key holding the signed-in email.
const Key = "local_user_session_email"

// KV is the secure key-value store used for the session marker.
type KV interface {
	Put(key, value string) error
	Get(key string) (string, error)
	Delete(key string) error
}

// Manager keeps the session marker and the profile cache in step.
type Manager struct {
	kv    KV
	cache storage.ProfileCache
}

// NewManager creates a session manager.
func NewManager(kv KV, cache storage.ProfileCache) *Manager {
	return &Manager{kv: kv, cache: cache}
}

// Store records email as the signed-in user.
func (m *Manager) Store(ctx context.Context, email string) error {
	email = models.NormalizeEmail(email)
	if email == "" {
		return fmt.Errorf("cannot store session: empty email")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := m.kv.Put(Key, email); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	slog.Debug("Session stored", "email", email)
	return nil
}

// Retrieve returns the signed-in email, or "" when there is no session.
func (m *Manager) Retrieve(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	email, err := m.kv.Get(Key)
	if errors.Is(err, ErrNoValue) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to retrieve session: %w", err)
	}
	return email, nil
}

// Clear removes the session marker and the cached profile. Both steps are
// attempted even if the first fails; there is no rollback.
func (m *Manager) Clear(ctx context.Context) error {
	var errs []error
	if err := m.kv.Delete(Key); err != nil {
		errs = append(errs, fmt.Errorf("failed to delete session: %w", err))
	}
	if err := m.cache.ClearProfile(ctx); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		slog.Error("Session clear incomplete", "error", err)
		return err
	}
	slog.Debug("Session cleared")
	return nil
}

// Restore runs the startup check. It returns the cached profile when the
// session marker and the cache agree, and nil (signed out) otherwise.
// A mismatch clears both stores.
func (m *Manager) Restore(ctx context.Context) (*models.UserProfile, error) {
	email, err := m.Retrieve(ctx)
	if err != nil {
		return nil, err
	}
	if email == "" {
		return nil, nil
	}

	profile, err := m.cache.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	if profile != nil && models.NormalizeEmail(profile.Email) == email {
		slog.Info("Session restored", "email", email)
		return profile, nil
	}

	cached := ""
	if profile != nil {
		cached = profile.Email
	}
	slog.Warn("Session and profile cache disagree, signing out",
		"session_email", email,
		"cached_email", cached,
	)
	if err := m.Clear(ctx); err != nil {
		return nil, err
	}
	return nil, nil
}
