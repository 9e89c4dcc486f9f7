package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/cinebook/internal/models"
)

// SaveProfile replaces the cached profile. The delete and the insert share
// one transaction, so the cache is never left empty by a failed write.
func (s *SQLiteStore) SaveProfile(ctx context.Context, profile *models.UserProfile) error {
	if profile == nil || profile.IDFromBackend == "" {
		return fmt.Errorf("invalid profile: missing id")
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM cached_user"); err != nil {
			return fmt.Errorf("failed to clear cached profile: %w", err)
		}
		_, err := tx.ExecContext(ctx,
			"INSERT INTO cached_user (id_from_backend, name, email) VALUES (?, ?, ?)",
			profile.IDFromBackend, nullable(profile.Name), nullable(profile.Email),
		)
		if err != nil {
			return fmt.Errorf("failed to insert cached profile: %w", err)
		}
		return nil
	})
}

// GetProfile returns the cached profile or nil when the cache is empty.
func (s *SQLiteStore) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	profile := &models.UserProfile{}
	var name, email sql.NullString

	err := s.db.QueryRowContext(ctx,
		"SELECT id_from_backend, name, email FROM cached_user LIMIT 1",
	).Scan(&profile.IDFromBackend, &name, &email)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cached profile: %w", err)
	}

	profile.Name = name.String
	profile.Email = email.String
	return profile, nil
}

// ClearProfile empties the profile cache.
func (s *SQLiteStore) ClearProfile(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM cached_user"); err != nil {
		return fmt.Errorf("failed to clear cached profile: %w", err)
	}
	return nil
}

// UpdateProfileName renames the cached profile when it belongs to email.
func (s *SQLiteStore) UpdateProfileName(ctx context.Context, email, name string) (bool, error) {
	result, err := s.db.ExecContext(ctx,
		"UPDATE cached_user SET name = ? WHERE email = ?",
		nullable(name), models.NormalizeEmail(email),
	)
	if err != nil {
		return false, fmt.Errorf("failed to update cached profile: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check affected rows: %w", err)
	}
	return rows > 0, nil
}
