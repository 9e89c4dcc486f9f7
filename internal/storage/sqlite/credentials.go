package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mmynk/cinebook/internal/models"
	"github.com/mmynk/cinebook/internal/storage"
)

// CreateCredential inserts a new account.
func (s *SQLiteStore) CreateCredential(ctx context.Context, cred *models.Credential) error {
	query := `
		INSERT INTO credentials (email, password_hash, name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		models.NormalizeEmail(cred.Email),
		cred.PasswordHash,
		nullable(cred.Name),
		cred.CreatedAt,
		cred.UpdatedAt,
	)
	if isConstraintViolation(err) {
		return fmt.Errorf("credential %s: %w", cred.Email, storage.ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("failed to create credential: %w", err)
	}

	return nil
}

// GetCredential retrieves an account by email.
func (s *SQLiteStore) GetCredential(ctx context.Context, email string) (*models.Credential, error) {
	query := `
		SELECT email, password_hash, name, created_at, updated_at
		FROM credentials
		WHERE email = ?
	`

	cred := &models.Credential{}
	var name sql.NullString
	err := s.db.QueryRowContext(ctx, query, models.NormalizeEmail(email)).Scan(
		&cred.Email,
		&cred.PasswordHash,
		&name,
		&cred.CreatedAt,
		&cred.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil // Credential not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get credential: %w", err)
	}

	cred.Name = name.String
	return cred, nil
}

// CredentialExists reports whether an account exists for email.
func (s *SQLiteStore) CredentialExists(ctx context.Context, email string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		"SELECT 1 FROM credentials WHERE email = ?",
		models.NormalizeEmail(email),
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check credential: %w", err)
	}
	return true, nil
}

// UpdatePasswordHash replaces the stored password hash.
func (s *SQLiteStore) UpdatePasswordHash(ctx context.Context, email, hash string) error {
	return s.updateCredential(ctx,
		"UPDATE credentials SET password_hash = ?, updated_at = ? WHERE email = ?",
		email, hash,
	)
}

// UpdateCredentialName replaces the display name.
func (s *SQLiteStore) UpdateCredentialName(ctx context.Context, email, name string) error {
	return s.updateCredential(ctx,
		"UPDATE credentials SET name = ?, updated_at = ? WHERE email = ?",
		email, nullable(name),
	)
}

func (s *SQLiteStore) updateCredential(ctx context.Context, query, email string, value interface{}) error {
	result, err := s.db.ExecContext(ctx, query, value, time.Now().Unix(), models.NormalizeEmail(email))
	if err != nil {
		return fmt.Errorf("failed to update credential: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("credential %s: %w", email, storage.ErrNotFound)
	}
	return nil
}
