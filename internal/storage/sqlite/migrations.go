package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// schema creates the three local tables. It runs on every open.
// credentials must exist before tickets because of the foreign key.
const schema = `
CREATE TABLE IF NOT EXISTS credentials (
    email TEXT PRIMARY KEY NOT NULL,
    password_hash TEXT NOT NULL,
    name TEXT,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS cached_user (
    id_from_backend TEXT PRIMARY KEY NOT NULL,
    name TEXT,
    email TEXT
);

CREATE TABLE IF NOT EXISTS tickets (
    booking_id TEXT PRIMARY KEY NOT NULL,
    user_email TEXT NOT NULL,
    movie_title TEXT NOT NULL,
    poster_url TEXT NOT NULL DEFAULT '',
    seat_numbers_json TEXT NOT NULL,
    show_time TEXT NOT NULL,
    show_date TEXT NOT NULL,
    show_day TEXT NOT NULL DEFAULT '',
    created_at INTEGER NOT NULL,
    FOREIGN KEY (user_email) REFERENCES credentials(email) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_tickets_user_email ON tickets(user_email);
`

// schemaVersion is recorded in PRAGMA user_version after setup.
const schemaVersion = 1

// runMigrations executes the schema setup and stamps the schema version.
func runMigrations(ctx context.Context, db *sql.DB) error {
	var current int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&current); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if current > schemaVersion {
		return fmt.Errorf("database schema version %d is newer than supported version %d", current, schemaVersion)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return err
	}

	if current < schemaVersion {
		if _, err := db.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
			return fmt.Errorf("failed to record schema version: %w", err)
		}
	}
	return nil
}
