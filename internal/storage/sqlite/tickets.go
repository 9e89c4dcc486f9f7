package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mmynk/cinebook/internal/models"
	"github.com/mmynk/cinebook/internal/storage"
)

const ticketColumns = `booking_id, user_email, movie_title, poster_url, seat_numbers_json,
	show_time, show_date, show_day, created_at`

// CreateTicket persists one ticket.
func (s *SQLiteStore) CreateTicket(ctx context.Context, ticket *models.Ticket) error {
	if ticket.CreatedAt == 0 {
		ticket.CreatedAt = time.Now().Unix()
	}

	seats, err := json.Marshal(ticket.SeatNumbers)
	if err != nil {
		return fmt.Errorf("failed to encode seat numbers: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO tickets (`+ticketColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ticket.BookingID,
		models.NormalizeEmail(ticket.UserEmail),
		ticket.MovieTitle,
		ticket.PosterURL,
		string(seats),
		ticket.ShowTime,
		ticket.ShowDate,
		ticket.ShowDay,
		ticket.CreatedAt,
	)
	if isConstraintViolation(err) {
		return fmt.Errorf("ticket %s: %w", ticket.BookingID, storage.ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("failed to insert ticket: %w", err)
	}

	return nil
}

// GetTicket retrieves a ticket by booking ID.
func (s *SQLiteStore) GetTicket(ctx context.Context, bookingID string) (*models.Ticket, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+ticketColumns+` FROM tickets WHERE booking_id = ?`,
		bookingID,
	)

	ticket, err := scanTicket(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("ticket %s: %w", bookingID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return ticket, nil
}

// ListTicketsByUser returns the user's tickets ordered by calendar day, then
// show time, then display date, all descending.
func (s *SQLiteStore) ListTicketsByUser(ctx context.Context, email string) ([]models.Ticket, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+ticketColumns+` FROM tickets
		 WHERE user_email = ?
		 ORDER BY show_day DESC, show_time DESC, show_date DESC`,
		models.NormalizeEmail(email),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	defer rows.Close()

	tickets := []models.Ticket{}
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, *ticket)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tickets: %w", err)
	}

	return tickets, nil
}

// DeleteTicketsByUser removes all tickets owned by email.
func (s *SQLiteStore) DeleteTicketsByUser(ctx context.Context, email string) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM tickets WHERE user_email = ?",
		models.NormalizeEmail(email),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete tickets: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check affected rows: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTicket(row rowScanner) (*models.Ticket, error) {
	ticket := &models.Ticket{}
	var seats string
	if err := row.Scan(
		&ticket.BookingID,
		&ticket.UserEmail,
		&ticket.MovieTitle,
		&ticket.PosterURL,
		&seats,
		&ticket.ShowTime,
		&ticket.ShowDate,
		&ticket.ShowDay,
		&ticket.CreatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(seats), &ticket.SeatNumbers); err != nil {
		return nil, fmt.Errorf("corrupt seat numbers for ticket %s: %w", ticket.BookingID, err)
	}
	return ticket, nil
}
