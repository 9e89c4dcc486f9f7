package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/cinebook/internal/models"
	"github.com/mmynk/cinebook/internal/queue"
	"github.com/mmynk/cinebook/internal/storage"
	"github.com/mmynk/cinebook/internal/tickets"
)

// ConfirmRequest is everything needed to write a ticket.
type ConfirmRequest struct {
	UserEmail  string
	MovieTitle string
	PosterURL  string
	Seats      []int
	ShowDate   string // display label, e.g. "T7, 31"
	ShowDay    string // ISO date, optional
	ShowTime   string
	UnitPrice  int64
}

// Engine confirms reservations into persisted tickets.
type Engine struct {
	accounts  storage.CredentialStore
	tickets   storage.TicketStore
	publisher queue.Publisher

	now   func() time.Time
	newID func(time.Time) string
}

// NewEngine creates a booking engine. A nil publisher disables events.
func NewEngine(accounts storage.CredentialStore, ticketStore storage.TicketStore, publisher queue.Publisher) *Engine {
	if publisher == nil {
		publisher = queue.NopPublisher{}
	}
	return &Engine{
		accounts:  accounts,
		tickets:   ticketStore,
		publisher: publisher,
		now:       time.Now,
		newID:     NewBookingID,
	}
}

// NewBookingID returns a locally unique booking ID: "local_<unix ms>_<8 hex>".
// It is not safe as a distributed identifier.
func NewBookingID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("local_%d_%s", now.UnixMilli(), suffix)
}

// Confirm validates the request and writes exactly one ticket. Nothing is
// written when any check fails.
func (e *Engine) Confirm(ctx context.Context, req ConfirmRequest) (*models.Ticket, error) {
	email := models.NormalizeEmail(req.UserEmail)
	if email == "" {
		return nil, ErrNotAuthenticated
	}
	if len(req.Seats) == 0 || req.ShowDate == "" || req.ShowTime == "" {
		return nil, ErrIncompleteSelection
	}

	seats, err := normalizeSeats(req.Seats)
	if err != nil {
		return nil, err
	}

	exists, err := e.accounts.CredentialExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !exists {
		slog.Warn("Booking for missing account", "email", email)
		return nil, ErrAccountMissing
	}

	now := e.now()
	ticket := &models.Ticket{
		BookingID:   e.newID(now),
		UserEmail:   email,
		MovieTitle:  req.MovieTitle,
		PosterURL:   req.PosterURL,
		SeatNumbers: seats,
		ShowTime:    req.ShowTime,
		ShowDate:    req.ShowDate,
		ShowDay:     req.ShowDay,
		CreatedAt:   now.Unix(),
	}
	// The record is built here, so a schema failure is ours, not the user's.
	if err := tickets.Validate(ticket); err != nil {
		slog.Error("Ticket record rejected", "booking_id", ticket.BookingID, "email", email, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if err := e.tickets.CreateTicket(ctx, ticket); err != nil {
		slog.Error("Ticket write failed", "booking_id", ticket.BookingID, "email", email, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	slog.Info("Booking confirmed",
		"booking_id", ticket.BookingID,
		"email", email,
		"movie", ticket.MovieTitle,
		"seats", ticket.SeatNumbers,
		"show_date", ticket.ShowDate,
		"show_time", ticket.ShowTime,
	)

	e.announce(ctx, ticket, Price(len(seats), req.UnitPrice))
	return ticket, nil
}

// announce publishes the confirmation. The ticket is already durable, so a
// broker failure is only logged.
func (e *Engine) announce(ctx context.Context, t *models.Ticket, total int64) {
	event := queue.BookingConfirmedEvent{
		BookingID:   t.BookingID,
		UserEmail:   t.UserEmail,
		MovieTitle:  t.MovieTitle,
		Seats:       t.SeatNumbers,
		ShowDate:    t.ShowDate,
		ShowDay:     t.ShowDay,
		ShowTime:    t.ShowTime,
		TotalAmount: total,
		ConfirmedAt: time.Unix(t.CreatedAt, 0).UTC().Format(time.RFC3339),
	}
	if err := e.publisher.PublishBookingConfirmed(ctx, event); err != nil {
		slog.Warn("Booking event not published", "booking_id", t.BookingID, "error", err)
	}
}

// normalizeSeats sorts seat numbers and rejects duplicates and unknown seats.
func normalizeSeats(in []int) ([]int, error) {
	seats := make([]int, len(in))
	copy(seats, in)
	sort.Ints(seats)
	for i, n := range seats {
		if n < 1 || n > SeatCount {
			return nil, fmt.Errorf("%w: seat %d does not exist", ErrInvalidSelection, n)
		}
		if i > 0 && seats[i-1] == n {
			return nil, fmt.Errorf("%w: seat %d selected twice", ErrInvalidSelection, n)
		}
	}
	return seats, nil
}

// IsUserError reports whether err is a booking error the user can fix.
func IsUserError(err error) bool {
	return errors.Is(err, ErrNotAuthenticated) ||
		errors.Is(err, ErrIncompleteSelection) ||
		errors.Is(err, ErrAccountMissing) ||
		errors.Is(err, ErrInvalidSelection)
}
