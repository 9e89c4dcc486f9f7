// Package tickets answers "what tickets does this user hold".
package tickets

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/cinebook/internal/models"
	"github.com/mmynk/cinebook/internal/storage"
)

// Service reads and clears persisted tickets.
type Service struct {
	store storage.TicketStore
}

// NewService creates a ticket query service.
func NewService(store storage.TicketStore) *Service {
	return &Service{store: store}
}

// ForUser returns the user's tickets, most recent show first. An empty email
// (nobody signed in) yields an empty list without touching the store.
func (s *Service) ForUser(ctx context.Context, email string) ([]models.Ticket, error) {
	email = models.NormalizeEmail(email)
	if email == "" {
		return []models.Ticket{}, nil
	}
	tickets, err := s.store.ListTicketsByUser(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list tickets for %s: %w", email, err)
	}
	if tickets == nil {
		tickets = []models.Ticket{}
	}
	return tickets, nil
}

// Get returns one ticket owned by email. Tickets of other users are reported
// as storage.ErrNotFound.
func (s *Service) Get(ctx context.Context, email, bookingID string) (*models.Ticket, error) {
	t, err := s.store.GetTicket(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if t.UserEmail != models.NormalizeEmail(email) {
		return nil, fmt.Errorf("ticket %s: %w", bookingID, storage.ErrNotFound)
	}
	return t, nil
}

// ClearForUser deletes every ticket of the user and returns how many were removed.
func (s *Service) ClearForUser(ctx context.Context, email string) (int64, error) {
	email = models.NormalizeEmail(email)
	if email == "" {
		return 0, nil
	}
	n, err := s.store.DeleteTicketsByUser(ctx, email)
	if err != nil {
		return 0, fmt.Errorf("clear tickets for %s: %w", email, err)
	}
	slog.Info("Cleared tickets", "email", email, "count", n)
	return n, nil
}
