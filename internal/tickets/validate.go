package tickets

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/mmynk/cinebook/internal/models"
)

//go:embed ticket.schema.json
var ticketSchema []byte

// ErrInvalidTicket is returned when a ticket record fails schema validation.
var ErrInvalidTicket = errors.New("invalid ticket record")

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(ticketSchema))
	})
	return schema, schemaErr
}

// Validate checks a ticket against the ticket record schema before it is
// written. The returned error wraps ErrInvalidTicket and lists every violation.
func Validate(t *models.Ticket) error {
	if t == nil {
		return fmt.Errorf("%w: nil ticket", ErrInvalidTicket)
	}
	s, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile ticket schema: %w", err)
	}

	seats := make([]any, len(t.SeatNumbers))
	for i, n := range t.SeatNumbers {
		seats[i] = n
	}
	doc := map[string]any{
		"booking_id":   t.BookingID,
		"user_email":   t.UserEmail,
		"movie_title":  t.MovieTitle,
		"poster_url":   t.PosterURL,
		"seat_numbers": seats,
		"show_time":    t.ShowTime,
		"show_date":    t.ShowDate,
		"show_day":     t.ShowDay,
		"created_at":   t.CreatedAt,
	}

	res, err := s.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("validate ticket: %w", err)
	}
	if res.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidTicket, strings.Join(msgs, "; "))
}
