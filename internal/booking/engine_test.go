package booking

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/mmynk/cinebook/internal/models"
	"github.com/mmynk/cinebook/internal/queue"
	"github.com/mmynk/cinebook/internal/storage/sqlite"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []queue.BookingConfirmedEvent
	err    error
}

func (p *recordingPublisher) PublishBookingConfirmed(_ context.Context, e queue.BookingConfirmedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

type failingTicketStore struct{ *sqlite.SQLiteStore }

func (failingTicketStore) CreateTicket(context.Context, *models.Ticket) error {
	return errors.New("database is locked")
}

func setupEngine(t *testing.T) (*Engine, *sqlite.SQLiteStore, *recordingPublisher) {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.CreateCredential(context.Background(), models.NewCredential("a@x.com", "Alice", "hash")); err != nil {
		t.Fatalf("CreateCredential failed: %v", err)
	}

	pub := &recordingPublisher{}
	e := NewEngine(store, store, pub)
	e.now = func() time.Time { return time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC) }
	return e, store, pub
}

func completeRequest() ConfirmRequest {
	return ConfirmRequest{
		UserEmail:  "a@x.com",
		MovieTitle: "Dune",
		PosterURL:  "https://image.tmdb.org/t/p/w342/dune.jpg",
		Seats:      []int{4, 3},
		ShowDate:   "T7, 31",
		ShowDay:    "2026-10-31",
		ShowTime:   "19:30",
		UnitPrice:  75000,
	}
}

func ticketCount(t *testing.T, store *sqlite.SQLiteStore, email string) int {
	t.Helper()
	tickets, err := store.ListTicketsByUser(context.Background(), email)
	if err != nil {
		t.Fatalf("ListTicketsByUser failed: %v", err)
	}
	return len(tickets)
}

func TestConfirm(t *testing.T) {
	e, store, pub := setupEngine(t)
	ctx := context.Background()

	ticket, err := e.Confirm(ctx, completeRequest())
	if err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}

	if !regexp.MustCompile(`^local_1792141200000_[0-9a-f]{8}$`).MatchString(ticket.BookingID) {
		t.Errorf("unexpected booking id %q", ticket.BookingID)
	}
	if len(ticket.SeatNumbers) != 2 || ticket.SeatNumbers[0] != 3 || ticket.SeatNumbers[1] != 4 {
		t.Errorf("SeatNumbers = %v, want [3 4]", ticket.SeatNumbers)
	}

	// Visible to the very next read.
	stored, err := store.GetTicket(ctx, ticket.BookingID)
	if err != nil {
		t.Fatalf("GetTicket failed: %v", err)
	}
	if stored.UserEmail != "a@x.com" || stored.ShowDate != "T7, 31" || stored.ShowTime != "19:30" {
		t.Errorf("stored ticket mismatch: %+v", stored)
	}

	if len(pub.events) != 1 {
		t.Fatalf("published %d events, want 1", len(pub.events))
	}
	if ev := pub.events[0]; ev.BookingID != ticket.BookingID || ev.TotalAmount != 150000 {
		t.Errorf("unexpected event: %+v", ev)
	}
}

func TestConfirmRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConfirmRequest)
		want   error
	}{
		{"not signed in", func(r *ConfirmRequest) { r.UserEmail = "" }, ErrNotAuthenticated},
		{"no seats", func(r *ConfirmRequest) { r.Seats = nil }, ErrIncompleteSelection},
		{"no date", func(r *ConfirmRequest) { r.ShowDate = ""; r.ShowDay = "" }, ErrIncompleteSelection},
		{"no time", func(r *ConfirmRequest) { r.ShowTime = "" }, ErrIncompleteSelection},
		{"unknown seat", func(r *ConfirmRequest) { r.Seats = []int{27} }, ErrInvalidSelection},
		{"seat twice", func(r *ConfirmRequest) { r.Seats = []int{5, 5} }, ErrInvalidSelection},
		{"account removed", func(r *ConfirmRequest) { r.UserEmail = "ghost@x.com" }, ErrAccountMissing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, store, pub := setupEngine(t)
			req := completeRequest()
			tt.mutate(&req)

			ticket, err := e.Confirm(context.Background(), req)
			if !errors.Is(err, tt.want) || ticket != nil {
				t.Errorf("Confirm = %v, %v; want nil, %v", ticket, err, tt.want)
			}
			if !IsUserError(err) {
				t.Errorf("%v should be a user error", err)
			}
			if n := ticketCount(t, store, "a@x.com"); n != 0 {
				t.Errorf("no ticket should be written, found %d", n)
			}
			if len(pub.events) != 0 {
				t.Errorf("no event should be published, got %d", len(pub.events))
			}
		})
	}
}

func TestConfirmFromReservationWithoutDate(t *testing.T) {
	e, store, _ := setupEngine(t)
	r := NewReservation("Dune", "", 75000, e.now(), WithTakenRatio(0))
	r.ToggleSeatNumber(3)
	if err := r.SelectTime(0); err != nil {
		t.Fatalf("SelectTime failed: %v", err)
	}

	before := ticketCount(t, store, "a@x.com")
	if _, err := e.Confirm(context.Background(), r.Request("a@x.com")); !errors.Is(err, ErrIncompleteSelection) {
		t.Errorf("expected ErrIncompleteSelection, got %v", err)
	}
	if after := ticketCount(t, store, "a@x.com"); after != before {
		t.Errorf("ticket count changed from %d to %d", before, after)
	}
}

func TestConfirmPersistenceError(t *testing.T) {
	e, store, pub := setupEngine(t)
	e.tickets = failingTicketStore{store}

	_, err := e.Confirm(context.Background(), completeRequest())
	if !errors.Is(err, ErrPersistence) {
		t.Errorf("expected ErrPersistence, got %v", err)
	}
	if IsUserError(err) {
		t.Error("persistence failure is not a user error")
	}
	if len(pub.events) != 0 {
		t.Error("failed booking must not be published")
	}
}

func TestConfirmBareEmail(t *testing.T) {
	e, store, _ := setupEngine(t)
	if err := store.CreateCredential(context.Background(), models.NewCredential("bob", "Bob", "hash")); err != nil {
		t.Fatalf("CreateCredential failed: %v", err)
	}

	req := completeRequest()
	req.UserEmail = "bob"
	if _, err := e.Confirm(context.Background(), req); err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if n := ticketCount(t, store, "bob"); n != 1 {
		t.Errorf("ticket count = %d, want 1", n)
	}
}

func TestConfirmMalformedRecord(t *testing.T) {
	e, store, pub := setupEngine(t)
	req := completeRequest()
	req.ShowTime = "25:00"

	_, err := e.Confirm(context.Background(), req)
	if !errors.Is(err, ErrPersistence) {
		t.Errorf("expected ErrPersistence, got %v", err)
	}
	if IsUserError(err) {
		t.Error("a rejected record is not a user error")
	}
	if n := ticketCount(t, store, "a@x.com"); n != 0 {
		t.Errorf("no ticket should be written, found %d", n)
	}
	if len(pub.events) != 0 {
		t.Error("rejected booking must not be published")
	}
}

func TestConfirmPublishFailureKeepsTicket(t *testing.T) {
	e, store, pub := setupEngine(t)
	pub.err = errors.New("broker down")

	ticket, err := e.Confirm(context.Background(), completeRequest())
	if err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if _, err := store.GetTicket(context.Background(), ticket.BookingID); err != nil {
		t.Errorf("ticket should be stored despite publish failure: %v", err)
	}
}

func TestNewBookingIDUnique(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewBookingID(now)
		if seen[id] {
			t.Fatalf("duplicate booking id %s", id)
		}
		seen[id] = true
	}
}
