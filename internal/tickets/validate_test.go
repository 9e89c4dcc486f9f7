package tickets

import (
	"errors"
	"testing"

	"github.com/mmynk/cinebook/internal/models"
)

func validTicket() *models.Ticket {
	return &models.Ticket{
		BookingID:   "local_1767225600000_a1b2c3d4",
		UserEmail:   "a@x.com",
		MovieTitle:  "Dune",
		PosterURL:   "https://image.tmdb.org/t/p/w342/dune.jpg",
		SeatNumbers: []int{3, 4},
		ShowTime:    "19:30",
		ShowDate:    "T7, 31",
		ShowDay:     "2026-10-31",
		CreatedAt:   1767225600,
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(validTicket()); err != nil {
		t.Fatalf("valid ticket rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*models.Ticket)
	}{
		{"bad booking id", func(tk *models.Ticket) { tk.BookingID = "abc" }},
		{"empty email", func(tk *models.Ticket) { tk.UserEmail = "" }},
		{"no seats", func(tk *models.Ticket) { tk.SeatNumbers = nil }},
		{"seat out of range", func(tk *models.Ticket) { tk.SeatNumbers = []int{27} }},
		{"seat zero", func(tk *models.Ticket) { tk.SeatNumbers = []int{0} }},
		{"duplicate seat", func(tk *models.Ticket) { tk.SeatNumbers = []int{4, 4} }},
		{"bad show time", func(tk *models.Ticket) { tk.ShowTime = "25:00" }},
		{"empty show date", func(tk *models.Ticket) { tk.ShowDate = "" }},
		{"bad show day", func(tk *models.Ticket) { tk.ShowDay = "31/10/2026" }},
		{"negative created at", func(tk *models.Ticket) { tk.CreatedAt = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := validTicket()
			tt.mutate(tk)
			if err := Validate(tk); !errors.Is(err, ErrInvalidTicket) {
				t.Errorf("expected ErrInvalidTicket, got %v", err)
			}
		})
	}

	t.Run("any non-empty email", func(t *testing.T) {
		tk := validTicket()
		tk.UserEmail = "bob"
		if err := Validate(tk); err != nil {
			t.Errorf("ticket for %q rejected: %v", tk.UserEmail, err)
		}
	})

	t.Run("show day is optional", func(t *testing.T) {
		tk := validTicket()
		tk.ShowDay = ""
		if err := Validate(tk); err != nil {
			t.Errorf("ticket without show day rejected: %v", err)
		}
	})

	if err := Validate(nil); !errors.Is(err, ErrInvalidTicket) {
		t.Errorf("Validate(nil) = %v, want ErrInvalidTicket", err)
	}
}
