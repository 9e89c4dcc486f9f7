package service

import (
	"errors"
	"testing"
	"time"

	"github.com/mmynk/cinebook/internal/booking"
)

func TestReservationRegistry(t *testing.T) {
	r := newReservationRegistry()
	clock := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return clock }

	res := booking.NewReservation("Dune", "", 0, clock)
	id := r.add("a@x.com", res)

	if got, err := r.get("a@x.com", id); err != nil || got != res {
		t.Fatalf("get = %v, %v", got, err)
	}
	if _, err := r.get("b@x.com", id); !errors.Is(err, errReservationNotFound) {
		t.Errorf("other owner: expected errReservationNotFound, got %v", err)
	}
	if r.remove("b@x.com", id) {
		t.Error("other owner must not remove the reservation")
	}

	// Abandoned reservations are swept when the next one is added.
	clock = clock.Add(reservationTTL + time.Minute)
	r.add("a@x.com", booking.NewReservation("Arrival", "", 0, clock))
	if n := r.count(); n != 1 {
		t.Errorf("count = %d after sweep, want 1", n)
	}
	if _, err := r.get("a@x.com", id); !errors.Is(err, errReservationNotFound) {
		t.Errorf("expired reservation still present: %v", err)
	}
}
