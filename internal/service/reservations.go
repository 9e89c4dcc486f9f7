package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/cinebook/internal/booking"
)

// reservationTTL bounds how long an abandoned booking screen is kept.
const reservationTTL = time.Hour

type reservationEntry struct {
	owner   string
	res     *booking.Reservation
	touched time.Time
}

// reservationRegistry holds open booking screens keyed by a random ID.
type reservationRegistry struct {
	mu      sync.Mutex
	entries map[string]*reservationEntry
	now     func() time.Time
}

func newReservationRegistry() *reservationRegistry {
	return &reservationRegistry{
		entries: make(map[string]*reservationEntry),
		now:     time.Now,
	}
}

func (r *reservationRegistry) add(owner string, res *booking.Reservation) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweepLocked()
	id := uuid.NewString()
	r.entries[id] = &reservationEntry{owner: owner, res: res, touched: r.now()}
	return id
}

// get returns the reservation only to its owner.
func (r *reservationRegistry) get(owner, id string) (*booking.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok || e.owner != owner {
		return nil, errReservationNotFound
	}
	e.touched = r.now()
	return e.res, nil
}

func (r *reservationRegistry) remove(owner, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok || e.owner != owner {
		return false
	}
	delete(r.entries, id)
	return true
}

func (r *reservationRegistry) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *reservationRegistry) sweepLocked() {
	cutoff := r.now().Add(-reservationTTL)
	for id, e := range r.entries {
		if e.touched.Before(cutoff) {
			delete(r.entries, id)
		}
	}
}
