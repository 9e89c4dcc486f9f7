package booking

import (
	"fmt"
	"sync"
	"time"
)

// DefaultUnitPrice is the price of one seat.
const DefaultUnitPrice int64 = 75000

const unset = -1

// Reservation is one visit to the booking screen for a movie: a fresh seat
// map, the date and time choices, and what the user picked so far.
// It is safe for concurrent use.
type Reservation struct {
	mu sync.Mutex

	movieTitle string
	posterURL  string
	unitPrice  int64

	seats     *SeatMap
	dates     []DateChoice
	dateIndex int
	timeIndex int
}

// View is a point-in-time copy of a reservation for rendering.
type View struct {
	MovieTitle string
	PosterURL  string
	Grid       [][]Cell
	Selected   []int
	Dates      []DateChoice
	Times      []string
	DateIndex  int // -1 when unset
	TimeIndex  int // -1 when unset
	UnitPrice  int64
	Price      int64
}

// NewReservation starts a reservation with dates beginning on now's day.
func NewReservation(movieTitle, posterURL string, unitPrice int64, now time.Time, opts ...Option) *Reservation {
	if unitPrice <= 0 {
		unitPrice = DefaultUnitPrice
	}
	return &Reservation{
		movieTitle: movieTitle,
		posterURL:  posterURL,
		unitPrice:  unitPrice,
		seats:      NewSeatMap(opts...),
		dates:      GenerateDates(now, DaysAhead),
		dateIndex:  unset,
		timeIndex:  unset,
	}
}

// ToggleSeat flips the seat at (row, col); see SeatMap.Toggle.
func (r *Reservation) ToggleSeat(row, col int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seats.Toggle(row, col)
}

// ToggleSeatNumber flips a seat by number.
func (r *Reservation) ToggleSeatNumber(number int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seats.ToggleNumber(number)
}

// SelectDate picks one of the offered dates.
func (r *Reservation) SelectDate(index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if index < 0 || index >= len(r.dates) {
		return fmt.Errorf("%w: date index %d out of range", ErrInvalidSelection, index)
	}
	r.dateIndex = index
	return nil
}

// SelectTime picks one of ShowTimes.
func (r *Reservation) SelectTime(index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if index < 0 || index >= len(ShowTimes) {
		return fmt.Errorf("%w: time index %d out of range", ErrInvalidSelection, index)
	}
	r.timeIndex = index
	return nil
}

// Price is the running total for the selected seats.
func (r *Reservation) Price() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Price(len(r.seats.selected), r.unitPrice)
}

// Snapshot returns a copy of the current state.
func (r *Reservation) Snapshot() View {
	r.mu.Lock()
	defer r.mu.Unlock()

	selected := r.seats.Selected()
	dates := make([]DateChoice, len(r.dates))
	copy(dates, r.dates)
	times := make([]string, len(ShowTimes))
	copy(times, ShowTimes)

	return View{
		MovieTitle: r.movieTitle,
		PosterURL:  r.posterURL,
		Grid:       r.seats.Grid(),
		Selected:   selected,
		Dates:      dates,
		Times:      times,
		DateIndex:  r.dateIndex,
		TimeIndex:  r.timeIndex,
		UnitPrice:  r.unitPrice,
		Price:      Price(len(selected), r.unitPrice),
	}
}

// Request builds the confirmation request for userEmail. Unset date or time
// leave the corresponding fields empty, which Engine.Confirm rejects.
func (r *Reservation) Request(userEmail string) ConfirmRequest {
	r.mu.Lock()
	defer r.mu.Unlock()

	req := ConfirmRequest{
		UserEmail:  userEmail,
		MovieTitle: r.movieTitle,
		PosterURL:  r.posterURL,
		Seats:      r.seats.Selected(),
		UnitPrice:  r.unitPrice,
	}
	if r.dateIndex != unset {
		req.ShowDate = r.dates[r.dateIndex].Label()
		req.ShowDay = r.dates[r.dateIndex].ISO()
	}
	if r.timeIndex != unset {
		req.ShowTime = ShowTimes[r.timeIndex]
	}
	return req
}
