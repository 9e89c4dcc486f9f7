// Package booking implements the seat selection flow: a cosmetic seat map,
// the show schedule, the in-progress reservation and the Engine that turns a
// completed selection into a persisted ticket.
package booking

import (
	"math/rand/v2"
	"sort"
)

// layout is the fixed auditorium: 's' is a seat, '_' an aisle.
var layout = [...]string{
	"ss_ss_ss",
	"ss_ss_ss",
	"ss_ss_ss",
	"ss_ss_ss",
	"___ss___",
}

// Rows and Cols are the seat map dimensions.
const (
	Rows = len(layout)
	Cols = 8
)

// SeatCount is the number of bookable cells in the layout.
var SeatCount = countSeats()

// DefaultTakenRatio is the probability that a seat is shown as already sold.
const DefaultTakenRatio = 0.3

// Seat is one bookable cell.
type Seat struct {
	Number   int
	Taken    bool
	Selected bool
}

// Cell is one position of the grid. Seat is nil for aisles.
type Cell struct {
	Row  int
	Col  int
	Seat *Seat
}

// IsAisle reports whether the cell has no seat.
func (c Cell) IsAisle() bool { return c.Seat == nil }

// SeatMap is the transient grid shown on the booking screen. Taken seats are
// random décor regenerated on every visit, not real occupancy.
// A SeatMap is not safe for concurrent use.
type SeatMap struct {
	cells    [][]Cell
	selected []int
}

type seatMapConfig struct {
	rng        *rand.Rand
	takenRatio float64
}

// Option configures NewSeatMap.
type Option func(*seatMapConfig)

// WithRand sets the random source used to mark taken seats.
func WithRand(rng *rand.Rand) Option {
	return func(c *seatMapConfig) { c.rng = rng }
}

// WithTakenRatio sets the probability of a seat being taken (0 disables).
func WithTakenRatio(ratio float64) Option {
	return func(c *seatMapConfig) { c.takenRatio = ratio }
}

// NewSeatMap generates a fresh seat map. Seats are numbered row-major from 1,
// skipping aisles.
func NewSeatMap(opts ...Option) *SeatMap {
	cfg := seatMapConfig{takenRatio: DefaultTakenRatio}
	for _, opt := range opts {
		opt(&cfg)
	}

	number := 1
	cells := make([][]Cell, Rows)
	for r, row := range layout {
		cells[r] = make([]Cell, Cols)
		for c := 0; c < Cols; c++ {
			cells[r][c] = Cell{Row: r, Col: c}
			if row[c] != 's' {
				continue
			}
			cells[r][c].Seat = &Seat{
				Number: number,
				Taken:  cfg.takenRatio > 0 && randFloat(cfg.rng) < cfg.takenRatio,
			}
			number++
		}
	}
	return &SeatMap{cells: cells}
}

func randFloat(rng *rand.Rand) float64 {
	if rng == nil {
		return rand.Float64()
	}
	return rng.Float64()
}

// Toggle flips the selection of the seat at (row, col). Aisles, taken seats
// and out-of-range positions are ignored. Reports whether anything changed.
func (m *SeatMap) Toggle(row, col int) bool {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return false
	}
	seat := m.cells[row][col].Seat
	if seat == nil || seat.Taken {
		return false
	}

	seat.Selected = !seat.Selected
	if seat.Selected {
		m.selected = append(m.selected, seat.Number)
		sort.Ints(m.selected)
	} else {
		m.selected = removeInt(m.selected, seat.Number)
	}
	return true
}

// ToggleNumber toggles a seat by its number.
func (m *SeatMap) ToggleNumber(number int) bool {
	row, col, ok := m.Locate(number)
	if !ok {
		return false
	}
	return m.Toggle(row, col)
}

// Locate returns the grid position of a seat number.
func (m *SeatMap) Locate(number int) (row, col int, ok bool) {
	for r := range m.cells {
		for c := range m.cells[r] {
			if s := m.cells[r][c].Seat; s != nil && s.Number == number {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Selected returns the selected seat numbers in ascending order.
func (m *SeatMap) Selected() []int {
	out := make([]int, len(m.selected))
	copy(out, m.selected)
	return out
}

// Grid returns a deep copy of the cells for rendering.
func (m *SeatMap) Grid() [][]Cell {
	out := make([][]Cell, len(m.cells))
	for r := range m.cells {
		out[r] = make([]Cell, len(m.cells[r]))
		for c, cell := range m.cells[r] {
			out[r][c] = cell
			if cell.Seat != nil {
				seat := *cell.Seat
				out[r][c].Seat = &seat
			}
		}
	}
	return out
}

// Price returns the total for count seats at unitPrice each.
func Price(count int, unitPrice int64) int64 {
	return int64(count) * unitPrice
}

func removeInt(s []int, v int) []int {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

func countSeats() int {
	n := 0
	for _, row := range layout {
		for _, c := range row {
			if c == 's' {
				n++
			}
		}
	}
	return n
}
