package booking

import (
	"fmt"
	"time"
)

// DaysAhead is how many consecutive days are offered, starting today.
const DaysAhead = 7

// ShowTimes are the fixed daily screenings.
var ShowTimes = []string{"10:30", "12:30", "14:30", "15:00", "19:30", "21:00"}

// weekdayLabels abbreviates time.Weekday (Sunday first) the way tickets print it.
var weekdayLabels = [7]string{"CN", "T2", "T3", "T4", "T5", "T6", "T7"}

// DateChoice is one selectable show date.
type DateChoice struct {
	Date    time.Time
	Day     int
	Weekday string
}

// Label is the ticket display form, e.g. "T7, 31".
func (d DateChoice) Label() string {
	return fmt.Sprintf("%s, %d", d.Weekday, d.Day)
}

// ISO is the calendar date used for ordering, e.g. "2026-10-31".
func (d DateChoice) ISO() string {
	return d.Date.Format(time.DateOnly)
}

// GenerateDates returns n consecutive calendar days starting at from.
func GenerateDates(from time.Time, n int) []DateChoice {
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	dates := make([]DateChoice, n)
	for i := range dates {
		d := start.AddDate(0, 0, i)
		dates[i] = DateChoice{
			Date:    d,
			Day:     d.Day(),
			Weekday: weekdayLabels[d.Weekday()],
		}
	}
	return dates
}
