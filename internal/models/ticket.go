package models

// Ticket is a persisted record of a completed seat reservation.
type Ticket struct {
	// BookingID is generated locally: "local_<unix ms>_<suffix>".
	BookingID string

	// UserEmail references the owning Credential.
	UserEmail string

	MovieTitle string
	PosterURL  string

	// SeatNumbers are ascending seat numbers; stored as a JSON array.
	SeatNumbers []int

	// ShowTime is the wall-clock label, e.g. "19:30".
	ShowTime string

	// ShowDate is the display label, e.g. "T7, 31" (weekday abbreviation, day of month).
	ShowDate string

	// ShowDay is the ISO calendar date (2006-01-02) used for ordering.
	// Empty for rows imported without one.
	ShowDay string

	// CreatedAt is the Unix timestamp of the booking.
	CreatedAt int64
}
