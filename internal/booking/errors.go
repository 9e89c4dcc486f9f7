package booking

import "errors"

var (
	ErrNotAuthenticated    = errors.New("sign in required to book tickets")
	ErrIncompleteSelection = errors.New("select seats, a date and a time")
	ErrAccountMissing      = errors.New("account no longer exists, register again")
	ErrPersistence         = errors.New("failed to save ticket")

	// ErrInvalidSelection is returned for out-of-range seat, date or time choices.
	ErrInvalidSelection = errors.New("invalid selection")
)
