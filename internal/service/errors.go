package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/cinebook/internal/auth"
	"github.com/mmynk/cinebook/internal/booking"
	"github.com/mmynk/cinebook/internal/storage"
)

var (
	errReservationNotFound = errors.New("reservation not found")
	errSignInRequired      = errors.New("sign in required")
)

// toConnectError maps domain errors onto Connect codes. Anything unknown is
// an internal error.
func toConnectError(err error) *connect.Error {
	var ce *connect.Error
	if errors.As(err, &ce) {
		return ce
	}

	code := connect.CodeInternal
	switch {
	case errors.Is(err, auth.ErrValidation),
		errors.Is(err, auth.ErrWrongOldPassword),
		errors.Is(err, booking.ErrIncompleteSelection),
		errors.Is(err, booking.ErrInvalidSelection):
		code = connect.CodeInvalidArgument
	case errors.Is(err, auth.ErrDuplicateEmail):
		code = connect.CodeAlreadyExists
	case errors.Is(err, auth.ErrWrongCredentials),
		errors.Is(err, booking.ErrNotAuthenticated),
		errors.Is(err, errSignInRequired):
		code = connect.CodeUnauthenticated
	case errors.Is(err, auth.ErrAccountNotFound),
		errors.Is(err, storage.ErrNotFound),
		errors.Is(err, errReservationNotFound):
		code = connect.CodeNotFound
	case errors.Is(err, booking.ErrAccountMissing):
		code = connect.CodeFailedPrecondition
	}
	return connect.NewError(code, err)
}
