package auth

import "errors"

var (
	// ErrValidation wraps bad or missing input caught before touching storage.
	ErrValidation = errors.New("validation failed")

	ErrDuplicateEmail   = errors.New("email already registered")
	ErrWrongCredentials = errors.New("invalid email or password")
	ErrWrongOldPassword = errors.New("old password is incorrect")
	ErrAccountNotFound  = errors.New("account not found")
)
