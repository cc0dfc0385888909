package domain

import "errors"

var (
	ErrNotFound              = errors.New("not found")
	ErrMissingFields         = errors.New("missing required fields")
	ErrNoSeats               = errors.New("no seats available")
	ErrDateConflict          = errors.New("reservation dates conflict")
	ErrEmailTaken            = errors.New("email already registered")
	ErrUsernameTaken         = errors.New("username already taken")
	ErrInvalidCredentials    = errors.New("credentials do not match")
	ErrReservationInProgress = errors.New("reservation already in progress")
)
