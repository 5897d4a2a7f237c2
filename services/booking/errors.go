package booking

import "errors"

var (
	// ErrMissingIdentity means a mandatory customer field was absent.
	// This is the only validation failure that aborts booking creation.
	ErrMissingIdentity = errors.New("customer name, email and country are required")

	// ErrInvalidNights means accommodation was requested with a night count
	// outside the bookable 1..7 range.
	ErrInvalidNights = errors.New("accommodation nights must be between 1 and 7")

	// ErrIllegalTransition means a requested status change is not in the
	// legal transition set of the current state.
	ErrIllegalTransition = errors.New("illegal booking status transition")
)
