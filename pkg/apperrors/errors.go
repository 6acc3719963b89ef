package apperrors

import "errors"

// Business failures are expected outcomes and are surfaced to callers as
// typed results. ErrStorage marks infrastructure failures so handlers can
// tell "you can't have that" apart from "the database is unhappy".
var (
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidRange      = errors.New("end time must be after start time")
	ErrPastDate          = errors.New("date cannot be in the past")
	ErrConflict          = errors.New("time slot already booked")
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("request already resolved")
	ErrAlreadyExists     = errors.New("already exists")
	ErrStorage           = errors.New("storage failure")
)
