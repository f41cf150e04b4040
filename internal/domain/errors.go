package domain

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// ErrPendingNotFound is returned when the payment-return flow tries
	// to consume a pending-booking snapshot that is absent: either it
	// expired, or it was already consumed by an earlier page load.
	ErrPendingNotFound = errors.New("pending booking not found")

	// ErrValidation marks a request rejected before any upstream call.
	ErrValidation = errors.New("validation failed")
)
