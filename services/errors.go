package services

import "errors"

var (
	// ErrInvalidAmount is surfaced verbatim to the UI; no state is
	// mutated when it is returned.
	ErrInvalidAmount = errors.New("Please enter a valid amount greater than 0")

	// ErrUserNotFound means the referenced user document is missing.
	// The operation is not retried.
	ErrUserNotFound = errors.New("user data not found")

	// ErrInvalidRange rejects history queries whose start is after end.
	ErrInvalidRange = errors.New("start date must not be after end date")
)
