package domain

import "errors"

var (
	// ErrInvalidTerm is returned when a consortium plan is configured with a
	// non-positive number of months.
	ErrInvalidTerm = errors.New("term must be a positive number of months")

	ErrInvalidInput = errors.New("invalid input")
)
