package textutil

import "errors"

var (
	// ErrInvalidInput reports a missing or empty required text.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDegenerateInput reports a text that reduces to zero words for
	// similarity scoring.
	ErrDegenerateInput = errors.New("degenerate input")
)
