package assignment

import "errors"

var (
	// ErrDimensionMismatch is returned before any step runs when the cost
	// matrix is ragged or not square.
	ErrDimensionMismatch = errors.New("assignment: cost matrix must be square")

	// ErrInvalidValue is returned when a cost is NaN or ±Inf.
	ErrInvalidValue = errors.New("assignment: NaN or Inf in costs")

	// ErrNonConvergence is returned when the Hungarian loop exceeds its round
	// cap or finds no positive uncovered minimum.
	ErrNonConvergence = errors.New("assignment: hungarian did not converge")

	// ErrBadOptions is returned for negative or non-finite option values.
	ErrBadOptions = errors.New("assignment: invalid options")
)
