// SPDX-License-Identifier: MIT

// Package matrix: sentinel errors.
//
// Call sites wrap them with context through %w; match with errors.Is.
package matrix

import "errors"

var (
	// ErrInvalidDimensions: a constructor got zero or negative rows/cols.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange: a row or column index lies outside the grid.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch: ragged rows, or a vector that does not fit the grid.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare: a square grid was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf: a cell would hold NaN or ±Inf.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix: a nil Matrix was passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
