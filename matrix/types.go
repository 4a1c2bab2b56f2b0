// SPDX-License-Identifier: MIT

// Package matrix: the read/write surface the validators accept.
package matrix

// Matrix is a bounds-checked r×c grid of float64.
//
// Dense is the only implementation in this module; the interface lets
// validators and tests accept any grid without depending on its storage.
type Matrix interface {
	// Rows is the number of rows (origins, or tasks).
	Rows() int

	// Cols is the number of columns (destinations, or agents).
	Cols() int

	// At reads cell (i, j); out-of-range indices yield ErrOutOfRange.
	At(i, j int) (float64, error)

	// Set writes cell (i, j); out-of-range indices yield ErrOutOfRange.
	Set(i, j int, v float64) error

	// Clone deep-copies the grid.
	Clone() Matrix
}
