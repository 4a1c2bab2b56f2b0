package transport

import (
	"errors"
	"math"

	"github.com/katalvlaran/transportation/matrix"
)

// Validate checks the shape contract of p before any algorithm step runs:
// at least one origin and one destination, len(Costs) == len(Supplies), every
// cost row of length len(Demands), and only finite numbers.
//
// Negative values are not rejected; solver behavior on them is unspecified.
//
// Complexity: O(m·n).
func Validate(p Problem) error {
	var m, n = len(p.Supplies), len(p.Demands)
	if m == 0 || n == 0 || len(p.Costs) != m {
		return ErrDimensionMismatch
	}
	if err := finite(p.Supplies); err != nil {
		return err
	}
	if err := finite(p.Demands); err != nil {
		return err
	}

	// Dense construction rejects ragged rows and non-finite entries in one pass.
	costs, err := matrix.NewDenseFrom(p.Costs)
	if err != nil {
		if errors.Is(err, matrix.ErrNaNInf) {
			return ErrInvalidValue
		}

		return ErrDimensionMismatch
	}
	if matrix.ValidateVecLen(p.Demands, costs.Cols()) != nil {
		return ErrDimensionMismatch
	}

	return nil
}

// finite rejects NaN and ±Inf.
func finite(v []float64) error {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return ErrInvalidValue
		}
	}

	return nil
}

// validateOptions rejects negative or non-finite knobs.
func validateOptions(opts Options) error {
	if opts.Tolerance < 0 || math.IsNaN(opts.Tolerance) || math.IsInf(opts.Tolerance, 0) {
		return ErrBadOptions
	}
	if opts.MaxIterations < 0 {
		return ErrBadOptions
	}

	return nil
}
