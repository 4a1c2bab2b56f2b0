// Package transport - unified dispatcher for the transport heuristics.
//
// Solve validates Options and the problem, balances it, and routes to the
// requested heuristic. The per-method entry points (NorthwestCorner,
// MinimumCost, Vogel) are thin shortcuts with default options.
package transport

// Solve runs opts.Method on p.
//
// Contracts:
//   - p must satisfy Validate (checked before any step runs).
//   - opts.Tolerance and opts.MaxIterations must be non-negative; zero
//     selects the defaults.
//
// Errors: ErrBadOptions, ErrUnknownMethod, ErrDimensionMismatch,
// ErrInvalidValue, ErrNonConvergence (returned unmodified).
func Solve(p Problem, opts Options) (Solution, error) {
	if err := validateOptions(opts); err != nil {
		return Solution{}, err
	}
	switch opts.Method {
	case NorthwestCornerMethod, MinimumCostMethod, VogelMethod:
	default:
		return Solution{}, ErrUnknownMethod
	}

	pr, err := prepare(p)
	if err != nil {
		return Solution{}, err
	}

	switch opts.Method {
	case NorthwestCornerMethod:
		return northwestCorner(pr), nil
	case MinimumCostMethod:
		return minimumCost(pr, opts.MaxIterations), nil
	default:
		tol := opts.Tolerance
		if tol == 0 {
			tol = DefaultTolerance
		}

		return vogel(pr, tol, opts.MaxIterations)
	}
}
