package transport

import "errors"

var (
	// ErrDimensionMismatch is returned before any step runs when the problem
	// is empty or len(Supplies), len(Demands) and Costs disagree.
	ErrDimensionMismatch = errors.New("transport: dimension mismatch")

	// ErrInvalidValue is returned when the input holds NaN or ±Inf.
	ErrInvalidValue = errors.New("transport: NaN or Inf in problem")

	// ErrNonConvergence is returned when a solver exceeds its iteration cap
	// or reaches a state it cannot progress from.
	ErrNonConvergence = errors.New("transport: solver did not converge")

	// ErrUnknownMethod is returned by Solve and ParseMethod for unsupported methods.
	ErrUnknownMethod = errors.New("transport: unknown method")

	// ErrBadOptions is returned for negative or non-finite option values.
	ErrBadOptions = errors.New("transport: invalid options")

	// ErrInfeasible is returned by CheckFeasible when a solution violates
	// a supply, a demand or its own total cost.
	ErrInfeasible = errors.New("transport: infeasible solution")
)
