// Package transport builds initial feasible solutions to the transportation
// problem and records every allocation as a replayable trace.
//
// The problem: m origins with fixed Supplies, n destinations with fixed
// Demands and an m×n matrix of unit Costs. A solution ships exactly each
// supply and exactly each demand.
//
// The heuristics offered are:
//
//	Northwest Corner
//	  Fill from cell (0,0) with min(supply, demand), ignoring costs. When a
//	  row and a column empty together the cursor moves down.
//	  Time: O(m + n) allocations.
//
//	Minimum Cost
//	  Repeatedly fill the cheapest active cell (row-major, first found).
//	  Time: O((m + n) · m · n).
//
//	Vogel's Approximation
//	  Pick the line with the largest penalty (gap between its two cheapest
//	  active cells) and fill its cheapest cell. Usually the best starting
//	  solution of the three.
//	  Time: O((m + n) · m · n).
//
// # Balancing
//
// Unbalanced problems are first normalized by Balance, which adds exactly one
// zero-cost dummy origin or dummy destination. Solutions are expressed over
// the balanced problem (Solution.Balanced, Solution.Dummy).
//
// # API
//
//	sol, err := transport.Vogel(p)
//	sol, err := transport.Solve(p, transport.Options{Method: transport.MinimumCostMethod})
//
// Each Solution carries Steps ([]trace.Step); steps[k] describes the k-th
// allocation with before/after supply and demand vectors and a method-specific
// payload (see the trace package keys).
//
// # Errors
//
//	ErrDimensionMismatch - empty problem, or supplies/demands/costs shapes disagree.
//	ErrInvalidValue      - NaN or ±Inf in the input.
//	ErrNonConvergence    - Vogel exceeded its iteration cap or ran out of cells.
//	ErrUnknownMethod     - Solve was given a method it does not know.
//	ErrBadOptions        - negative tolerance or iteration cap.
//	ErrInfeasible        - CheckFeasible found a violated supply or demand.
//
// Solvers are pure functions of their input: same problem, same solution and
// same trace. They do not log and do not panic on user input.
package transport
