// Package assignment solves the square assignment problem: match n rows
// (tasks) to n columns (agents) one-to-one at least total cost.
//
// What & Why:
//
//	Hungarian  - exact optimum by matrix reduction, zero matching and
//	             minimum line cover (König). Every phase is recorded as a
//	             trace.Step so a renderer can replay it.
//	MinimumCost - heuristic: the transport Minimum Cost method on unit
//	              supplies and demands. Cheap, not guaranteed optimal.
//
// Phases of Hungarian:
//
//	reduce-rows -> reduce-cols -> match -> (done | adjust -> match ...) -> assign
//
// Complexity:
//   - Hungarian: O(n²) rounds at most, each O(n³) for matching (Kuhn) and O(n²)
//     for cover and adjust.
//   - MaxMatching: O(V·E) over the zero adjacency.
//
// Errors:
//
//	ErrDimensionMismatch - costs not square (or ragged).
//	ErrInvalidValue      - NaN or ±Inf in costs.
//	ErrNonConvergence    - adjustment cap hit or no positive uncovered minimum.
//	ErrBadOptions        - negative or non-finite Options.
//
// Solvers do not log and do not panic on user input; a 0×0 problem yields an
// empty solution.
package assignment
