package transport

import (
	"fmt"
	"math"
)

// CheckFeasible verifies s against the balanced problem it was computed on:
// every row ships its supply, every column receives its demand, and
// TotalCost equals Σ quantity·cost, each within tol.
//
// It returns nil or an error wrapping ErrInfeasible that names the first
// violated line.
//
// Complexity: O(m·n).
func CheckFeasible(s Solution, tol float64) error {
	var (
		bp    = s.Balanced
		m, n  = len(bp.Supplies), len(bp.Demands)
		cols  = make([]float64, n)
		total float64
	)
	if len(s.Allocations) != m {
		return fmt.Errorf("%w: %d allocation rows for %d origins", ErrInfeasible, len(s.Allocations), m)
	}
	for i, row := range s.Allocations {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrInfeasible, i, len(row), n)
		}
		var shipped float64
		for j, a := range row {
			if a == nil {
				continue
			}
			shipped += a.Quantity
			cols[j] += a.Quantity
			total += a.Quantity * a.Cost
		}
		if math.Abs(shipped-bp.Supplies[i]) > tol {
			return fmt.Errorf("%w: origin %d ships %g of %g", ErrInfeasible, i, shipped, bp.Supplies[i])
		}
	}
	for j, got := range cols {
		if math.Abs(got-bp.Demands[j]) > tol {
			return fmt.Errorf("%w: destination %d receives %g of %g", ErrInfeasible, j, got, bp.Demands[j])
		}
	}
	if math.Abs(total-s.TotalCost) > tol {
		return fmt.Errorf("%w: total cost %g, allocations sum to %g", ErrInfeasible, s.TotalCost, total)
	}

	return nil
}
