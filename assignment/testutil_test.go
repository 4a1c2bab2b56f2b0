package assignment_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/transportation/assignment"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"
)

// bruteForce returns the minimum total over all n! permutations.
func bruteForce(costs [][]float64) float64 {
	n := len(costs)
	best := math.Inf(1)
	for _, perm := range combin.Permutations(n, n) {
		var total float64
		for i, j := range perm {
			total += costs[i][j]
		}
		if total < best {
			best = total
		}
	}

	return best
}

// randomCosts builds a deterministic n×n integer-valued cost matrix.
func randomCosts(rng *rand.Rand, n, maxCost int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		for j := range out[i] {
			out[i][j] = float64(rng.Intn(maxCost + 1))
		}
	}

	return out
}

// requirePermutation asserts one pair per row and per column, costs read
// from the original matrix, and a consistent total.
func requirePermutation(t *testing.T, costs [][]float64, sol assignment.Solution) {
	t.Helper()
	n := len(costs)
	require.Len(t, sol.Assignments, n)

	seenCol := make([]bool, n)
	var total float64
	for i, a := range sol.Assignments {
		require.Equal(t, i, a.Row, "pairs are listed in row order")
		require.GreaterOrEqual(t, a.Col, 0)
		require.Less(t, a.Col, n)
		require.False(t, seenCol[a.Col], "column %d assigned twice", a.Col)
		seenCol[a.Col] = true
		require.Equal(t, costs[a.Row][a.Col], a.Cost)
		total += a.Cost
	}
	require.InDelta(t, total, sol.TotalCost, 1e-9)
}
