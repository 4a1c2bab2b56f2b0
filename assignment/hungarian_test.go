package assignment_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/transportation/assignment"
	"github.com/katalvlaran/transportation/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHungarian_3x3MatchesBruteForce(t *testing.T) {
	costs := [][]float64{{4, 2, 8}, {4, 3, 7}, {3, 1, 6}}

	sol, err := assignment.Hungarian(assignment.Problem{Costs: costs})
	require.NoError(t, err)

	assert.Equal(t, bruteForce(costs), sol.TotalCost)
	assert.Equal(t, 12.0, sol.TotalCost)
	assert.Equal(t, []assignment.Pair{
		{Row: 0, Col: 1, Cost: 2},
		{Row: 1, Col: 2, Cost: 7},
		{Row: 2, Col: 0, Cost: 3},
	}, sol.Assignments)
	assert.Equal(t, assignment.MethodHungarian, sol.Method)
	requirePermutation(t, costs, sol)
}

func TestHungarian_TracePhases(t *testing.T) {
	sol, err := assignment.Hungarian(assignment.Problem{Costs: [][]float64{{4, 2, 8}, {4, 3, 7}, {3, 1, 6}}})
	require.NoError(t, err)

	kinds := make([]trace.Kind, len(sol.Steps))
	for i, st := range sol.Steps {
		kinds[i] = st.Kind
		assert.Equal(t, i+1, st.Index)
		assert.Equal(t, assignment.MethodHungarian, st.Method)
	}
	require.Equal(t, []trace.Kind{
		trace.KindReduceRows, trace.KindReduceCols,
		trace.KindMatch, trace.KindAdjust, trace.KindMatch,
		trace.KindAssign,
	}, kinds)

	rows := sol.Steps[0].Info
	assert.Equal(t, [][]float64{{4, 2, 8}, {4, 3, 7}, {3, 1, 6}}, rows[trace.KeyOriginalCosts])
	assert.Equal(t, []float64{2, 3, 1}, rows[trace.KeyRowMins])
	assert.Equal(t, [][]float64{{2, 0, 6}, {1, 0, 4}, {2, 0, 5}}, rows[trace.KeyReducedCosts])

	cols := sol.Steps[1].Info
	assert.Equal(t, []float64{1, 0, 4}, cols[trace.KeyColMins])
	assert.Equal(t, [][]float64{{1, 0, 2}, {0, 0, 0}, {1, 0, 1}}, cols[trace.KeyReducedCosts])

	match := sol.Steps[2].Info
	assert.Equal(t, []int{1, 0, -1}, match[trace.KeyMatching])
	assert.Equal(t, 2, match[trace.KeyMatchedCount])

	adj := sol.Steps[3].Info
	assert.Equal(t, []bool{false, true, false}, adj[trace.KeyCoveredRows])
	assert.Equal(t, []bool{false, true, false}, adj[trace.KeyCoveredCols])
	assert.Equal(t, 1.0, adj[trace.KeyMinUncovered])
	assert.Equal(t, [][]float64{{0, 0, 1}, {0, 1, 0}, {0, 0, 0}}, adj[trace.KeyAdjustedCosts])

	assert.Equal(t, []int{1, 2, 0}, sol.Steps[4].Info[trace.KeyMatching])
	assert.Equal(t, 3, sol.Steps[4].Info[trace.KeyMatchedCount])

	final := sol.Steps[5].Info
	assert.Equal(t, 12.0, final[trace.KeyTotalCost])
	assert.Equal(t, []trace.CostCell{
		{Row: 0, Col: 1, Cost: 2}, {Row: 1, Col: 2, Cost: 7}, {Row: 2, Col: 0, Cost: 3},
	}, final[trace.KeyAssignments])
}

func TestHungarian_PerfectAfterReduction(t *testing.T) {
	costs := [][]float64{{9, 2, 7, 8}, {6, 4, 3, 7}, {5, 8, 1, 8}, {7, 6, 9, 4}}
	sol, err := assignment.Hungarian(assignment.Problem{Costs: costs})
	require.NoError(t, err)

	assert.Equal(t, 13.0, sol.TotalCost)
	require.Len(t, sol.Steps, 4, "no adjustment round is needed")
	assert.Equal(t, trace.KindAssign, sol.Steps[3].Kind)
	requirePermutation(t, costs, sol)
}

func TestHungarian_TwoAdjustmentRounds(t *testing.T) {
	costs := [][]float64{{10, 19, 8, 15}, {10, 18, 7, 17}, {13, 16, 9, 14}, {12, 19, 8, 18}}
	sol, err := assignment.Hungarian(assignment.Problem{Costs: costs})
	require.NoError(t, err)

	assert.Equal(t, 49.0, sol.TotalCost)
	var adjusts []float64
	for _, st := range sol.Steps {
		if st.Kind == trace.KindAdjust {
			d, ok := st.Info.Float(trace.KeyMinUncovered)
			require.True(t, ok)
			adjusts = append(adjusts, d)
		}
	}
	assert.Equal(t, []float64{1, 2}, adjusts)
	requirePermutation(t, costs, sol)
}

func TestHungarian_RoundCapReturnsNonConvergence(t *testing.T) {
	costs := [][]float64{{10, 19, 8, 15}, {10, 18, 7, 17}, {13, 16, 9, 14}, {12, 19, 8, 18}}
	_, err := assignment.HungarianWithOptions(assignment.Problem{Costs: costs}, assignment.Options{MaxRounds: 1})

	require.ErrorIs(t, err, assignment.ErrNonConvergence)
	assert.Equal(t, assignment.ErrNonConvergence, err, "returned unmodified")
}

func TestHungarian_CoverSizeEqualsMatchingSize(t *testing.T) {
	costs := [][]float64{{82, 83, 69, 92}, {77, 37, 49, 92}, {11, 69, 5, 86}, {8, 9, 98, 23}}
	sol, err := assignment.Hungarian(assignment.Problem{Costs: costs})
	require.NoError(t, err)
	assert.Equal(t, 140.0, sol.TotalCost)

	lastMatched := 0
	for _, st := range sol.Steps {
		switch st.Kind {
		case trace.KindMatch:
			lastMatched = st.Info[trace.KeyMatchedCount].(int)
		case trace.KindAdjust:
			rows, _ := st.Info.Bools(trace.KeyCoveredRows)
			cols, _ := st.Info.Bools(trace.KeyCoveredCols)
			lines := 0
			for _, b := range append(append([]bool(nil), rows...), cols...) {
				if b {
					lines++
				}
			}
			assert.Equal(t, lastMatched, lines, "step %d", st.Index)
		}
	}
}

func TestHungarian_RandomAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(20240917))
	for n := 1; n <= 6; n++ {
		for trial := 0; trial < 25; trial++ {
			costs := randomCosts(rng, n, 20)
			sol, err := assignment.Hungarian(assignment.Problem{Costs: costs})
			require.NoError(t, err, "n=%d trial=%d costs=%v", n, trial, costs)
			assert.Equal(t, bruteForce(costs), sol.TotalCost, "n=%d trial=%d costs=%v", n, trial, costs)
			requirePermutation(t, costs, sol)
		}
	}
}

func TestHungarian_FractionalCosts(t *testing.T) {
	costs := [][]float64{{0.1, 0.7, 0.3}, {0.25, 0.15, 0.9}, {0.6, 0.35, 0.05}}
	sol, err := assignment.Hungarian(assignment.Problem{Costs: costs})
	require.NoError(t, err)
	assert.InDelta(t, bruteForce(costs), sol.TotalCost, 1e-9)
}

func TestHungarian_AllZerosTieBreak(t *testing.T) {
	sol, err := assignment.Hungarian(assignment.Problem{Costs: [][]float64{{0, 0}, {0, 0}}})
	require.NoError(t, err)

	// Row 1 evicts row 0 from column 0, which moves on to column 1.
	assert.Equal(t, []assignment.Pair{{Row: 0, Col: 1}, {Row: 1, Col: 0}}, sol.Assignments)
}

func TestHungarian_SingleAndEmpty(t *testing.T) {
	sol, err := assignment.Hungarian(assignment.Problem{Costs: [][]float64{{5}}})
	require.NoError(t, err)
	assert.Equal(t, []assignment.Pair{{Row: 0, Col: 0, Cost: 5}}, sol.Assignments)
	assert.Equal(t, 5.0, sol.TotalCost)

	empty, err := assignment.Hungarian(assignment.Problem{})
	require.NoError(t, err)
	assert.Empty(t, empty.Assignments)
	assert.Empty(t, empty.Steps)
	assert.Zero(t, empty.TotalCost)
}

func TestHungarian_DoesNotMutateInput(t *testing.T) {
	costs := [][]float64{{4, 2, 8}, {4, 3, 7}, {3, 1, 6}}
	_, err := assignment.Hungarian(assignment.Problem{Costs: costs})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{4, 2, 8}, {4, 3, 7}, {3, 1, 6}}, costs)
}

func TestHungarian_Deterministic(t *testing.T) {
	p := assignment.Problem{Costs: [][]float64{{82, 83, 69, 92}, {77, 37, 49, 92}, {11, 69, 5, 86}, {8, 9, 98, 23}}}
	a, err := assignment.Hungarian(p)
	require.NoError(t, err)
	b, err := assignment.Hungarian(p)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestHungarian_Errors(t *testing.T) {
	cases := []struct {
		name string
		p    assignment.Problem
		opts assignment.Options
		want error
	}{
		{"non-square", assignment.Problem{Costs: [][]float64{{1, 2}}}, assignment.DefaultOptions(), assignment.ErrDimensionMismatch},
		{"ragged", assignment.Problem{Costs: [][]float64{{1, 2}, {3}}}, assignment.DefaultOptions(), assignment.ErrDimensionMismatch},
		{"empty row", assignment.Problem{Costs: [][]float64{{}}}, assignment.DefaultOptions(), assignment.ErrDimensionMismatch},
		{"NaN", assignment.Problem{Costs: [][]float64{{math.NaN()}}}, assignment.DefaultOptions(), assignment.ErrInvalidValue},
		{"Inf", assignment.Problem{Costs: [][]float64{{1, 2}, {math.Inf(-1), 0}}}, assignment.DefaultOptions(), assignment.ErrInvalidValue},
		{"negative epsilon", assignment.Problem{Costs: [][]float64{{1}}}, assignment.Options{Epsilon: -1}, assignment.ErrBadOptions},
		{"negative rounds", assignment.Problem{Costs: [][]float64{{1}}}, assignment.Options{MaxRounds: -1}, assignment.ErrBadOptions},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := assignment.HungarianWithOptions(c.p, c.opts)
			assert.ErrorIs(t, err, c.want)
		})
	}
}
