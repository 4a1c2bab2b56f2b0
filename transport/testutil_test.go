package transport_test

import (
	"testing"

	"github.com/katalvlaran/transportation/transport"
	"github.com/stretchr/testify/require"
)

// feasTol is the tolerance used when checking row/column sums of solutions.
const feasTol = 1e-9

// fixture is a named problem with the totals each heuristic must reach.
type fixture struct {
	name                 string
	p                    transport.Problem
	nwc, minCost, vogel  float64
	nwcSteps, vogelSteps int
}

// fixtures returns fresh copies on every call so tests may not leak edits.
func fixtures() []fixture {
	return []fixture{
		{
			name: "balanced3x3",
			p: transport.Problem{
				Supplies: []float64{20, 30, 10},
				Demands:  []float64{10, 25, 25},
				Costs:    [][]float64{{2, 3, 1}, {5, 4, 8}, {7, 6, 9}},
			},
			nwc: 320, minCost: 225, vogel: 225, nwcSteps: 5, vogelSteps: 5,
		},
		{
			name: "textbook3x4",
			p: transport.Problem{
				Supplies: []float64{7, 9, 18},
				Demands:  []float64{5, 8, 7, 14},
				Costs:    [][]float64{{19, 30, 50, 10}, {70, 30, 40, 60}, {40, 8, 70, 20}},
			},
			nwc: 1015, minCost: 814, vogel: 779, nwcSteps: 6, vogelSteps: 6,
		},
		{
			name: "supplySurplus",
			p: transport.Problem{
				Supplies: []float64{30, 25, 35},
				Demands:  []float64{20, 30, 25},
				Costs:    [][]float64{{8, 6, 10}, {9, 12, 13}, {14, 9, 16}},
			},
			nwc: 845, minCost: 790, vogel: 720, nwcSteps: 6, vogelSteps: 6,
		},
		{
			name: "demandSurplus",
			p: transport.Problem{
				Supplies: []float64{15, 25},
				Demands:  []float64{10, 10, 30},
				Costs:    [][]float64{{4, 6, 8}, {5, 3, 7}},
			},
			nwc: 225, minCost: 255, vogel: 215, nwcSteps: 5, vogelSteps: 5,
		},
		{
			name: "factories3x4",
			p: transport.Problem{
				Supplies: []float64{50, 60, 50},
				Demands:  []float64{30, 40, 55, 35},
				Costs:    [][]float64{{16, 18, 21, 12}, {17, 19, 14, 13}, {32, 11, 15, 10}},
			},
			nwc: 2355, minCost: 2220, vogel: 2095, nwcSteps: 6, vogelSteps: 6,
		},
		{
			name: "degenerate2x2",
			p: transport.Problem{
				Supplies: []float64{10, 10},
				Demands:  []float64{10, 10},
				Costs:    [][]float64{{1, 2}, {3, 4}},
			},
			nwc: 50, minCost: 50, vogel: 50, nwcSteps: 3, vogelSteps: 2,
		},
	}
}

// cells flattens the chosen cells of a trace as (row, col, quantity).
func cells(s transport.Solution) [][3]float64 {
	out := make([][3]float64, 0, len(s.Steps))
	for _, st := range s.Steps {
		if st.Chosen == nil {
			continue
		}
		out = append(out, [3]float64{float64(st.Chosen.Row), float64(st.Chosen.Col), st.Chosen.Quantity})
	}

	return out
}

// requireFeasible asserts row/column sums and the total-cost identity.
func requireFeasible(t *testing.T, s transport.Solution) {
	t.Helper()
	require.NoError(t, transport.CheckFeasible(s, feasTol))
}
