package assignment

import (
	"github.com/katalvlaran/transportation/trace"
	"github.com/katalvlaran/transportation/transport"
)

// ToTransport views p as a transport problem with unit supplies and demands
// over a copy of the same costs.
func ToTransport(p Problem) transport.Problem {
	n := len(p.Costs)
	tp := transport.Problem{
		Supplies: make([]float64, n),
		Demands:  make([]float64, n),
		Costs:    make([][]float64, n),
	}
	for i, row := range p.Costs {
		tp.Supplies[i] = 1
		tp.Demands[i] = 1
		tp.Costs[i] = append([]float64(nil), row...)
	}

	return tp
}

// MinimumCost assigns rows greedily by running the transport Minimum Cost
// method on ToTransport(p). Unit allocations become pairs; degenerate zero
// allocations are dropped. The result is feasible but not necessarily optimal.
//
// Steps are the transport allocation steps relabeled MethodMinimumCost.
func MinimumCost(p Problem) (Solution, error) {
	if err := Validate(p); err != nil {
		return Solution{}, err
	}
	if len(p.Costs) == 0 {
		return emptySolution(MethodMinimumCost), nil
	}

	ts, err := transport.MinimumCost(ToTransport(p))
	if err != nil {
		return Solution{}, err
	}

	sol := Solution{
		Method:      MethodMinimumCost,
		Assignments: make([]Pair, 0, len(p.Costs)),
		Steps:       trace.Relabel(ts.Steps, MethodMinimumCost),
	}
	for _, row := range ts.Allocations {
		for _, a := range row {
			if a == nil || a.Quantity < 0.5 {
				continue
			}
			sol.Assignments = append(sol.Assignments, Pair{Row: a.Row, Col: a.Col, Cost: a.Cost})
			sol.TotalCost += a.Cost
		}
	}

	return sol, nil
}
