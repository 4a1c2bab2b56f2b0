package transport

import "gonum.org/v1/gonum/floats"

// IsBalanced reports whether total supply equals total demand exactly.
// No tolerance is applied.
func IsBalanced(p Problem) bool {
	return floats.Sum(p.Supplies) == floats.Sum(p.Demands)
}

// Balance returns a balanced copy of p and the kind of dummy line it added.
//
//   - supply > demand: one dummy destination (last column) with demand equal
//     to the surplus and cost 0 in every row;
//   - demand > supply: one dummy origin (last row) with supply equal to the
//     deficit and cost 0 in every column;
//   - otherwise: an unmodified deep copy and NoDummy.
//
// At most one dummy line is ever added. p is not mutated.
//
// Complexity: O(m·n).
func Balance(p Problem) (Problem, DummyKind) {
	var (
		out    = p.Clone()
		supply = floats.Sum(p.Supplies)
		demand = floats.Sum(p.Demands)
	)
	switch {
	case supply > demand:
		out.Demands = append(out.Demands, supply-demand)
		for i := range out.Costs {
			out.Costs[i] = append(out.Costs[i], 0)
		}

		return out, DummyDestination
	case demand > supply:
		out.Supplies = append(out.Supplies, demand-supply)
		out.Costs = append(out.Costs, make([]float64, len(p.Demands)))

		return out, DummyOrigin
	}

	return out, NoDummy
}

// Clone returns a deep copy of p.
func (p Problem) Clone() Problem {
	out := Problem{
		Supplies: append([]float64(nil), p.Supplies...),
		Demands:  append([]float64(nil), p.Demands...),
		Costs:    make([][]float64, len(p.Costs)),
	}
	for i, row := range p.Costs {
		out.Costs[i] = append([]float64(nil), row...)
	}

	return out
}
