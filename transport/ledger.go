package transport

import "github.com/katalvlaran/transportation/trace"

// ledger is the mutable state threaded through one heuristic run: remaining
// supply and demand, active-line flags, the allocation grid and the running
// cost.
//
// Mutation contract: a ledger is created per call, owned by exactly one
// solver, and changed only through take and the deactivate helpers. Anything
// handed to the trace is a copy, so the solver stays a pure function of its
// input problem.
type ledger struct {
	costs      [][]float64
	supply     []float64
	demand     []float64
	activeRows []bool
	activeCols []bool
	allocs     [][]*Allocation
	total      float64
}

// newLedger seeds the state from a balanced problem. All lines start active.
func newLedger(bp Problem) *ledger {
	l := &ledger{
		costs:      bp.Costs,
		supply:     trace.CloneFloats(bp.Supplies),
		demand:     trace.CloneFloats(bp.Demands),
		activeRows: make([]bool, len(bp.Supplies)),
		activeCols: make([]bool, len(bp.Demands)),
		allocs:     make([][]*Allocation, len(bp.Supplies)),
	}
	for i := range l.activeRows {
		l.activeRows[i] = true
		l.allocs[i] = make([]*Allocation, len(bp.Demands))
	}
	for j := range l.activeCols {
		l.activeCols[j] = true
	}

	return l
}

// take ships min(supply[row], demand[col]) on (row, col), deducts it, adds
// its cost to the total and returns the recorded cell. A prior allocation on
// the same cell is increased rather than overwritten.
func (l *ledger) take(row, col int) trace.Cell {
	q := l.supply[row]
	if l.demand[col] < q {
		q = l.demand[col]
	}
	c := l.costs[row][col]
	if a := l.allocs[row][col]; a != nil {
		a.Quantity += q
	} else {
		l.allocs[row][col] = &Allocation{Row: row, Col: col, Quantity: q, Cost: c}
	}
	l.total += q * c
	l.supply[row] -= q
	l.demand[col] -= q

	return trace.Cell{Row: row, Col: col, Quantity: q, Cost: c}
}

// deactivateExhausted turns off row and/or col when their remaining value is
// at or below tol; values at or below tol are clamped to exactly 0. With
// tol == 0 only exact zeros qualify.
func (l *ledger) deactivateExhausted(row, col int, tol float64) {
	if l.supply[row] <= tol {
		l.supply[row] = 0
		l.activeRows[row] = false
	}
	if l.demand[col] <= tol {
		l.demand[col] = 0
		l.activeCols[col] = false
	}
}

// activeCount returns the number of true flags.
func activeCount(flags []bool) int {
	var n int
	for _, f := range flags {
		if f {
			n++
		}
	}

	return n
}

// solution packages the ledger into a Solution.
func (l *ledger) solution(pr prepared, method Method, steps []trace.Step) Solution {
	return Solution{
		Method:      method,
		Allocations: l.allocs,
		TotalCost:   l.total,
		IsBalanced:  pr.isBalanced,
		Balanced:    pr.balanced,
		Dummy:       pr.dummy,
		Steps:       steps,
	}
}

// prepared is a validated, balanced problem ready for a heuristic.
type prepared struct {
	balanced   Problem
	dummy      DummyKind
	isBalanced bool
	m, n       int
}

// prepare validates p and balances it.
func prepare(p Problem) (prepared, error) {
	if err := Validate(p); err != nil {
		return prepared{}, err
	}
	bp, dummy := Balance(p)

	return prepared{
		balanced:   bp,
		dummy:      dummy,
		isBalanced: IsBalanced(p),
		m:          len(bp.Supplies),
		n:          len(bp.Demands),
	}, nil
}
