package transport

import "github.com/katalvlaran/transportation/trace"

// NorthwestCorner builds a feasible solution by walking from the top-left
// cell, ignoring costs.
//
// Algorithm:
//  1. Balance p; cursor (row, col) = (0, 0).
//  2. While row < m and col < n: ship q = min(supply[row], demand[col]) on
//     (row, col) and record one step.
//  3. If supply[row] reached exactly 0 advance row, otherwise advance col.
//     When both reach 0 together the row advances; the next step is then a
//     degenerate zero-quantity allocation in the same column.
//
// Step payload: position, supplyBefore, demandBefore, suppliesBefore,
// demandsBefore, cumulativeCost.
//
// Complexity: O(m + n) steps, O((m + n)·(m + n)) including snapshots.
func NorthwestCorner(p Problem) (Solution, error) {
	pr, err := prepare(p)
	if err != nil {
		return Solution{}, err
	}

	return northwestCorner(pr), nil
}

func northwestCorner(pr prepared) Solution {
	var (
		l        = newLedger(pr.balanced)
		rec      = trace.NewRecorder(NorthwestCornerMethod.String(), pr.m+pr.n)
		row, col int
	)
	for row < pr.m && col < pr.n {
		before := trace.Info{
			trace.KeyPosition:       trace.Position{Row: row, Col: col},
			trace.KeySupplyBefore:   l.supply[row],
			trace.KeyDemandBefore:   l.demand[col],
			trace.KeySuppliesBefore: trace.CloneFloats(l.supply),
			trace.KeyDemandsBefore:  trace.CloneFloats(l.demand),
		}
		cell := l.take(row, col)
		before[trace.KeyCumulativeCost] = l.total
		rec.Record(trace.KindAllocate, &cell, l.supply, l.demand, before)

		// Row wins the tie so traces stay reproducible.
		if l.supply[row] == 0 {
			row++
		} else {
			col++
		}
	}

	return l.solution(pr, NorthwestCornerMethod, rec.Steps())
}
