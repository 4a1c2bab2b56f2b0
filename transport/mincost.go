package transport

import (
	"math"

	"github.com/katalvlaran/transportation/trace"
)

// MinimumCost builds a feasible solution by always filling the cheapest
// active cell.
//
// Algorithm:
//  1. Balance p; every row and column starts active.
//  2. Scan active cells row-major; the first strict minimum wins ties
//     (earliest row, then earliest column).
//  3. Ship q = min(supply, demand) there and record one step, degenerate
//     zero-quantity allocations included.
//  4. Deactivate the row and/or column whose remaining value is exactly 0;
//     both may go in the same step.
//  5. Stop when no active cell is left, or after m·n iterations.
//
// Step payload: availableCells, selectedCost, tiedCells, supplyBefore,
// demandBefore, suppliesBefore, demandsBefore, cumulativeCost.
//
// Complexity: O((m + n)·m·n).
func MinimumCost(p Problem) (Solution, error) {
	pr, err := prepare(p)
	if err != nil {
		return Solution{}, err
	}

	return minimumCost(pr, 0), nil
}

// minimumCost runs the heuristic with an iteration cap (0 = m·n).
func minimumCost(pr prepared, maxIter int) Solution {
	limit := pr.m * pr.n
	if maxIter > 0 {
		limit = maxIter
	}
	var (
		l   = newLedger(pr.balanced)
		rec = trace.NewRecorder(MinimumCostMethod.String(), pr.m+pr.n)
	)
	for iter := 0; iter < limit; iter++ {
		var (
			best      = math.Inf(1)
			bRow      = -1
			bCol      = -1
			available []trace.CostCell
		)
		for i := 0; i < pr.m; i++ {
			if !l.activeRows[i] {
				continue
			}
			for j := 0; j < pr.n; j++ {
				if !l.activeCols[j] {
					continue
				}
				c := l.costs[i][j]
				available = append(available, trace.CostCell{Row: i, Col: j, Cost: c})
				if c < best {
					best, bRow, bCol = c, i, j
				}
			}
		}
		if bRow < 0 {
			break
		}

		info := trace.Info{
			trace.KeyAvailableCells: available,
			trace.KeySelectedCost:   best,
			trace.KeyTiedCells:      tiedWith(available, bRow, bCol, best),
			trace.KeySupplyBefore:   l.supply[bRow],
			trace.KeyDemandBefore:   l.demand[bCol],
			trace.KeySuppliesBefore: trace.CloneFloats(l.supply),
			trace.KeyDemandsBefore:  trace.CloneFloats(l.demand),
		}
		cell := l.take(bRow, bCol)
		info[trace.KeyCumulativeCost] = l.total
		rec.Record(trace.KindAllocate, &cell, l.supply, l.demand, info)

		l.deactivateExhausted(bRow, bCol, 0)
	}

	return l.solution(pr, MinimumCostMethod, rec.Steps())
}

// tiedWith lists the other cells sharing the selected minimum cost.
func tiedWith(cells []trace.CostCell, row, col int, cost float64) []trace.CostCell {
	var out []trace.CostCell
	for _, c := range cells {
		if c.Cost == cost && (c.Row != row || c.Col != col) {
			out = append(out, c)
		}
	}

	return out
}
