package transport

import (
	"math"

	"github.com/katalvlaran/transportation/trace"
)

// Trace modes of a Vogel step.
const (
	vogelModePenalty = "penalty" // line chosen by largest penalty
	vogelModeDirect  = "direct"  // fewer than two active rows or columns: global minimum
)

// Vogel builds a feasible solution with Vogel's Approximation Method using
// DefaultTolerance and the automatic iteration cap.
//
// Algorithm (one step per iteration, while at least one row and one column
// remain active):
//  1. With ≥2 active rows and ≥2 active columns, every active line gets a
//     penalty: second-smallest minus smallest cost over the active cells of
//     that line. The largest penalty wins; ties go to the first line found
//     scanning rows by index, then columns by index.
//  2. In the chosen line the cheapest active cell wins (first by index).
//  3. With fewer than 2 active rows or columns, penalties are undefined and
//     the cheapest active cell overall (row-major, first found) is used.
//  4. Ship q = min(supply, demand); a repeated cell accumulates.
//  5. Remaining values ≤ tolerance are clamped to 0 and their lines
//     deactivated at once, so float residue cannot keep a line alive.
//
// Lines whose initial value is ≤ tolerance start clamped to 0 and inactive.
// Whatever such a line held, and any residue left on the last open line, is
// at most tolerance per line and stays unshipped.
//
// Step payload: mode, rowPenalties, colPenalties, selectedLine (penalty mode
// only), candidates, supplyBefore, demandBefore, suppliesBefore,
// demandsBefore, cumulativeCost.
//
// Errors: ErrNonConvergence when the cap (m·n+m+n) is exceeded.
//
// Complexity: O((m + n)·m·n) time.
func Vogel(p Problem) (Solution, error) {
	pr, err := prepare(p)
	if err != nil {
		return Solution{}, err
	}

	return vogel(pr, DefaultTolerance, 0)
}

// vogelChoice is the decision of one iteration plus what led to it.
type vogelChoice struct {
	row, col   int
	mode       string
	rowPen     []trace.LinePenalty
	colPen     []trace.LinePenalty
	line       *trace.LinePenalty
	candidates []trace.CostCell
}

func vogel(pr prepared, tol float64, maxIter int) (Solution, error) {
	var (
		l     = newLedger(pr.balanced)
		rec   = trace.NewRecorder(VogelMethod.String(), pr.m+pr.n)
		limit = pr.m*pr.n + pr.m + pr.n
	)
	if maxIter > 0 {
		limit = maxIter
	}
	l.clampBelow(tol)

	// Active lines always hold more than tol; once one side has none left,
	// whatever remains on the other side came from sub-tolerance lines.
	for iter := 0; activeCount(l.activeRows) > 0 && activeCount(l.activeCols) > 0; iter++ {
		if iter >= limit {
			return Solution{}, ErrNonConvergence
		}

		choice, ok := l.vogelChoose()
		if !ok {
			break
		}

		info := trace.Info{
			trace.KeyMode:           choice.mode,
			trace.KeyRowPenalties:   choice.rowPen,
			trace.KeyColPenalties:   choice.colPen,
			trace.KeyCandidates:     choice.candidates,
			trace.KeySupplyBefore:   l.supply[choice.row],
			trace.KeyDemandBefore:   l.demand[choice.col],
			trace.KeySuppliesBefore: trace.CloneFloats(l.supply),
			trace.KeyDemandsBefore:  trace.CloneFloats(l.demand),
		}
		if choice.line != nil {
			info[trace.KeySelectedLine] = *choice.line
		}

		cell := l.take(choice.row, choice.col)
		l.deactivateExhausted(choice.row, choice.col, tol)
		info[trace.KeyCumulativeCost] = l.total
		rec.Record(trace.KindAllocate, &cell, l.supply, l.demand, info)
	}

	return l.solution(pr, VogelMethod, rec.Steps()), nil
}

// clampBelow zeroes and deactivates every line whose value is ≤ tol.
func (l *ledger) clampBelow(tol float64) {
	for i, v := range l.supply {
		if v <= tol {
			l.supply[i], l.activeRows[i] = 0, false
		}
	}
	for j, v := range l.demand {
		if v <= tol {
			l.demand[j], l.activeCols[j] = 0, false
		}
	}
}

// vogelChoose picks the next cell; ok is false when no active cell exists.
func (l *ledger) vogelChoose() (vogelChoice, bool) {
	if activeCount(l.activeRows) < 2 || activeCount(l.activeCols) < 2 {
		return l.directChoice()
	}

	ch := vogelChoice{
		mode:   vogelModePenalty,
		rowPen: l.rowPenalties(),
		colPen: l.colPenalties(),
	}
	line, ok := maxPenalty(ch.rowPen, ch.colPen)
	if !ok {
		return l.directChoice()
	}
	ch.line = &line
	ch.candidates = l.lineCells(line)
	best := math.Inf(1)
	for _, c := range ch.candidates {
		if c.Cost < best {
			best, ch.row, ch.col = c.Cost, c.Row, c.Col
		}
	}

	return ch, len(ch.candidates) > 0
}

// directChoice scans every active cell for the global minimum, row-major.
func (l *ledger) directChoice() (vogelChoice, bool) {
	ch := vogelChoice{
		mode:   vogelModeDirect,
		rowPen: []trace.LinePenalty{},
		colPen: []trace.LinePenalty{},
		row:    -1,
		col:    -1,
	}
	best := math.Inf(1)
	for i, rowOn := range l.activeRows {
		if !rowOn {
			continue
		}
		for j, colOn := range l.activeCols {
			if !colOn {
				continue
			}
			c := l.costs[i][j]
			ch.candidates = append(ch.candidates, trace.CostCell{Row: i, Col: j, Cost: c})
			if c < best {
				best, ch.row, ch.col = c, i, j
			}
		}
	}

	return ch, ch.row >= 0
}

// rowPenalties returns the penalty of every active row with ≥2 active cells.
func (l *ledger) rowPenalties() []trace.LinePenalty {
	out := make([]trace.LinePenalty, 0, len(l.activeRows))
	for i, on := range l.activeRows {
		if !on {
			continue
		}
		if p, ok := twoSmallestGap(l.costs[i], l.activeCols); ok {
			out = append(out, trace.LinePenalty{IsRow: true, Index: i, Penalty: p})
		}
	}

	return out
}

// colPenalties returns the penalty of every active column with ≥2 active cells.
func (l *ledger) colPenalties() []trace.LinePenalty {
	out := make([]trace.LinePenalty, 0, len(l.activeCols))
	col := make([]float64, len(l.activeRows))
	for j, on := range l.activeCols {
		if !on {
			continue
		}
		for i := range l.activeRows {
			col[i] = l.costs[i][j]
		}
		if p, ok := twoSmallestGap(col, l.activeRows); ok {
			out = append(out, trace.LinePenalty{IsRow: false, Index: j, Penalty: p})
		}
	}

	return out
}

// twoSmallestGap returns second-smallest minus smallest of costs[k] over
// active[k]; ok is false with fewer than two eligible entries.
func twoSmallestGap(costs []float64, active []bool) (float64, bool) {
	var (
		lo, hi = math.Inf(1), math.Inf(1)
		count  int
	)
	for k, on := range active {
		if !on {
			continue
		}
		count++
		switch c := costs[k]; {
		case c < lo:
			lo, hi = c, lo
		case c < hi:
			hi = c
		}
	}
	if count < 2 {
		return 0, false
	}

	return hi - lo, true
}

// maxPenalty returns the first line carrying the largest penalty, rows first.
func maxPenalty(rows, cols []trace.LinePenalty) (trace.LinePenalty, bool) {
	var (
		best  trace.LinePenalty
		found bool
	)
	for _, set := range [][]trace.LinePenalty{rows, cols} {
		for _, p := range set {
			if !found || p.Penalty > best.Penalty {
				best, found = p, true
			}
		}
	}

	return best, found
}

// lineCells lists the active cells of a row or column in index order.
func (l *ledger) lineCells(line trace.LinePenalty) []trace.CostCell {
	var out []trace.CostCell
	if line.IsRow {
		for j, on := range l.activeCols {
			if on {
				out = append(out, trace.CostCell{Row: line.Index, Col: j, Cost: l.costs[line.Index][j]})
			}
		}

		return out
	}
	for i, on := range l.activeRows {
		if on {
			out = append(out, trace.CostCell{Row: i, Col: line.Index, Cost: l.costs[i][line.Index]})
		}
	}

	return out
}
