package assignment

import (
	"math"

	"github.com/katalvlaran/transportation/matrix"
	"github.com/katalvlaran/transportation/trace"
)

// Hungarian returns a minimum-cost assignment using DefaultOptions.
func Hungarian(p Problem) (Solution, error) {
	return HungarianWithOptions(p, DefaultOptions())
}

// HungarianWithOptions solves p exactly with the Hungarian method.
//
// Stages:
//  1. reduce-rows: subtract each row minimum.
//  2. reduce-cols: subtract each column minimum.
//  3. match: maximum matching over zero cells (|v| ≤ Epsilon). A perfect
//     matching ends the loop.
//  4. adjust: cover all zeros with the minimum line cover, subtract the
//     smallest uncovered value from uncovered cells and add it at cells
//     covered twice; then back to 3.
//  5. assign: read the matched pairs against the original costs.
//
// Works on a private matrix.Dense copy; p is never mutated.
//
// Errors: ErrBadOptions, ErrDimensionMismatch, ErrInvalidValue,
// ErrNonConvergence (more than MaxRounds adjustments, or no positive
// uncovered minimum).
//
// Complexity: O(n⁵) worst case, O(n³) typical.
func HungarianWithOptions(p Problem, opts Options) (Solution, error) {
	if err := validateOptions(opts); err != nil {
		return Solution{}, err
	}
	if err := Validate(p); err != nil {
		return Solution{}, err
	}
	n := len(p.Costs)
	if n == 0 {
		return emptySolution(MethodHungarian), nil
	}
	eps := opts.Epsilon
	if eps == 0 {
		eps = DefaultEpsilon
	}
	maxRounds := opts.MaxRounds
	if maxRounds == 0 {
		maxRounds = n * n
	}

	work, err := matrix.NewDenseFrom(p.Costs)
	if err != nil {
		return Solution{}, ErrInvalidValue
	}
	original := work.Clone()
	rec := trace.NewRecorder(MethodHungarian, 2*n+3)

	// Stage 1 & 2: reductions.
	if err = reduce(work, rec); err != nil {
		return Solution{}, err
	}

	// Stage 3 & 4: match, cover, adjust.
	var rowMate []int
	for round := 0; ; round++ {
		adj := zeroAdjacency(work, eps)
		var size int
		rowMate, size = MaxMatching(adj, n)
		rec.Record(trace.KindMatch, nil, nil, nil, trace.Info{
			trace.KeyMatching:     append([]int(nil), rowMate...),
			trace.KeyMatchedCount: size,
			trace.KeyCurrentCosts: work.ToRows(),
		})
		if size == n {
			break
		}
		if round >= maxRounds {
			return Solution{}, ErrNonConvergence
		}

		coveredRows, coveredCols := lineCover(adj, rowMate, n)
		delta, ok := minUncovered(work, coveredRows, coveredCols)
		if !ok || delta <= 0 {
			return Solution{}, ErrNonConvergence
		}
		if err = work.Apply(func(i, j int, v float64) float64 {
			switch {
			case !coveredRows[i] && !coveredCols[j]:
				return v - delta
			case coveredRows[i] && coveredCols[j]:
				return v + delta
			}
			return v
		}); err != nil {
			return Solution{}, ErrNonConvergence
		}
		rec.Record(trace.KindAdjust, nil, nil, nil, trace.Info{
			trace.KeyCoveredRows:   coveredRows,
			trace.KeyCoveredCols:   coveredCols,
			trace.KeyMinUncovered:  delta,
			trace.KeyAdjustedCosts: work.ToRows(),
		})
	}

	// Stage 5: read out against the original costs.
	sol := Solution{Method: MethodHungarian, Assignments: make([]Pair, n)}
	cells := make([]trace.CostCell, n)
	for i, j := range rowMate {
		c, err := original.At(i, j)
		if err != nil {
			return Solution{}, err
		}
		sol.Assignments[i] = Pair{Row: i, Col: j, Cost: c}
		cells[i] = trace.CostCell{Row: i, Col: j, Cost: c}
		sol.TotalCost += c
	}
	rec.Record(trace.KindAssign, nil, nil, nil, trace.Info{
		trace.KeyAssignments: cells,
		trace.KeyTotalCost:   sol.TotalCost,
	})
	sol.Steps = rec.Steps()

	return sol, nil
}

// reduce subtracts row minima, then column minima, recording one step each.
func reduce(work *matrix.Dense, rec *trace.Recorder) error {
	var (
		n        = work.Rows()
		original = work.ToRows()
		rowMins  = make([]float64, n)
		colMins  = make([]float64, n)
	)
	var err error
	for i := 0; i < n; i++ {
		if rowMins[i], err = work.RowMin(i); err != nil {
			return err
		}
		if err = work.AddRow(i, -rowMins[i]); err != nil {
			return err
		}
	}
	rec.Record(trace.KindReduceRows, nil, nil, nil, trace.Info{
		trace.KeyOriginalCosts: original,
		trace.KeyRowMins:       rowMins,
		trace.KeyReducedCosts:  work.ToRows(),
	})

	for j := 0; j < n; j++ {
		if colMins[j], err = work.ColMin(j); err != nil {
			return err
		}
		if err = work.AddCol(j, -colMins[j]); err != nil {
			return err
		}
	}
	rec.Record(trace.KindReduceCols, nil, nil, nil, trace.Info{
		trace.KeyColMins:      colMins,
		trace.KeyReducedCosts: work.ToRows(),
	})

	return nil
}

// zeroAdjacency lists, per row, the columns holding a zero in ascending order.
func zeroAdjacency(work *matrix.Dense, eps float64) [][]int {
	adj := make([][]int, work.Rows())
	work.Do(func(i, j int, v float64) bool {
		if math.Abs(v) <= eps {
			adj[i] = append(adj[i], j)
		}
		return true
	})

	return adj
}

// minUncovered returns the smallest value in a cell covered by neither a row
// nor a column line; ok is false when every cell is covered.
func minUncovered(work *matrix.Dense, coveredRows, coveredCols []bool) (float64, bool) {
	var (
		best  = math.Inf(1)
		found bool
	)
	work.Do(func(i, j int, v float64) bool {
		if !coveredRows[i] && !coveredCols[j] && v < best {
			best, found = v, true
		}
		return true
	})

	return best, found
}
