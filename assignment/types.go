package assignment

import (
	"errors"
	"math"

	"github.com/katalvlaran/transportation/matrix"
	"github.com/katalvlaran/transportation/trace"
)

// Method labels stamped on the steps of each solver.
const (
	MethodHungarian   = "hungarian"
	MethodMinimumCost = "assignment-minimum-cost"
)

// DefaultEpsilon is the magnitude under which a reduced cost counts as zero.
const DefaultEpsilon = 1e-9

// Problem is an n×n assignment problem; Costs[i][j] is the cost of giving
// column j to row i.
type Problem struct {
	Costs [][]float64 `json:"costs"`
}

// Pair is one row–column assignment with its original cost.
type Pair struct {
	Row  int     `json:"row"`
	Col  int     `json:"col"`
	Cost float64 `json:"cost"`
}

// Solution lists exactly n pairs, one per row, in row order.
type Solution struct {
	Method      string       `json:"method"`
	Assignments []Pair       `json:"assignments"`
	TotalCost   float64      `json:"totalCost"`
	Steps       []trace.Step `json:"steps"`
}

// Options configures HungarianWithOptions.
//   - Epsilon: |v| ≤ Epsilon is a zero cell (0 means DefaultEpsilon).
//   - MaxRounds: cap on cover-and-adjust rounds (0 means n²).
type Options struct {
	Epsilon   float64
	MaxRounds int
}

// DefaultOptions returns DefaultEpsilon and the automatic round cap.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon}
}

// Validate checks that p.Costs is square with finite entries. A 0×0 matrix
// is valid.
func Validate(p Problem) error {
	if len(p.Costs) == 0 {
		return nil
	}
	m, err := matrix.NewDenseFrom(p.Costs)
	if err != nil {
		if errors.Is(err, matrix.ErrNaNInf) {
			return ErrInvalidValue
		}

		return ErrDimensionMismatch
	}
	if matrix.ValidateSquare(m) != nil {
		return ErrDimensionMismatch
	}

	return nil
}

func validateOptions(opts Options) error {
	if opts.Epsilon < 0 || math.IsNaN(opts.Epsilon) || math.IsInf(opts.Epsilon, 0) {
		return ErrBadOptions
	}
	if opts.MaxRounds < 0 {
		return ErrBadOptions
	}

	return nil
}

// emptySolution is the result for a 0×0 problem.
func emptySolution(method string) Solution {
	return Solution{Method: method, Assignments: []Pair{}, Steps: []trace.Step{}}
}
