package transport

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/transportation/trace"
)

// Problem is a transportation problem: Costs[i][j] is the unit cost from
// origin i to destination j. Problems are treated as immutable values.
type Problem struct {
	Supplies []float64   `json:"supplies"`
	Demands  []float64   `json:"demands"`
	Costs    [][]float64 `json:"costs"`
}

// Allocation is the quantity shipped on one origin–destination edge.
type Allocation struct {
	Row      int     `json:"row"`
	Col      int     `json:"col"`
	Quantity float64 `json:"quantity"`
	Cost     float64 `json:"cost"`
}

// DummyKind tells which synthetic line, if any, Balance added.
type DummyKind int

const (
	// NoDummy means the problem was already balanced.
	NoDummy DummyKind = iota
	// DummyOrigin is an extra last row absorbing a demand surplus.
	DummyOrigin
	// DummyDestination is an extra last column absorbing a supply surplus.
	DummyDestination
)

// String implements fmt.Stringer.
func (d DummyKind) String() string {
	switch d {
	case DummyOrigin:
		return "dummy-origin"
	case DummyDestination:
		return "dummy-destination"
	default:
		return "none"
	}
}

// MarshalText encodes the kind by name.
func (d DummyKind) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// Solution is the outcome of a transport heuristic.
//
// Allocations is indexed over the balanced problem. A nil entry means nothing
// was recorded on that cell; a non-nil entry with Quantity 0 is a degenerate
// allocation.
type Solution struct {
	Method      Method          `json:"method"`
	Allocations [][]*Allocation `json:"allocations"`
	TotalCost   float64         `json:"totalCost"`
	IsBalanced  bool            `json:"isBalanced"`
	Balanced    Problem         `json:"balanced"`
	Dummy       DummyKind       `json:"dummy"`
	Steps       []trace.Step    `json:"steps"`
}

// Method selects a heuristic for Solve.
type Method int

const (
	// NorthwestCornerMethod ignores costs and fills cells from the top-left corner.
	NorthwestCornerMethod Method = iota + 1
	// MinimumCostMethod fills the cheapest active cell first.
	MinimumCostMethod
	// VogelMethod fills the cheapest cell of the line with the largest penalty.
	VogelMethod
)

// String returns the canonical method name, also used to label trace steps.
func (m Method) String() string {
	switch m {
	case NorthwestCornerMethod:
		return "northwest-corner"
	case MinimumCostMethod:
		return "minimum-cost"
	case VogelMethod:
		return "vogel"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// MarshalText encodes the method by name.
func (m Method) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// ParseMethod maps a user-facing name (case-insensitive) to a Method.
// Accepted: northwest-corner|northwest|nwc, minimum-cost|min-cost|mincost,
// vogel|vam.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "northwest-corner", "northwest", "nwc":
		return NorthwestCornerMethod, nil
	case "minimum-cost", "min-cost", "mincost":
		return MinimumCostMethod, nil
	case "vogel", "vam":
		return VogelMethod, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// DefaultTolerance is the residue under which Vogel treats a remaining
// supply or demand as exhausted.
const DefaultTolerance = 0.01

// Options configures Solve.
//   - Method: heuristic to run (required).
//   - Tolerance: Vogel residue threshold; 0 means DefaultTolerance.
//   - MaxIterations: iteration cap for Minimum Cost and Vogel; 0 means the
//     solver's own cap (m·n for Minimum Cost, m·n+m+n for Vogel).
type Options struct {
	Method        Method
	Tolerance     float64
	MaxIterations int
}

// DefaultOptions returns Vogel with the default tolerance and automatic caps.
func DefaultOptions() Options {
	return Options{Method: VogelMethod, Tolerance: DefaultTolerance}
}
