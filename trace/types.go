package trace

// Kind classifies a step so renderers can pick a layout without knowing the solver.
type Kind string

const (
	// KindAllocate is a transport allocation on a single cell.
	KindAllocate Kind = "allocate"
	// KindReduceRows is the Hungarian row reduction.
	KindReduceRows Kind = "reduce-rows"
	// KindReduceCols is the Hungarian column reduction.
	KindReduceCols Kind = "reduce-cols"
	// KindMatch is a matching attempt over the zeros of the reduced matrix.
	KindMatch Kind = "match"
	// KindAdjust is a cover-and-adjust round of the Hungarian method.
	KindAdjust Kind = "adjust"
	// KindAssign is the final read-out of an assignment against the original costs.
	KindAssign Kind = "assign"
)

// Payload keys used in Step.Info. Each key always maps to the same shape,
// whatever solver produced it.
const (
	KeySuppliesBefore = "suppliesBefore" // []float64
	KeyDemandsBefore  = "demandsBefore"  // []float64
	KeySupplyBefore   = "supplyBefore"   // float64, remaining supply of the chosen row
	KeyDemandBefore   = "demandBefore"   // float64, remaining demand of the chosen column
	KeyPosition       = "position"       // Position
	KeyCumulativeCost = "cumulativeCost" // float64
	KeyAvailableCells = "availableCells" // []CostCell
	KeyTiedCells      = "tiedCells"      // []CostCell
	KeySelectedCost   = "selectedCost"   // float64
	KeyMode           = "mode"           // string
	KeyRowPenalties   = "rowPenalties"   // []LinePenalty
	KeyColPenalties   = "colPenalties"   // []LinePenalty
	KeySelectedLine   = "selectedLine"   // LinePenalty
	KeyCandidates     = "candidates"     // []CostCell
	KeyOriginalCosts  = "originalCosts"  // [][]float64
	KeyReducedCosts   = "reducedCosts"   // [][]float64
	KeyRowMins        = "rowMins"        // []float64
	KeyColMins        = "colMins"        // []float64
	KeyMatching       = "matching"       // []int, row -> col or -1
	KeyMatchedCount   = "matchedCount"   // int
	KeyCurrentCosts   = "currentCosts"   // [][]float64
	KeyCoveredRows    = "coveredRows"    // []bool
	KeyCoveredCols    = "coveredCols"    // []bool
	KeyMinUncovered   = "minUncovered"   // float64
	KeyAdjustedCosts  = "adjustedCosts"  // [][]float64
	KeyAssignments    = "assignments"    // []CostCell
	KeyTotalCost      = "totalCost"      // float64
)

// Cell is the edge touched by a step: where, how much and at what unit cost.
type Cell struct {
	Row      int     `json:"row"`
	Col      int     `json:"col"`
	Quantity float64 `json:"quantity"`
	Cost     float64 `json:"cost"`
}

// CostCell is a candidate cell with its unit cost.
type CostCell struct {
	Row  int     `json:"row"`
	Col  int     `json:"col"`
	Cost float64 `json:"cost"`
}

// Position is a cursor location.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// LinePenalty is the Vogel penalty of one row or column.
type LinePenalty struct {
	IsRow   bool    `json:"isRow"`
	Index   int     `json:"index"`
	Penalty float64 `json:"penalty"`
}

// Info is the algorithm-specific diagnostic payload of a step.
type Info map[string]any

// Step is one replayable decision of a solver.
type Step struct {
	Index             int       `json:"stepIndex"`
	Kind              Kind      `json:"kind"`
	Method            string    `json:"method"`
	Chosen            *Cell     `json:"chosenCell,omitempty"`
	RemainingSupplies []float64 `json:"remainingSupplies"`
	RemainingDemands  []float64 `json:"remainingDemands"`
	Info              Info      `json:"additionalInfo,omitempty"`
}

// Float returns the float64 stored under key.
func (in Info) Float(key string) (float64, bool) {
	v, ok := in[key].(float64)
	return v, ok
}

// Floats returns the []float64 stored under key.
func (in Info) Floats(key string) ([]float64, bool) {
	v, ok := in[key].([]float64)
	return v, ok
}

// Bools returns the []bool stored under key.
func (in Info) Bools(key string) ([]bool, bool) {
	v, ok := in[key].([]bool)
	return v, ok
}

// Grid returns the [][]float64 stored under key.
func (in Info) Grid(key string) ([][]float64, bool) {
	v, ok := in[key].([][]float64)
	return v, ok
}
