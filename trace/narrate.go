package trace

import (
	"fmt"
	"strings"
)

// Describe renders a one-paragraph English narrative of the step from its
// structured fields. Rows and columns are shown 1-based, as a reader counts
// origins and destinations.
func (s Step) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Step %d", s.Index)
	if s.Method != "" {
		fmt.Fprintf(&b, " (%s)", s.Method)
	}
	b.WriteString(": ")

	switch s.Kind {
	case KindAllocate:
		describeAllocation(&b, s)
	case KindReduceRows:
		mins, _ := s.Info.Floats(KeyRowMins)
		fmt.Fprintf(&b, "subtract each row minimum %v so every row holds a zero.", mins)
	case KindReduceCols:
		mins, _ := s.Info.Floats(KeyColMins)
		fmt.Fprintf(&b, "subtract each column minimum %v so every column holds a zero.", mins)
	case KindMatch:
		matched, _ := s.Info[KeyMatchedCount].(int)
		matching, _ := s.Info[KeyMatching].([]int)
		fmt.Fprintf(&b, "%d of %d rows can be assigned on zero cells.", matched, len(matching))
	case KindAdjust:
		lines := countTrue(s.Info, KeyCoveredRows) + countTrue(s.Info, KeyCoveredCols)
		delta, _ := s.Info.Float(KeyMinUncovered)
		fmt.Fprintf(&b, "cover all zeros with %d lines; subtract %g from uncovered cells and add it at intersections.", lines, delta)
	case KindAssign:
		total, _ := s.Info.Float(KeyTotalCost)
		fmt.Fprintf(&b, "read the assignment against the original costs, total %g.", total)
	default:
		fmt.Fprintf(&b, "%s.", s.Kind)
	}

	return b.String()
}

func describeAllocation(b *strings.Builder, s Step) {
	c := s.Chosen
	if c == nil {
		b.WriteString("no allocation.")
		return
	}
	fmt.Fprintf(b, "ship %g units from origin %d to destination %d at unit cost %g (%g).",
		c.Quantity, c.Row+1, c.Col+1, c.Cost, c.Quantity*c.Cost)
	if line, ok := s.Info[KeySelectedLine].(LinePenalty); ok {
		kind := "column"
		if line.IsRow {
			kind = "row"
		}
		fmt.Fprintf(b, " Largest penalty %g on %s %d.", line.Penalty, kind, line.Index+1)
	}
	if c.Row < len(s.RemainingSupplies) && s.RemainingSupplies[c.Row] == 0 {
		fmt.Fprintf(b, " Origin %d is exhausted.", c.Row+1)
	}
	if c.Col < len(s.RemainingDemands) && s.RemainingDemands[c.Col] == 0 {
		fmt.Fprintf(b, " Destination %d is satisfied.", c.Col+1)
	}
}

func countTrue(in Info, key string) int {
	flags, _ := in.Bools(key)
	var n int
	for _, f := range flags {
		if f {
			n++
		}
	}

	return n
}
