package trace

// Replay rebuilds the rows×cols allocation grid after the first upTo steps,
// accumulating the quantity of every KindAllocate step's chosen cell. upTo is
// clamped to [0, len(steps)]; cells outside the grid are ignored.
//
// This is how a renderer shows "the matrix at step k" without rerunning a solver.
//
// Complexity: O(rows*cols + upTo).
func Replay(steps []Step, rows, cols, upTo int) [][]float64 {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	grid := make([][]float64, rows)
	for i := range grid {
		grid[i] = make([]float64, cols)
	}
	if upTo > len(steps) {
		upTo = len(steps)
	}
	var (
		k int
		c *Cell
	)
	for k = 0; k < upTo; k++ {
		if steps[k].Kind != KindAllocate || steps[k].Chosen == nil {
			continue
		}
		c = steps[k].Chosen
		if c.Row < 0 || c.Row >= rows || c.Col < 0 || c.Col >= cols {
			continue
		}
		grid[c.Row][c.Col] += c.Quantity
	}

	return grid
}

// CostAt sums quantity*cost over the first upTo allocation steps.
func CostAt(steps []Step, upTo int) float64 {
	if upTo > len(steps) {
		upTo = len(steps)
	}
	var total float64
	for k := 0; k < upTo; k++ {
		if c := steps[k].Chosen; steps[k].Kind == KindAllocate && c != nil {
			total += c.Quantity * c.Cost
		}
	}

	return total
}
