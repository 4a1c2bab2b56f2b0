package assignment

// lineCover derives a minimum set of lines covering every zero edge from a
// maximum matching.
//
// Unmatched rows are marked, then columns reachable by a zero edge from a
// marked row, then the rows matched to those columns, until nothing changes.
// Covered rows are the unmarked rows and covered columns the marked columns;
// by König's theorem their count equals the matching size.
//
// Complexity: O(V + E).
func lineCover(adj [][]int, rowMate []int, cols int) (coveredRows, coveredCols []bool) {
	var (
		n          = len(adj)
		colOwner   = make([]int, cols)
		markedRows = make([]bool, n)
		markedCols = make([]bool, cols)
		queue      = make([]int, 0, n)
	)
	for j := range colOwner {
		colOwner[j] = -1
	}
	for r, c := range rowMate {
		if c >= 0 {
			colOwner[c] = r
		}
	}
	for r, c := range rowMate {
		if c < 0 {
			markedRows[r] = true
			queue = append(queue, r)
		}
	}
	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]
		for _, c := range adj[r] {
			if markedCols[c] {
				continue
			}
			markedCols[c] = true
			if owner := colOwner[c]; owner >= 0 && !markedRows[owner] {
				markedRows[owner] = true
				queue = append(queue, owner)
			}
		}
	}

	coveredRows = make([]bool, n)
	for i, marked := range markedRows {
		coveredRows[i] = !marked
	}

	return coveredRows, markedCols
}
