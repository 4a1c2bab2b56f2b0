package assignment

// frame is one level of the augmenting-path search: the row being tried and
// the next adjacency position to look at.
type frame struct {
	row  int
	next int
}

// MaxMatching computes a maximum bipartite matching (Kuhn's algorithm).
//
// adj[r] lists the columns row r may take, in the order they are tried; cols
// is the number of columns. Rows are processed in index order. It returns
// rowMate (row -> column, or -1) and the matching size.
//
// The search is an explicit depth-first stack instead of recursion: a row
// either takes a free column or evicts the column's owner, which then looks
// for another column. A visited-columns set bounds each search to O(E).
//
// Complexity: O(V·E).
func MaxMatching(adj [][]int, cols int) ([]int, int) {
	var (
		rowMate  = make([]int, len(adj))
		colOwner = make([]int, cols)
		visited  = make([]bool, cols)
		size     int
	)
	for i := range rowMate {
		rowMate[i] = -1
	}
	for j := range colOwner {
		colOwner[j] = -1
	}
	for r := range adj {
		for j := range visited {
			visited[j] = false
		}
		if augment(r, adj, rowMate, colOwner, visited) {
			size++
		}
	}

	return rowMate, size
}

// augment searches an alternating path from root to a free column and flips
// it. path[k] is the column frame k is trying; on success every frame's row
// takes its path column.
func augment(root int, adj [][]int, rowMate, colOwner []int, visited []bool) bool {
	var (
		stack = []frame{{row: root}}
		path  = make([]int, 0, 4)
	)
	for len(stack) > 0 {
		k := len(stack) - 1
		top := &stack[k]
		if top.next >= len(adj[top.row]) {
			// Dead end: drop the frame and the column that led to it.
			stack = stack[:k]
			if k > 0 {
				path = path[:k-1]
			}
			continue
		}
		c := adj[top.row][top.next]
		top.next++
		if c < 0 || c >= len(visited) || visited[c] {
			continue
		}
		visited[c] = true
		path = append(path, c)

		owner := colOwner[c]
		if owner < 0 {
			for i, f := range stack {
				rowMate[f.row] = path[i]
				colOwner[path[i]] = f.row
			}

			return true
		}
		stack = append(stack, frame{row: owner})
	}

	return false
}
