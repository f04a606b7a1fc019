package solver

import "github.com/matzehuels/gridroute/pkg/grid"

// LikelyCutVertex reports whether marking p as visited could plausibly
// have split the unvisited region. It is a cheap heuristic gate in front
// of the full connectivity traversal, not a proof: cells with at most
// one unvisited neighbor cannot separate anything, and a corner whose
// two unvisited neighbors both exist only touches one pocket of the
// grid. Everything else gets the full check before the move commits.
func LikelyCutVertex(p grid.Point, s grid.Size, visited *grid.Bitset) bool {
	n := countUnvisitedNeighbors(p, s, visited)
	if n <= 1 {
		return false
	}
	if s.IsCorner(p) && n == 2 {
		return false
	}
	return true
}

// RemainingConnected reports whether the unvisited cells form a single
// 4-connected component. unvisited must equal the exact number of
// unmarked cells; counts of 0 or 1 are trivially connected.
func RemainingConnected(s grid.Size, visited *grid.Bitset, unvisited int) bool {
	return remainingConnected(s, visited, grid.NewBitset(s), unvisited)
}

// remainingConnected is the allocation-free variant used by the search
// loop: seen is caller-owned scratch and is reset here. The traversal is
// an iterative DFS over unvisited cells that bails out the moment the
// reachable count hits unvisited, so proving connectivity never scans
// the rest of the grid.
func remainingConnected(s grid.Size, visited, seen *grid.Bitset, unvisited int) bool {
	if unvisited <= 1 {
		return true
	}

	var start grid.Point
	found := false
	for r := 0; r < s.Rows && !found; r++ {
		for c := 0; c < s.Cols; c++ {
			if !visited.Visited(grid.Point{Row: r, Col: c}) {
				start = grid.Point{Row: r, Col: c}
				found = true
				break
			}
		}
	}
	if !found {
		return true
	}

	seen.Reset()
	seen.Mark(start)
	stack := make([]grid.Point, 1, unvisited)
	stack[0] = start
	reached := 1

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, d := range grid.Directions {
			n := cur.Add(d)
			if !s.InBounds(n) || visited.Visited(n) || seen.Visited(n) {
				continue
			}
			seen.Mark(n)
			reached++
			if reached == unvisited {
				return true
			}
			stack = append(stack, n)
		}
	}

	return reached == unvisited
}
