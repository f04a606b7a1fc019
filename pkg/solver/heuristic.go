package solver

import (
	"slices"

	"github.com/matzehuels/gridroute/pkg/grid"
)

// Heuristic weights. These are tuning parameters, not correctness
// requirements: the ranking contract (target last, fewer-onward-options
// first as the primary key) must survive any retuning.
const (
	// scoreTarget is the sentinel score that pins the target cell to the
	// end of the candidate list.
	scoreTarget = 1 << 30

	// weightDegree scales the Warnsdorff term so it dominates every
	// secondary signal.
	weightDegree = 100

	// bonusCorner and bonusEdge prefer boundary cells, which have
	// structurally fewer approach routes and must be consumed while
	// still reachable.
	bonusCorner = -40
	bonusEdge   = -20

	// bonusUrgent further separates cells with exactly one onward option
	// from the rest of their Warnsdorff class.
	bonusUrgent = -15

	// weightDistEarly penalizes proximity to the target while most of
	// the grid is still open; weightDistLate rewards it once the path is
	// nearly complete.
	weightDistEarly = 2
	weightDistLate  = 6

	// endgameCells is the unvisited count below which proximity to the
	// target switches from penalized to rewarded.
	endgameCells = 5
)

// unvisitedNeighbors appends the in-bounds, unmarked neighbors of p to
// dst in canonical direction order and returns the extended slice.
func unvisitedNeighbors(dst []grid.Point, p grid.Point, s grid.Size, visited *grid.Bitset) []grid.Point {
	for _, d := range grid.Directions {
		n := p.Add(d)
		if s.InBounds(n) && !visited.Visited(n) {
			dst = append(dst, n)
		}
	}
	return dst
}

// countUnvisitedNeighbors returns how many onward moves p would have.
func countUnvisitedNeighbors(p grid.Point, s grid.Size, visited *grid.Bitset) int {
	n := 0
	for _, d := range grid.Directions {
		q := p.Add(d)
		if s.InBounds(q) && !visited.Visited(q) {
			n++
		}
	}
	return n
}

func manhattan(a, b grid.Point) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// score computes the composite priority of candidate c; lower is tried
// first. visited must already reflect the current path prefix, not the
// candidate itself.
func score(c, target grid.Point, s grid.Size, visited *grid.Bitset, unvisited int) int {
	if c == target {
		return scoreTarget
	}

	degree := countUnvisitedNeighbors(c, s, visited)
	sc := degree * weightDegree

	switch {
	case s.IsCorner(c):
		sc += bonusCorner
	case s.IsEdge(c):
		sc += bonusEdge
	}

	if degree == 1 {
		sc += bonusUrgent
	}

	dist := manhattan(c, target)
	switch {
	case unvisited*2 > s.Cells():
		// Early phase: drift away from the target.
		sc -= dist * weightDistEarly
	case unvisited <= endgameCells:
		// Endgame: close in.
		sc += dist * weightDistLate
	}

	return sc
}

// RankedNeighbors returns the unvisited neighbors of cur ordered by
// ascending heuristic score. Ties keep the canonical up/down/left/right
// enumeration order, and the target always sorts last (it is still
// returned when it is the only candidate). The function is pure: it
// never mutates visited, so identical inputs always produce identical
// orderings and therefore reproducible iteration counts.
func RankedNeighbors(cur, target grid.Point, s grid.Size, visited *grid.Bitset, unvisited int) []grid.Point {
	cands := unvisitedNeighbors(make([]grid.Point, 0, 4), cur, s, visited)
	if len(cands) < 2 {
		return cands
	}

	scores := [4]int{}
	for i, c := range cands {
		scores[i] = score(c, target, s, visited, unvisited)
	}

	idx := [4]int{0, 1, 2, 3}
	order := idx[:len(cands)]
	slices.SortStableFunc(order, func(a, b int) int { return scores[a] - scores[b] })

	out := make([]grid.Point, len(cands))
	for i, j := range order {
		out[i] = cands[j]
	}
	return out
}
