package solver

import (
	"fmt"

	"github.com/matzehuels/gridroute/pkg/grid"
)

// Result is the outcome of one search invocation. It is immutable after
// return. The three non-success outcomes (degenerate request, parity
// infeasibility, budget exhaustion) all report Found=false; the first
// two perform zero iterations, so callers wanting to tell an infeasible
// request apart from an exhausted search compare Iterations to 0.
type Result struct {
	Found      bool         `json:"found"`
	Path       []grid.Point `json:"path,omitempty"`
	Iterations uint32       `json:"iterations"`
}

// minRemainForCheck is the unvisited count below which the connectivity
// pruner is skipped entirely: with fewer than 3 cells left the recursion
// resolves faster than the traversal would.
const minRemainForCheck = 3

// Feasible reports whether a Hamiltonian path between start and end can
// exist at all on a grid of the given size, by the checkerboard parity
// argument. On an even-area grid both color classes hold exactly half
// the cells and an alternating path must end on the opposite color; on
// an odd-area grid the majority color has one extra cell and the path
// must start and end on it, forcing equal endpoint parity.
func Feasible(start, end grid.Point, s grid.Size) bool {
	if s.Cells()%2 == 0 {
		return start.Parity() != end.Parity()
	}
	return start.Parity() == end.Parity()
}

// Find searches for a Hamiltonian path from start to end, visiting
// every cell of the grid exactly once with 4-connected moves.
//
// maxIterations caps the number of search nodes visited; once exceeded
// the search unwinds cooperatively and reports Found=false with the
// work actually done. Degenerate (start == end) and parity-infeasible
// requests fail closed with zero iterations and no search.
//
// An error is returned only for malformed input: non-positive grid
// dimensions or out-of-bounds endpoints. Well-formed requests never
// error and never panic.
func Find(start, end grid.Point, s grid.Size, maxIterations uint32) (Result, error) {
	if err := s.Validate(); err != nil {
		return Result{}, err
	}
	if !s.InBounds(start) {
		return Result{}, fmt.Errorf("%w: start %v on %dx%d", grid.ErrOutOfBounds, start, s.Rows, s.Cols)
	}
	if !s.InBounds(end) {
		return Result{}, fmt.Errorf("%w: end %v on %dx%d", grid.ErrOutOfBounds, end, s.Rows, s.Cols)
	}

	if start == end || !Feasible(start, end, s) {
		return Result{Found: false, Iterations: 0}, nil
	}

	e := &engine{
		size:    s,
		target:  end,
		total:   s.Cells(),
		budget:  maxIterations,
		visited: grid.NewBitset(s),
		scratch: grid.NewBitset(s),
		path:    make([]grid.Point, 0, s.Cells()),
	}

	e.visited.Mark(start)
	e.path = append(e.path, start)
	e.step(start)

	if !e.found {
		return Result{Found: false, Iterations: e.iterations}, nil
	}
	return Result{Found: true, Path: e.result, Iterations: e.iterations}, nil
}

// engine holds the mutable state of one search invocation. Each call to
// Find owns its engine exclusively: the visited set and path stack are
// mutated only by the recursion, which restores them on backtrack, so
// the invariant "a cell is marked exactly when it is on the path" holds at every
// frame boundary.
type engine struct {
	size   grid.Size
	target grid.Point
	total  int
	budget uint32

	visited *grid.Bitset
	scratch *grid.Bitset // reused by the connectivity traversal
	path    []grid.Point

	iterations uint32
	found      bool
	result     []grid.Point
}

// step extends the path from cur by one cell, trying ranked candidates
// in order and backtracking on failure. Recursion depth is bounded by
// the cell count.
func (e *engine) step(cur grid.Point) {
	if e.found || e.iterations > e.budget {
		return
	}
	e.iterations++

	if len(e.path) == e.total {
		if cur == e.target {
			e.found = true
			e.result = append([]grid.Point(nil), e.path...)
		}
		return
	}

	// Reaching the target with cells still open can never complete.
	if cur == e.target {
		return
	}

	unvisited := e.total - len(e.path)
	for _, n := range RankedNeighbors(cur, e.target, e.size, e.visited, unvisited) {
		e.visited.Mark(n)

		if n != e.target && unvisited-1 >= minRemainForCheck &&
			LikelyCutVertex(n, e.size, e.visited) &&
			!remainingConnected(e.size, e.visited, e.scratch, unvisited-1) {
			e.visited.Unmark(n)
			continue
		}

		e.path = append(e.path, n)
		e.step(n)
		if e.found {
			return
		}

		e.path = e.path[:len(e.path)-1]
		e.visited.Unmark(n)
	}
}
