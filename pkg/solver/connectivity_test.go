package solver

import (
	"testing"

	"github.com/matzehuels/gridroute/pkg/grid"
)

func markAll(b *grid.Bitset, pts ...grid.Point) int {
	for _, p := range pts {
		b.Mark(p)
	}
	return len(pts)
}

func TestRemainingConnected(t *testing.T) {
	tests := []struct {
		name    string
		size    grid.Size
		visited []grid.Point
		want    bool
	}{
		{
			name: "EmptyGridConnected",
			size: grid.Size{Rows: 3, Cols: 3},
			want: true,
		},
		{
			name: "SplitByColumn",
			size: grid.Size{Rows: 3, Cols: 3},
			// The full middle column separates left from right.
			visited: []grid.Point{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
			want:    false,
		},
		{
			name: "PartialColumnStillConnected",
			size: grid.Size{Rows: 3, Cols: 3},
			// A gap at (2,1) keeps the halves joined.
			visited: []grid.Point{{Row: 0, Col: 1}, {Row: 1, Col: 1}},
			want:    true,
		},
		{
			name: "IsolatedCorner",
			size: grid.Size{Rows: 4, Cols: 4},
			// (0,0) is cut off from the rest.
			visited: []grid.Point{{Row: 0, Col: 1}, {Row: 1, Col: 0}},
			want:    false,
		},
		{
			name:    "SingleUnvisitedCell",
			size:    grid.Size{Rows: 2, Cols: 2},
			visited: []grid.Point{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}},
			want:    true,
		},
		{
			name: "AllVisited",
			size: grid.Size{Rows: 2, Cols: 2},
			visited: []grid.Point{
				{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visited := grid.NewBitset(tt.size)
			marked := markAll(visited, tt.visited...)
			unvisited := tt.size.Cells() - marked

			if got := RemainingConnected(tt.size, visited, unvisited); got != tt.want {
				t.Errorf("RemainingConnected = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLikelyCutVertex(t *testing.T) {
	s := grid.Size{Rows: 4, Cols: 4}

	t.Run("SingleExitCellIsSafe", func(t *testing.T) {
		visited := grid.NewBitset(s)
		// Leave (0,0) with exactly one unvisited neighbor.
		markAll(visited, grid.Point{Row: 0, Col: 1})
		if LikelyCutVertex(grid.Point{Row: 0, Col: 0}, s, visited) {
			t.Error("a cell with one unvisited neighbor cannot disconnect anything")
		}
	})

	t.Run("CornerWithTwoExitsIsSafe", func(t *testing.T) {
		visited := grid.NewBitset(s)
		if LikelyCutVertex(grid.Point{Row: 0, Col: 0}, s, visited) {
			t.Error("a corner with both neighbors open is judged safe")
		}
	})

	t.Run("InteriorCellNeedsFullCheck", func(t *testing.T) {
		visited := grid.NewBitset(s)
		if !LikelyCutVertex(grid.Point{Row: 1, Col: 1}, s, visited) {
			t.Error("an open interior cell must trigger the full check")
		}
	})

	t.Run("EdgeWithTwoExitsNeedsFullCheck", func(t *testing.T) {
		visited := grid.NewBitset(s)
		markAll(visited, grid.Point{Row: 1, Col: 1})
		// (0,1) now has neighbors (0,0) and (0,2) unvisited - not a corner,
		// so the heuristic stays conservative.
		if !LikelyCutVertex(grid.Point{Row: 0, Col: 1}, s, visited) {
			t.Error("a boundary cell with two exits must trigger the full check")
		}
	})
}

func TestRemainingConnectedEarlyExit(t *testing.T) {
	// A fully open 20x20 grid proves connectivity after exactly 400
	// reached cells; this mostly guards against regressions that scan
	// past the early-exit point and mis-count.
	s := grid.Size{Rows: 20, Cols: 20}
	visited := grid.NewBitset(s)

	if !RemainingConnected(s, visited, s.Cells()) {
		t.Fatal("open grid must be connected")
	}

	// Carve a full-height wall; the two sides must be reported split.
	for r := 0; r < s.Rows; r++ {
		visited.Mark(grid.Point{Row: r, Col: 10})
	}
	if RemainingConnected(s, visited, s.Cells()-s.Rows) {
		t.Fatal("walled grid must be disconnected")
	}
}
