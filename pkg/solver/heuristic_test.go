package solver

import (
	"testing"

	"github.com/matzehuels/gridroute/pkg/grid"
)

func TestRankedNeighborsTargetLast(t *testing.T) {
	s := grid.Size{Rows: 3, Cols: 3}
	visited := grid.NewBitset(s)
	visited.Mark(grid.Point{Row: 1, Col: 1})

	cur := grid.Point{Row: 1, Col: 1}
	target := grid.Point{Row: 0, Col: 1}

	ranked := RankedNeighbors(cur, target, s, visited, s.Cells()-1)
	if len(ranked) != 4 {
		t.Fatalf("candidates = %d, want 4", len(ranked))
	}
	if ranked[len(ranked)-1] != target {
		t.Errorf("target ranked at %v, want last", ranked)
	}
}

func TestRankedNeighborsTargetSoleCandidate(t *testing.T) {
	// When the target is the only move left it must still be offered.
	s := grid.Size{Rows: 2, Cols: 2}
	visited := grid.NewBitset(s)
	visited.Mark(grid.Point{Row: 0, Col: 0})
	visited.Mark(grid.Point{Row: 1, Col: 0})
	visited.Mark(grid.Point{Row: 1, Col: 1})

	ranked := RankedNeighbors(grid.Point{Row: 1, Col: 1}, grid.Point{Row: 0, Col: 1}, s, visited, 1)
	if len(ranked) != 1 || ranked[0] != (grid.Point{Row: 0, Col: 1}) {
		t.Fatalf("ranked = %v, want just the target", ranked)
	}
}

func TestRankedNeighborsWarnsdorffOrder(t *testing.T) {
	// On an empty 3x3 board from the center, the four neighbors are all
	// edge cells with equal degree, so canonical order must hold. After
	// consuming one of them, the cells adjacent to the hole have fewer
	// onward options and must move forward.
	s := grid.Size{Rows: 3, Cols: 3}
	visited := grid.NewBitset(s)
	cur := grid.Point{Row: 1, Col: 1}
	visited.Mark(cur)
	target := grid.Point{Row: 2, Col: 2}

	// (0,1) loses a neighbor once (0,0) is consumed.
	visited.Mark(grid.Point{Row: 0, Col: 0})

	ranked := RankedNeighbors(cur, target, s, visited, 7)
	if len(ranked) != 4 {
		t.Fatalf("candidates = %d, want 4", len(ranked))
	}
	if ranked[0] != (grid.Point{Row: 0, Col: 1}) {
		t.Errorf("first candidate = %v, want (0,1) (fewest onward options)", ranked[0])
	}
}

func TestRankedNeighborsPure(t *testing.T) {
	s := grid.Size{Rows: 4, Cols: 4}
	visited := grid.NewBitset(s)
	visited.Mark(grid.Point{Row: 2, Col: 2})
	before := visited.Count()

	first := RankedNeighbors(grid.Point{Row: 2, Col: 2}, grid.Point{Row: 0, Col: 0}, s, visited, 15)
	second := RankedNeighbors(grid.Point{Row: 2, Col: 2}, grid.Point{Row: 0, Col: 0}, s, visited, 15)

	if visited.Count() != before {
		t.Fatal("ranking mutated the visited set")
	}
	if len(first) != len(second) {
		t.Fatal("ranking is not deterministic")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("ranking diverged at %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestCountUnvisitedNeighbors(t *testing.T) {
	s := grid.Size{Rows: 3, Cols: 3}
	visited := grid.NewBitset(s)

	if got := countUnvisitedNeighbors(grid.Point{Row: 0, Col: 0}, s, visited); got != 2 {
		t.Errorf("corner degree = %d, want 2", got)
	}
	if got := countUnvisitedNeighbors(grid.Point{Row: 1, Col: 1}, s, visited); got != 4 {
		t.Errorf("center degree = %d, want 4", got)
	}

	visited.Mark(grid.Point{Row: 0, Col: 1})
	if got := countUnvisitedNeighbors(grid.Point{Row: 0, Col: 0}, s, visited); got != 1 {
		t.Errorf("corner degree after mark = %d, want 1", got)
	}
}

func TestManhattan(t *testing.T) {
	tests := []struct {
		a, b grid.Point
		want int
	}{
		{grid.Point{Row: 0, Col: 0}, grid.Point{Row: 0, Col: 0}, 0},
		{grid.Point{Row: 0, Col: 0}, grid.Point{Row: 2, Col: 3}, 5},
		{grid.Point{Row: 4, Col: 1}, grid.Point{Row: 1, Col: 2}, 4},
	}

	for _, tt := range tests {
		if got := manhattan(tt.a, tt.b); got != tt.want {
			t.Errorf("manhattan(%v,%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
