package grid

import "testing"

func TestParity(t *testing.T) {
	tests := []struct {
		row, col int
		want     int
	}{
		{0, 0, 0},
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
		{3, 4, 1},
		{19, 19, 0},
	}

	for _, tt := range tests {
		if got := Parity(tt.row, tt.col); got != tt.want {
			t.Errorf("Parity(%d,%d) = %d, want %d", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestHasDifferentParity(t *testing.T) {
	if !HasDifferentParity(0, 0, 0, 1) {
		t.Error("adjacent cells must differ in parity")
	}
	if HasDifferentParity(0, 0, 1, 1) {
		t.Error("diagonal cells must share parity")
	}
}

func TestSizeValidate(t *testing.T) {
	tests := []struct {
		name    string
		size    Size
		wantErr bool
	}{
		{"Valid", Size{Rows: 3, Cols: 4}, false},
		{"Single", Size{Rows: 1, Cols: 1}, false},
		{"ZeroRows", Size{Rows: 0, Cols: 4}, true},
		{"NegativeCols", Size{Rows: 3, Cols: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.size.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("Validate: %v", err)
			}
		})
	}
}

func TestInBounds(t *testing.T) {
	s := Size{Rows: 3, Cols: 5}

	tests := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, true},
		{Point{2, 4}, true},
		{Point{3, 0}, false},
		{Point{0, 5}, false},
		{Point{-1, 2}, false},
		{Point{1, -1}, false},
	}

	for _, tt := range tests {
		if got := s.InBounds(tt.p); got != tt.want {
			t.Errorf("InBounds(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestIndexIsRowMajor(t *testing.T) {
	s := Size{Rows: 4, Cols: 3}

	seen := make(map[int]bool)
	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.Cols; c++ {
			i := s.Index(Point{Row: r, Col: c})
			if i < 0 || i >= s.Cells() {
				t.Fatalf("Index(%d,%d) = %d out of range", r, c, i)
			}
			if seen[i] {
				t.Fatalf("Index(%d,%d) = %d collides", r, c, i)
			}
			seen[i] = true
		}
	}
}

func TestBoundaryClassification(t *testing.T) {
	s := Size{Rows: 3, Cols: 3}

	tests := []struct {
		p                Point
		corner, boundary bool
	}{
		{Point{0, 0}, true, true},
		{Point{0, 2}, true, true},
		{Point{2, 0}, true, true},
		{Point{2, 2}, true, true},
		{Point{0, 1}, false, true},
		{Point{1, 0}, false, true},
		{Point{1, 1}, false, false},
	}

	for _, tt := range tests {
		if got := s.IsCorner(tt.p); got != tt.corner {
			t.Errorf("IsCorner(%v) = %v, want %v", tt.p, got, tt.corner)
		}
		if got := s.IsEdge(tt.p); got != tt.boundary {
			t.Errorf("IsEdge(%v) = %v, want %v", tt.p, got, tt.boundary)
		}
	}
}

func TestDirectionsOrder(t *testing.T) {
	// Solver tie-breaking depends on this exact enumeration order.
	want := [4]Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	if Directions != want {
		t.Errorf("Directions = %v, want up/down/left/right", Directions)
	}
}
