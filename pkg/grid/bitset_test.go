package grid

import "testing"

func TestBitsetMarkUnmark(t *testing.T) {
	s := Size{Rows: 20, Cols: 20}
	b := NewBitset(s)

	p := Point{Row: 7, Col: 13}
	if b.Visited(p) {
		t.Fatal("fresh bitset must be empty")
	}

	b.Mark(p)
	if !b.Visited(p) {
		t.Fatal("Mark did not set the bit")
	}
	if got := b.Count(); got != 1 {
		t.Fatalf("Count = %d, want 1", got)
	}

	b.Unmark(p)
	if b.Visited(p) {
		t.Fatal("Unmark did not clear the bit")
	}
	if got := b.Count(); got != 0 {
		t.Fatalf("Count = %d, want 0", got)
	}
}

func TestBitsetIsolation(t *testing.T) {
	// Marking one cell must not disturb its word neighbors.
	s := Size{Rows: 8, Cols: 8}
	b := NewBitset(s)

	b.Mark(Point{Row: 3, Col: 3})
	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.Cols; c++ {
			p := Point{Row: r, Col: c}
			want := r == 3 && c == 3
			if got := b.Visited(p); got != want {
				t.Fatalf("Visited(%v) = %v, want %v", p, got, want)
			}
		}
	}
}

func TestBitsetFullGrid(t *testing.T) {
	// 20x20 is the minimum supported size; make sure every cell round-trips
	// across word boundaries.
	s := Size{Rows: 20, Cols: 20}
	b := NewBitset(s)

	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.Cols; c++ {
			b.Mark(Point{Row: r, Col: c})
		}
	}
	if got := b.Count(); got != s.Cells() {
		t.Fatalf("Count = %d, want %d", got, s.Cells())
	}

	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.Cols; c++ {
			if !b.Visited(Point{Row: r, Col: c}) {
				t.Fatalf("cell (%d,%d) lost", r, c)
			}
		}
	}
}
