package grid

import "errors"

// Sentinel errors for grid validation.
var (
	// ErrEmptyGrid indicates a size with non-positive rows or columns.
	ErrEmptyGrid = errors.New("grid: rows and cols must be positive")
	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("grid: point out of bounds")
)

// Point identifies a single cell by row and column.
// It is a value type; two points are equal iff both fields match.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Size describes the dimensions of a rectangular grid.
// A Size is immutable for the duration of one search.
type Size struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// Directions enumerates the four cardinal moves in canonical order:
// up, down, left, right. Neighbor enumeration everywhere in this module
// follows this order, which makes tie-breaking in the solver deterministic.
var Directions = [4]Point{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// Add returns the point offset by d.
func (p Point) Add(d Point) Point {
	return Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Parity returns the checkerboard color of the cell: (row+col) mod 2.
func Parity(row, col int) int {
	// Go's % preserves sign; normalize so negative coordinates still
	// yield 0 or 1.
	m := (row + col) % 2
	if m < 0 {
		m += 2
	}
	return m
}

// Parity returns the checkerboard color of the point.
func (p Point) Parity() int { return Parity(p.Row, p.Col) }

// HasDifferentParity reports whether two cells lie on opposite
// checkerboard colors.
func HasDifferentParity(r1, c1, r2, c2 int) bool {
	return Parity(r1, c1) != Parity(r2, c2)
}

// Validate returns ErrEmptyGrid unless both dimensions are positive.
func (s Size) Validate() error {
	if s.Rows <= 0 || s.Cols <= 0 {
		return ErrEmptyGrid
	}
	return nil
}

// Cells returns the total number of cells, rows×cols.
func (s Size) Cells() int { return s.Rows * s.Cols }

// InBounds reports whether p lies inside the grid.
func (s Size) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < s.Rows && p.Col >= 0 && p.Col < s.Cols
}

// Index returns the row-major index of p. The caller must ensure p is
// in bounds.
func (s Size) Index(p Point) int { return p.Row*s.Cols + p.Col }

// IsCorner reports whether p is one of the four grid corners.
func (s Size) IsCorner(p Point) bool {
	return (p.Row == 0 || p.Row == s.Rows-1) && (p.Col == 0 || p.Col == s.Cols-1)
}

// IsEdge reports whether p lies on the grid boundary. Corners are edges
// too; callers that care about the distinction check IsCorner first.
func (s Size) IsEdge(p Point) bool {
	return p.Row == 0 || p.Row == s.Rows-1 || p.Col == 0 || p.Col == s.Cols-1
}
