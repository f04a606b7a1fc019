// Package roadgrid converts solved paths into per-cell connection
// metadata for tile rendering, and serializes both to JSON for the
// CLI/API boundary. A road grid tells the renderer, for every cell the
// path occupies, which cardinal directions connect it to its path
// neighbors - enough to pick straight, corner, or terminus tiles.
package roadgrid

import (
	"fmt"

	"github.com/matzehuels/gridroute/pkg/grid"
)

// Cardinal direction labels used in connection metadata. The values are
// part of the wire format consumed by the game frontend.
const (
	DirUp    = "up"
	DirDown  = "down"
	DirLeft  = "left"
	DirRight = "right"
)

// CellData describes one occupied cell: the directions of its path
// neighbors and its 0-based position along the path. Interior path
// cells carry two connections, the endpoints one each.
type CellData struct {
	Connections []string `json:"connections"`
	PathIndex   int      `json:"path_index"`
}

// FromPath converts a path into a rows×cols grid of connection
// metadata. Cells not on the path are nil; an empty path yields an
// all-nil grid. The transform is pure and does not verify that the path
// is Hamiltonian - any simple 4-connected path converts.
//
// An error is reported only for malformed input: an invalid size or a
// path cell outside the grid.
func FromPath(path []grid.Point, s grid.Size) ([][]*CellData, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	cells := make([][]*CellData, s.Rows)
	for r := range cells {
		cells[r] = make([]*CellData, s.Cols)
	}

	for i, cur := range path {
		if !s.InBounds(cur) {
			return nil, fmt.Errorf("%w: path[%d] = %v on %dx%d", grid.ErrOutOfBounds, i, cur, s.Rows, s.Cols)
		}

		conns := make([]string, 0, 2)
		if i > 0 {
			conns = append(conns, direction(cur, path[i-1]))
		}
		if i < len(path)-1 {
			conns = append(conns, direction(cur, path[i+1]))
		}

		cells[cur.Row][cur.Col] = &CellData{
			Connections: conns,
			PathIndex:   i,
		}
	}

	return cells, nil
}

// direction returns the cardinal label pointing from cur toward other.
func direction(cur, other grid.Point) string {
	switch {
	case other.Row < cur.Row:
		return DirUp
	case other.Row > cur.Row:
		return DirDown
	case other.Col < cur.Col:
		return DirLeft
	default:
		return DirRight
	}
}
