package roadgrid

import (
	"strings"
	"testing"

	"github.com/matzehuels/gridroute/pkg/grid"
)

func TestToDOT(t *testing.T) {
	path := []grid.Point{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}}
	dot := ToDOT(path, grid.Size{Rows: 2, Cols: 2})

	wantFragments := []string{
		"digraph route {",
		`"r0c0" [label="(0,0)", fillcolor=palegreen];`,
		`"r1c1" [label="(1,1)", fillcolor=lightcoral];`,
		`"r0c0" -> "r0c1" [label="right"];`,
		`"r0c1" -> "r1c1" [label="down"];`,
	}
	for _, frag := range wantFragments {
		if !strings.Contains(dot, frag) {
			t.Errorf("DOT output missing %q:\n%s", frag, dot)
		}
	}
}

func TestToDOTEmptyPath(t *testing.T) {
	dot := ToDOT(nil, grid.Size{Rows: 2, Cols: 2})
	if !strings.Contains(dot, "digraph route {") || !strings.Contains(dot, "}") {
		t.Errorf("empty path must still produce a valid graph:\n%s", dot)
	}
	if strings.Contains(dot, "->") {
		t.Error("empty path must produce no edges")
	}
}
