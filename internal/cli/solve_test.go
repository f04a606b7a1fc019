package cli

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/matzehuels/gridroute/pkg/grid"
	"github.com/matzehuels/gridroute/pkg/roadgrid"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		input   string
		want    grid.Size
		wantErr bool
	}{
		{"5x5", grid.Size{Rows: 5, Cols: 5}, false},
		{"6X4", grid.Size{Rows: 6, Cols: 4}, false},
		{"1x20", grid.Size{Rows: 1, Cols: 20}, false},
		{"5", grid.Size{}, true},
		{"ax5", grid.Size{}, true},
		{"5xb", grid.Size{}, true},
		{"", grid.Size{}, true},
	}

	for _, tt := range tests {
		got, err := parseSize(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseSize(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseSize(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

func TestParsePoint(t *testing.T) {
	tests := []struct {
		input   string
		want    grid.Point
		wantErr bool
	}{
		{"0,0", grid.Point{}, false},
		{"2,3", grid.Point{Row: 2, Col: 3}, false},
		{" 1 , 4 ", grid.Point{Row: 1, Col: 4}, false},
		{"2", grid.Point{}, true},
		{"a,b", grid.Point{}, true},
		{"", grid.Point{}, true},
	}

	for _, tt := range tests {
		got, err := parsePoint(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("parsePoint(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parsePoint(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

func TestBuildOptionsDefaultEnd(t *testing.T) {
	opts, err := buildOptions("4x6", &solveOpts{start: "0,0"})
	if err != nil {
		t.Fatalf("buildOptions: %v", err)
	}
	wantEnd := grid.Point{Row: 3, Col: 5}
	if opts.End != wantEnd {
		t.Errorf("default end = %+v, want bottom-right %+v", opts.End, wantEnd)
	}
}

func TestSolveCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "path.json")

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"solve", "3x3", "--end", "2,2", "--no-cache", "-o", out})

	if err := root.Execute(); err != nil {
		t.Fatalf("solve command: %v", err)
	}

	res, err := roadgrid.ReadResultFile(out)
	if err != nil {
		t.Fatalf("read result: %v", err)
	}
	if !res.Found {
		t.Fatal("expected a path on a 3x3 grid")
	}
	if len(res.Path) != 9 {
		t.Errorf("path length = %d, want 9", len(res.Path))
	}
}

func TestSolveCommandInvalidSize(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"solve", "nonsense"})

	if err := root.Execute(); err == nil {
		t.Error("expected an error for a malformed size argument")
	}
}
