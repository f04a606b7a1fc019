package roadgrid

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/gridroute/pkg/grid"
)

// ToDOT converts a path to Graphviz DOT format: one node per cell in
// path order, chained by directed edges labeled with the travel
// direction. The start node is filled green and the end node red so the
// route's orientation survives into the rendered artifact. Render the
// result with [RenderSVG] or [RenderPNG].
func ToDOT(path []grid.Point, s grid.Size) string {
	var buf bytes.Buffer
	buf.WriteString("digraph route {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.15,0.08\"];\n")
	buf.WriteString("\n")

	for i, p := range path {
		attrs := fmt.Sprintf("label=\"(%d,%d)\"", p.Row, p.Col)
		switch i {
		case 0:
			attrs += ", fillcolor=palegreen"
		case len(path) - 1:
			attrs += ", fillcolor=lightcoral"
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(p), attrs)
	}

	buf.WriteString("\n")
	for i := 1; i < len(path); i++ {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n",
			nodeID(path[i-1]), nodeID(path[i]), direction(path[i-1], path[i]))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(p grid.Point) string {
	return fmt.Sprintf("r%dc%d", p.Row, p.Col)
}

// RenderSVG renders a DOT graph to SVG using Graphviz in-process.
func RenderSVG(dot string) ([]byte, error) {
	return render(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz in-process.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG)
}

func render(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
