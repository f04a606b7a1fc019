package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridroute/pkg/grid"
	"github.com/matzehuels/gridroute/pkg/roadgrid"
)

const (
	formatJSON = "json" // road-grid cell data
	formatDOT  = "dot"  // Graphviz source
	formatSVG  = "svg"  // rendered via Graphviz
	formatPNG  = "png"  // rendered via Graphviz
)

// validFormats is the set of supported render output formats.
var validFormats = map[string]bool{
	formatJSON: true,
	formatDOT:  true,
	formatSVG:  true,
	formatPNG:  true,
}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output file (single format) or base path (multiple)
	formats []string // output formats
}

// renderCommand creates the render command for turning solve results
// into road-grid data or Graphviz output.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [result.json]",
		Short: "Render a solve result as road-grid JSON, DOT, SVG, or PNG",
		Long: `Render a solve result as road-grid JSON, DOT, SVG, or PNG.

The render command takes a result file (produced by 'solve -o') and
converts its path into per-cell road connections or a Graphviz route
diagram. Since a Hamiltonian path covers every cell, the grid
dimensions are recovered from the path itself.

Examples:
  gridroute render path.json                    # road-grid JSON to stdout
  gridroute render path.json -f svg -o out.svg  # route diagram
  gridroute render path.json -f json,dot,png    # several formats at once`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): json (default), dot, svg, png (comma-separated)")

	return cmd
}

// runRender loads the result and writes each requested format.
func (c *CLI) runRender(input string, opts *renderOpts) error {
	res, err := roadgrid.ReadResultFile(input)
	if err != nil {
		return fmt.Errorf("load result %s: %w", input, err)
	}
	if !res.Found || len(res.Path) == 0 {
		return fmt.Errorf("result %s holds no path to render", input)
	}

	size := deriveSize(res.Path)

	// Single format without an output path goes to stdout.
	if len(opts.formats) == 1 && opts.output == "" {
		data, err := renderFormat(res.Path, size, opts.formats[0])
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	base := basePath(opts.output, input)
	for _, format := range opts.formats {
		data, err := renderFormat(res.Path, size, format)
		if err != nil {
			return err
		}

		path := base + "." + format
		if len(opts.formats) == 1 && opts.output != "" {
			path = opts.output
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// renderFormat produces the bytes for one output format.
func renderFormat(path []grid.Point, size grid.Size, format string) ([]byte, error) {
	switch format {
	case formatJSON:
		cells, err := roadgrid.FromPath(path, size)
		if err != nil {
			return nil, err
		}
		return roadgrid.MarshalGrid(cells)
	case formatDOT:
		return []byte(roadgrid.ToDOT(path, size)), nil
	case formatSVG:
		return roadgrid.RenderSVG(roadgrid.ToDOT(path, size))
	case formatPNG:
		return roadgrid.RenderPNG(roadgrid.ToDOT(path, size))
	default:
		return nil, fmt.Errorf("invalid format: %s", format)
	}
}

// deriveSize recovers grid dimensions from a full-coverage path.
func deriveSize(path []grid.Point) grid.Size {
	var s grid.Size
	for _, p := range path {
		if p.Row+1 > s.Rows {
			s.Rows = p.Row + 1
		}
		if p.Col+1 > s.Cols {
			s.Cols = p.Col + 1
		}
	}
	return s
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["json"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{formatJSON}
	}
	return strings.Split(s, ",")
}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'json', 'dot', 'svg', or 'png')", f)
		}
	}
	return nil
}

// basePath derives the base output path from the output and input file
// paths. If output is empty, it strips the extension from input. If
// output has a known format extension, it strips that too, so multiple
// formats land next to each other.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if ext != "" && validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
