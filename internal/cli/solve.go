package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridroute/pkg/grid"
	"github.com/matzehuels/gridroute/pkg/pipeline"
	"github.com/matzehuels/gridroute/pkg/roadgrid"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	start   string // start cell as "row,col"
	end     string // end cell as "row,col"; empty means bottom-right
	budget  uint32 // iteration budget for the search
	refresh bool   // bypass the cache lookup
	noCache bool   // disable caching entirely
	output  string // output file path (stdout if empty)
	asGrid  bool   // emit road-grid cells instead of the raw result
}

// solveCommand creates the solve command.
//
// Default options:
//   - start: top-left cell (0,0)
//   - end: bottom-right cell
//   - budget: pipeline.DefaultMaxIterations
func (c *CLI) solveCommand() *cobra.Command {
	opts := solveOpts{start: "0,0"}

	cmd := &cobra.Command{
		Use:   "solve <rows>x<cols>",
		Short: "Find a Hamiltonian path on a grid",
		Long: `Find a Hamiltonian path on a rectangular grid.

The path visits every cell exactly once, moving between edge-adjacent
cells, from the start cell to the end cell. Requests are checked for
parity feasibility before any search runs, and results are cached
locally for faster subsequent runs.

Examples:
  gridroute solve 5x5                              # corner to corner
  gridroute solve 6x4 --start 0,0 --end 5,3        # explicit endpoints
  gridroute solve 8x8 --budget 500000 -o path.json # bounded search`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.start, "start", opts.start, "start cell as row,col")
	cmd.Flags().StringVar(&opts.end, "end", "", "end cell as row,col (default bottom-right)")
	cmd.Flags().Uint32Var(&opts.budget, "budget", 0, "iteration budget (0 = default)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cache")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.asGrid, "grid", false, "emit road-grid cells instead of the path result")

	return cmd
}

// runSolve executes the pipeline and writes the result.
func (c *CLI) runSolve(ctx context.Context, sizeArg string, opts *solveOpts) error {
	ctx = withLogger(ctx, c.Logger)
	popts, err := buildOptions(sizeArg, opts)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	popts.Logger = loggerFromContext(ctx)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Solving %dx%d...", popts.Rows, popts.Cols))
	spinner.Start()

	prog := newProgress(popts.Logger)
	result, err := runner.Execute(ctx, popts)
	if err != nil {
		spinner.StopWithError("Solve failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Search explored %d nodes", result.Solve.Iterations))

	if !result.Solve.Found {
		if result.Solve.Iterations == 0 {
			printWarning("No path can exist: endpoint parity rules it out")
		} else {
			printWarning("No path found within %d iterations", popts.MaxIterations)
		}
	}

	if err := writeSolveOutput(result, popts.Size(), opts); err != nil {
		return err
	}

	if opts.output != "" {
		if result.Solve.Found {
			printSuccess("Found path through %d cells", len(result.Solve.Path))
		}
		printStats(result.Stats.Cells, result.Solve.Iterations, result.CacheInfo.SolveHit)
		printFile(opts.output)
		if result.Solve.Found && !opts.asGrid {
			printNextStep("Render it", fmt.Sprintf("gridroute render %s -f svg", opts.output))
		}
	}
	return nil
}

// writeSolveOutput writes the result (or its road grid) to the chosen
// destination.
func writeSolveOutput(result *pipeline.Result, s grid.Size, opts *solveOpts) error {
	out := os.Stdout
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("create %s: %w", opts.output, err)
		}
		defer f.Close()
		out = f
	}

	if opts.asGrid {
		cells := result.RoadGrid
		if cells == nil {
			// An all-null grid is still valid output for a failed solve.
			var err error
			cells, err = roadgrid.FromPath(nil, s)
			if err != nil {
				return err
			}
		}
		return roadgrid.WriteGrid(cells, out)
	}
	return roadgrid.WriteResult(result.Solve, out)
}

// buildOptions assembles pipeline options from positional and flag input.
func buildOptions(sizeArg string, opts *solveOpts) (pipeline.Options, error) {
	size, err := parseSize(sizeArg)
	if err != nil {
		return pipeline.Options{}, err
	}

	start, err := parsePoint(opts.start)
	if err != nil {
		return pipeline.Options{}, fmt.Errorf("invalid --start: %w", err)
	}

	end := grid.Point{Row: size.Rows - 1, Col: size.Cols - 1}
	if opts.end != "" {
		end, err = parsePoint(opts.end)
		if err != nil {
			return pipeline.Options{}, fmt.Errorf("invalid --end: %w", err)
		}
	}

	return pipeline.Options{
		Rows:          size.Rows,
		Cols:          size.Cols,
		Start:         start,
		End:           end,
		MaxIterations: opts.budget,
		Refresh:       opts.refresh,
	}, nil
}

// parseSize parses "RxC" (e.g. "5x5", "6X4") into a grid size.
func parseSize(s string) (grid.Size, error) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return grid.Size{}, fmt.Errorf("invalid size %q (expected <rows>x<cols>, e.g. 5x5)", s)
	}
	rows, err := strconv.Atoi(parts[0])
	if err != nil {
		return grid.Size{}, fmt.Errorf("invalid rows in %q: %w", s, err)
	}
	cols, err := strconv.Atoi(parts[1])
	if err != nil {
		return grid.Size{}, fmt.Errorf("invalid cols in %q: %w", s, err)
	}
	return grid.Size{Rows: rows, Cols: cols}, nil
}

// parsePoint parses "row,col" into a grid point.
func parsePoint(s string) (grid.Point, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return grid.Point{}, fmt.Errorf("invalid cell %q (expected row,col, e.g. 0,0)", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return grid.Point{}, fmt.Errorf("invalid row in %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return grid.Point{}, fmt.Errorf("invalid col in %q: %w", s, err)
	}
	return grid.Point{Row: row, Col: col}, nil
}
