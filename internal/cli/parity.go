package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridroute/pkg/solver"
)

// parityCommand creates the parity command for checking feasibility
// without running a search.
func (c *CLI) parityCommand() *cobra.Command {
	var startStr, endStr string

	cmd := &cobra.Command{
		Use:   "parity <rows>x<cols>",
		Short: "Check whether a Hamiltonian path can exist between two cells",
		Long: `Check whether a Hamiltonian path can exist between two cells.

Coloring the grid like a checkerboard, every step alternates colors. On
a grid with an even number of cells the endpoints must sit on opposite
colors; with an odd number of cells they must share the majority color.
This rules requests out instantly, before any search runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &solveOpts{start: startStr, end: endStr}
			popts, err := buildOptions(args[0], opts)
			if err != nil {
				return err
			}
			if err := popts.ValidateAndSetDefaults(); err != nil {
				return err
			}

			feasible := popts.Start != popts.End && solver.Feasible(popts.Start, popts.End, popts.Size())

			printKeyValue("grid", fmt.Sprintf("%dx%d", popts.Rows, popts.Cols))
			printKeyValue("start", fmt.Sprintf("%d,%d", popts.Start.Row, popts.Start.Col))
			printKeyValue("end", fmt.Sprintf("%d,%d", popts.End.Row, popts.End.Col))
			if feasible {
				printSuccess("A path can exist")
				printNextStep("Search for one", fmt.Sprintf("gridroute solve %dx%d --start %s --end %d,%d",
					popts.Rows, popts.Cols, startStr, popts.End.Row, popts.End.Col))
			} else {
				printWarning("No path can exist between these cells")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startStr, "start", "0,0", "start cell as row,col")
	cmd.Flags().StringVar(&endStr, "end", "", "end cell as row,col (default bottom-right)")

	return cmd
}
