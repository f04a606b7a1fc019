package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridroute/pkg/pipeline"
)

// boardCommand creates the interactive board command.
func (c *CLI) boardCommand() *cobra.Command {
	var budget uint32

	cmd := &cobra.Command{
		Use:   "board <rows>x<cols>",
		Short: "Pick endpoints and solve on an interactive grid",
		Long: `Pick endpoints and solve on an interactive grid.

Move the cursor with the arrow keys (or hjkl), press enter to place the
start and end cells, and press s to run the search. While choosing an
end cell the board shows live whether the highlighted cell is ruled out
by parity.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := parseSize(args[0])
			if err != nil {
				return err
			}
			if err := size.Validate(); err != nil {
				return err
			}

			model := NewBoardModel(size, budget)
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("board: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().Uint32Var(&budget, "budget", pipeline.DefaultMaxIterations, "iteration budget for the search")

	return cmd
}
