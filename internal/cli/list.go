package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/ivlev/transitions/internal/effects"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available transitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFromContext(cmd.Context())

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(styleDim).
				Headers("ID", "Name", "Duration", "Description").
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return styleTitle.Padding(0, 1)
					}
					if col == 2 {
						return styleNumber.Padding(0, 1)
					}
					return lipgloss.NewStyle().Padding(0, 1)
				})

			for _, e := range effects.All() {
				d, err := a.cfg.DurationFor(e.ID())
				if err != nil {
					return err
				}
				t.Row(e.ID(), e.Name(), fmt.Sprintf("%gs", d), e.Description())
			}

			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}
