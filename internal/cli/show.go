package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/burrow/render"
)

// showCommand creates the show command.
func (c *CLI) showCommand() *cobra.Command {
	var (
		layoutPath string
		unfold     bool
		color      bool
	)

	cmd := &cobra.Command{
		Use:   "show [diagram]",
		Short: "Parse a burrow and draw it back",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, start, err := loadPuzzle(cmd, args, layoutPath, unfold)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), render.Diagram(cfg, start, renderOptions(color)...))
			return nil
		},
	}

	cmd.Flags().StringVar(&layoutPath, "layout", "", "read a TOML layout with a [start] table instead of a diagram")
	cmd.Flags().BoolVar(&unfold, "unfold", false, "insert the two hidden rows of the deep burrow")
	cmd.Flags().BoolVar(&color, "color", false, "colour the diagram")

	return cmd
}
