package commands

import (
	"github.com/spf13/cobra"
	"go.frostpack.dev/frost/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Clean the freeze cache and build artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dist, _ := cmd.Flags().GetBool("dist")
			all, _ := cmd.Flags().GetBool("all")

			opts := app.CleanOptions{}

			switch {
			case all:
				opts.Cache = true
				opts.Dist = true
			case dist:
				opts.Dist = true
			default:
				// Default behavior: clean the freeze cache
				opts.Cache = true
			}

			return c.app.Clean(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolP("dist", "d", false, "Remove produced bundles and installers")
	cmd.Flags().BoolP("all", "a", false, "Remove the freeze cache and all artifacts")

	return cmd
}
