package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Freeze the bundle and build the installer in one run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Build(cmd.Context(), pipelineRunOptions(cmd))
		},
	}
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the freeze cache and restage the bundle")
	addPipelineFlags(cmd)
	return cmd
}
