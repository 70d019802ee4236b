package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newFreezeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "freeze",
		Short: "Stage the application tree into a bundle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Freeze(cmd.Context(), pipelineRunOptions(cmd))
		},
	}
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the freeze cache and restage the bundle")
	addPipelineFlags(cmd)
	return cmd
}
