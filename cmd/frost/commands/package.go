package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newPackageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "package",
		Short: "Build the installer archive from an existing bundle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Package(cmd.Context(), pipelineRunOptions(cmd))
		},
	}
	addPipelineFlags(cmd)
	return cmd
}
