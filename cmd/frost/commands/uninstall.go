package commands

import (
	"github.com/spf13/cobra"
	"go.frostpack.dev/frost/internal/app"
)

func (c *CLI) newUninstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the installed application from the current user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")
			if ci {
				outputMode = "linear"
			}
			return c.app.Uninstall(cmd.Context(), app.UninstallOptions{OutputMode: outputMode})
		},
	}
	addPipelineFlags(cmd)
	return cmd
}
