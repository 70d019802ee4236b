package commands

import (
	"github.com/spf13/cobra"
	"go.frostpack.dev/frost/internal/app"
)

func (c *CLI) newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the configuration and artifacts for consistency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")
			if ci {
				outputMode = "linear"
			}
			return c.app.Verify(cmd.Context(), app.VerifyOptions{OutputMode: outputMode})
		},
	}
	addPipelineFlags(cmd)
	return cmd
}
