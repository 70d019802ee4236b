package commands

import (
	"github.com/spf13/cobra"
	"go.frostpack.dev/frost/internal/app"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install [archive]",
		Short: "Install an installer archive for the current user",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")
			if ci {
				outputMode = "linear"
			}
			lang, _ := cmd.Flags().GetString("lang")

			opts := app.InstallOptions{
				Language:   lang,
				OutputMode: outputMode,
			}
			if len(args) == 1 {
				opts.Archive = args[0]
			}
			opts.Desktop = boolFlagIfSet(cmd, "desktop")
			opts.Autostart = boolFlagIfSet(cmd, "autostart")
			opts.Launch = boolFlagIfSet(cmd, "launch")

			return c.app.Install(cmd.Context(), opts)
		},
	}
	cmd.Flags().Bool("desktop", false, "Create a desktop shortcut")
	cmd.Flags().Bool("autostart", false, "Start the application automatically at login")
	cmd.Flags().Bool("launch", false, "Launch the application after installing")
	cmd.Flags().StringP("lang", "l", "", "Installer language: en or ru")
	addPipelineFlags(cmd)
	return cmd
}

// boolFlagIfSet returns the flag value only when the user set it, so the
// installer manifest defaults stay in effect otherwise.
func boolFlagIfSet(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}
