package cli

import (
	"github.com/spf13/cobra"
)

var metroPortCmd = &cobra.Command{
	Use:   "metro-port",
	Short: "Print the Metro bundler port",
	Long: `Print the Metro bundler port override from the sidecar config, or the
default port when none is set. An override equal to the default counts as
not set.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}

		port, overridden := a.projects.Sidecar(a.settings.Workspace).MetroPort()
		if !overridden {
			port = a.settings.Names.DefaultMetroPort
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), struct {
				Port       string `json:"port"`
				Overridden bool   `json:"overridden"`
			}{port, overridden})
		}
		PrintInfo(cmd.OutOrStdout(), port)
		return nil
	},
}
