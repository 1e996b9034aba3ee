package cli

import (
	"github.com/spf13/cobra"
)

var entryFileCmd = &cobra.Command{
	Use:   "entry-file [default]",
	Short: "Print the JS entry file to bundle",
	Long: `Print the entry file name used when bundling.

The default (index.android.js) is kept when the project root contains it.
Projects created with React Native 0.40 or later use index.js instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}

		defaultName := "index.android.js"
		if len(args) == 1 {
			defaultName = args[0]
		}

		entry := a.projects.EntryFile(a.settings.Workspace, defaultName)
		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), map[string]string{"entryFile": entry})
		}
		PrintInfo(cmd.OutOrStdout(), entry)
		return nil
	},
}
