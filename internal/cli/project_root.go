package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var projectRootRaw bool

var projectRootCmd = &cobra.Command{
	Use:   "root",
	Short: "Print the JS project root",
	Long: `Print the React Native (JS) project root for the workspace.

The currentPath override in the sidecar config wins. Otherwise the workspace
and then its parent are checked for package.json.`,
	Args: cobra.NoArgs,
	RunE: runProjectRoot,
}

func init() {
	projectRootCmd.Flags().BoolVar(&projectRootRaw, "raw", false,
		"Print the currentPath override exactly as stored")
}

type projectRootResult struct {
	Workspace   string `json:"workspace"`
	ProjectRoot string `json:"projectRoot"`
	Override    string `json:"override,omitempty"`
}

func runProjectRoot(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	ws := a.settings.Workspace
	out := cmd.OutOrStdout()

	raw, hasOverride := a.projects.RawProjectRoot(ws)
	if projectRootRaw {
		if !hasOverride {
			return fmt.Errorf("currentPath: %w", ErrUnknownKey)
		}
		if jsonOutput {
			return outputJSON(out, projectRootResult{Workspace: ws, Override: raw})
		}
		PrintInfo(out, raw)
		return nil
	}

	root, ok := a.projects.ProjectRoot(ws)
	if !ok {
		return fmt.Errorf("%w: no %s in %s or its parent", ErrNoProject, a.settings.Names.Manifest, ws)
	}

	if jsonOutput {
		return outputJSON(out, projectRootResult{Workspace: ws, ProjectRoot: root, Override: raw})
	}
	PrintInfo(out, root)
	return nil
}
