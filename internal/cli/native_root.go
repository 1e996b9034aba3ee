package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var nativeRootCmd = &cobra.Command{
	Use:   "native-root [dir]",
	Short: "Print the Android project root",
	Long: `Print the directory holding build.gradle.

With a directory argument, that directory and its immediate subdirectories are
searched. Without one, the search starts at the JS project root, or at the
workspace when no project root is found.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNativeRoot,
}

type nativeRootResult struct {
	Start      string `json:"start"`
	NativeRoot string `json:"nativeRoot"`
}

func runNativeRoot(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	var (
		start string
		root  string
		ok    bool
	)
	if len(args) == 1 {
		start, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("failed to resolve %q: %w", args[0], err)
		}
		root, ok = a.projects.NativeRoot(start)
	} else {
		start = a.settings.Workspace
		root, ok = a.projects.NativeRootFor(start)
	}
	if !ok {
		return fmt.Errorf("%w: no %s under %s", ErrNoNativeProject, a.settings.Names.BuildDescriptor, start)
	}

	if jsonOutput {
		return outputJSON(cmd.OutOrStdout(), nativeRootResult{Start: start, NativeRoot: root})
	}
	PrintInfo(cmd.OutOrStdout(), root)
	return nil
}
