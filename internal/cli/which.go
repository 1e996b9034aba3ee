package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whichCmd = &cobra.Command{
	Use:   "which <name>",
	Short: "Resolve a command name to its full path",
	Long: `Resolve a command name on PATH.

On Windows, a name without an .exe, .cmd or .bat extension is tried with each of
those extensions, in that order, before the bare name.`,
	Args: cobra.ExactArgs(1),
	RunE: runWhich,
}

type whichResult struct {
	Name       string   `json:"name"`
	Path       string   `json:"path,omitempty"`
	Found      bool     `json:"found"`
	Candidates []string `json:"candidates"`
}

func runWhich(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	name := args[0]
	path, ok := a.executables.Resolve(name)
	a.logger.Debug("resolved executable", "name", name, "path", path, "found", ok)

	if jsonOutput {
		return outputJSON(cmd.OutOrStdout(), whichResult{
			Name:       name,
			Path:       path,
			Found:      ok,
			Candidates: a.executables.Candidates(name),
		})
	}

	if !ok {
		return fmt.Errorf("%w: %s", ErrExecutableNotFound, name)
	}
	PrintInfo(cmd.OutOrStdout(), path)
	return nil
}
