package cli

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/rnconsole/internal/sidecar"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and write the sidecar config",
	Long: `Read and write the sidecar config file (.idea/.rnconsole by default).

Recognized keys:
  currentPath  JS project root, relative to the workspace or absolute
  metroPort    Metro bundler port

Other keys are kept untouched when writing.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show all sidecar entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		entries := a.projects.Sidecar(a.settings.Workspace).Read()

		out := cmd.OutOrStdout()
		if jsonOutput {
			return outputJSON(out, entries)
		}
		if len(entries) == 0 {
			PrintEmptyState(out, "No sidecar entries")
			return nil
		}

		keys := make([]string, 0, len(entries))
		for k := range entries {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			PrintLabelValue(out, k, entries[k])
		}
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one sidecar entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		v, ok := a.projects.Sidecar(a.settings.Workspace).Get(args[0])
		if !ok {
			return fmt.Errorf("%s: %w", args[0], ErrUnknownKey)
		}
		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), map[string]string{args[0]: v})
		}
		PrintInfo(cmd.OutOrStdout(), v)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Write one sidecar entry",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		key, value := args[0], args[1]
		if err := validateEntry(key, value); err != nil {
			return err
		}

		store := a.projects.Sidecar(a.settings.Workspace)
		if err := store.WriteField(key, value); err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), map[string]string{key: value})
		}
		PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Set %s in %s", key, store.Path()))
		if key == sidecar.KeyCurrentPath {
			if root, ok := a.projects.ProjectRoot(a.settings.Workspace); ok {
				PrintLabelValue(cmd.OutOrStdout(), "project root", root)
				if !a.fs.IsFile(filepath.Join(root, a.settings.Names.Manifest)) {
					PrintWarning(cmd.ErrOrStderr(), fmt.Sprintf("%s has no %s", root, a.settings.Names.Manifest))
				}
			}
		}
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the sidecar file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		PrintInfo(cmd.OutOrStdout(), a.settings.Names.SidecarPath(a.settings.Workspace))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
}

// validateEntry checks values of recognized keys. Unknown keys are accepted.
func validateEntry(key, value string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("key must not be empty")
	}
	if key == sidecar.KeyMetroPort {
		port, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || port < 1 || port > 65535 {
			return fmt.Errorf("invalid metroPort %q: want a port number between 1 and 65535", value)
		}
	}
	return nil
}
