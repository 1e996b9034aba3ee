package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/rnconsole/internal/cmdline"
)

var (
	commandWorkDir string
	commandNative  bool
	commandPlain   bool
)

var commandCmd = &cobra.Command{
	Use:   "command [flags] -- <command string>",
	Short: "Build a resolved command line",
	Long: `Build the argument vector for a tool command.

The command string is split on single spaces; quoting is not supported. The
first word is replaced by its full path when it can be found on PATH. On
Windows, gradlew.bat is prefixed with the working directory.

Examples:
  rnconsole command -- adb devices
  rnconsole command --native -- gradlew.bat assembleDebug
  rnconsole --json command -d android -- npm run android`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCommand,
}

func init() {
	commandCmd.Flags().StringVarP(&commandWorkDir, "workdir", "d", "",
		"Working directory for the command")
	commandCmd.Flags().BoolVar(&commandNative, "native", false,
		"Use the Android project root as working directory")
	commandCmd.Flags().BoolVar(&commandPlain, "plain", false,
		"Split the command without resolving the executable")
}

func runCommand(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	shell := strings.Join(args, " ")

	workDir := commandWorkDir
	if workDir == "" && commandNative {
		root, ok := a.projects.NativeRootFor(a.settings.Workspace)
		if !ok {
			return fmt.Errorf("%w: no %s under %s", ErrNoNativeProject, a.settings.Names.BuildDescriptor, a.settings.Workspace)
		}
		workDir = root
	}

	var spec cmdline.CommandSpec
	if commandPlain {
		spec = cmdline.Plain(shell)
		spec.Dir = workDir
	} else {
		spec = a.builder.Build(shell, workDir)
	}
	a.logger.Debug("built command", "shell", shell, "args", spec.Args, "dir", spec.Dir)

	out := cmd.OutOrStdout()
	if jsonOutput {
		return outputJSON(out, spec)
	}

	PrintInfo(out, spec.String())
	if spec.Dir != "" {
		PrintLabelValue(cmd.ErrOrStderr(), "dir", spec.Dir)
	}
	return nil
}
