package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/danieljhkim/rnconsole/internal/cmdline"
	"github.com/danieljhkim/rnconsole/internal/config"
	"github.com/danieljhkim/rnconsole/internal/execpath"
	"github.com/danieljhkim/rnconsole/internal/fsops"
	"github.com/danieljhkim/rnconsole/internal/platform"
	"github.com/danieljhkim/rnconsole/internal/project"
)

// app bundles the resolvers for one command invocation.
type app struct {
	settings    *config.Settings
	logger      *log.Logger
	fs          fsops.FS
	projects    *project.Resolver
	executables *execpath.Resolver
	builder     *cmdline.Builder
}

// flagKeys maps setting keys to the persistent flags that override them.
var flagKeys = map[string]string{
	config.KeyWorkspace: "workspace",
	config.KeyVerbose:   "verbose",
	config.KeyPlatform:  "platform",
}

// newApp creates an app with real implementations of all dependencies.
func newApp(cmd *cobra.Command) (*app, error) {
	v := viper.New()
	if err := bindFlags(v, cmd.Flags()); err != nil {
		return nil, err
	}

	settings, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	logger := newLogger(cmd.ErrOrStderr(), settings.Verbose)

	p, err := platform.Parse(settings.Platform)
	if err != nil {
		return nil, err
	}

	fs := fsops.NewRealFS()
	executables := execpath.NewResolver(p, execpath.NewSearcher(fs, p, nil))

	logger.Debug("settings loaded", "workspace", settings.Workspace, "windows", p.IsWindows())

	return &app{
		settings:    settings,
		logger:      logger,
		fs:          fs,
		projects:    project.NewResolver(fs, settings.Names, logger),
		executables: executables,
		builder:     cmdline.NewBuilder(executables, p, settings.Names),
	}, nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for key, name := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind --%s: %w", name, err)
		}
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "rnconsole",
		Level:  level,
	})
}

// formatError formats an error for display.
func formatError(err error) string {
	initColors()
	return errorColor.Sprintf("Error: %v", err)
}

// outputJSON writes a value as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
