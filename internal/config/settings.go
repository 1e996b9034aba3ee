package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "RNCONSOLE"

// Setting keys. Flags bound to the same viper instance use these names.
const (
	KeyWorkspace        = "workspace"
	KeyVerbose          = "verbose"
	KeyPlatform         = "platform"
	KeyHiddenDir        = "hidden_dir"
	KeySidecarFile      = "sidecar_file"
	KeyManifest         = "manifest"
	KeyBuildDescriptor  = "build_descriptor"
	KeyWrapperScript    = "wrapper_script"
	KeyDefaultMetroPort = "default_metro_port"
	KeyEntryFile        = "entry_file"
)

// Settings is the resolved tool configuration for one invocation.
type Settings struct {
	// Workspace is the absolute workspace root the IDE handed us.
	Workspace string

	// Verbose enables debug logging.
	Verbose bool

	// Platform is "auto", "windows" or "unix".
	Platform string

	Names Names
}

// Load reads settings from v. Defaults come from DefaultNames and the
// current directory; RNCONSOLE_* environment variables and any flags bound
// to v take precedence.
func Load(v *viper.Viper) (*Settings, error) {
	defaults := DefaultNames()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyPlatform, "auto")
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyHiddenDir, defaults.HiddenDir)
	v.SetDefault(KeySidecarFile, defaults.SidecarFile)
	v.SetDefault(KeyManifest, defaults.Manifest)
	v.SetDefault(KeyBuildDescriptor, defaults.BuildDescriptor)
	v.SetDefault(KeyWrapperScript, defaults.WrapperScript)
	v.SetDefault(KeyDefaultMetroPort, defaults.DefaultMetroPort)
	v.SetDefault(KeyEntryFile, defaults.EntryFile)

	workspace := v.GetString(KeyWorkspace)
	if workspace == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		workspace = cwd
	}
	abs, err := filepath.Abs(workspace)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve workspace %q: %w", workspace, err)
	}

	s := &Settings{
		Workspace: abs,
		Verbose:   v.GetBool(KeyVerbose),
		Platform:  v.GetString(KeyPlatform),
		Names: Names{
			HiddenDir:        v.GetString(KeyHiddenDir),
			SidecarFile:      v.GetString(KeySidecarFile),
			Manifest:         v.GetString(KeyManifest),
			BuildDescriptor:  v.GetString(KeyBuildDescriptor),
			WrapperScript:    v.GetString(KeyWrapperScript),
			DefaultMetroPort: v.GetString(KeyDefaultMetroPort),
			EntryFile:        v.GetString(KeyEntryFile),
		},
	}

	if err := s.Names.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return s, nil
}
