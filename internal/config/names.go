// Package config holds the fixed file and directory names the resolvers
// probe for, and the tool settings that may override them.
//
// Names are built once at startup (DefaultNames, optionally adjusted by
// Load) and passed to every resolver, so no resolver carries its own
// literals.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Names contains every fixed name used during resolution.
type Names struct {
	// HiddenDir is the workspace-relative directory holding the sidecar (default: .idea)
	HiddenDir string

	// SidecarFile is the sidecar config file name inside HiddenDir (default: .rnconsole)
	SidecarFile string

	// Manifest marks a JS project root (default: package.json)
	Manifest string

	// BuildDescriptor marks a native Android project root (default: build.gradle)
	BuildDescriptor string

	// WrapperScript is the Windows Gradle wrapper that must be invoked from
	// its own directory (default: gradlew.bat)
	WrapperScript string

	// DefaultMetroPort is the bundler port treated as "not overridden" (default: 8081)
	DefaultMetroPort string

	// EntryFile is the entry script of current React Native layouts (default: index.js)
	EntryFile string
}

// DefaultNames returns the names used by React Native projects.
func DefaultNames() Names {
	return Names{
		HiddenDir:        ".idea",
		SidecarFile:      ".rnconsole",
		Manifest:         "package.json",
		BuildDescriptor:  "build.gradle",
		WrapperScript:    "gradlew.bat",
		DefaultMetroPort: "8081",
		EntryFile:        "index.js",
	}
}

// SidecarPath returns <workspaceRoot>/<HiddenDir>/<SidecarFile>.
func (n Names) SidecarPath(workspaceRoot string) string {
	return filepath.Join(workspaceRoot, n.HiddenDir, n.SidecarFile)
}

// Validate checks that every name is a single path element.
func (n Names) Validate() error {
	fields := []struct {
		key   string
		value string
	}{
		{"hidden_dir", n.HiddenDir},
		{"sidecar_file", n.SidecarFile},
		{"manifest", n.Manifest},
		{"build_descriptor", n.BuildDescriptor},
		{"wrapper_script", n.WrapperScript},
		{"entry_file", n.EntryFile},
	}
	for _, f := range fields {
		if err := validateName(f.value); err != nil {
			return fmt.Errorf("%s: %w", f.key, err)
		}
	}

	if strings.TrimSpace(n.DefaultMetroPort) == "" {
		return fmt.Errorf("default_metro_port: empty")
	}
	return nil
}

// validateName rejects empty names, path separators and traversal.
func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("invalid name: empty")
	}

	if strings.Contains(name, string(filepath.Separator)) || strings.Contains(name, "/") || strings.Contains(name, "\\") {
		return fmt.Errorf("invalid name %q: must not contain path separators", name)
	}

	if name == "." || name == ".." {
		return fmt.Errorf("invalid name %q: path traversal not allowed", name)
	}

	return nil
}
