// Package platform answers the single host question the resolvers need:
// whether executables follow Windows naming rules.
package platform

import (
	"fmt"
	"runtime"
	"strings"
)

// OS name constants for runtime.GOOS comparisons.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// Platform reports host capabilities.
type Platform interface {
	// IsWindows reports whether executables resolve with .exe/.cmd/.bat suffixes.
	IsWindows() bool
}

// Host describes the platform the process runs on.
type Host struct {
	goos string
}

// NewHost returns the platform of the running process.
func NewHost() Host {
	return Host{goos: runtime.GOOS}
}

// IsWindows reports whether the running process is on Windows.
func (h Host) IsWindows() bool {
	return h.goos == Windows
}

// Fixed is a Platform with a predetermined answer.
type Fixed bool

// IsWindows returns the fixed answer.
func (f Fixed) IsWindows() bool {
	return bool(f)
}

// Parse maps a platform setting to a Platform.
// "auto" or "" selects the host; "windows" and "unix" force an answer.
func Parse(name string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return NewHost(), nil
	case Windows:
		return Fixed(true), nil
	case "unix", Linux, Darwin:
		return Fixed(false), nil
	default:
		return nil, fmt.Errorf("unknown platform %q (want auto, windows or unix)", name)
	}
}
