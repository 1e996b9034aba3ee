package cli

import "errors"

var (
	// ErrNoProject indicates no JS project root could be located.
	ErrNoProject = errors.New("no React Native project found")

	// ErrNoNativeProject indicates no Android project root could be located.
	ErrNoNativeProject = errors.New("no Android project found")

	// ErrExecutableNotFound indicates a command name did not resolve on PATH.
	ErrExecutableNotFound = errors.New("executable not found on PATH")

	// ErrUnknownKey indicates a sidecar key that is not set.
	ErrUnknownKey = errors.New("key not set")
)
