package cmdline

import (
	"strings"

	"github.com/danieljhkim/rnconsole/internal/config"
	"github.com/danieljhkim/rnconsole/internal/platform"
)

// ExecutableResolver maps a command name to a full path.
type ExecutableResolver interface {
	Resolve(name string) (string, bool)
}

// Builder constructs CommandSpecs.
type Builder struct {
	resolver ExecutableResolver
	platform platform.Platform
	names    config.Names
}

// NewBuilder creates a Builder.
func NewBuilder(resolver ExecutableResolver, p platform.Platform, names config.Names) *Builder {
	return &Builder{
		resolver: resolver,
		platform: p,
		names:    names,
	}
}

// Build splits shell on spaces and replaces the executable with its resolved
// path, keeping the literal name when resolution fails. workDir is recorded
// on the spec and, on Windows, prefixed to the Gradle wrapper script.
func (b *Builder) Build(shell, workDir string) CommandSpec {
	tokens := Split(shell)

	var args []string
	if len(tokens) > 1 {
		exe := b.resolve(tokens[0])
		if b.platform.IsWindows() && exe == b.names.WrapperScript && workDir != "" {
			// gradlew.bat must run from its own directory, never via PATH.
			exe = strings.TrimRight(workDir, `\/`) + `\` + exe
		}
		args = make([]string, 0, len(tokens))
		args = append(args, exe)
		args = append(args, tokens[1:]...)
	} else {
		args = []string{b.resolve(shell)}
	}

	return CommandSpec{
		Args:     args,
		Encoding: UTF8,
		Dir:      workDir,
	}
}

// Plain splits shell without resolving the executable.
func Plain(shell string) CommandSpec {
	return CommandSpec{
		Args:     Split(shell),
		Encoding: UTF8,
	}
}

func (b *Builder) resolve(name string) string {
	if p, ok := b.resolver.Resolve(name); ok {
		return p
	}
	return name
}

// Split breaks s on every single space. Interior empty tokens are kept and
// trailing empty tokens dropped; a string without spaces is one token.
func Split(s string) []string {
	if !strings.Contains(s, " ") {
		return []string{s}
	}
	tokens := strings.Split(s, " ")
	end := len(tokens)
	for end > 0 && tokens[end-1] == "" {
		end--
	}
	return tokens[:end]
}
