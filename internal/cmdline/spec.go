package cmdline

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// UTF8 is the encoding declared on every built command. Tool output such as
// adb's is decoded as UTF-8 whatever the host locale.
const UTF8 = "UTF-8"

// CommandSpec is an argument vector ready to hand to a process runner.
type CommandSpec struct {
	// Args holds the executable followed by its arguments.
	Args []string `json:"args"`

	// Encoding names the charset of the command's output.
	Encoding string `json:"encoding"`

	// Dir is the working directory, empty when not declared.
	Dir string `json:"dir,omitempty"`
}

// Executable returns the first element of Args.
func (c CommandSpec) Executable() string {
	if len(c.Args) == 0 {
		return ""
	}
	return c.Args[0]
}

// Arguments returns Args without the executable.
func (c CommandSpec) Arguments() []string {
	if len(c.Args) < 2 {
		return nil
	}
	return c.Args[1:]
}

// String joins Args with single spaces.
func (c CommandSpec) String() string {
	return strings.Join(c.Args, " ")
}

// TextEncoding looks up Encoding in the IANA registry.
func (c CommandSpec) TextEncoding() (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(c.Encoding)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", c.Encoding, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", c.Encoding)
	}
	return enc, nil
}

// DecodeOutput wraps r so bytes written by the command are decoded from
// Encoding. Invalid sequences become U+FFFD.
func (c CommandSpec) DecodeOutput(r io.Reader) (io.Reader, error) {
	enc, err := c.TextEncoding()
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// Cmd prepares, but does not start, an exec.Cmd for the spec.
func (c CommandSpec) Cmd(ctx context.Context) (*exec.Cmd, error) {
	if len(c.Args) == 0 || c.Args[0] == "" {
		return nil, fmt.Errorf("command is required")
	}
	cmd := exec.CommandContext(ctx, c.Args[0], c.Args[1:]...)
	cmd.Dir = c.Dir
	return cmd, nil
}
