package cmdline

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCommandSpec_Accessors(t *testing.T) {
	spec := CommandSpec{Args: []string{"/usr/bin/adb", "shell", "ls"}, Encoding: UTF8}

	if spec.Executable() != "/usr/bin/adb" {
		t.Errorf("Executable() = %q", spec.Executable())
	}
	if diff := cmp.Diff([]string{"shell", "ls"}, spec.Arguments()); diff != "" {
		t.Errorf("Arguments() mismatch (-want +got):\n%s", diff)
	}
	if spec.String() != "/usr/bin/adb shell ls" {
		t.Errorf("String() = %q", spec.String())
	}

	empty := CommandSpec{}
	if empty.Executable() != "" || empty.Arguments() != nil {
		t.Error("empty spec should have no executable or arguments")
	}
}

func TestCommandSpec_DecodeOutput(t *testing.T) {
	t.Run("utf-8 passes through", func(t *testing.T) {
		spec := CommandSpec{Args: []string{"adb"}, Encoding: UTF8}
		r, err := spec.DecodeOutput(strings.NewReader("设备 device\n"))
		if err != nil {
			t.Fatalf("DecodeOutput failed: %v", err)
		}
		out, err := io.ReadAll(r)
		if err != nil {
			t.Fatalf("ReadAll failed: %v", err)
		}
		if string(out) != "设备 device\n" {
			t.Errorf("decoded = %q", out)
		}
	})

	t.Run("invalid bytes replaced", func(t *testing.T) {
		spec := CommandSpec{Args: []string{"adb"}, Encoding: UTF8}
		r, err := spec.DecodeOutput(strings.NewReader("ok\xff"))
		if err != nil {
			t.Fatalf("DecodeOutput failed: %v", err)
		}
		out, _ := io.ReadAll(r)
		if string(out) != "ok\uFFFD" {
			t.Errorf("decoded = %q, want replacement character", out)
		}
	})

	t.Run("unknown encoding", func(t *testing.T) {
		spec := CommandSpec{Args: []string{"adb"}, Encoding: "no-such-charset"}
		if _, err := spec.DecodeOutput(strings.NewReader("")); err == nil {
			t.Error("expected error for unknown encoding")
		}
	})
}

func TestCommandSpec_Cmd(t *testing.T) {
	spec := CommandSpec{Args: []string{"/usr/bin/adb", "devices"}, Encoding: UTF8, Dir: "/work"}

	cmd, err := spec.Cmd(context.Background())
	if err != nil {
		t.Fatalf("Cmd failed: %v", err)
	}
	if cmd.Path != "/usr/bin/adb" {
		t.Errorf("Path = %q", cmd.Path)
	}
	if diff := cmp.Diff([]string{"/usr/bin/adb", "devices"}, cmd.Args); diff != "" {
		t.Errorf("Args mismatch (-want +got):\n%s", diff)
	}
	if cmd.Dir != "/work" {
		t.Errorf("Dir = %q", cmd.Dir)
	}
	if cmd.Process != nil {
		t.Error("Cmd must not start the process")
	}

	if _, err := (CommandSpec{}).Cmd(context.Background()); err == nil {
		t.Error("expected error for empty spec")
	}
}
