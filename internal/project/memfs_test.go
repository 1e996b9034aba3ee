package project

import (
	"errors"
	"testing"

	"github.com/danieljhkim/rnconsole/internal/config"
	"github.com/danieljhkim/rnconsole/internal/testutil"
)

func TestResolver_ProbeErrorsCountAsAbsent(t *testing.T) {
	denied := errors.New("permission denied")

	t.Run("unreadable workspace manifest falls through to parent", func(t *testing.T) {
		mem := testutil.NewMemFS()
		mem.AddFile("/repo/package.json", []byte("{}"), 0644)
		mem.AddDir("/repo/android")
		mem.StatErrs["/repo/android/package.json"] = denied

		r := NewResolver(mem, config.DefaultNames(), nil)
		got, ok := r.ProjectRoot("/repo/android")
		if !ok || got != "/repo" {
			t.Errorf("ProjectRoot = %q, %v; want /repo, true", got, ok)
		}
	})

	t.Run("unreadable subdirectory is skipped", func(t *testing.T) {
		mem := testutil.NewMemFS()
		mem.AddDir("/app/a-locked")
		mem.StatErrs["/app/a-locked"] = denied
		mem.AddFile("/app/android/build.gradle", nil, 0644)

		r := NewResolver(mem, config.DefaultNames(), nil)
		got, ok := r.NativeRoot("/app")
		if !ok || got != "/app/android" {
			t.Errorf("NativeRoot = %q, %v; want /app/android, true", got, ok)
		}
	})

	t.Run("empty override names the workspace", func(t *testing.T) {
		mem := testutil.NewMemFS()
		mem.AddFile("/ws/.idea/.rnconsole", []byte(`{"currentPath":""}`), 0644)
		mem.AddFile("/package.json", []byte("{}"), 0644)

		r := NewResolver(mem, config.DefaultNames(), nil)
		got, ok := r.ProjectRoot("/ws")
		if !ok || got != "/ws" {
			t.Errorf("ProjectRoot = %q, %v; want /ws, true", got, ok)
		}
	})

	t.Run("override is trusted without probing", func(t *testing.T) {
		mem := testutil.NewMemFS()
		mem.AddFile("/ws/.idea/.rnconsole", []byte(`{"currentPath":"/elsewhere"}`), 0644)

		r := NewResolver(mem, config.DefaultNames(), nil)
		got, ok := r.ProjectRoot("/ws")
		if !ok || got != "/elsewhere" {
			t.Errorf("ProjectRoot = %q, %v; want /elsewhere, true", got, ok)
		}
	})
}

func TestResolver_CustomNames(t *testing.T) {
	names := config.DefaultNames()
	names.Manifest = "app.json"
	names.BuildDescriptor = "build.gradle.kts"

	mem := testutil.NewMemFS()
	mem.AddFile("/ws/app.json", []byte("{}"), 0644)
	mem.AddFile("/ws/android/build.gradle.kts", nil, 0644)

	r := NewResolver(mem, names, nil)
	if got, ok := r.ProjectRoot("/ws"); !ok || got != "/ws" {
		t.Errorf("ProjectRoot = %q, %v; want /ws, true", got, ok)
	}
	if got, ok := r.NativeRootFor("/ws"); !ok || got != "/ws/android" {
		t.Errorf("NativeRootFor = %q, %v; want /ws/android, true", got, ok)
	}
}
