package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danieljhkim/rnconsole/internal/config"
	"github.com/danieljhkim/rnconsole/internal/fsops"
)

func newTestResolver() *Resolver {
	return NewResolver(fsops.NewRealFS(), config.DefaultNames(), nil)
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create parent of %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
}

func TestResolver_ProjectRoot(t *testing.T) {
	t.Run("manifest in workspace root", func(t *testing.T) {
		ws := t.TempDir()
		touch(t, filepath.Join(ws, "package.json"))

		got, ok := newTestResolver().ProjectRoot(ws)
		if !ok {
			t.Fatal("expected project root to be found")
		}
		if got != ws {
			t.Errorf("ProjectRoot() = %q, want %q", got, ws)
		}
	})

	t.Run("manifest one level up", func(t *testing.T) {
		root := t.TempDir()
		touch(t, filepath.Join(root, "package.json"))
		ws := filepath.Join(root, "android")
		mkdir(t, ws)

		got, ok := newTestResolver().ProjectRoot(ws)
		if !ok {
			t.Fatal("expected project root to be found")
		}
		if got != root {
			t.Errorf("ProjectRoot() = %q, want %q", got, root)
		}
	})

	t.Run("workspace manifest wins over parent", func(t *testing.T) {
		root := t.TempDir()
		touch(t, filepath.Join(root, "package.json"))
		ws := filepath.Join(root, "packages", "app")
		touch(t, filepath.Join(ws, "package.json"))

		got, _ := newTestResolver().ProjectRoot(ws)
		if got != ws {
			t.Errorf("ProjectRoot() = %q, want %q", got, ws)
		}
	})

	t.Run("manifest two levels up is not found", func(t *testing.T) {
		root := t.TempDir()
		touch(t, filepath.Join(root, "package.json"))
		ws := filepath.Join(root, "android", "app")
		mkdir(t, ws)

		if got, ok := newTestResolver().ProjectRoot(ws); ok {
			t.Errorf("ProjectRoot() = %q, want not found", got)
		}
	})

	t.Run("nothing found", func(t *testing.T) {
		ws := filepath.Join(t.TempDir(), "empty")
		mkdir(t, ws)

		if got, ok := newTestResolver().ProjectRoot(ws); ok {
			t.Errorf("ProjectRoot() = %q, want not found", got)
		}
	})

	t.Run("relative override wins without manifest", func(t *testing.T) {
		base := t.TempDir()
		ws := filepath.Join(base, "android")
		mkdir(t, ws)

		r := newTestResolver()
		if err := r.SaveProjectRoot(ws, "../js"); err != nil {
			t.Fatalf("SaveProjectRoot failed: %v", err)
		}

		got, ok := r.ProjectRoot(ws)
		if !ok {
			t.Fatal("override should always be found")
		}
		if want := filepath.Join(base, "js"); got != want {
			t.Errorf("ProjectRoot() = %q, want %q", got, want)
		}
	})

	t.Run("override wins over manifest", func(t *testing.T) {
		ws := t.TempDir()
		touch(t, filepath.Join(ws, "package.json"))

		r := newTestResolver()
		if err := r.SaveProjectRoot(ws, "nested/app"); err != nil {
			t.Fatalf("SaveProjectRoot failed: %v", err)
		}

		got, _ := r.ProjectRoot(ws)
		if want := filepath.Join(ws, "nested", "app"); got != want {
			t.Errorf("ProjectRoot() = %q, want %q", got, want)
		}
	})

	t.Run("absolute override used as is", func(t *testing.T) {
		ws := t.TempDir()
		elsewhere := filepath.Join(t.TempDir(), "does-not-exist")

		r := newTestResolver()
		if err := r.SaveProjectRoot(ws, elsewhere); err != nil {
			t.Fatalf("SaveProjectRoot failed: %v", err)
		}

		got, ok := r.ProjectRoot(ws)
		if !ok || got != elsewhere {
			t.Errorf("ProjectRoot() = %q, %v, want %q, true", got, ok, elsewhere)
		}

		raw, ok := r.RawProjectRoot(ws)
		if !ok || raw != elsewhere {
			t.Errorf("RawProjectRoot() = %q, %v, want %q, true", raw, ok, elsewhere)
		}
	})

	t.Run("corrupt sidecar falls back to heuristics", func(t *testing.T) {
		ws := t.TempDir()
		touch(t, filepath.Join(ws, "package.json"))
		if err := os.MkdirAll(filepath.Join(ws, ".idea"), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(ws, ".idea", ".rnconsole"), []byte("{oops"), 0644); err != nil {
			t.Fatal(err)
		}

		got, ok := newTestResolver().ProjectRoot(ws)
		if !ok || got != ws {
			t.Errorf("ProjectRoot() = %q, %v, want %q, true", got, ok, ws)
		}
	})

	t.Run("custom manifest name", func(t *testing.T) {
		ws := t.TempDir()
		touch(t, filepath.Join(ws, "app.json"))

		names := config.DefaultNames()
		names.Manifest = "app.json"
		r := NewResolver(fsops.NewRealFS(), names, nil)

		if got, ok := r.ProjectRoot(ws); !ok || got != ws {
			t.Errorf("ProjectRoot() = %q, %v, want %q, true", got, ok, ws)
		}
	})
}

func TestResolver_EntryFile(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(t *testing.T, ws string)
		defaultName string
		want        string
	}{
		{
			name:        "no project keeps default",
			setup:       func(t *testing.T, ws string) {},
			defaultName: "index.android.js",
			want:        "index.android.js",
		},
		{
			name: "default present in project",
			setup: func(t *testing.T, ws string) {
				touch(t, filepath.Join(ws, "package.json"))
				touch(t, filepath.Join(ws, "index.android.js"))
			},
			defaultName: "index.android.js",
			want:        "index.android.js",
		},
		{
			name: "default missing falls back to index.js",
			setup: func(t *testing.T, ws string) {
				touch(t, filepath.Join(ws, "package.json"))
			},
			defaultName: "index.android.js",
			want:        "index.js",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := filepath.Join(t.TempDir(), "ws")
			mkdir(t, ws)
			tt.setup(t, ws)

			if got := newTestResolver().EntryFile(ws, tt.defaultName); got != tt.want {
				t.Errorf("EntryFile() = %q, want %q", got, tt.want)
			}
		})
	}
}
