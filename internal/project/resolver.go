package project

import (
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/danieljhkim/rnconsole/internal/config"
	"github.com/danieljhkim/rnconsole/internal/fsops"
	"github.com/danieljhkim/rnconsole/internal/sidecar"
)

// Resolver finds project and native roots.
type Resolver struct {
	fs     fsops.FS
	names  config.Names
	logger *log.Logger
}

// NewResolver creates a Resolver. A nil logger discards output.
func NewResolver(fs fsops.FS, names config.Names, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Resolver{
		fs:     fs,
		names:  names,
		logger: logger,
	}
}

// Sidecar returns the config store of workspaceRoot.
func (r *Resolver) Sidecar(workspaceRoot string) *sidecar.Store {
	return sidecar.NewStore(r.fs, r.names, workspaceRoot, r.logger)
}

// ProjectRoot returns the JS project root for workspaceRoot.
//
// A currentPath override in the sidecar wins and is trusted without checking
// that it exists; an empty override resolves to workspaceRoot. Otherwise
// workspaceRoot and then its parent are probed for the manifest.
func (r *Resolver) ProjectRoot(workspaceRoot string) (string, bool) {
	if override, ok := r.Sidecar(workspaceRoot).CurrentPath(); ok {
		root := r.resolveOverride(workspaceRoot, override)
		r.logger.Debug("project root from sidecar", "override", override, "root", root)
		return root, true
	}

	if r.exists(filepath.Join(workspaceRoot, r.names.Manifest)) {
		return workspaceRoot, true
	}

	parent := filepath.Dir(workspaceRoot)
	if parent != workspaceRoot && r.exists(filepath.Join(parent, r.names.Manifest)) {
		r.logger.Debug("project root is parent of workspace", "root", parent)
		return parent, true
	}

	r.logger.Debug("no project root found", "workspace", workspaceRoot, "manifest", r.names.Manifest)
	return "", false
}

// RawProjectRoot returns the currentPath override exactly as stored.
func (r *Resolver) RawProjectRoot(workspaceRoot string) (string, bool) {
	return r.Sidecar(workspaceRoot).CurrentPath()
}

// SaveProjectRoot persists a project root override for workspaceRoot.
func (r *Resolver) SaveProjectRoot(workspaceRoot, path string) error {
	return r.Sidecar(workspaceRoot).SetCurrentPath(path)
}

// EntryFile returns the JS entry file to bundle. defaultName is kept when the
// project root contains it or no project root is found; otherwise the
// configured entry file (index.js) is returned.
func (r *Resolver) EntryFile(workspaceRoot, defaultName string) string {
	root, ok := r.ProjectRoot(workspaceRoot)
	if !ok {
		return defaultName
	}
	if r.exists(filepath.Join(root, defaultName)) {
		return defaultName
	}
	return r.names.EntryFile
}

func (r *Resolver) resolveOverride(workspaceRoot, override string) string {
	if filepath.IsAbs(override) {
		return filepath.Clean(override)
	}
	joined := filepath.Join(workspaceRoot, override)
	abs, err := filepath.Abs(joined)
	if err != nil {
		return joined
	}
	return abs
}

// exists reports whether path exists. Probe errors count as absent.
func (r *Resolver) exists(path string) bool {
	ok, err := r.fs.Exists(path)
	if err != nil {
		r.logger.Debug("probe failed", "path", path, "error", err)
		return false
	}
	return ok
}
