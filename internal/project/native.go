package project

import (
	"path/filepath"
)

// NativeRoot returns the Android project root under startDir: startDir
// itself when it holds the build descriptor, else the first immediate
// subdirectory that does. Grandchildren are never searched.
func (r *Resolver) NativeRoot(startDir string) (string, bool) {
	if r.exists(filepath.Join(startDir, r.names.BuildDescriptor)) {
		return startDir, true
	}

	entries, err := r.fs.ReadDir(startDir)
	if err != nil {
		r.logger.Debug("cannot list directory", "dir", startDir, "error", err)
		return "", false
	}

	for _, entry := range entries {
		dir := filepath.Join(startDir, entry.Name())
		// IsDir on the joined path follows symlinked directories.
		if !r.fs.IsDir(dir) {
			continue
		}
		if r.exists(filepath.Join(dir, r.names.BuildDescriptor)) {
			return dir, true
		}
	}

	return "", false
}

// NativeRootFor searches from the JS project root of workspaceRoot, or from
// workspaceRoot itself when no project root is found.
func (r *Resolver) NativeRootFor(workspaceRoot string) (string, bool) {
	start := workspaceRoot
	if root, ok := r.ProjectRoot(workspaceRoot); ok {
		start = root
	}
	return r.NativeRoot(start)
}
