package execpath

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/danieljhkim/rnconsole/internal/fsops"
	"github.com/danieljhkim/rnconsole/internal/platform"
)

// PathSearcher finds a file name in the executable search path.
type PathSearcher interface {
	Find(name string) (string, bool)
}

// Searcher walks the PATH environment variable.
type Searcher struct {
	fs       fsops.FS
	platform platform.Platform
	getenv   func(string) string
}

// NewSearcher creates a Searcher. A nil getenv reads the process environment.
func NewSearcher(fs fsops.FS, p platform.Platform, getenv func(string) string) *Searcher {
	if getenv == nil {
		getenv = os.Getenv
	}
	return &Searcher{
		fs:       fs,
		platform: p,
		getenv:   getenv,
	}
}

// Find returns the first PATH entry containing name. A name with a path
// separator is checked directly instead of searched.
func (s *Searcher) Find(name string) (string, bool) {
	if name == "" {
		return "", false
	}

	if strings.ContainsAny(name, `/\`) {
		if s.runnable(name) {
			return absOrSelf(name), true
		}
		return "", false
	}

	for _, dir := range filepath.SplitList(s.getenv("PATH")) {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		if s.runnable(candidate) {
			return absOrSelf(candidate), true
		}
	}
	return "", false
}

// runnable reports whether path is a regular file the platform can run.
// Windows decides by extension, so only Unix requires an execute bit.
func (s *Searcher) runnable(path string) bool {
	info, err := s.fs.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if s.platform.IsWindows() {
		return true
	}
	return info.Mode().Perm()&0111 != 0
}

func absOrSelf(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
