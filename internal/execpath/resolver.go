package execpath

import (
	"path/filepath"
	"strings"

	"github.com/danieljhkim/rnconsole/internal/platform"
)

// windowsSuffixes is the lookup order on Windows. Native binaries shadow
// npm-style .cmd shims, which shadow .bat wrappers.
var windowsSuffixes = []string{".exe", ".cmd", ".bat"}

// Resolver maps command names to executable paths.
type Resolver struct {
	platform platform.Platform
	search   PathSearcher
}

// NewResolver creates a Resolver.
func NewResolver(p platform.Platform, search PathSearcher) *Resolver {
	return &Resolver{
		platform: p,
		search:   search,
	}
}

// Resolve returns the full path of name, or false when no variant exists on PATH.
func (r *Resolver) Resolve(name string) (string, bool) {
	if r.platform.IsWindows() && !hasWindowsSuffix(name) {
		for _, suffix := range windowsSuffixes {
			if p, ok := r.search.Find(name + suffix); ok {
				return p, true
			}
		}
	}
	return r.search.Find(name)
}

// Candidates lists the names Resolve tries, in order.
func (r *Resolver) Candidates(name string) []string {
	if !r.platform.IsWindows() || hasWindowsSuffix(name) {
		return []string{name}
	}
	out := make([]string, 0, len(windowsSuffixes)+1)
	for _, suffix := range windowsSuffixes {
		out = append(out, name+suffix)
	}
	return append(out, name)
}

func hasWindowsSuffix(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, suffix := range windowsSuffixes {
		if ext == suffix {
			return true
		}
	}
	return false
}
