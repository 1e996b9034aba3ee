package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/danieljhkim/rnconsole/internal/fsops"
)

var _ fsops.FS = (*MemFS)(nil)

// MemFS is an in-memory fsops.FS. Paths are cleaned before use; errors can
// be injected per path to exercise the resolvers' IO failure handling.
type MemFS struct {
	files map[string][]byte
	modes map[string]os.FileMode
	dirs  map[string]bool

	// StatErrs makes Stat and Exists fail for the given paths.
	StatErrs map[string]error
	// ReadErrs makes ReadFile fail for the given paths.
	ReadErrs map[string]error
	// WriteErr, when set, is returned by AtomicWrite and MkdirAll.
	WriteErr error

	// Writes counts successful AtomicWrite calls.
	Writes int
}

// NewMemFS returns an empty MemFS containing only the root directory.
func NewMemFS() *MemFS {
	return &MemFS{
		files:    make(map[string][]byte),
		modes:    make(map[string]os.FileMode),
		dirs:     map[string]bool{string(filepath.Separator): true},
		StatErrs: make(map[string]error),
		ReadErrs: make(map[string]error),
	}
}

// AddFile creates a file and its parent directories.
func (m *MemFS) AddFile(path string, content []byte, perm os.FileMode) {
	path = filepath.Clean(path)
	m.addDir(filepath.Dir(path))
	m.files[path] = append([]byte(nil), content...)
	m.modes[path] = perm
}

// AddDir creates a directory and its parents.
func (m *MemFS) AddDir(path string) {
	m.addDir(filepath.Clean(path))
}

func (m *MemFS) addDir(path string) {
	for {
		m.dirs[path] = true
		parent := filepath.Dir(path)
		if parent == path {
			return
		}
		path = parent
	}
}

// Content returns a file's bytes and whether it exists.
func (m *MemFS) Content(path string) ([]byte, bool) {
	b, ok := m.files[filepath.Clean(path)]
	return b, ok
}

func (m *MemFS) Stat(path string) (os.FileInfo, error) {
	path = filepath.Clean(path)
	if err, ok := m.StatErrs[path]; ok {
		return nil, &fs.PathError{Op: "stat", Path: path, Err: err}
	}
	if content, ok := m.files[path]; ok {
		return &memFileInfo{name: filepath.Base(path), size: int64(len(content)), mode: m.modes[path]}, nil
	}
	if m.dirs[path] {
		return &memFileInfo{name: filepath.Base(path), mode: fs.ModeDir | 0755}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
}

func (m *MemFS) ReadDir(path string) ([]os.DirEntry, error) {
	path = filepath.Clean(path)
	if !m.dirs[path] {
		return nil, &fs.PathError{Op: "readdir", Path: path, Err: fs.ErrNotExist}
	}

	var entries []os.DirEntry
	collect := func(child string) {
		if filepath.Dir(child) != path || child == path {
			return
		}
		info, err := m.Stat(child)
		if err != nil {
			return
		}
		entries = append(entries, fs.FileInfoToDirEntry(info))
	}
	for p := range m.dirs {
		collect(p)
	}
	for p := range m.files {
		collect(p)
	}

	sort.Slice(entries, func(i, j int) bool {
		return strings.Compare(entries[i].Name(), entries[j].Name()) < 0
	})
	return entries, nil
}

func (m *MemFS) MkdirAll(path string, perm os.FileMode) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.AddDir(path)
	return nil
}

func (m *MemFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.AddFile(path, data, perm)
	m.Writes++
	return nil
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	path = filepath.Clean(path)
	if err, ok := m.ReadErrs[path]; ok {
		return nil, &fs.PathError{Op: "read", Path: path, Err: err}
	}
	if content, ok := m.files[path]; ok {
		return append([]byte(nil), content...), nil
	}
	if m.dirs[path] {
		return nil, &fs.PathError{Op: "read", Path: path, Err: fs.ErrInvalid}
	}
	return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
}

func (m *MemFS) Exists(path string) (bool, error) {
	_, err := m.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (m *MemFS) IsFile(path string) bool {
	info, err := m.Stat(path)
	return err == nil && !info.IsDir()
}

func (m *MemFS) IsDir(path string) bool {
	info, err := m.Stat(path)
	return err == nil && info.IsDir()
}

// memFileInfo implements os.FileInfo
type memFileInfo struct {
	name string
	size int64
	mode os.FileMode
}

func (i *memFileInfo) Name() string       { return i.name }
func (i *memFileInfo) Size() int64        { return i.size }
func (i *memFileInfo) Mode() os.FileMode  { return i.mode }
func (i *memFileInfo) ModTime() time.Time { return time.Time{} }
func (i *memFileInfo) IsDir() bool        { return i.mode.IsDir() }
func (i *memFileInfo) Sys() any           { return nil }
