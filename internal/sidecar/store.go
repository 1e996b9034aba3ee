package sidecar

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/danieljhkim/rnconsole/internal/config"
	"github.com/danieljhkim/rnconsole/internal/fsops"
)

// Recognized keys.
const (
	KeyCurrentPath = "currentPath"
	KeyMetroPort   = "metroPort"
)

// Store provides access to one workspace's sidecar file.
type Store struct {
	fs     fsops.FS
	names  config.Names
	path   string
	logger *log.Logger
}

// NewStore creates a Store for the sidecar of workspaceRoot.
// A nil logger discards output.
func NewStore(fs fsops.FS, names config.Names, workspaceRoot string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{
		fs:     fs,
		names:  names,
		path:   names.SidecarPath(workspaceRoot),
		logger: logger,
	}
}

// Path returns the sidecar file location.
func (s *Store) Path() string {
	return s.path
}

// Read returns the string-valued entries of the sidecar file.
// A missing or unparsable file yields an empty mapping.
func (s *Store) Read() map[string]string {
	raw, err := s.load()
	if err != nil {
		s.logger.Warn("failed to read sidecar config", "path", s.path, "error", err)
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		var str string
		if err := json.Unmarshal(v, &str); err != nil {
			s.logger.Debug("ignoring non-string sidecar value", "key", k)
			continue
		}
		out[k] = str
	}
	return out
}

// Get returns a single string entry.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.Read()[key]
	return v, ok
}

// WriteField sets key to value and writes the whole document back,
// creating the hidden directory if needed. An unreadable existing file is
// left untouched and its read error returned.
func (s *Store) WriteField(key, value string) error {
	doc, err := s.load()
	if err != nil {
		return fmt.Errorf("failed to read sidecar config: %w", err)
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	doc[key] = encoded

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal sidecar config: %w", err)
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", s.names.HiddenDir, err)
	}

	if err := s.fs.AtomicWrite(s.path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write sidecar config: %w", err)
	}

	s.logger.Debug("wrote sidecar config", "path", s.path, "key", key)
	return nil
}

// CurrentPath returns the raw project root override as stored. An empty
// string is a present override naming the workspace root itself.
func (s *Store) CurrentPath() (string, bool) {
	return s.Get(KeyCurrentPath)
}

// SetCurrentPath stores the project root override.
func (s *Store) SetCurrentPath(path string) error {
	return s.WriteField(KeyCurrentPath, path)
}

// MetroPort returns the bundler port override. A value equal to the default
// port counts as not overridden.
func (s *Store) MetroPort() (string, bool) {
	p, ok := s.Get(KeyMetroPort)
	if !ok {
		return "", false
	}
	if strings.EqualFold(strings.TrimSpace(p), s.names.DefaultMetroPort) {
		return "", false
	}
	return p, true
}

// SetMetroPort stores the bundler port override.
func (s *Store) SetMetroPort(port string) error {
	return s.WriteField(KeyMetroPort, port)
}

// load reads the sidecar as raw JSON values, keeping unknown entries intact.
// A missing or malformed file is an empty document; any other read failure
// is returned with an empty document.
func (s *Store) load() (map[string]json.RawMessage, error) {
	doc := make(map[string]json.RawMessage)

	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return doc, nil
		}
		return doc, err
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn("ignoring malformed sidecar config", "path", s.path, "error", err)
		return make(map[string]json.RawMessage), nil
	}
	if doc == nil {
		// literal null
		doc = make(map[string]json.RawMessage)
	}

	return doc, nil
}
