// Package sidecar reads and writes the sidecar config file kept beside the
// workspace (.idea/.rnconsole by default).
//
// The file is a flat JSON object. Two keys are understood:
//   - currentPath: override of the JS project root, relative to the workspace
//     root or absolute
//   - metroPort: override of the bundler port
//
// Reads never fail: a missing or malformed file is logged and reported as an
// empty mapping, so callers fall back to filesystem heuristics. Writes are
// read-merge-write and keep every key they did not touch, including values
// that are not strings. Concurrent writers race and the last one wins.
package sidecar
