// SPDX-License-Identifier: MPL-2.0

package locator

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

type (
	// Locator finds descriptor files for a configured descriptor extension.
	Locator struct {
		ext string
	}

	// Result is the outcome of one discovery pass.
	Result struct {
		// Descriptors holds the deduplicated descriptor paths.
		Descriptors *PathSet
		// Resolved counts selection entries that resolved to an existing
		// filesystem path. Zero means the selection was empty or entirely
		// invalid, which callers report differently from a valid selection
		// that simply contained no descriptors.
		Resolved int
	}
)

// New creates a Locator for the given descriptor file extension
// (e.g. ".asmdef"). The extension is matched case-insensitively.
func New(ext string) *Locator {
	return &Locator{ext: ext}
}

// Locate expands a selection of paths into the set of descriptor files
// reachable from it. Discovery is a pure read of the filesystem; entries
// that no longer exist are skipped without failing the pass.
func (l *Locator) Locate(selection []string) Result {
	result := Result{Descriptors: NewPathSet()}

	for _, entry := range selection {
		info, err := os.Stat(entry)
		if err != nil {
			slog.Debug("selection entry does not resolve, skipping", "path", entry)
			continue
		}
		result.Resolved++

		switch {
		case info.IsDir():
			l.scanTree(entry, result.Descriptors)
		case l.isDescriptor(entry):
			result.Descriptors.Add(entry)
		default:
			// Not a descriptor itself: scan the directory it lives in so
			// selecting any file of a project still finds its units.
			dir := filepath.Dir(entry)
			slog.Debug("selection entry is not a descriptor, scanning its directory", "path", entry, "dir", dir)
			l.scanTree(dir, result.Descriptors)
		}
	}

	return result
}

// scanTree walks root recursively and adds every descriptor file to set.
// Unreadable subtrees are logged and skipped.
func (l *Locator) scanTree(root string, set *PathSet) {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			slog.Warn("failed to read directory entry during discovery", "path", path, "error", walkErr)
			return nil
		}
		if !d.IsDir() && l.isDescriptor(path) {
			set.Add(path)
		}
		return nil
	})
	if err != nil {
		slog.Warn("descriptor discovery aborted for subtree", "root", root, "error", err)
	}
}

// isDescriptor reports whether a path carries the descriptor extension.
func (l *Locator) isDescriptor(path string) bool {
	return strings.EqualFold(filepath.Ext(path), l.ext)
}
