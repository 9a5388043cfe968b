// SPDX-License-Identifier: MPL-2.0

package locator

import (
	"path/filepath"
	"sort"
	"strings"
)

// PathSet is a set of filesystem paths with case-insensitive membership.
// Two paths that differ only in casing collapse to a single entry; the
// spelling seen first wins.
type PathSet struct {
	entries map[string]string // folded key -> first-seen spelling
}

// NewPathSet returns an empty set.
func NewPathSet() *PathSet {
	return &PathSet{entries: make(map[string]string)}
}

// Add inserts a path and reports whether it was not already present.
func (s *PathSet) Add(path string) bool {
	key := fold(path)
	if _, ok := s.entries[key]; ok {
		return false
	}
	s.entries[key] = path
	return true
}

// Contains reports case-insensitive membership.
func (s *PathSet) Contains(path string) bool {
	_, ok := s.entries[fold(path)]
	return ok
}

// Len returns the number of distinct paths.
func (s *PathSet) Len() int {
	return len(s.entries)
}

// Paths returns the stored spellings, sorted for deterministic iteration.
func (s *PathSet) Paths() []string {
	paths := make([]string, 0, len(s.entries))
	for _, p := range s.entries {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// fold produces the case-insensitive set key for a path.
func fold(path string) string {
	return strings.ToLower(filepath.Clean(path))
}
