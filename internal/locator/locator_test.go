// SPDX-License-Identifier: MPL-2.0

package locator

import (
	"os"
	"path/filepath"
	"testing"
)

// writeFile creates a file (and its parent directories) under root.
func writeFile(t *testing.T, root string, parts ...string) string {
	t.Helper()
	path := filepath.Join(append([]string{root}, parts...)...)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLocateDirectoryRecursive(t *testing.T) {
	l := New(".asmdef")
	root := t.TempDir()

	a := writeFile(t, root, "Game.Core.asmdef")
	b := writeFile(t, root, "Editor", "Game.Editor.asmdef")
	c := writeFile(t, root, "Plugins", "Vendor", "Vendor.Runtime.asmdef")
	writeFile(t, root, "readme.md")
	writeFile(t, root, "Editor", "notes.txt")

	result := l.Locate([]string{root})
	if result.Resolved != 1 {
		t.Errorf("Resolved = %d, want 1", result.Resolved)
	}
	if result.Descriptors.Len() != 3 {
		t.Fatalf("found %d descriptors, want 3: %v", result.Descriptors.Len(), result.Descriptors.Paths())
	}
	for _, want := range []string{a, b, c} {
		if !result.Descriptors.Contains(want) {
			t.Errorf("missing descriptor %s", want)
		}
	}
}

func TestLocateDirectDescriptorSelection(t *testing.T) {
	l := New(".asmdef")
	root := t.TempDir()
	desc := writeFile(t, root, "Game.Core.asmdef")

	result := l.Locate([]string{desc})
	if result.Descriptors.Len() != 1 || !result.Descriptors.Contains(desc) {
		t.Errorf("direct selection not passed through: %v", result.Descriptors.Paths())
	}
}

func TestLocateExtensionCaseInsensitive(t *testing.T) {
	l := New(".asmdef")
	root := t.TempDir()
	desc := writeFile(t, root, "Game.Core.ASMDEF")

	result := l.Locate([]string{root})
	if !result.Descriptors.Contains(desc) {
		t.Errorf("uppercase extension not matched: %v", result.Descriptors.Paths())
	}
}

func TestLocateNonDescriptorFileFallsBackToDirectory(t *testing.T) {
	l := New(".asmdef")
	root := t.TempDir()
	desc := writeFile(t, root, "Game.Core.asmdef")
	nested := writeFile(t, root, "Sub", "Nested.asmdef")
	other := writeFile(t, root, "readme.md")

	result := l.Locate([]string{other})
	if result.Resolved != 1 {
		t.Errorf("Resolved = %d, want 1", result.Resolved)
	}
	// The containing directory is scanned recursively.
	for _, want := range []string{desc, nested} {
		if !result.Descriptors.Contains(want) {
			t.Errorf("fallback scan missed %s: %v", want, result.Descriptors.Paths())
		}
	}
}

func TestLocateMissingEntriesSkipped(t *testing.T) {
	l := New(".asmdef")
	root := t.TempDir()
	desc := writeFile(t, root, "Game.Core.asmdef")

	result := l.Locate([]string{filepath.Join(root, "no-such-dir"), desc})
	if result.Resolved != 1 {
		t.Errorf("Resolved = %d, want 1", result.Resolved)
	}
	if result.Descriptors.Len() != 1 {
		t.Errorf("found %d descriptors, want 1", result.Descriptors.Len())
	}
}

func TestLocateEmptyOrInvalidSelection(t *testing.T) {
	l := New(".asmdef")

	t.Run("empty selection", func(t *testing.T) {
		result := l.Locate(nil)
		if result.Resolved != 0 || result.Descriptors.Len() != 0 {
			t.Errorf("Resolved = %d, descriptors = %d, want 0/0", result.Resolved, result.Descriptors.Len())
		}
	})

	t.Run("all invalid", func(t *testing.T) {
		result := l.Locate([]string{filepath.Join(t.TempDir(), "gone"), filepath.Join(t.TempDir(), "also-gone")})
		if result.Resolved != 0 {
			t.Errorf("Resolved = %d, want 0", result.Resolved)
		}
	})

	t.Run("valid but no descriptors", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "readme.md")
		result := l.Locate([]string{root})
		if result.Resolved != 1 {
			t.Errorf("Resolved = %d, want 1", result.Resolved)
		}
		if result.Descriptors.Len() != 0 {
			t.Errorf("descriptors = %d, want 0", result.Descriptors.Len())
		}
	})
}

func TestLocateDeduplicatesOverlappingSelection(t *testing.T) {
	l := New(".asmdef")
	root := t.TempDir()
	desc := writeFile(t, root, "Game.Core.asmdef")

	// The same descriptor selected directly and via its directory.
	result := l.Locate([]string{desc, root, desc})
	if result.Descriptors.Len() != 1 {
		t.Errorf("found %d descriptors, want 1: %v", result.Descriptors.Len(), result.Descriptors.Paths())
	}
}
