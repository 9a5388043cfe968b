// SPDX-License-Identifier: MPL-2.0

package respfile

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
)

// langVersionPattern matches a language-version token and its value,
// e.g. "-langVersion:8.0" or "-LANGVERSION:latest".
var langVersionPattern = regexp.MustCompile(`(?i)-langVersion:\S+`)

type (
	// Options configures a Normalizer.
	Options struct {
		// ResponseFileName is the fixed response file name looked up next to
		// each descriptor (e.g. "csc.rsp").
		ResponseFileName string
		// Desired is the directive written when a file is created or patched.
		Desired string
		// Acceptable lists directives that already satisfy the policy. A file
		// containing any of them as a substring is left untouched.
		Acceptable []string
		// Nullable is the secondary directive added on first creation only.
		Nullable string
		// DryRun computes outcomes without touching the filesystem.
		DryRun bool
	}

	// Normalizer applies the language-version policy to response files.
	Normalizer struct {
		opts       Options
		acceptable []string // pre-folded for case-insensitive containment
	}

	// Result is the terminal outcome for one build unit.
	Result struct {
		// Descriptor is the unit's descriptor path as given.
		Descriptor string
		// Response is the derived response file path (empty when the
		// descriptor path was malformed).
		Response string
		// Outcome is the tri-state result.
		Outcome Outcome
		// Err holds the failure detail for skipped-on-error units.
		Err error
	}
)

// NewNormalizer validates opts and returns a ready Normalizer.
func NewNormalizer(opts Options) (*Normalizer, error) {
	if err := validateOptions(opts); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	folded := make([]string, len(opts.Acceptable))
	for i, a := range opts.Acceptable {
		folded[i] = strings.ToLower(a)
	}

	return &Normalizer{opts: opts, acceptable: folded}, nil
}

// validateOptions rejects configurations the patch algorithm cannot act on.
func validateOptions(opts Options) error {
	if strings.TrimSpace(opts.ResponseFileName) == "" {
		return errors.New("response file name must not be empty")
	}
	if strings.ContainsRune(opts.ResponseFileName, os.PathSeparator) {
		return fmt.Errorf("response file name %q must not contain path separators", opts.ResponseFileName)
	}
	if strings.TrimSpace(opts.Desired) == "" {
		return errors.New("desired directive must not be empty")
	}
	if len(opts.Acceptable) == 0 {
		return errors.New("acceptable directive list must not be empty")
	}
	return nil
}

// Normalize ensures the response file for one descriptor complies with the
// policy. All I/O failures are contained here: they are logged, recorded on
// the Result, and reported as Skipped so a batch always continues.
func (n *Normalizer) Normalize(descriptorPath string) Result {
	res := Result{Descriptor: descriptorPath, Outcome: OutcomeSkipped}

	dir := parentDir(descriptorPath)
	if dir == "" {
		res.Err = fmt.Errorf("descriptor path %q has no parent directory", descriptorPath)
		slog.Warn("skipping malformed descriptor path", "path", descriptorPath)
		return res
	}
	res.Response = filepath.Join(dir, n.opts.ResponseFileName)

	info, err := os.Stat(res.Response)
	switch {
	case err != nil && os.IsNotExist(err):
		return n.create(res)
	case err != nil:
		res.Err = fmt.Errorf("stat response file: %w", err)
		slog.Warn("skipping unit, response file not readable", "path", res.Response, "error", err)
		return res
	case info.IsDir():
		res.Err = fmt.Errorf("response path %s is a directory", res.Response)
		slog.Warn("skipping unit, response path is a directory", "path", res.Response)
		return res
	}

	return n.patchExisting(res)
}

// create writes a fresh response file holding the desired directive and the
// nullable directive, one per line, using the platform terminator.
func (n *Normalizer) create(res Result) Result {
	if n.opts.DryRun {
		res.Outcome = OutcomeCreated
		return res
	}

	eol := lineEnding()
	content := n.opts.Desired + eol
	if n.opts.Nullable != "" {
		content += n.opts.Nullable + eol
	}

	if err := os.WriteFile(res.Response, []byte(content), 0o644); err != nil {
		res.Err = fmt.Errorf("create response file: %w", err)
		slog.Warn("skipping unit, failed to create response file", "path", res.Response, "error", err)
		return res
	}

	res.Outcome = OutcomeCreated
	return res
}

// patchExisting reads the file, applies the patch algorithm, and writes the
// result back only when it actually differs.
func (n *Normalizer) patchExisting(res Result) Result {
	data, err := os.ReadFile(res.Response)
	if err != nil {
		res.Err = fmt.Errorf("read response file: %w", err)
		slog.Warn("skipping unit, failed to read response file", "path", res.Response, "error", err)
		return res
	}

	original := string(data)
	patched := n.Patch(original)
	if patched == original {
		return res // already compliant, leave untouched
	}

	if n.opts.DryRun {
		res.Outcome = OutcomeUpdated
		return res
	}

	if err := os.WriteFile(res.Response, []byte(patched), 0o644); err != nil {
		res.Err = fmt.Errorf("write response file: %w", err)
		slog.Warn("skipping unit, failed to write response file", "path", res.Response, "error", err)
		return res
	}

	res.Outcome = OutcomeUpdated
	return res
}

// Patch applies the idempotent patch algorithm to response file content:
//
//  1. Line terminators are canonicalized to "\n" in a working copy so that
//     matching is terminator-agnostic.
//  2. If the copy contains any acceptable directive as a case-insensitive
//     substring, the original is returned unmodified. No canonicalization
//     leaks into compliant files.
//  3. Otherwise every existing -langVersion token is replaced with the
//     desired directive; when there is none, the desired directive is
//     appended on a line of its own.
//  4. The result is re-expanded to the platform's native terminator.
func (n *Normalizer) Patch(original string) string {
	work := canonicalizeNewlines(original)

	lower := strings.ToLower(work)
	for _, acc := range n.acceptable {
		if strings.Contains(lower, acc) {
			return original
		}
	}

	if langVersionPattern.MatchString(work) {
		work = langVersionPattern.ReplaceAllString(work, n.opts.Desired)
	} else {
		if work != "" && !strings.HasSuffix(work, "\n") {
			work += "\n"
		}
		work += n.opts.Desired + "\n"
	}

	return expandNewlines(work)
}

// parentDir resolves the directory holding a descriptor. Empty and
// root-relative degenerate paths yield "" so callers can reject them.
func parentDir(path string) string {
	if strings.TrimSpace(path) == "" {
		return ""
	}
	return filepath.Dir(path)
}

// canonicalizeNewlines rewrites CRLF and bare CR terminators to LF.
func canonicalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// expandNewlines rewrites canonical LF terminators to the platform style.
func expandNewlines(s string) string {
	if eol := lineEnding(); eol != "\n" {
		return strings.ReplaceAll(s, "\n", eol)
	}
	return s
}

// lineEnding returns the platform's native line terminator.
func lineEnding() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}
