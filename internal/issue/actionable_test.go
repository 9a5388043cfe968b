// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableErrorError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "load configuration"},
			expected: "failed to load configuration",
		},
		{
			name:     "operation with resource",
			err:      &ActionableError{Operation: "load configuration", Resource: "config.cue"},
			expected: "failed to load configuration: config.cue",
		},
		{
			name: "operation with resource and cause",
			err: &ActionableError{
				Operation: "read response file",
				Resource:  "csc.rsp",
				Cause:     errors.New("permission denied"),
			},
			expected: "failed to read response file: csc.rsp: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := WrapWithOperation(cause, "write response file")
	if !errors.Is(err, cause) {
		t.Error("errors.Is should match the wrapped cause")
	}

	if WrapWithOperation(nil, "noop") != nil {
		t.Error("WrapWithOperation(nil, ...) should return nil")
	}
}

func TestActionableErrorFormat(t *testing.T) {
	err := NewErrorContext().
		WithOperation("load configuration").
		WithResource("config.cue").
		WithSuggestion("Run 'rsppin config init' to create one").
		Wrap(errors.New("no such file")).
		Build()

	compact := err.Format(false)
	if !strings.Contains(compact, "rsppin config init") {
		t.Errorf("Format(false) missing suggestion: %q", compact)
	}
	if strings.Contains(compact, "Error chain") {
		t.Errorf("Format(false) should not include the chain: %q", compact)
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "Error chain") || !strings.Contains(verbose, "no such file") {
		t.Errorf("Format(true) missing error chain: %q", verbose)
	}
}

func TestErrorContextRequiresOperation(t *testing.T) {
	if err := NewErrorContext().WithResource("x").BuildError(); err != nil {
		t.Errorf("BuildError without operation should be nil, got %v", err)
	}
}
