// SPDX-License-Identifier: MPL-2.0

package respfile

// Outcome is the terminal state reached for one build unit.
type Outcome int

const (
	// OutcomeCreated indicates a response file was written where none existed.
	OutcomeCreated Outcome = iota
	// OutcomeUpdated indicates an existing response file was patched.
	OutcomeUpdated
	// OutcomeSkipped indicates the file was already compliant, or processing
	// failed and the unit was abandoned without aborting the batch.
	OutcomeSkipped
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeUpdated:
		return "updated"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}
