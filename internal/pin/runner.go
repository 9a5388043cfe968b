// SPDX-License-Identifier: MPL-2.0

package pin

import (
	"context"
	"fmt"
	"log/slog"

	"rsppin/internal/locator"
	"rsppin/internal/respfile"
)

type (
	// Refresher is notified exactly once after a batch completes, mirroring
	// the host environment's asset-index refresh. Implementations must be
	// cheap; the runner calls them synchronously.
	Refresher interface {
		Refresh()
	}

	// Runner wires discovery and normalization into one batch operation.
	Runner struct {
		locator    *locator.Locator
		normalizer *respfile.Normalizer
		refresher  Refresher
	}

	// Summary tallies a completed batch. The counters always satisfy
	// Created + Updated + Skipped == len(Results).
	Summary struct {
		// Created counts response files written where none existed.
		Created int
		// Updated counts response files patched in place.
		Updated int
		// Skipped counts units that were already compliant or failed.
		Skipped int
		// Resolved counts selection entries that resolved on disk.
		Resolved int
		// Results holds the per-unit outcomes in processing order.
		Results []respfile.Result
	}
)

// NewRunner creates a Runner. A nil refresher disables the completion hook.
func NewRunner(loc *locator.Locator, norm *respfile.Normalizer, refresher Refresher) *Runner {
	return &Runner{locator: loc, normalizer: norm, refresher: refresher}
}

// Run locates every build unit reachable from selection and normalizes each
// one. Per-unit failures are contained in the summary; the only error this
// returns is context cancellation.
func (r *Runner) Run(ctx context.Context, selection []string) (Summary, error) {
	located := r.locator.Locate(selection)

	summary := Summary{Resolved: located.Resolved}
	for _, desc := range located.Descriptors.Paths() {
		select {
		case <-ctx.Done():
			return summary, fmt.Errorf("normalization batch canceled: %w", ctx.Err())
		default:
		}

		res := r.normalizer.Normalize(desc)
		summary.record(res)
	}

	slog.Debug("normalization batch finished",
		"created", summary.Created,
		"updated", summary.Updated,
		"skipped", summary.Skipped,
		"total", summary.Total())

	if r.refresher != nil {
		r.refresher.Refresh()
	}

	return summary, nil
}

// record tallies one unit result.
func (s *Summary) record(res respfile.Result) {
	s.Results = append(s.Results, res)
	switch res.Outcome {
	case respfile.OutcomeCreated:
		s.Created++
	case respfile.OutcomeUpdated:
		s.Updated++
	default:
		s.Skipped++
	}
}

// Total returns the number of units processed.
func (s Summary) Total() int {
	return len(s.Results)
}

// Failures returns the units skipped because of an error, as opposed to
// units skipped because they were already compliant.
func (s Summary) Failures() []respfile.Result {
	var failures []respfile.Result
	for _, res := range s.Results {
		if res.Err != nil {
			failures = append(failures, res)
		}
	}
	return failures
}

// SelectionResolved reports whether any selection entry existed on disk.
// When false, the run found nothing because the selection itself was empty
// or invalid, not because the selected trees lacked descriptors.
func (s Summary) SelectionResolved() bool {
	return s.Resolved > 0
}
