// SPDX-License-Identifier: MPL-2.0

// Package pin runs the full normalization batch: descriptor discovery
// followed by one response-file normalization per unit, with a tally of
// created/updated/skipped outcomes.
//
// Units are processed sequentially and independently; a failure on one unit
// is recorded on its result and never aborts the rest of the batch.
package pin
