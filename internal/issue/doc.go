// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error values that carry the failed
// operation, the resource involved, and suggestions for fixing the problem.
package issue
