// SPDX-License-Identifier: MPL-2.0

// Package respfile normalizes per-unit compiler response files (csc.rsp).
//
// For each build unit the normalizer derives the response file path next to
// the unit's descriptor and guarantees the file declares an acceptable
// -langVersion directive: a missing file is created with defaults, a file
// with a wrong version token is patched in place, and a file that already
// satisfies the policy is left byte-for-byte untouched.
//
// The patch algorithm is idempotent and terminator-preserving: files the
// normalizer only reads are never rewritten, and files it writes always use
// the platform's native line terminator.
package respfile
