// SPDX-License-Identifier: MPL-2.0

// Package locator discovers build-unit descriptor files under a selection of
// filesystem paths.
//
// A selection entry may be a directory (scanned recursively for descriptors),
// a descriptor file (taken as-is), or any other existing file, in which case
// the file's directory is scanned instead. That last rule is a convenience
// carried over from the editor-integration ancestry of this tool: selecting
// any file inside a project still finds that project's build units. Entries
// that do not resolve to anything on disk are dropped.
//
// Results are collected into a case-insensitive path set, so the same
// descriptor reached through several selection entries, or spelled with
// different casing, is reported exactly once.
package locator
