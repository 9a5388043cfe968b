// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as
// the file format.
//
// Configuration is loaded from ~/.config/rsppin/config.cue (or the XDG
// equivalent on Linux, ~/Library/Application Support/rsppin/config.cue on
// macOS, %APPDATA%\rsppin\config.cue on Windows), with a config.cue in the
// current directory as a fallback. Values are validated against a CUE schema
// (config_schema.cue) before use.
//
// The configuration covers the normalization policy: the descriptor file
// extension, the response file name, the desired language-version directive,
// the set of directives already treated as compliant, and the nullable
// directive written on first creation.
package config
