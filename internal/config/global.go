// SPDX-License-Identifier: MPL-2.0

package config

var (
	// configDirOverride allows tests to override the config directory.
	// os.UserHomeDir() doesn't reliably respect the HOME environment variable
	// on all platforms (e.g., macOS in CI), so a dedicated override is needed.
	configDirOverride string

	// configFilePathOverride points at an explicit config file (--config flag).
	configFilePathOverride string
)

// Reset clears overrides. Call from test cleanup to restore defaults.
func Reset() {
	configDirOverride = ""
	configFilePathOverride = ""
}

// SetConfigDirOverride sets a custom config directory path, primarily for tests.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// SetConfigFilePathOverride sets an explicit config file path; when set, that
// file is used exclusively and must exist.
func SetConfigFilePathOverride(path string) {
	configFilePathOverride = path
}
