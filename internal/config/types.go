// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDescriptorExt is returned when the descriptor extension is
	// empty or lacks the leading dot.
	ErrInvalidDescriptorExt = errors.New("invalid descriptor extension")
	// ErrInvalidResponseFile is returned when the response file name is empty
	// or contains path separators.
	ErrInvalidResponseFile = errors.New("invalid response file name")
	// ErrInvalidLanguageConfig is returned when the directive policy is unusable.
	ErrInvalidLanguageConfig = errors.New("invalid language config")
)

type (
	// Config is the application configuration.
	Config struct {
		// DescriptorExt identifies build-unit descriptor files (e.g. ".asmdef").
		DescriptorExt string `mapstructure:"descriptor_ext"`
		// ResponseFile is the per-unit response file name (e.g. "csc.rsp").
		ResponseFile string `mapstructure:"response_file"`
		// Language is the language-version directive policy.
		Language LanguageConfig `mapstructure:"language"`
		// UI holds presentation settings.
		UI UIConfig `mapstructure:"ui"`
	}

	// LanguageConfig is the directive policy applied to response files.
	LanguageConfig struct {
		// Desired is the directive written on creation or patching.
		Desired string `mapstructure:"desired"`
		// Acceptable lists directives that already satisfy the policy.
		Acceptable []string `mapstructure:"acceptable"`
		// Nullable is the secondary directive added on first creation.
		Nullable string `mapstructure:"nullable"`
	}

	// UIConfig holds presentation settings.
	UIConfig struct {
		// Verbose enables debug-level output.
		Verbose bool `mapstructure:"verbose"`
	}
)

// DefaultConfig returns the built-in policy: pin Unity assembly definitions
// to C# 11, accepting latest/preview as already compliant.
func DefaultConfig() *Config {
	return &Config{
		DescriptorExt: ".asmdef",
		ResponseFile:  "csc.rsp",
		Language: LanguageConfig{
			Desired: "-langVersion:11",
			Acceptable: []string{
				"-langVersion:11",
				"-langVersion:latest",
				"-langVersion:preview",
			},
			Nullable: "-nullable:enable",
		},
	}
}

// Validate checks constraints the CUE schema cannot express.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.DescriptorExt, ".") || len(c.DescriptorExt) < 2 {
		return fmt.Errorf("%w: %q must start with a dot and name an extension", ErrInvalidDescriptorExt, c.DescriptorExt)
	}
	if strings.TrimSpace(c.ResponseFile) == "" || strings.ContainsAny(c.ResponseFile, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidResponseFile, c.ResponseFile)
	}
	if strings.TrimSpace(c.Language.Desired) == "" {
		return fmt.Errorf("%w: desired directive must not be empty", ErrInvalidLanguageConfig)
	}
	if len(c.Language.Acceptable) == 0 {
		return fmt.Errorf("%w: acceptable directive list must not be empty", ErrInvalidLanguageConfig)
	}
	for i, a := range c.Language.Acceptable {
		if strings.TrimSpace(a) == "" {
			return fmt.Errorf("%w: acceptable[%d] is empty", ErrInvalidLanguageConfig, i)
		}
	}
	return nil
}
