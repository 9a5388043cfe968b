// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"rsppin/internal/config"
	"rsppin/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug-level output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// activeCfg is the configuration loaded by initRootConfig.
	activeCfg = config.DefaultConfig()

	// cfgLoadErr holds the config load failure, if any. Commands that act on
	// the directive policy must refuse to run while it is set; falling back to
	// defaults would rewrite response files with a policy the user never chose.
	cfgLoadErr error

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "rsppin",
		Short: "Pin the C# language version across Unity build units",
		Long: TitleStyle.Render("rsppin") + SubtitleStyle.Render(" - response file language-version pinning") + `

rsppin walks a selection of paths, finds every assembly-definition build
unit (.asmdef), and makes sure the unit's compiler response file (csc.rsp)
declares an acceptable -langVersion directive: missing files are created
with defaults, outdated version tokens are rewritten, and compliant files
are left byte-for-byte untouched.

` + SubtitleStyle.Render("Examples:") + `
  rsppin pin Assets            Normalize every unit under Assets/
  rsppin pin --dry-run .       Show what would change, touch nothing
  rsppin config show           Show the effective directive policy`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/rsppin/config.cue)")
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig installs the logger and reads the config file, if any.
func initRootConfig() {
	cfgLoadErr = nil
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	cfg, err := config.Load()
	if err != nil {
		cfgLoadErr = err
	}
	if cfg != nil {
		activeCfg = cfg
		if !verbose {
			verbose = cfg.UI.Verbose
		}
	}

	initLogger()
}

// requirePolicy returns the recorded config load failure as an ExitError.
// Call it from every command that acts on the directive policy.
func requirePolicy() error {
	if cfgLoadErr == nil {
		return nil
	}
	return &ExitError{Code: 1, Err: issue.NewErrorContext().
		WithOperation("load configuration").
		WithSuggestion("Check the --config path, or run 'rsppin config init' to create a default file").
		Wrap(cfgLoadErr).
		BuildError()}
}

// initLogger routes slog through charmbracelet/log so internal packages get
// styled, leveled output without importing the presentation layer.
func initLogger() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	slog.SetDefault(slog.New(logger))
}
