// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"rsppin/internal/config"

	"github.com/spf13/cobra"
)

// configCmd groups configuration management subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage rsppin configuration",
	Long: `Manage rsppin configuration.

Configuration is stored in:
  - Linux: ~/.config/rsppin/config.cue
  - macOS: ~/Library/Application Support/rsppin/config.cue
  - Windows: %APPDATA%\rsppin\config.cue`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePolicy(); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), config.GenerateCUE(activeCfg))
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.CreateDefaultConfig(); err != nil {
				return err
			}
			path, err := config.ConfigFilePath()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", SuccessStyle.Render("Configuration ready:"), PathStyle.Render(path))
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ConfigFilePath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	rootCmd.AddCommand(configCmd)
}
