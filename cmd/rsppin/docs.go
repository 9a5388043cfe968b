// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed usage.md
var usageDoc string

// docsCmd renders the embedded usage guide.
var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show the rsppin usage guide",
	RunE:  runDocs,
}

func init() {
	rootCmd.AddCommand(docsCmd)
}

func runDocs(cmd *cobra.Command, _ []string) error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		// No styled renderer available (e.g. dumb terminal): print raw markdown.
		fmt.Fprintln(cmd.OutOrStdout(), usageDoc)
		return nil
	}

	rendered, err := renderer.Render(usageDoc)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), usageDoc)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}
