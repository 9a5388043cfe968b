// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"rsppin/internal/issue"
	"rsppin/internal/locator"
	"rsppin/internal/pin"
	"rsppin/internal/respfile"

	"github.com/spf13/cobra"
)

var (
	pinDryRun bool
	pinJSON   bool

	pinCmd = &cobra.Command{
		Use:   "pin [path...]",
		Short: "Normalize response files for every build unit under the selection",
		Long: `Normalize compiler response files for every build unit reachable from
the selected paths.

Each path may be a directory (scanned recursively for descriptor files), a
descriptor file, or any other file, in which case its directory is scanned.
With no arguments the current directory is used.

For every unit found, the response file next to its descriptor is created
with the desired -langVersion directive, patched when it declares a
different version, or skipped when it is already compliant. Failures on
individual units are logged and counted as skipped; the batch always runs
to completion.`,
		Args: cobra.ArbitraryArgs,
		RunE: runPin,
	}
)

func init() {
	pinCmd.Flags().BoolVar(&pinDryRun, "dry-run", false, "report outcomes without writing any file")
	pinCmd.Flags().BoolVar(&pinJSON, "json", false, "output the summary as JSON")

	rootCmd.AddCommand(pinCmd)
}

// indexRefreshNotice stands in for the host editor's asset-index refresh: it
// fires exactly once after a batch so external watchers can re-scan.
type indexRefreshNotice struct{}

// Refresh implements pin.Refresher.
func (indexRefreshNotice) Refresh() {
	slog.Debug("batch complete, asset index refresh requested")
}

func runPin(cmd *cobra.Command, args []string) error {
	if err := requirePolicy(); err != nil {
		return err
	}

	selection := args
	if len(selection) == 0 {
		selection = []string{"."}
	}

	normalizer, err := respfile.NewNormalizer(respfile.Options{
		ResponseFileName: activeCfg.ResponseFile,
		Desired:          activeCfg.Language.Desired,
		Acceptable:       activeCfg.Language.Acceptable,
		Nullable:         activeCfg.Language.Nullable,
		DryRun:           pinDryRun,
	})
	if err != nil {
		return issue.WrapWithOperation(err, "configure normalizer")
	}

	runner := pin.NewRunner(locator.New(activeCfg.DescriptorExt), normalizer, indexRefreshNotice{})
	summary, err := runner.Run(cmd.Context(), selection)
	if err != nil {
		return err
	}

	if !summary.SelectionResolved() {
		// The message travels on the error so the executor prints it once.
		return &ExitError{Code: 2, Err: fmt.Errorf("selection is empty or matches nothing on disk")}
	}

	if pinJSON {
		return writeJSONSummary(cmd, summary)
	}
	return renderSummary(cmd, summary)
}

// renderSummary prints the human-readable tally, with a distinct message for
// a selection without build units.
func renderSummary(cmd *cobra.Command, summary pin.Summary) error {
	out := cmd.OutOrStdout()

	if summary.Total() == 0 {
		fmt.Fprintln(out, WarningStyle.Render(fmt.Sprintf("No %s build units found under the selection.", activeCfg.DescriptorExt)))
		return nil
	}

	title := "Response File Normalization"
	if pinDryRun {
		title += " (dry run)"
	}
	fmt.Fprintln(out, TitleStyle.Render(title))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s %s\n", SubtitleStyle.Render("Created:"), SuccessStyle.Render(strconv.Itoa(summary.Created)))
	fmt.Fprintf(out, "%s %s\n", SubtitleStyle.Render("Updated:"), SuccessStyle.Render(strconv.Itoa(summary.Updated)))
	fmt.Fprintf(out, "%s %s\n", SubtitleStyle.Render("Skipped:"), SubtitleStyle.Render(strconv.Itoa(summary.Skipped)))
	fmt.Fprintf(out, "%s %s\n", SubtitleStyle.Render("Total:"), strconv.Itoa(summary.Total()))

	if failures := summary.Failures(); len(failures) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, ErrorStyle.Render(fmt.Sprintf("%d unit(s) skipped due to errors:", len(failures))))
		for _, f := range failures {
			fmt.Fprintf(out, "  %s: %v\n", PathStyle.Render(f.Descriptor), f.Err)
		}
	}

	return nil
}

type (
	// unitPayload is the JSON shape of one per-unit result.
	unitPayload struct {
		Descriptor string `json:"descriptor"`
		Response   string `json:"response,omitempty"`
		Outcome    string `json:"outcome"`
		Error      string `json:"error,omitempty"`
	}

	// summaryPayload is the JSON shape of a batch summary.
	summaryPayload struct {
		Created int           `json:"created"`
		Updated int           `json:"updated"`
		Skipped int           `json:"skipped"`
		Total   int           `json:"total"`
		DryRun  bool          `json:"dry_run"`
		Units   []unitPayload `json:"units"`
	}
)

// writeJSONSummary prints the machine-readable summary.
func writeJSONSummary(cmd *cobra.Command, summary pin.Summary) error {
	payload := summaryPayload{
		Created: summary.Created,
		Updated: summary.Updated,
		Skipped: summary.Skipped,
		Total:   summary.Total(),
		DryRun:  pinDryRun,
		Units:   make([]unitPayload, 0, len(summary.Results)),
	}
	for _, res := range summary.Results {
		unit := unitPayload{
			Descriptor: res.Descriptor,
			Response:   res.Response,
			Outcome:    res.Outcome.String(),
		}
		if res.Err != nil {
			unit.Error = res.Err.Error()
		}
		payload.Units = append(payload.Units, unit)
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), string(data)); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
