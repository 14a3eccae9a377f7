// Package history handles the command that lists generated salary files
package history

import (
	"github.com/spf13/cobra"

	"fjacquet/salary-sif/cmd/root"
	"fjacquet/salary-sif/internal/dateutils"
	"fjacquet/salary-sif/internal/parsererror"
	"fjacquet/salary-sif/internal/report"
)

// Format is the --format flag value.
var Format string

// Cmd represents the history command
var Cmd = &cobra.Command{
	Use:   "history",
	Short: "List the salary files recorded in the history ledger",
	Long: `List the salary files recorded in the history ledger, oldest first.
Use --month to show a single salary month.

Example:
  salary-sif history --format json -m 012025`,
	RunE: historyFunc,
}

func init() {
	Cmd.Flags().StringVar(&Format, "format", report.FormatText, "Output format: text, json or yaml")
}

func historyFunc(cmd *cobra.Command, args []string) error {
	month := root.SharedFlags.Month
	if month != "" {
		if _, err := dateutils.PeriodFor(month); err != nil {
			return &parsererror.UsageError{Flag: "month", Value: month, Reason: "expected MMYYYY with year 2000-2100", Err: err}
		}
	}

	switch Format {
	case report.FormatText, report.FormatJSON, report.FormatYAML:
	default:
		return &parsererror.UsageError{Flag: "format", Value: Format, Reason: "must be text, json or yaml"}
	}

	ledger, err := root.App.GetStore().Load()
	if err != nil {
		return err
	}

	out, err := root.App.GetReporter().GenerateReport(report.Filter(ledger.Entries, month), Format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
