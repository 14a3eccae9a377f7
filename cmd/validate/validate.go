// Package validate handles the dry-run validation command
package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/salary-sif/cmd/common"
	"fjacquet/salary-sif/cmd/root"
)

// Cmd represents the validate command
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a payroll spreadsheet without writing anything",
	Long: `Validate a payroll spreadsheet and check the history ledger for the month,
exactly as generate would, but without writing the salary file or the ledger.

Example:
  salary-sif validate -m 012025 -i employees.xlsx`,
	RunE: validateFunc,
}

func validateFunc(cmd *cobra.Command, args []string) error {
	req, err := common.BuildRequest(root.SharedFlags.Month, root.SharedFlags.Input, "",
		root.App.GetConfig().Input.DefaultFile, true)
	if err != nil {
		return err
	}

	res, err := common.ProcessMonth(root.App.GetGenerator(), req, root.Log)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d employees, total %s %s, %d warnings\n",
		res.Summary.SalaryMonth, res.Summary.EmployeeCount,
		res.Summary.TotalAmount.StringFixed(2), res.Summary.Employer.Currency, len(res.Warnings))
	return err
}
