// Package generate handles the salary file generation command
package generate

import (
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/salary-sif/cmd/common"
	"fjacquet/salary-sif/cmd/root"
)

// Cmd represents the generate command
var Cmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a salary instruction file for one month",
	Long: `Generate a salary instruction file from a payroll spreadsheet.

Every row is validated first; a single invalid row aborts the run and nothing
is written. The run also aborts if a file was already generated for the month.

Example:
  salary-sif generate -m 012025 -i employees.xlsx -o out/`,
	RunE: generateFunc,
}

func generateFunc(cmd *cobra.Command, args []string) error {
	req, err := common.BuildRequest(root.SharedFlags.Month, root.SharedFlags.Input, root.SharedFlags.Output,
		root.App.GetConfig().Input.DefaultFile, false)
	if err != nil {
		return err
	}

	res, err := common.ProcessMonth(root.App.GetGenerator(), req, root.Log)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), res.FilePath)
	return err
}
