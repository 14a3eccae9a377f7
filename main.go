package main

import (
	"os"

	"fjacquet/salary-sif/cmd/common"
	"fjacquet/salary-sif/cmd/generate"
	"fjacquet/salary-sif/cmd/history"
	"fjacquet/salary-sif/cmd/root"
	"fjacquet/salary-sif/cmd/validate"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(generate.Cmd)
	root.Cmd.AddCommand(validate.Cmd)
	root.Cmd.AddCommand(history.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		common.ReportError(root.Log, err)
		os.Exit(1)
	}
}
