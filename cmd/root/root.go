// Package root contains the root command for the application
package root

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"fjacquet/salary-sif/internal/config"
	"fjacquet/salary-sif/internal/container"
	"fjacquet/salary-sif/internal/logging"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Month      string
	Input      string
	Output     string
	ConfigFile string
}

var (
	// Log is the shared logger instance for commands. It is replaced by the
	// configured logger before any subcommand runs.
	Log = logging.NewLogrusAdapter("info", "text")

	// App holds the wired dependencies once PersistentPreRunE has run.
	App *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "salary-sif",
		Short: "A CLI tool to generate bank salary instruction files (SIF) from payroll spreadsheets.",
		Long: `salary-sif converts a payroll spreadsheet (.xlsx or .csv) into a bank salary
instruction file: one SCR control record followed by one EDR record per employee.
A history ledger prevents generating two files for the same salary month.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}

	initOnce sync.Once
)

// setup loads .env and configuration, then wires the container.
func setup(cmd *cobra.Command, args []string) error {
	envFile, err := config.LoadEnv()
	if err != nil {
		Log.WithError(err).Warn("Error loading .env file")
	}

	cfg, err := config.InitializeConfigFrom(SharedFlags.ConfigFile)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	app, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("initializing application: %w", err)
	}
	App = app
	Log = app.GetLogger()
	if envFile != "" {
		Log.WithField("env_file", envFile).Debug("Loaded environment variables")
	}
	return nil
}

// Init initializes the root command and all flags. Calling it again is a no-op.
func Init() {
	initOnce.Do(func() {
		Cmd.PersistentFlags().StringVarP(&SharedFlags.Month, "month", "m", "", "Salary month as MMYYYY")
		Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input spreadsheet (.xlsx, .xlsm or .csv)")
		Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file or directory")
		Cmd.PersistentFlags().StringVar(&SharedFlags.ConfigFile, "config", "", "Config file (default searches $HOME/.salary-sif, .salary-sif and .)")
	})
}
