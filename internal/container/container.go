// Package container provides dependency injection for the salary-sif application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/salary-sif/internal/clock"
	"fjacquet/salary-sif/internal/config"
	"fjacquet/salary-sif/internal/generator"
	"fjacquet/salary-sif/internal/ledger"
	"fjacquet/salary-sif/internal/logging"
	"fjacquet/salary-sif/internal/report"
	"fjacquet/salary-sif/internal/sheetreader"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation: all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	store     *ledger.Store
	generator *generator.Generator
	reporter  *report.ReportGenerator
}

// NewContainer creates and wires all application dependencies, with a logger
// built from the configuration.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, config.ConfigureLoggingFromConfig(cfg))
}

// NewContainerWithLogger is NewContainer with an explicit logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	businessClock, err := clock.NewBusinessClock(cfg.Clock.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to create clock: %w", err)
	}

	store := ledger.NewStore(cfg.Ledger.File, logger)
	gen := generator.New(cfg.EmployerIdentity(), businessClock, sheetreader.New(logger), store, logger,
		generator.WithExtension(cfg.Output.Extension))

	logger.Debug("Container initialized successfully",
		logging.F(logging.FieldEmployer, cfg.Employer.ID),
		logging.F(logging.FieldLedgerFile, cfg.Ledger.File),
		logging.F(logging.FieldTimezone, cfg.Clock.Timezone))

	return &Container{
		logger:    logger,
		config:    cfg,
		store:     store,
		generator: gen,
		reporter:  report.NewReportGenerator(logger),
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the ledger store.
func (c *Container) GetStore() *ledger.Store {
	return c.store
}

// GetGenerator returns the salary file generator.
func (c *Container) GetGenerator() *generator.Generator {
	return c.generator
}

// GetReporter returns the history report generator.
func (c *Container) GetReporter() *report.ReportGenerator {
	return c.reporter
}
