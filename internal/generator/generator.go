// Package generator runs one salary file generation: read the spreadsheet,
// validate every row, check the ledger, write the file and record it.
package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/salary-sif/internal/clock"
	"fjacquet/salary-sif/internal/dateutils"
	"fjacquet/salary-sif/internal/extractor"
	"fjacquet/salary-sif/internal/fileutils"
	"fjacquet/salary-sif/internal/ledger"
	"fjacquet/salary-sif/internal/logging"
	"fjacquet/salary-sif/internal/models"
	"fjacquet/salary-sif/internal/parsererror"
	"fjacquet/salary-sif/internal/sif"
	"fjacquet/salary-sif/internal/validation"
)

// SheetReader supplies the raw data rows of an input file.
type SheetReader interface {
	Read(path string) ([]models.RawRow, error)
}

// LedgerStore loads and saves the run history.
type LedgerStore interface {
	Load() (*ledger.Ledger, error)
	Persist(*ledger.Ledger) error
}

// Request describes one run.
type Request struct {
	Month      string // MMYYYY
	InputPath  string
	OutputPath string // file, existing directory, or empty for the working directory
	DryRun     bool   // validate and check the ledger only
}

// Result describes a completed run.
type Result struct {
	Summary  models.Summary
	Records  []models.Disbursement
	Warnings []validation.Warning
	Content  string
	FileName string
	FilePath string // empty on a dry run
	Entry    *models.HistoryEntry
	// LedgerErr is set when the file was written but the ledger could not be.
	LedgerErr error
}

// Generator wires the pipeline stages together.
type Generator struct {
	employer  models.Employer
	clock     clock.Clock
	reader    SheetReader
	store     LedgerStore
	logger    logging.Logger
	aliases   extractor.AliasTable
	extension string
}

// Option customizes a Generator.
type Option func(*Generator)

// WithAliases replaces the default header alias table.
func WithAliases(aliases extractor.AliasTable) Option {
	return func(g *Generator) { g.aliases = aliases }
}

// WithExtension sets the output file extension.
func WithExtension(ext string) Option {
	return func(g *Generator) { g.extension = ext }
}

// New creates a Generator. employer is copied and never modified.
func New(employer models.Employer, c clock.Clock, reader SheetReader, store LedgerStore, logger logging.Logger, opts ...Option) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	g := &Generator{
		employer:  employer,
		clock:     c,
		reader:    reader,
		store:     store,
		logger:    logger,
		aliases:   extractor.DefaultAliases,
		extension: sif.DefaultExtension,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate runs the pipeline. Nothing is written unless every row is valid
// and the ledger has no entry for the month. Fatal conditions come back as
// *parsererror.UsageError, InputError, RowError or DuplicateMonthError.
func (g *Generator) Generate(req Request) (*Result, error) {
	period, err := dateutils.PeriodFor(req.Month)
	if err != nil {
		return nil, &parsererror.UsageError{Flag: "month", Value: req.Month, Reason: "expected MMYYYY with year 2000-2100", Err: err}
	}
	log := g.logger.WithField(logging.FieldMonth, req.Month)

	if !validation.ValidRouting(g.employer.Routing) {
		log.WithFields(
			logging.F(logging.FieldField, "employer.routing"),
			logging.F(logging.FieldValue, g.employer.Routing),
		).Warn("Employer routing code should be 9 digits")
	}

	rows, err := g.reader.Read(req.InputPath)
	if err != nil {
		return nil, err
	}

	batch, err := validation.BuildAll(rows, g.aliases, period)
	if err != nil {
		return nil, err
	}
	for _, w := range batch.Warnings {
		log.WithFields(
			logging.F(logging.FieldRow, w.Row),
			logging.F(logging.FieldField, string(w.Field)),
			logging.F(logging.FieldValue, w.Value),
		).Warn(w.Message)
	}
	if len(batch.Records) == 0 {
		return nil, &parsererror.InputError{FilePath: req.InputPath, Reason: "no employee rows"}
	}

	history, err := g.store.Load()
	if err != nil {
		log.WithError(err).Warn("Cannot load ledger, treating it as empty")
		history = &ledger.Ledger{}
	}
	if prior, found := history.FindByMonth(req.Month); found {
		return nil, &parsererror.DuplicateMonthError{Entry: *prior}
	}

	stamp := clock.Stamp(g.clock.Now())
	summary := sif.NewSummary(g.employer, stamp, req.Month, batch.Totals)
	result := &Result{
		Summary:  summary,
		Records:  batch.Records,
		Warnings: batch.Warnings,
		Content:  sif.Assemble(summary, batch.Records),
		FileName: sif.FileName(g.employer.ID, stamp, g.extension),
	}

	log = log.WithFields(
		logging.F(logging.FieldCount, summary.EmployeeCount),
		logging.F(logging.FieldTotal, summary.TotalAmount.StringFixed(2)),
		logging.F(logging.FieldCurrency, g.employer.Currency),
	)
	if req.DryRun {
		log.Info("Input is valid, no file written")
		return result, nil
	}

	outPath, err := ResolveOutputPath(req.OutputPath, result.FileName)
	if err != nil {
		return nil, err
	}
	if err := fileutils.WriteFileAtomic(outPath, []byte(result.Content), 0644); err != nil {
		return nil, fmt.Errorf("writing salary file: %w", err)
	}
	result.FilePath = outPath
	log.WithField(logging.FieldOutputFile, outPath).Info("Salary file written")

	inputPath := req.InputPath
	if abs, err := filepath.Abs(inputPath); err == nil {
		inputPath = abs
	}
	entry := sif.NewHistoryEntry(summary, filepath.Base(outPath), outPath, inputPath)
	result.Entry = &entry
	history.Append(entry)
	if err := g.store.Persist(history); err != nil {
		result.LedgerErr = err
		log.WithError(err).Warn("Salary file written but the ledger could not be updated")
	} else {
		log.WithField(logging.FieldRunID, entry.RunID).Debug("Ledger updated")
	}

	return result, nil
}

// ResolveOutputPath decides where the file goes: the working directory when
// out is empty, inside out when it is an existing directory, otherwise out
// itself. The result is absolute.
func ResolveOutputPath(out, fileName string) (string, error) {
	var path string
	switch {
	case out == "":
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving working directory: %w", err)
		}
		path = filepath.Join(wd, fileName)
	case fileutils.DirectoryExists(out):
		path = filepath.Join(out, fileName)
	default:
		path = out
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving output path %s: %w", path, err)
	}
	return abs, nil
}
