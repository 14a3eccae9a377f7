// Package common contains shared functionality for command handlers
package common

import (
	"errors"

	"fjacquet/salary-sif/internal/generator"
	"fjacquet/salary-sif/internal/logging"
	"fjacquet/salary-sif/internal/parsererror"
)

// Runner runs one salary file generation.
type Runner interface {
	Generate(req generator.Request) (*generator.Result, error)
}

// BuildRequest turns command flags into a generator request. An empty input
// falls back to defaultInput.
func BuildRequest(month, input, output, defaultInput string, dryRun bool) (generator.Request, error) {
	if month == "" {
		return generator.Request{}, &parsererror.UsageError{Reason: "--month (MMYYYY) is required"}
	}
	if input == "" {
		input = defaultInput
	}
	return generator.Request{
		Month:      month,
		InputPath:  input,
		OutputPath: output,
		DryRun:     dryRun,
	}, nil
}

// ProcessMonth runs req and logs the outcome.
func ProcessMonth(r Runner, req generator.Request, log logging.Logger) (*generator.Result, error) {
	log.WithFields(
		logging.F(logging.FieldMonth, req.Month),
		logging.F(logging.FieldInputFile, req.InputPath),
	).Info("Processing payroll")

	res, err := r.Generate(req)
	if err != nil {
		return nil, err
	}

	fields := []logging.Field{
		logging.F(logging.FieldMonth, res.Summary.SalaryMonth),
		logging.F(logging.FieldCount, res.Summary.EmployeeCount),
		logging.F(logging.FieldTotal, res.Summary.TotalAmount.StringFixed(2)),
		logging.F(logging.FieldCurrency, res.Summary.Employer.Currency),
	}
	if res.FilePath != "" {
		fields = append(fields, logging.F(logging.FieldOutputFile, res.FilePath))
	}
	log.WithFields(fields...).Info("Payroll processed")
	return res, nil
}

// Describe names the kind of failure err represents, for the final error line.
func Describe(err error) string {
	var (
		usage *parsererror.UsageError
		input *parsererror.InputError
		row   *parsererror.RowError
		dup   *parsererror.DuplicateMonthError
	)
	switch {
	case errors.As(err, &usage):
		return "Invalid usage"
	case errors.As(err, &input):
		return "Cannot read input"
	case errors.As(err, &row):
		return "Validation failed"
	case errors.As(err, &dup):
		return "Duplicate salary month"
	default:
		return "Salary file generation failed"
	}
}

// ReportError logs the final error line, with the row, field and reason
// attached when err is a row validation failure.
func ReportError(log logging.Logger, err error) {
	entry := log.WithError(err)
	var row *parsererror.RowError
	if errors.As(err, &row) {
		entry = entry.WithFields(
			logging.F(logging.FieldRow, row.Row),
			logging.F(logging.FieldField, row.Field),
			logging.F(logging.FieldReason, row.Reason),
		)
	}
	entry.Error(Describe(err))
}
