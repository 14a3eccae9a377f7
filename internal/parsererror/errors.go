// Package parsererror defines the typed errors that abort a salary file run.
// Every fatal condition reaches main as one of these, wrapped or bare, so the
// CLI can tell them apart with errors.As.
package parsererror

import (
	"fmt"

	"fjacquet/salary-sif/internal/models"
)

// UsageError represents bad command line input, such as a malformed month token.
type UsageError struct {
	Flag   string
	Value  string
	Reason string
	Err    error
}

func (e *UsageError) Error() string {
	if e.Flag == "" {
		return fmt.Sprintf("usage: %s", e.Reason)
	}
	return fmt.Sprintf("usage: invalid --%s '%s': %s", e.Flag, e.Value, e.Reason)
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// InputError represents an input spreadsheet that is missing, unreadable,
// of an unsupported type or empty.
type InputError struct {
	FilePath string
	Reason   string
	Err      error
}

func (e *InputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("input file '%s': %s: %v", e.FilePath, e.Reason, e.Err)
	}
	return fmt.Sprintf("input file '%s': %s", e.FilePath, e.Reason)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// RowError represents a data row that failed validation. Row is the
// spreadsheet row number, header being row 1.
type RowError struct {
	Row    int
	Field  string
	Value  string
	Reason string
	Err    error
}

func (e *RowError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("row %d: %s '%s': %s", e.Row, e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("row %d: %s: %s", e.Row, e.Field, e.Reason)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// DuplicateMonthError is raised when the ledger already holds a file for the
// requested salary month.
type DuplicateMonthError struct {
	Entry models.HistoryEntry
}

func (e *DuplicateMonthError) Error() string {
	return fmt.Sprintf("salary file for month %s already generated: %s on %s at %s (%d employees, total %s %s)",
		e.Entry.SalaryMonth, e.Entry.FileName, e.Entry.CreationDate, e.Entry.CreationTime,
		e.Entry.EmployeeCount, e.Entry.TotalAmount.StringFixed(2), e.Entry.Currency)
}
