// Package sif assembles the bank salary instruction file: one SCR control
// line followed by one EDR line per employee.
package sif

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"fjacquet/salary-sif/internal/currencyutils"
	"fjacquet/salary-sif/internal/dateutils"
	"fjacquet/salary-sif/internal/models"
	"fjacquet/salary-sif/internal/validation"
)

// Record type tags.
const (
	RecordSummary = "SCR"
	RecordDetail  = "EDR"
)

// DefaultExtension is appended to generated file names.
const DefaultExtension = ".sif"

const (
	fieldSeparator = ","
	lineSeparator  = "\n"
)

// Assemble renders the file content. Lines are separated by a single
// newline with none after the last line.
func Assemble(summary models.Summary, records []models.Disbursement) string {
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, SummaryLine(summary))
	for _, r := range records {
		lines = append(lines, DetailLine(r))
	}
	return strings.Join(lines, lineSeparator)
}

// SummaryLine renders the SCR control record.
func SummaryLine(s models.Summary) string {
	return strings.Join([]string{
		RecordSummary,
		s.Employer.ID,
		s.Employer.Routing,
		s.Created.Date,
		s.Created.Time,
		s.SalaryMonth,
		strconv.Itoa(s.EmployeeCount),
		currencyutils.FormatAmount(s.TotalAmount),
		s.Employer.Currency,
		s.Employer.Reference,
	}, fieldSeparator)
}

// DetailLine renders one EDR employee record.
func DetailLine(d models.Disbursement) string {
	return strings.Join([]string{
		RecordDetail,
		d.EmployeeID,
		d.EmployeeRouting,
		d.EmployeeIBAN,
		dateutils.ToISODate(d.Period.Start),
		dateutils.ToISODate(d.Period.End),
		strconv.Itoa(d.Period.Days),
		currencyutils.FormatAmount(d.FixedAmount),
		currencyutils.FormatAmount(d.VariableAmount),
		currencyutils.FormatQuantity(d.UnpaidLeaveDays),
	}, fieldSeparator)
}

// FileName builds <employerID><YYMMDDHHmmss><ext>. An empty ext means
// DefaultExtension; a missing leading dot is added.
func FileName(employerID string, stamp models.Stamp, ext string) string {
	if ext == "" {
		ext = DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return employerID + stamp.Token + ext
}

// NewSummary builds the control record from the validated totals.
func NewSummary(employer models.Employer, stamp models.Stamp, month string, acc validation.Accumulator) models.Summary {
	return models.Summary{
		Employer:      employer,
		Created:       stamp,
		SalaryMonth:   month,
		EmployeeCount: acc.Count,
		TotalAmount:   acc.Total,
	}
}

// NewHistoryEntry builds the ledger entry for a written file.
func NewHistoryEntry(summary models.Summary, fileName, filePath, inputPath string) models.HistoryEntry {
	return models.HistoryEntry{
		RunID:         uuid.NewString(),
		FileName:      fileName,
		FilePath:      filePath,
		SalaryMonth:   summary.SalaryMonth,
		CreationDate:  summary.Created.Date,
		CreationTime:  summary.Created.Time,
		EmployeeCount: summary.EmployeeCount,
		TotalAmount:   currencyutils.RoundAmount(summary.TotalAmount),
		Currency:      summary.Employer.Currency,
		EmployerID:    summary.Employer.ID,
		InputPath:     inputPath,
		GeneratedAt:   summary.Created.At.Format(time.RFC3339),
	}
}
