package validation

import (
	"github.com/shopspring/decimal"

	"fjacquet/salary-sif/internal/extractor"
	"fjacquet/salary-sif/internal/models"
)

// FirstDataRow is the spreadsheet row number of the first data row; the
// header occupies row 1.
const FirstDataRow = 2

// Accumulator keeps the running record count and exact amount total.
type Accumulator struct {
	Count int
	Total decimal.Decimal
}

// Add counts d and adds its fixed and variable amounts.
func (a *Accumulator) Add(d models.Disbursement) {
	a.Count++
	a.Total = a.Total.Add(d.Amount())
}

// Batch is the outcome of validating every row of an input file.
type Batch struct {
	Records  []models.Disbursement
	Totals   Accumulator
	Warnings []Warning
	Skipped  int // fully blank rows
}

// BuildAll extracts and validates rows in order. rows[i] is spreadsheet row
// i+FirstDataRow; blank rows are skipped without renumbering the rest.
// It stops at the first invalid row and returns its *parsererror.RowError.
func BuildAll(rows []models.RawRow, aliases extractor.AliasTable, period models.Period) (*Batch, error) {
	batch := &Batch{
		Records: make([]models.Disbursement, 0, len(rows)),
		Totals:  Accumulator{Total: decimal.Zero},
	}

	for i, raw := range rows {
		if raw.IsBlank() {
			batch.Skipped++
			continue
		}

		record, warnings, err := BuildRecord(extractor.Extract(raw, aliases), i+FirstDataRow, period)
		if err != nil {
			return nil, err
		}
		batch.Records = append(batch.Records, record)
		batch.Totals.Add(record)
		batch.Warnings = append(batch.Warnings, warnings...)
	}

	return batch, nil
}
