// Package sheetreader loads payroll rows from the first sheet of an Excel
// workbook or from a CSV file.
package sheetreader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"

	"fjacquet/salary-sif/internal/extractor"
	"fjacquet/salary-sif/internal/logging"
	"fjacquet/salary-sif/internal/models"
	"fjacquet/salary-sif/internal/parsererror"
)

const utf8BOM = "\ufeff"

// Reader reads spreadsheets into raw rows keyed by normalized header.
type Reader struct {
	logger logging.Logger
}

// New creates a Reader that logs through logger.
func New(logger logging.Logger) *Reader {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Reader{logger: logger}
}

// Read dispatches on the file extension. The header row is not returned;
// element i of the result is spreadsheet row i+2. Blank rows inside an
// Excel sheet are kept as blank RawRows so numbering stays aligned.
// All failures are *parsererror.InputError.
func (r *Reader) Read(path string) ([]models.RawRow, error) {
	info, err := os.Stat(path)
	if err != nil {
		reason := "cannot access file"
		if errors.Is(err, fs.ErrNotExist) {
			reason = "file not found"
		}
		return nil, &parsererror.InputError{FilePath: path, Reason: reason, Err: err}
	}
	if info.IsDir() {
		return nil, &parsererror.InputError{FilePath: path, Reason: "is a directory"}
	}

	var rows []models.RawRow
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		rows, err = r.readWorkbook(path)
	case ".csv":
		rows, err = r.readCSV(path)
	default:
		return nil, &parsererror.InputError{
			FilePath: path,
			Reason:   fmt.Sprintf("unsupported file type %q, expected .xlsx, .xlsm or .csv", ext),
		}
	}
	if err != nil {
		return nil, err
	}

	r.logger.WithFields(
		logging.F(logging.FieldInputFile, path),
		logging.F(logging.FieldCount, len(rows)),
	).Debug("Read input rows")
	return rows, nil
}

func (r *Reader) readWorkbook(path string) ([]models.RawRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &parsererror.InputError{FilePath: path, Reason: "cannot open workbook", Err: err}
	}
	defer func() {
		if err := f.Close(); err != nil {
			r.logger.WithError(err).Warn("Failed to close workbook")
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &parsererror.InputError{FilePath: path, Reason: "workbook has no sheets"}
	}

	// Raw values keep serial dates and full numeric precision.
	grid, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &parsererror.InputError{FilePath: path, Reason: "cannot read sheet " + sheets[0], Err: err}
	}

	return toRawRows(path, grid)
}

func (r *Reader) readCSV(path string) ([]models.RawRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &parsererror.InputError{FilePath: path, Reason: "cannot open file", Err: err}
	}
	defer func() {
		if err := file.Close(); err != nil {
			r.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	grid, err := gocsv.DefaultCSVReader(file).ReadAll()
	if err != nil {
		return nil, &parsererror.InputError{FilePath: path, Reason: "cannot parse CSV", Err: err}
	}

	return toRawRows(path, grid)
}

// toRawRows pairs each data row of grid with the header row, in column order.
func toRawRows(path string, grid [][]string) ([]models.RawRow, error) {
	if len(grid) == 0 {
		return nil, &parsererror.InputError{FilePath: path, Reason: "sheet is empty"}
	}

	headers := make([]string, len(grid[0]))
	blankHeader := true
	for i, h := range grid[0] {
		headers[i] = headerKey(h)
		if headers[i] != "" {
			blankHeader = false
		}
	}
	if blankHeader {
		return nil, &parsererror.InputError{FilePath: path, Reason: "header row is empty"}
	}
	if len(grid) < 2 {
		return nil, &parsererror.InputError{FilePath: path, Reason: "no data rows"}
	}

	rows := make([]models.RawRow, 0, len(grid)-1)
	for _, cells := range grid[1:] {
		row := make(models.RawRow, len(headers))
		for i, key := range headers {
			if key == "" {
				continue
			}
			value := ""
			if i < len(cells) {
				value = cells[i]
			}
			// Headers that normalize alike: the leftmost non-blank cell wins.
			if prev, seen := row[key]; seen && strings.TrimSpace(prev) != "" {
				continue
			}
			row[key] = value
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func headerKey(h string) string {
	return extractor.NormalizeHeader(strings.TrimPrefix(h, utf8BOM))
}
