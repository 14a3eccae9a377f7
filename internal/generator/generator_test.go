package generator

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/salary-sif/internal/clock"
	"fjacquet/salary-sif/internal/ledger"
	"fjacquet/salary-sif/internal/logging"
	"fjacquet/salary-sif/internal/models"
	"fjacquet/salary-sif/internal/parsererror"
	"fjacquet/salary-sif/internal/sheetreader"
)

var testEmployer = models.Employer{
	ID:        "0000002571863",
	Routing:   "203320101",
	Currency:  "AED",
	Reference: "0000002571863",
}

type stubReader struct {
	rows  []models.RawRow
	err   error
	calls int
}

func (s *stubReader) Read(string) ([]models.RawRow, error) {
	s.calls++
	return s.rows, s.err
}

func fixedClock(t *testing.T) clock.Clock {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Dubai")
	require.NoError(t, err)
	return clock.Fixed(time.Date(2025, time.February, 1, 9, 30, 0, 0, loc))
}

func employeeRow(id, iban, fixed string) models.RawRow {
	return models.RawRow{
		"employee_id":       id,
		"employee_routing":  "203320101",
		"employee_iban":     iban,
		"fixed_amount":      fixed,
		"variable_amount":   "0",
		"unpaid_leave_days": "0",
	}
}

func threeEmployees() []models.RawRow {
	return []models.RawRow{
		employeeRow("1", "AE070331234567890123456", "1000.005"),
		employeeRow("2", "AE070331234567890123457", "2000"),
		employeeRow("3", "AE070331234567890123458", "0"),
	}
}

func TestGenerate(t *testing.T) {
	outDir := t.TempDir()
	store := &ledger.MockStore{}
	logger := logging.NewMockLogger()
	g := New(testEmployer, fixedClock(t), &stubReader{rows: threeEmployees()}, store, logger)

	res, err := g.Generate(Request{Month: "012025", InputPath: "employees.xlsx", OutputPath: outDir})

	require.NoError(t, err)
	assert.Equal(t, "0000002571863250201093000.sif", res.FileName)
	assert.Equal(t, filepath.Join(outDir, res.FileName), res.FilePath)
	assert.Equal(t, 3, res.Summary.EmployeeCount)
	assert.Equal(t, "3000.01", res.Summary.TotalAmount.StringFixed(2))

	data, err := os.ReadFile(res.FilePath)
	require.NoError(t, err)
	assert.Equal(t, res.Content, string(data))
	lines := strings.Split(string(data), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "SCR,0000002571863,203320101,2025-02-01,0930,012025,3,3000.01,AED,0000002571863", lines[0])
	for _, line := range lines[1:] {
		assert.Contains(t, line, ",2025-01-01,2025-01-31,31,")
	}

	require.NotNil(t, store.Ledger)
	require.Len(t, store.Ledger.Entries, 1)
	entry := store.Ledger.Entries[0]
	assert.Equal(t, "012025", entry.SalaryMonth)
	assert.Equal(t, res.FilePath, entry.FilePath)
	assert.Equal(t, 3, entry.EmployeeCount)
	assert.True(t, decimal.RequireFromString("3000.01").Equal(entry.TotalAmount))
	assert.True(t, filepath.IsAbs(entry.InputPath))
	assert.True(t, logger.HasEntry("INFO", "Salary file written"))
}

func TestGenerate_MissingIBANAborts(t *testing.T) {
	outDir := t.TempDir()
	rows := threeEmployees()
	rows[1]["employee_iban"] = ""
	store := &ledger.MockStore{}
	g := New(testEmployer, fixedClock(t), &stubReader{rows: rows}, store, logging.NewMockLogger())

	res, err := g.Generate(Request{Month: "012025", OutputPath: outDir})

	assert.Nil(t, res)
	var rowErr *parsererror.RowError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, 3, rowErr.Row)
	assert.Equal(t, "employee_iban", rowErr.Field)

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no file may be written")
	assert.Zero(t, store.PersistCalls)
}

func TestGenerate_LowercaseIBANNormalized(t *testing.T) {
	rows := threeEmployees()
	rows[0]["employee_iban"] = "ae07 0331 2345 6789 0123 456"
	g := New(testEmployer, fixedClock(t), &stubReader{rows: rows}, &ledger.MockStore{}, logging.NewMockLogger())

	res, err := g.Generate(Request{Month: "012025", OutputPath: t.TempDir()})

	require.NoError(t, err)
	assert.Equal(t, "AE070331234567890123456", res.Records[0].EmployeeIBAN)
	assert.Contains(t, res.Content, ",AE070331234567890123456,")
}

func TestGenerate_DuplicateMonth(t *testing.T) {
	outDir := t.TempDir()
	prior := models.HistoryEntry{
		FileName:      "0000002571863251201080000.sif",
		SalaryMonth:   "122025",
		CreationDate:  "2025-12-01",
		CreationTime:  "0800",
		EmployeeCount: 2,
		TotalAmount:   decimal.NewFromInt(5000),
		Currency:      "AED",
	}
	store := &ledger.MockStore{Ledger: &ledger.Ledger{Entries: []models.HistoryEntry{prior}}}
	g := New(testEmployer, fixedClock(t), &stubReader{rows: threeEmployees()}, store, logging.NewMockLogger())

	_, err := g.Generate(Request{Month: "122025", OutputPath: outDir})

	var dup *parsererror.DuplicateMonthError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, prior, dup.Entry)
	assert.Zero(t, store.PersistCalls)
	assert.Len(t, store.Ledger.Entries, 1)
	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerate_InvalidMonth(t *testing.T) {
	reader := &stubReader{rows: threeEmployees()}
	g := New(testEmployer, fixedClock(t), reader, &ledger.MockStore{}, logging.NewMockLogger())

	for _, month := range []string{"", "132025", "12025", "011999"} {
		_, err := g.Generate(Request{Month: month})
		var usage *parsererror.UsageError
		assert.True(t, errors.As(err, &usage), "month %q", month)
	}
	assert.Zero(t, reader.calls, "no input is read before the month is valid")
}

func TestGenerate_InputError(t *testing.T) {
	inputErr := &parsererror.InputError{FilePath: "x.xlsx", Reason: "file not found"}
	g := New(testEmployer, fixedClock(t), &stubReader{err: inputErr}, &ledger.MockStore{}, logging.NewMockLogger())

	_, err := g.Generate(Request{Month: "012025"})

	assert.Same(t, inputErr, err)
}

func TestGenerate_OnlyBlankRows(t *testing.T) {
	g := New(testEmployer, fixedClock(t), &stubReader{rows: []models.RawRow{{}, {"id": " "}}}, &ledger.MockStore{}, logging.NewMockLogger())

	_, err := g.Generate(Request{Month: "012025", InputPath: "empty.xlsx"})

	var inputErr *parsererror.InputError
	require.True(t, errors.As(err, &inputErr))
	assert.Contains(t, inputErr.Reason, "no employee rows")
}

func TestGenerate_DryRun(t *testing.T) {
	outDir := t.TempDir()
	store := &ledger.MockStore{}
	g := New(testEmployer, fixedClock(t), &stubReader{rows: threeEmployees()}, store, logging.NewMockLogger())

	res, err := g.Generate(Request{Month: "012025", OutputPath: outDir, DryRun: true})

	require.NoError(t, err)
	assert.Empty(t, res.FilePath)
	assert.Nil(t, res.Entry)
	assert.NotEmpty(t, res.Content)
	assert.Zero(t, store.PersistCalls)
	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerate_LedgerPersistFailureIsWarning(t *testing.T) {
	store := &ledger.MockStore{PersistError: errors.New("disk full")}
	logger := logging.NewMockLogger()
	g := New(testEmployer, fixedClock(t), &stubReader{rows: threeEmployees()}, store, logger)

	res, err := g.Generate(Request{Month: "012025", OutputPath: t.TempDir()})

	require.NoError(t, err)
	assert.EqualError(t, res.LedgerErr, "disk full")
	assert.FileExists(t, res.FilePath)
	assert.True(t, logger.HasEntry("WARN", "Salary file written but the ledger could not be updated"))
}

func TestGenerate_LedgerLoadFailureIsWarning(t *testing.T) {
	store := &ledger.MockStore{LoadError: errors.New("boom")}
	logger := logging.NewMockLogger()
	g := New(testEmployer, fixedClock(t), &stubReader{rows: threeEmployees()}, store, logger)

	_, err := g.Generate(Request{Month: "012025", OutputPath: t.TempDir()})

	require.NoError(t, err)
	assert.True(t, logger.HasEntry("WARN", "Cannot load ledger, treating it as empty"))
}

func TestGenerate_Warnings(t *testing.T) {
	rows := threeEmployees()
	rows[0]["employee_routing"] = "123"
	employer := testEmployer
	employer.Routing = "12"
	logger := logging.NewMockLogger()
	g := New(employer, fixedClock(t), &stubReader{rows: rows}, &ledger.MockStore{}, logger)

	res, err := g.Generate(Request{Month: "012025", DryRun: true})

	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	assert.True(t, logger.HasEntry("WARN", "Employer routing code should be 9 digits"))
	assert.True(t, logger.HasEntry("WARN", "routing code should be 9 digits"))
}

func TestGenerate_WithOptions(t *testing.T) {
	rows := []models.RawRow{{
		"staff":   "5",
		"routing": "203320101",
		"iban":    "AE070331234567890123456",
		"basic":   "10",
		"bonus":   "0",
		"lwop":    "0",
	}}
	aliases := map[models.LogicalField][]string{
		models.FieldEmployeeID:      {"staff"},
		models.FieldEmployeeRouting: {"routing"},
		models.FieldEmployeeIBAN:    {"iban"},
		models.FieldFixedAmount:     {"basic"},
		models.FieldVariableAmount:  {"bonus"},
		models.FieldUnpaidLeaveDays: {"lwop"},
	}
	g := New(testEmployer, fixedClock(t), &stubReader{rows: rows}, &ledger.MockStore{}, logging.NewMockLogger(),
		WithAliases(aliases), WithExtension(".txt"))

	res, err := g.Generate(Request{Month: "012025", DryRun: true})

	require.NoError(t, err)
	assert.Equal(t, "0000002571863250201093000.txt", res.FileName)
	assert.Equal(t, "00000000000005", res.Records[0].EmployeeID)
}

func TestGenerate_EndToEndWithFiles(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "employees.csv")
	require.NoError(t, os.WriteFile(input, []byte(
		"Employee ID,Routing,IBAN,Basic,Allowance,Unpaid Days\n"+
			"1,203320101,AE070331234567890123456,\"1,000.005\",0,0\n"+
			"2,203320101,ae070331234567890123457,2000,0,0\n"+
			"3,203320101,AE070331234567890123458,0,0,0\n"), 0600))
	ledgerPath := filepath.Join(dir, "sif_history.yaml")
	logger := logging.NewMockLogger()
	store := ledger.NewStore(ledgerPath, logger)
	g := New(testEmployer, fixedClock(t), sheetreader.New(logger), store, logger)

	res, err := g.Generate(Request{Month: "012025", InputPath: input, OutputPath: filepath.Join(dir, "out.sif")})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out.sif"), res.FilePath)
	assert.Equal(t, "3000.01", res.Summary.TotalAmount.StringFixed(2))

	before, err := os.ReadFile(ledgerPath)
	require.NoError(t, err)

	_, err = g.Generate(Request{Month: "012025", InputPath: input, OutputPath: dir})
	var dup *parsererror.DuplicateMonthError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "out.sif", dup.Entry.FileName)

	after, err := os.ReadFile(ledgerPath)
	require.NoError(t, err)
	assert.Equal(t, before, after, "ledger unchanged after a duplicate run")
}

func TestResolveOutputPath(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)

	got, err := ResolveOutputPath("", "a.sif")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "a.sif"), got)

	got, err = ResolveOutputPath(dir, "a.sif")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "a.sif"), got)

	got, err = ResolveOutputPath(filepath.Join(dir, "custom.sif"), "a.sif")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "custom.sif"), got)
}
