// Package report renders the salary file history for the history command.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"fjacquet/salary-sif/internal/logging"
	"fjacquet/salary-sif/internal/models"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ReportGenerator renders ledger entries in various formats.
type ReportGenerator struct {
	logger logging.Logger
}

// NewReportGenerator creates a new instance of ReportGenerator.
func NewReportGenerator(logger logging.Logger) *ReportGenerator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &ReportGenerator{logger: logger.WithField(logging.FieldOperation, "history_report")}
}

// GenerateReport renders entries as text, json or yaml.
func (g *ReportGenerator) GenerateReport(entries []models.HistoryEntry, format string) ([]byte, error) {
	if entries == nil {
		entries = []models.HistoryEntry{}
	}
	switch format {
	case FormatText, "":
		return g.generateTextReport(entries)
	case FormatJSON:
		return g.generateJSONReport(entries)
	case FormatYAML:
		return g.generateYAMLReport(entries)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// Filter keeps the entries for month, or all of them when month is empty.
func Filter(entries []models.HistoryEntry, month string) []models.HistoryEntry {
	if month == "" {
		return entries
	}
	var kept []models.HistoryEntry
	for _, e := range entries {
		if e.SalaryMonth == month {
			kept = append(kept, e)
		}
	}
	return kept
}

func (g *ReportGenerator) generateTextReport(entries []models.HistoryEntry) ([]byte, error) {
	if len(entries) == 0 {
		return []byte("No salary files generated yet.\n"), nil
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MONTH\tCREATED\tEMPLOYEES\tTOTAL\tCURRENCY\tFILE")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s %s\t%d\t%s\t%s\t%s\n",
			e.SalaryMonth, e.CreationDate, e.CreationTime, e.EmployeeCount,
			e.TotalAmount.StringFixed(2), e.Currency, e.FileName)
	}
	if err := w.Flush(); err != nil {
		g.logger.WithError(err).Error("Failed to render text report")
		return nil, fmt.Errorf("failed to render text report: %w", err)
	}
	return buf.Bytes(), nil
}

// generateJSONReport generates the history in JSON format.
func (g *ReportGenerator) generateJSONReport(entries []models.HistoryEntry) ([]byte, error) {
	jsonReport, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return append(jsonReport, '\n'), nil
}

// generateYAMLReport generates the history in the ledger's own YAML layout.
func (g *ReportGenerator) generateYAMLReport(entries []models.HistoryEntry) ([]byte, error) {
	yamlReport, err := yaml.Marshal(struct {
		Entries []models.HistoryEntry `yaml:"entries"`
	}{entries})
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return yamlReport, nil
}
