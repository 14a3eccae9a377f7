// Package extractor maps heterogeneous spreadsheet headers onto the fixed
// logical input schema.
package extractor

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"fjacquet/salary-sif/internal/models"
)

// AliasTable lists, per logical field, the accepted header spellings in
// priority order. Aliases must already be normalized with NormalizeHeader.
type AliasTable map[models.LogicalField][]string

// NormalizeHeader folds a header to its comparison form: NFKC, lower case,
// runs of whitespace replaced by a single underscore.
func NormalizeHeader(h string) string {
	h = norm.NFKC.String(h)
	return strings.Join(strings.Fields(strings.ToLower(h)), "_")
}

// NewAliasTable builds a table from raw header spellings, normalizing each.
func NewAliasTable(raw map[models.LogicalField][]string) AliasTable {
	table := make(AliasTable, len(raw))
	for field, aliases := range raw {
		seen := make(map[string]bool, len(aliases))
		for _, a := range aliases {
			n := NormalizeHeader(a)
			if n == "" || seen[n] {
				continue
			}
			seen[n] = true
			table[field] = append(table[field], n)
		}
	}
	return table
}

// DefaultAliases is the alias table for the bank salary workbook.
var DefaultAliases = NewAliasTable(map[models.LogicalField][]string{
	models.FieldEmployeeID:      {"employee_id", "emp_id", "id", "employeeid", "employee id"},
	models.FieldEmployeeRouting: {"employee_routing", "routing", "bank_routing", "routing_code"},
	models.FieldEmployeeIBAN:    {"employee_iban", "iban", "employee_iban_number", "employee iban"},
	models.FieldFixedAmount:     {"fixed_amount", "fixed", "basic", "basic_amount"},
	models.FieldVariableAmount:  {"variable_amount", "variable", "allowance", "bonus", "overtime"},
	models.FieldUnpaidLeaveDays: {"unpaid_leave_days", "unpaid_days", "lwop_days"},
	models.FieldPeriodStart:     {"period_start", "start_date", "salary_start", "from_date"},
	models.FieldPeriodEnd:       {"period_end", "end_date", "salary_end", "to_date"},
})

// Extract resolves every logical field of aliases against raw. For each field
// the first alias with a non-blank value wins; values are trimmed. Columns
// that match no alias are ignored and fields with no match are absent.
// Raw keys are compared in normalized form, so callers may pass headers as
// they appear in the file.
func Extract(raw models.RawRow, aliases AliasTable) models.LogicalRow {
	normalized := make(map[string]string, len(raw))
	for header, value := range raw {
		key := NormalizeHeader(header)
		if strings.TrimSpace(value) == "" {
			continue
		}
		if _, taken := normalized[key]; !taken {
			normalized[key] = value
		}
	}

	row := make(models.LogicalRow, len(aliases))
	for field, candidates := range aliases {
		for _, alias := range candidates {
			if v, ok := normalized[alias]; ok {
				row[field] = strings.TrimSpace(v)
				break
			}
		}
	}
	return row
}
