// Package models defines the payroll rows, salary file records and history
// entries shared across the application.
package models

import "strings"

// RawRow maps a normalized spreadsheet header to the raw cell text of one row.
// Blank cells are the empty string.
type RawRow map[string]string

// IsBlank reports whether every cell in the row is empty or Unicode whitespace.
func (r RawRow) IsBlank() bool {
	for _, v := range r {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// LogicalField names a column of the fixed input schema.
type LogicalField string

// Logical input fields.
const (
	FieldEmployeeID      LogicalField = "employee_id"
	FieldEmployeeRouting LogicalField = "employee_routing"
	FieldEmployeeIBAN    LogicalField = "employee_iban"
	FieldFixedAmount     LogicalField = "fixed_amount"
	FieldVariableAmount  LogicalField = "variable_amount"
	FieldUnpaidLeaveDays LogicalField = "unpaid_leave_days"

	// Advisory only: the period always comes from the salary month token.
	FieldPeriodStart LogicalField = "period_start"
	FieldPeriodEnd   LogicalField = "period_end"
)

// RequiredFields lists, in report order, the fields every data row must carry.
var RequiredFields = []LogicalField{
	FieldEmployeeID,
	FieldEmployeeRouting,
	FieldEmployeeIBAN,
	FieldFixedAmount,
	FieldVariableAmount,
	FieldUnpaidLeaveDays,
}

// LogicalRow holds the trimmed values of the logical fields found in a row.
// Fields with no matching non-blank column are absent.
type LogicalRow map[LogicalField]string

// Get returns the value of f and whether it is present.
func (r LogicalRow) Get(f LogicalField) (string, bool) {
	v, ok := r[f]
	return v, ok
}
