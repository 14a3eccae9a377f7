package logging

// Standardized field names for structured logging.
const (
	FieldMonth      = "salary_month"
	FieldRow        = "row"
	FieldField      = "field"
	FieldValue      = "value"
	FieldReason     = "reason"
	FieldOperation  = "operation"
	FieldCount      = "count"
	FieldTotal      = "total"
	FieldCurrency   = "currency"
	FieldEmployer   = "employer_id"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldLedgerFile = "ledger_file"
	FieldRunID      = "run_id"
	FieldTimezone   = "timezone"
)
