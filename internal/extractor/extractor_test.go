package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fjacquet/salary-sif/internal/models"
)

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"Employee ID", "employee_id"},
		{"  EMPLOYEE   IBAN  ", "employee_iban"},
		{"employee_iban", "employee_iban"},
		{"Routing\tCode", "routing_code"},
		{"ｉｂａｎ", "iban"}, // full-width compatibility form
		{"Unpaid Days", "unpaid_days"},
		{"", ""},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeHeader(tc.in))
		})
	}
}

func TestNormalizeHeader_Idempotent(t *testing.T) {
	for _, h := range []string{"Employee ID", "ＢＡＳＩＣ", "lwop days"} {
		once := NormalizeHeader(h)
		assert.Equal(t, once, NormalizeHeader(once))
	}
}

func TestDefaultAliases_Normalized(t *testing.T) {
	for field, aliases := range DefaultAliases {
		assert.NotEmpty(t, aliases, field)
		for _, a := range aliases {
			assert.Equal(t, NormalizeHeader(a), a)
		}
	}
	// "employee id" and "employee_id" collapse to one alias.
	assert.Equal(t, []string{"employee_id", "emp_id", "id", "employeeid"}, DefaultAliases[models.FieldEmployeeID])
}

func TestExtract(t *testing.T) {
	raw := models.RawRow{
		"Emp ID":    " 12345 ",
		"Routing":   "203320101",
		"IBAN":      "AE070331234567890123456",
		"Basic":     "1,000.00",
		"Bonus":     "250",
		"LWOP Days": "0",
		"Notes":     "ignored",
	}

	row := Extract(raw, DefaultAliases)

	assert.Equal(t, models.LogicalRow{
		models.FieldEmployeeID:      "12345",
		models.FieldEmployeeRouting: "203320101",
		models.FieldEmployeeIBAN:    "AE070331234567890123456",
		models.FieldFixedAmount:     "1,000.00",
		models.FieldVariableAmount:  "250",
		models.FieldUnpaidLeaveDays: "0",
	}, row)
}

func TestExtract_FirstNonBlankAliasWins(t *testing.T) {
	raw := models.RawRow{
		"variable_amount": "   ",
		"allowance":       "100",
		"bonus":           "200",
	}

	row := Extract(raw, DefaultAliases)

	v, ok := row.Get(models.FieldVariableAmount)
	assert.True(t, ok)
	assert.Equal(t, "100", v)
}

func TestExtract_BlankValuesAreAbsent(t *testing.T) {
	row := Extract(models.RawRow{"employee_id": "", "iban": "  "}, DefaultAliases)

	_, ok := row.Get(models.FieldEmployeeID)
	assert.False(t, ok)
	_, ok = row.Get(models.FieldEmployeeIBAN)
	assert.False(t, ok)
}

func TestExtract_OrderIndependent(t *testing.T) {
	a := models.RawRow{"id": "1", "routing": "2", "iban": "3"}
	b := models.RawRow{"iban": "3", "id": "1", "routing": "2"}

	assert.Equal(t, Extract(a, DefaultAliases), Extract(b, DefaultAliases))
}

func TestExtract_PeriodColumns(t *testing.T) {
	row := Extract(models.RawRow{"Start Date": "45658", "To Date": "2025-01-31"}, DefaultAliases)

	assert.Equal(t, "45658", row[models.FieldPeriodStart])
	assert.Equal(t, "2025-01-31", row[models.FieldPeriodEnd])
}

func TestNewAliasTable(t *testing.T) {
	table := NewAliasTable(map[models.LogicalField][]string{
		models.FieldEmployeeID: {"Staff No", "staff no", ""},
	})

	assert.Equal(t, []string{"staff_no"}, table[models.FieldEmployeeID])
	row := Extract(models.RawRow{"STAFF  NO": "9"}, table)
	assert.Equal(t, "9", row[models.FieldEmployeeID])
}
