package models

import (
	"github.com/shopspring/decimal"

	"fjacquet/salary-sif/internal/currencyutils"
)

// Disbursement is one validated employee payment instruction (an EDR line).
type Disbursement struct {
	Row             int    // 1-based spreadsheet row the record came from
	EmployeeID      string // zero-padded to 14 characters
	EmployeeRouting string
	EmployeeIBAN    string // upper-case, no whitespace
	Period          Period
	FixedAmount     decimal.Decimal // rounded to 2 places
	VariableAmount  decimal.Decimal // rounded to 2 places
	UnpaidLeaveDays decimal.Decimal
}

// Amount returns fixed plus variable pay.
func (d Disbursement) Amount() decimal.Decimal {
	return currencyutils.Sum(d.FixedAmount, d.VariableAmount)
}
