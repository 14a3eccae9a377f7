package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stamp is a moment in the business timezone, pre-rendered in the layouts
// the salary file needs.
type Stamp struct {
	At    time.Time
	Date  string // 2006-01-02
	Time  string // 1504
	Token string // 060102150405, used in file names
}

// Summary is the control record (SCR line) of a salary file.
type Summary struct {
	Employer      Employer
	Created       Stamp
	SalaryMonth   string
	EmployeeCount int
	TotalAmount   decimal.Decimal
}
