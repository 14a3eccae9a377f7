// Package validation turns extracted spreadsheet rows into disbursement
// records, enforcing the bank's field rules. The first invalid row aborts.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"fjacquet/salary-sif/internal/currencyutils"
	"fjacquet/salary-sif/internal/dateutils"
	"fjacquet/salary-sif/internal/models"
	"fjacquet/salary-sif/internal/parsererror"
)

const (
	// EmployeeIDWidth is the fixed width employee ids are zero-padded to.
	EmployeeIDWidth = 14
	// RoutingLength is the expected number of digits in a routing code.
	RoutingLength = 9
)

var (
	ibanPattern    = regexp.MustCompile(`^AE[0-9A-Z]{21}$`)
	routingPattern = regexp.MustCompile(`^\d{9}$`)
)

// Warning is a non-fatal finding about a row. The record is still emitted.
type Warning struct {
	Row     int
	Field   models.LogicalField
	Value   string
	Message string
}

func (w Warning) String() string {
	if w.Row == 0 {
		return fmt.Sprintf("%s '%s': %s", w.Field, w.Value, w.Message)
	}
	return fmt.Sprintf("row %d: %s '%s': %s", w.Row, w.Field, w.Value, w.Message)
}

// BuildRecord validates one logical row and builds its disbursement.
// rowNumber is the 1-based spreadsheet row and is carried into errors.
// Every record of a run shares period, whatever the row says.
func BuildRecord(row models.LogicalRow, rowNumber int, period models.Period) (models.Disbursement, []Warning, error) {
	for _, f := range models.RequiredFields {
		if _, ok := row.Get(f); !ok {
			return models.Disbursement{}, nil, &parsererror.RowError{
				Row:    rowNumber,
				Field:  string(f),
				Reason: "missing required field",
			}
		}
	}

	var warnings []Warning

	id, err := NormalizeEmployeeID(row[models.FieldEmployeeID])
	if err != nil {
		return models.Disbursement{}, nil, rowError(rowNumber, models.FieldEmployeeID, row[models.FieldEmployeeID], err)
	}

	routing := row[models.FieldEmployeeRouting]
	if !ValidRouting(routing) {
		warnings = append(warnings, Warning{
			Row:     rowNumber,
			Field:   models.FieldEmployeeRouting,
			Value:   routing,
			Message: fmt.Sprintf("routing code should be %d digits", RoutingLength),
		})
	}

	iban, err := NormalizeIBAN(row[models.FieldEmployeeIBAN])
	if err != nil {
		return models.Disbursement{}, nil, rowError(rowNumber, models.FieldEmployeeIBAN, row[models.FieldEmployeeIBAN], err)
	}

	fixed, err := parseNonNegative(row, models.FieldFixedAmount)
	if err != nil {
		return models.Disbursement{}, nil, rowError(rowNumber, models.FieldFixedAmount, row[models.FieldFixedAmount], err)
	}
	variable, err := parseNonNegative(row, models.FieldVariableAmount)
	if err != nil {
		return models.Disbursement{}, nil, rowError(rowNumber, models.FieldVariableAmount, row[models.FieldVariableAmount], err)
	}
	leave, err := parseNonNegative(row, models.FieldUnpaidLeaveDays)
	if err != nil {
		return models.Disbursement{}, nil, rowError(rowNumber, models.FieldUnpaidLeaveDays, row[models.FieldUnpaidLeaveDays], err)
	}

	warnings = append(warnings, checkPeriodColumns(row, rowNumber, period)...)

	return models.Disbursement{
		Row:             rowNumber,
		EmployeeID:      id,
		EmployeeRouting: routing,
		EmployeeIBAN:    iban,
		Period:          period,
		FixedAmount:     currencyutils.RoundAmount(fixed),
		VariableAmount:  currencyutils.RoundAmount(variable),
		UnpaidLeaveDays: leave,
	}, warnings, nil
}

// NormalizeEmployeeID checks that id is 1 to 14 digits and left-pads it
// with zeros to EmployeeIDWidth.
func NormalizeEmployeeID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", errors.New("employee id is empty")
	}
	for _, c := range id {
		if c < '0' || c > '9' {
			return "", errors.New("employee id must contain digits only")
		}
	}
	if len(id) > EmployeeIDWidth {
		return "", fmt.Errorf("employee id longer than %d digits", EmployeeIDWidth)
	}
	return strings.Repeat("0", EmployeeIDWidth-len(id)) + id, nil
}

// NormalizeIBAN removes whitespace, upper-cases and checks the UAE IBAN shape.
func NormalizeIBAN(iban string) (string, error) {
	cleaned := strings.ToUpper(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, iban))
	if !ibanPattern.MatchString(cleaned) {
		return "", errors.New("IBAN must be AE followed by 21 letters or digits")
	}
	return cleaned, nil
}

// ValidRouting reports whether routing is exactly nine digits.
func ValidRouting(routing string) bool {
	return routingPattern.MatchString(routing)
}

func parseNonNegative(row models.LogicalRow, f models.LogicalField) (decimal.Decimal, error) {
	v, err := currencyutils.ParseAmount(row[f])
	if err != nil {
		return decimal.Zero, errors.New("not a number")
	}
	if currencyutils.IsNegative(v) {
		return decimal.Zero, errors.New("must not be negative")
	}
	return v, nil
}

// checkPeriodColumns reports per-row period columns that disagree with the
// salary month. They never change the record.
func checkPeriodColumns(row models.LogicalRow, rowNumber int, period models.Period) []Warning {
	var warnings []Warning
	for _, f := range []models.LogicalField{models.FieldPeriodStart, models.FieldPeriodEnd} {
		v, ok := row.Get(f)
		if !ok {
			continue
		}
		d, err := dateutils.Normalize(v)
		switch {
		case err != nil:
			warnings = append(warnings, Warning{Row: rowNumber, Field: f, Value: v, Message: "date not recognized, ignored"})
		case !period.Contains(d):
			warnings = append(warnings, Warning{
				Row:   rowNumber,
				Field: f,
				Value: v,
				Message: fmt.Sprintf("%s is outside salary month %s, using %s to %s",
					dateutils.ToISODate(d), period.Month,
					dateutils.ToISODate(period.Start), dateutils.ToISODate(period.End)),
			})
		}
	}
	return warnings
}

func rowError(rowNumber int, f models.LogicalField, value string, err error) error {
	return &parsererror.RowError{
		Row:    rowNumber,
		Field:  string(f),
		Value:  value,
		Reason: err.Error(),
		Err:    err,
	}
}
