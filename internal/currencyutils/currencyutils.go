// Package currencyutils provides the decimal operations used for salary amounts.
package currencyutils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// AmountPlaces is the number of fractional digits printed for money fields.
const AmountPlaces = 2

// ErrEmptyAmount is returned by ParseAmount for a blank value.
var ErrEmptyAmount = errors.New("empty amount")

// plainDecimal matches a signed decimal with no exponent.
var plainDecimal = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)$`)

// ParseAmount parses a spreadsheet amount into an exact decimal.
// Thousands separators (commas) and whitespace are removed first, so
// "1,234.50" and " 1234.5 " both give 1234.5. Exponent forms such as "1e3"
// are rejected.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero, ErrEmptyAmount
	}

	if !plainDecimal.MatchString(standardized) {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': not a plain decimal number", amountStr)
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// StandardizeAmount strips commas and every kind of whitespace.
func StandardizeAmount(amountStr string) string {
	return strings.Map(func(r rune) rune {
		if r == ',' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, amountStr)
}

// RoundAmount rounds to AmountPlaces, half away from zero.
func RoundAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(AmountPlaces)
}

// FormatAmount renders an amount with exactly two decimals and no separators.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(AmountPlaces)
}

// FormatQuantity renders a non-money number such as a day count in its
// shortest exact form: 0, 1.5, 12.
func FormatQuantity(value decimal.Decimal) string {
	return value.String()
}

// Sum adds amounts exactly.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// IsNegative checks if an amount is negative
func IsNegative(amount decimal.Decimal) bool {
	return amount.LessThan(decimal.Zero)
}
