package dateutils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"fjacquet/salary-sif/internal/models"
)

// Bounds accepted for the year part of a salary month token.
const (
	MinSalaryYear = 2000
	MaxSalaryYear = 2100
)

// ErrInvalidMonthToken is returned for anything that is not a MMYYYY token in range.
var ErrInvalidMonthToken = errors.New("invalid salary month token")

// PeriodFor returns the calendar month named by token (MM followed by YYYY).
func PeriodFor(token string) (models.Period, error) {
	if len(token) != 6 || !isDigits(token) {
		return models.Period{}, fmt.Errorf("%w: %q must be 6 digits (MMYYYY)", ErrInvalidMonthToken, token)
	}
	month, _ := strconv.Atoi(token[:2])
	year, _ := strconv.Atoi(token[2:])
	if month < 1 || month > 12 {
		return models.Period{}, fmt.Errorf("%w: %q has month %d outside 01-12", ErrInvalidMonthToken, token, month)
	}
	if year < MinSalaryYear || year > MaxSalaryYear {
		return models.Period{}, fmt.Errorf("%w: %q has year %d outside %d-%d",
			ErrInvalidMonthToken, token, year, MinSalaryYear, MaxSalaryYear)
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := EndOfMonth(start)
	return models.Period{
		Month: token,
		Start: start,
		End:   end,
		Days:  DaysInclusive(start, end),
	}, nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}
