// Package dateutils normalizes the date encodings found in payroll spreadsheets
// and derives salary periods from month tokens.
package dateutils

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Common date layouts used throughout the application
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutTime     = "1504"
	DateLayoutStamp    = "060102150405"
	DateLayoutEuropean = "02.01.2006"
)

// ErrNotParseable is returned when no supported encoding yields a real calendar date.
var ErrNotParseable = errors.New("date not parseable")

// excelEpoch is day zero of the spreadsheet serial calendar. Using 1899-12-30
// absorbs the 1900 leap-year bug for every serial after February 1900.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var (
	serialPattern    = regexp.MustCompile(`^\d+(\.\d+)?$`)
	yearFirstPattern = regexp.MustCompile(`^(\d{4})[-/](\d{1,2})[-/](\d{1,2})`)
	ambiguousPattern = regexp.MustCompile(`^(\d{1,2})[-/](\d{1,2})[-/](\d{2,4})`)
	spacePattern     = regexp.MustCompile(`\s+`)
)

// freeTextLayouts is the last-resort list tried after the numeric encodings.
var freeTextLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	DateLayoutEuropean,
	"2.1.2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"Jan 02, 2006",
	"2 January 2006",
	"2 Jan 2006",
	"02 Jan 2006",
	"2-Jan-2006",
	"2-Jan-06",
	"Mon, 02 Jan 2006",
	"Monday, January 2, 2006",
	time.RFC1123,
	time.RFC1123Z,
	time.ANSIC,
}

// Normalize converts a spreadsheet date value into a calendar date at midnight UTC.
//
// Accepted encodings, tried in order:
//   - a spreadsheet serial day count, fractional part ignored ("45658", "45658.75")
//   - year first: YYYY-M-D or YYYY/M/D, optionally followed by a time
//   - a/b/c with - or / separators: D/M/Y when a > 12, otherwise M/D/Y;
//     two-digit years are read as 20YY
//   - a free-text date such as "January 31, 2025" or "31 Jan 2025"
//
// The a/b/c rule cannot tell 03/04/2025 apart from 3 April; it is always read as
// March 4. The returned error wraps ErrNotParseable.
func Normalize(value string) (time.Time, error) {
	s := CleanDateString(value)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrNotParseable)
	}

	if serialPattern.MatchString(s) {
		if d, ok := fromSerial(s); ok {
			return d, nil
		}
	}

	if m := yearFirstPattern.FindStringSubmatch(s); m != nil {
		if d, ok := fromParts(m[1], m[2], m[3]); ok {
			return d, nil
		}
	}

	if m := ambiguousPattern.FindStringSubmatch(s); m != nil {
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[2])
		y, _ := strconv.Atoi(m[3])
		if y < 100 {
			y += 2000
		}
		month, day := a, b
		if a > 12 {
			month, day = b, a
		}
		if d, ok := ValidDate(y, month, day); ok {
			return d, nil
		}
	}

	for _, layout := range freeTextLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			if d, ok := ValidDate(t.Year(), int(t.Month()), t.Day()); ok {
				return d, nil
			}
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrNotParseable, value)
}

// FromSerial converts a spreadsheet serial day count into a calendar date.
func FromSerial(serial float64) (time.Time, bool) {
	if math.IsNaN(serial) || math.IsInf(serial, 0) || serial < 0 {
		return time.Time{}, false
	}
	d := excelEpoch.AddDate(0, 0, int(math.Floor(serial)))
	if d.Year() > 9999 {
		return time.Time{}, false
	}
	return d, true
}

func fromSerial(s string) (time.Time, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f > 2958465 { // 9999-12-31
		return time.Time{}, false
	}
	return FromSerial(f)
}

func fromParts(ys, ms, ds string) (time.Time, bool) {
	y, err1 := strconv.Atoi(ys)
	m, err2 := strconv.Atoi(ms)
	d, err3 := strconv.Atoi(ds)
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	return ValidDate(y, m, d)
}

// ValidDate builds the date y-m-d and reports whether it is a real calendar day.
// time.Date silently normalizes overflow (Feb 30 becomes Mar 2), so the
// components are compared after construction.
func ValidDate(year, month, day int) (time.Time, bool) {
	if year < 1 || year > 9999 || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// CleanDateString trims and collapses whitespace
func CleanDateString(dateStr string) string {
	return spacePattern.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// StartOfMonth returns the first day of the month for a given date
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// EndOfMonth returns the last day of the month for a given date
func EndOfMonth(date time.Time) time.Time {
	return StartOfMonth(date).AddDate(0, 1, -1)
}

// DaysInclusive counts the calendar days from start to end, both included.
func DaysInclusive(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
