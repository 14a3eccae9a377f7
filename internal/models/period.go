package models

import "time"

// Period is the pay period shared by every record of a run.
type Period struct {
	Month string    // salary month token, MMYYYY
	Start time.Time // first day of the month, midnight UTC
	End   time.Time // last day of the month, midnight UTC
	Days  int       // inclusive day count
}

// Contains reports whether d falls on a day inside the period.
func (p Period) Contains(d time.Time) bool {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(p.Start) && !day.After(p.End)
}
