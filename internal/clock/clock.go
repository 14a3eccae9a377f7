// Package clock supplies the current time in the employer's business timezone.
package clock

import (
	"fmt"
	"time"
	_ "time/tzdata" // zone database for hosts without one

	"fjacquet/salary-sif/internal/dateutils"
	"fjacquet/salary-sif/internal/models"
)

// DefaultTimezone is the business timezone used when none is configured.
const DefaultTimezone = "Asia/Dubai"

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// BusinessClock reports wall-clock time in a fixed location.
type BusinessClock struct {
	loc *time.Location
}

// NewBusinessClock loads the IANA zone tz ("" means DefaultTimezone).
func NewBusinessClock(tz string) (*BusinessClock, error) {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", tz, err)
	}
	return &BusinessClock{loc: loc}, nil
}

// Now returns the current time in the business timezone.
func (c *BusinessClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Location returns the business timezone.
func (c *BusinessClock) Location() *time.Location {
	return c.loc
}

// Fixed is a Clock frozen at a single instant, for tests.
type Fixed time.Time

// Now returns the frozen instant.
func (f Fixed) Now() time.Time {
	return time.Time(f)
}

// Stamp renders t in the layouts used by the salary file and its name.
func Stamp(t time.Time) models.Stamp {
	return models.Stamp{
		At:    t,
		Date:  t.Format(dateutils.DateLayoutISO),
		Time:  t.Format(dateutils.DateLayoutTime),
		Token: t.Format(dateutils.DateLayoutStamp),
	}
}
