package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBusinessClock(t *testing.T) {
	c, err := NewBusinessClock("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTimezone, c.Location().String())

	_, offset := c.Now().Zone()
	assert.Equal(t, 4*60*60, offset, "Dubai is UTC+4 all year")
}

func TestNewBusinessClock_Unknown(t *testing.T) {
	_, err := NewBusinessClock("Mars/Olympus_Mons")
	assert.Error(t, err)
}

func TestFixed(t *testing.T) {
	at := time.Date(2025, time.February, 1, 9, 30, 0, 0, time.UTC)
	var c Clock = Fixed(at)
	assert.True(t, at.Equal(c.Now()))
}

func TestStamp(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Dubai")
	require.NoError(t, err)
	at := time.Date(2025, time.December, 31, 23, 5, 9, 0, loc)

	s := Stamp(at)

	assert.Equal(t, at, s.At)
	assert.Equal(t, "2025-12-31", s.Date)
	assert.Equal(t, "2305", s.Time)
	assert.Equal(t, "251231230509", s.Token)
}

func TestStamp_UsesLocalWallClock(t *testing.T) {
	c, err := NewBusinessClock("Asia/Dubai")
	require.NoError(t, err)
	// 21:00 UTC is already the next day in Dubai
	utc := time.Date(2025, time.January, 31, 21, 0, 0, 0, time.UTC)

	s := Stamp(utc.In(c.Location()))

	assert.Equal(t, "2025-02-01", s.Date)
	assert.Equal(t, "0100", s.Time)
}
