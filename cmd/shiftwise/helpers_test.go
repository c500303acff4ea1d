package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shiftwise/internal/clock"
	"github.com/shiftwise/internal/config"
	"github.com/shiftwise/internal/logparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	got, err := parseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, clock.TimeOfDay(570), got)

	got, err = parseClock("7:05")
	require.NoError(t, err)
	assert.Equal(t, clock.TimeOfDay(425), got)

	for _, bad := range []string{"", "24:00", "9:5", "09:60", "9.30", "nine"} {
		_, err := parseClock(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseMonthArg(t *testing.T) {
	year, month, err := parseMonthArg("2026-01")
	require.NoError(t, err)
	assert.Equal(t, 2026, year)
	assert.Equal(t, time.January, month)

	_, _, err = parseMonthArg("01-2026")
	assert.Error(t, err)
}

func TestParseDateRange(t *testing.T) {
	start, end, err := parseDateRange("2026-01-12", "2026-01-16")
	require.NoError(t, err)
	assert.Equal(t, time.Monday, start.Weekday())
	assert.Equal(t, time.Friday, end.Weekday())

	_, _, err = parseDateRange("2026-01-12", "16/01/2026")
	assert.Error(t, err)
}

func TestParseIndex(t *testing.T) {
	i, err := parseIndex("3")
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	_, err = parseIndex("0")
	assert.Error(t, err)
	_, err = parseIndex("x")
	assert.Error(t, err)
}

func TestReadInputFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "punches.txt")
	require.NoError(t, os.WriteFile(path, []byte("9:00 AM IN\n6:00 PM OUT\n"), 0644))

	text, err := readInput([]string{path})
	require.NoError(t, err)
	assert.Contains(t, text, "6:00 PM OUT")

	_, err = readInput([]string{filepath.Join(t.TempDir(), "missing.txt")})
	assert.Error(t, err)
}

func TestShiftFromAnalysis(t *testing.T) {
	cfg = config.Default()

	a := logparse.Parse("9:00 AM IN\n1:00 PM OUT\n1:30 PM IN\n6:30 PM OUT", false)
	shift, err := shiftFromAnalysis(a, "2026-01-12")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-12", shift.Date)
	assert.Equal(t, "09:00", shift.StartTime)
	assert.Equal(t, 30, shift.TotalBreak)
	assert.Equal(t, 9.0, shift.WorkingHours)
	assert.Equal(t, "6:00 PM", shift.FullDayEnd)
	assert.Equal(t, "1:30 PM", shift.HalfDayEnd)

	_, err = shiftFromAnalysis(logparse.Parse("", false), "")
	assert.Error(t, err)

	_, err = shiftFromAnalysis(a, "yesterday")
	assert.Error(t, err)
}
