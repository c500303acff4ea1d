package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultHolidays(t *testing.T) {
	h := Default()
	assert.Len(t, h, 14)
	assert.Equal(t, "Republic Day", h.Name(Day(2026, time.January, 26)))
	assert.Equal(t, "", h.Name(Day(2026, time.January, 27)))
	require.NoError(t, h.Validate())
}

func TestDefaultFiscalYearsIsACopy(t *testing.T) {
	a := DefaultFiscalYears()
	a["2025-26"][0].Name = "changed"
	b := DefaultFiscalYears()
	assert.Equal(t, "Makar Sankranti / Pongal", b["2025-26"][0].Name)
}

func TestValidateRejectsBadDates(t *testing.T) {
	h := New([]Holiday{{Date: "2026-13-01", Name: "Nope"}})
	assert.Error(t, h.Validate())
}

func TestIsNonWorkingDay(t *testing.T) {
	h := New([]Holiday{{Date: "2026-01-14", Name: "Pongal"}})

	tests := []struct {
		date     string
		expected bool
	}{
		{"2026-01-10", true},  // Saturday
		{"2026-01-11", true},  // Sunday
		{"2026-01-12", false}, // Monday
		{"2026-01-14", true},  // Wednesday holiday
		{"2026-01-15", false},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			d, err := ParseDate(tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, IsNonWorkingDay(d, h))
		})
	}
}

func TestNilCalendarHasNoHolidays(t *testing.T) {
	var h Holidays
	assert.False(t, h.IsHoliday(Day(2026, time.January, 14)))
	assert.Empty(t, h.List())
	assert.Empty(t, h.InMonth(2026, time.January))
}

func TestDatesBetween(t *testing.T) {
	dates := DatesBetween(Day(2026, time.February, 27), Day(2026, time.March, 2))
	require.Len(t, dates, 4)
	assert.Equal(t, "2026-02-27", ISO(dates[0]))
	assert.Equal(t, "2026-03-02", ISO(dates[3]))

	assert.Len(t, DatesBetween(Day(2026, time.March, 1), Day(2026, time.March, 1)), 1)
	assert.Empty(t, DatesBetween(Day(2026, time.March, 2), Day(2026, time.March, 1)))
}

func TestDatesBetweenIgnoresClock(t *testing.T) {
	start := time.Date(2026, time.March, 1, 23, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.March, 2, 1, 0, 0, 0, time.UTC)
	assert.Len(t, DatesBetween(start, end), 2)
	assert.Equal(t, 2, DaysBetween(start, end))
}

func TestMonthDates(t *testing.T) {
	assert.Len(t, MonthDates(2026, time.February), 28)
	assert.Len(t, MonthDates(2028, time.February), 29)
	assert.Len(t, MonthDates(2026, time.December), 31)
}

func TestInMonth(t *testing.T) {
	nov := Default().InMonth(2026, time.November)
	require.Len(t, nov, 3)
	assert.Equal(t, "2026-11-08", nov[0].Date)
	assert.Equal(t, "Bhai Dooj", nov[2].Name)
}

func TestInRange(t *testing.T) {
	start, end := Day(2026, time.May, 4), Day(2026, time.May, 8)
	assert.True(t, InRange(start, start, end))
	assert.True(t, InRange(end.Add(5*time.Hour), start, end))
	assert.False(t, InRange(Day(2026, time.May, 9), start, end))
}

func TestDateTypeLabel(t *testing.T) {
	h := New([]Holiday{
		{Date: "2026-08-15", Name: "Independence Day"},
		{Date: "2026-08-28", Name: "Raksha Bandhan"},
		{Date: "2026-08-29", Name: ""},
	})

	tests := []struct {
		date     time.Time
		expected string
	}{
		{Day(2026, time.August, 15), "Independence Day (Weekend)"},
		{Day(2026, time.August, 28), "Raksha Bandhan"},
		{Day(2026, time.August, 29), "Holiday + Weekend"},
		{Day(2026, time.August, 16), "Weekend"},
		{Day(2026, time.August, 17), "Working Day"},
	}

	for _, tt := range tests {
		t.Run(ISO(tt.date), func(t *testing.T) {
			assert.Equal(t, tt.expected, DateTypeLabel(tt.date, h))
		})
	}
}
