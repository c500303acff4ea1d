package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekStart(t *testing.T) {
	monday := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 7; i++ {
		d := monday.AddDate(0, 0, i)
		t.Run(d.Weekday().String(), func(t *testing.T) {
			got := WeekStart(d)
			assert.Equal(t, time.Monday, got.Weekday())
			assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), got)
		})
	}
}

func TestWeekSummary(t *testing.T) {
	log := NewShiftLog(openTestStore(t), nowFunc)
	seedShifts(t, log)
	h, err := log.Load()
	require.NoError(t, err)

	w := WeekSummary(h.Shifts, fixedNow)
	assert.Equal(t, 3, w.DaysWorked)
	assert.Equal(t, 26.8, w.TotalHours)
	assert.Equal(t, 8.9, w.AvgHours)

	empty := WeekSummary(nil, fixedNow)
	assert.Equal(t, 0, empty.DaysWorked)
	assert.NotNil(t, empty.Shifts)
}

func TestBreakPatterns(t *testing.T) {
	shifts := []Shift{{TotalBreak: 30}, {TotalBreak: 45}, {TotalBreak: 60}, {TotalBreak: 0}, {TotalBreak: 120}}

	p := BreakPatterns(shifts)
	assert.Equal(t, 64, p.AvgBreak)
	assert.Equal(t, 120, p.MaxBreak)
	assert.Equal(t, 30, p.MinBreak)
	require.Len(t, p.Distribution, 4)
	assert.Equal(t, 1, p.Distribution[0].Count)
	assert.Equal(t, 2, p.Distribution[1].Count)
	assert.Equal(t, 0, p.Distribution[2].Count)
	assert.Equal(t, 1, p.Distribution[3].Count)
}

func TestPunctualityScore(t *testing.T) {
	assert.Equal(t, 100, PunctualityScore(nil, "09:30"))

	shifts := []Shift{
		{StartTime: "09:00"},
		{StartTime: "09:40"},
		{StartTime: "10:00"},
		{StartTime: "09:10"},
	}
	assert.Equal(t, 75, PunctualityScore(shifts, "09:30"))
	assert.Equal(t, 50, PunctualityScore(shifts, "09:00"))
	// empty target falls back to the default goal
	assert.Equal(t, 75, PunctualityScore(shifts, ""))
}
