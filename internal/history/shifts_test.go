package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftLogEmpty(t *testing.T) {
	log := NewShiftLog(openTestStore(t), nowFunc)

	h, err := log.Load()
	require.NoError(t, err)
	assert.Empty(t, h.Shifts)
	assert.Equal(t, DefaultGoals, h.Goals)
	assert.Equal(t, 0, h.Stats.TotalShifts)
}

func TestShiftLogDefaultGoals(t *testing.T) {
	log := NewShiftLog(openTestStore(t), nowFunc)
	custom := Goals{TargetStartTime: "08:30", WeeklyHoursTarget: 40, MaxBreakMinutes: 45}
	log.SetDefaultGoals(custom)

	h, err := log.Load()
	require.NoError(t, err)
	assert.Equal(t, custom, h.Goals)
}

func TestShiftLogStats(t *testing.T) {
	log := NewShiftLog(openTestStore(t), nowFunc)
	seedShifts(t, log)

	h, err := log.Load()
	require.NoError(t, err)
	require.Len(t, h.Shifts, 4)
	assert.Equal(t, "2025-01-15", h.Shifts[0].Date)
	assert.NotEmpty(t, h.Shifts[0].ID)

	s := h.Stats
	assert.Equal(t, 4, s.TotalShifts)
	assert.Equal(t, "09:25", s.AvgStartTime)
	assert.Equal(t, 8.7, s.AvgHours)
	assert.Equal(t, 34, s.AvgBreak)
	// 4 shifts over 23 weekdays
	assert.Equal(t, 17, s.AttendanceRate)
	// Friday counts across the weekend
	assert.Equal(t, 4, s.CurrentStreak)
}

func TestShiftLogUpsertsByDate(t *testing.T) {
	log := NewShiftLog(openTestStore(t), nowFunc)
	seedShifts(t, log)

	_, err := log.Save(Shift{Date: "2025-01-14", StartTime: "08:45", WorkingHours: 10})
	require.NoError(t, err)

	h, err := log.Load()
	require.NoError(t, err)
	require.Len(t, h.Shifts, 4)
	assert.Equal(t, "2025-01-14", h.Shifts[1].Date)
	assert.Equal(t, "08:45", h.Shifts[1].StartTime)
}

func TestShiftLogDefaultsDateToToday(t *testing.T) {
	log := NewShiftLog(openTestStore(t), nowFunc)

	saved, err := log.Save(Shift{StartTime: "09:00"})
	require.NoError(t, err)
	assert.Equal(t, "2025-01-15", saved.Date)
	assert.Equal(t, fixedNow, saved.Timestamp)

	_, err = log.Save(Shift{Date: "15/01/2025"})
	assert.Error(t, err)
}

func TestShiftLogCap(t *testing.T) {
	log := NewShiftLog(openTestStore(t), nowFunc)
	start := fixedNow.AddDate(-2, 0, 0)
	for i := 0; i < MaxShifts+5; i++ {
		_, err := log.Save(Shift{Date: start.AddDate(0, 0, i).Format("2006-01-02")})
		require.NoError(t, err)
	}

	h, err := log.Load()
	require.NoError(t, err)
	assert.Len(t, h.Shifts, MaxShifts)
	assert.Equal(t, start.AddDate(0, 0, MaxShifts+4).Format("2006-01-02"), h.Shifts[0].Date)
}

func TestStreakBrokenByMissingWeekday(t *testing.T) {
	shifts := []Shift{
		{Date: "2025-01-15"},
		{Date: "2025-01-13"},
	}
	assert.Equal(t, 1, currentStreak(shifts, fixedNow))

	assert.Equal(t, 0, currentStreak([]Shift{{Date: "2025-01-14"}}, fixedNow))
}

func TestStreakFromWeekend(t *testing.T) {
	saturday := fixedNow.AddDate(0, 0, 3)
	shifts := []Shift{{Date: "2025-01-17"}, {Date: "2025-01-16"}}
	assert.Equal(t, 2, currentStreak(shifts, saturday))
}

func TestUpdateGoals(t *testing.T) {
	log := NewShiftLog(openTestStore(t), nowFunc)

	goals, err := log.UpdateGoals(Goals{WeeklyHoursTarget: 40})
	require.NoError(t, err)
	assert.Equal(t, 40.0, goals.WeeklyHoursTarget)
	assert.Equal(t, "09:30", goals.TargetStartTime)

	h, err := log.Load()
	require.NoError(t, err)
	assert.Equal(t, 40.0, h.Goals.WeeklyHoursTarget)
}

func TestShiftLogClear(t *testing.T) {
	log := NewShiftLog(openTestStore(t), nowFunc)
	seedShifts(t, log)

	require.NoError(t, log.Clear())
	h, err := log.Load()
	require.NoError(t, err)
	assert.Empty(t, h.Shifts)
}

func TestRecent(t *testing.T) {
	log := NewShiftLog(openTestStore(t), nowFunc)
	seedShifts(t, log)

	recent, err := log.Recent(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "2025-01-14", recent[1].Date)

	all, err := log.Recent(10)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}
