// Package history keeps shift, leave and leave-balance records in a
// storage.Store and derives the statistics shown on the dashboard.
package history

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shiftwise/internal/calendar"
	"github.com/shiftwise/internal/clock"
	"github.com/shiftwise/internal/storage"
)

const (
	shiftKey = "shift_history"

	// MaxShifts caps stored shifts; the oldest are dropped first.
	MaxShifts = 365

	punctualityGraceMinutes = 10
	punctualityWindow       = 30
	attendanceWindowDays    = 30
)

type Shift struct {
	ID           string    `json:"id"`
	Date         string    `json:"date"`
	StartTime    string    `json:"start_time"`
	TotalBreak   int       `json:"total_break"`
	WorkingHours float64   `json:"working_hours"`
	FullDayEnd   string    `json:"full_day_end"`
	HalfDayEnd   string    `json:"half_day_end"`
	Timestamp    time.Time `json:"timestamp"`
}

type ShiftStats struct {
	TotalShifts    int     `json:"total_shifts"`
	AvgStartTime   string  `json:"avg_start_time,omitempty"`
	AvgHours       float64 `json:"avg_hours"`
	AvgBreak       int     `json:"avg_break"`
	AttendanceRate int     `json:"attendance_rate"`
	CurrentStreak  int     `json:"current_streak"`
}

type Goals struct {
	TargetStartTime   string  `json:"target_start_time"`
	WeeklyHoursTarget float64 `json:"weekly_hours_target"`
	MaxBreakMinutes   int     `json:"max_break_minutes"`
}

// DefaultGoals are used until the user sets their own.
var DefaultGoals = Goals{
	TargetStartTime:   "09:30",
	WeeklyHoursTarget: 45,
	MaxBreakMinutes:   60,
}

type ShiftHistory struct {
	Shifts []Shift    `json:"shifts"`
	Stats  ShiftStats `json:"stats"`
	Goals  Goals      `json:"goals"`
}

// ShiftLog stores one shift per calendar date, newest first.
type ShiftLog struct {
	store    storage.Store
	now      func() time.Time
	defaults Goals
}

func NewShiftLog(store storage.Store, now func() time.Time) *ShiftLog {
	if now == nil {
		now = time.Now
	}
	return &ShiftLog{store: store, now: now, defaults: DefaultGoals}
}

// SetDefaultGoals sets the goals reported before any are saved.
func (l *ShiftLog) SetDefaultGoals(g Goals) {
	l.defaults = g
}

func (l *ShiftLog) Load() (*ShiftHistory, error) {
	var h ShiftHistory
	err := storage.GetJSON(l.store, shiftKey, &h)
	if errors.Is(err, storage.ErrNotFound) {
		return &ShiftHistory{Shifts: []Shift{}, Goals: l.defaults}, nil
	}
	if err != nil {
		return nil, err
	}
	if h.Shifts == nil {
		h.Shifts = []Shift{}
	}
	return &h, nil
}

// Save stores shift, replacing any shift already recorded for the same date.
func (l *ShiftLog) Save(shift Shift) (*Shift, error) {
	h, err := l.Load()
	if err != nil {
		return nil, err
	}

	now := l.now()
	if shift.Date == "" {
		shift.Date = calendar.ISO(now)
	}
	if _, err := calendar.ParseDate(shift.Date); err != nil {
		return nil, fmt.Errorf("invalid shift date: %w", err)
	}
	shift.ID = uuid.NewString()
	shift.Timestamp = now

	replaced := false
	for i := range h.Shifts {
		if h.Shifts[i].Date == shift.Date {
			h.Shifts[i] = shift
			replaced = true
			break
		}
	}
	if !replaced {
		h.Shifts = append([]Shift{shift}, h.Shifts...)
	}
	if len(h.Shifts) > MaxShifts {
		h.Shifts = h.Shifts[:MaxShifts]
	}

	h.Stats = CalculateShiftStats(h.Shifts, now)
	if err := storage.PutJSON(l.store, shiftKey, h); err != nil {
		return nil, err
	}

	slog.Debug("shift saved", "date", shift.Date, "replaced", replaced)
	return &shift, nil
}

// UpdateGoals merges non-zero fields of g into the stored goals.
func (l *ShiftLog) UpdateGoals(g Goals) (*Goals, error) {
	h, err := l.Load()
	if err != nil {
		return nil, err
	}
	if g.TargetStartTime != "" {
		h.Goals.TargetStartTime = g.TargetStartTime
	}
	if g.WeeklyHoursTarget > 0 {
		h.Goals.WeeklyHoursTarget = g.WeeklyHoursTarget
	}
	if g.MaxBreakMinutes > 0 {
		h.Goals.MaxBreakMinutes = g.MaxBreakMinutes
	}
	if err := storage.PutJSON(l.store, shiftKey, h); err != nil {
		return nil, err
	}
	return &h.Goals, nil
}

func (l *ShiftLog) Clear() error {
	return l.store.Delete(shiftKey)
}

// Recent returns up to count newest shifts.
func (l *ShiftLog) Recent(count int) ([]Shift, error) {
	h, err := l.Load()
	if err != nil {
		return nil, err
	}
	if count < len(h.Shifts) {
		return h.Shifts[:count], nil
	}
	return h.Shifts, nil
}

// CalculateShiftStats summarizes shifts as of now.
func CalculateShiftStats(shifts []Shift, now time.Time) ShiftStats {
	if len(shifts) == 0 {
		return ShiftStats{}
	}

	stats := ShiftStats{TotalShifts: len(shifts)}

	var startSum, startCount int
	var hours float64
	var breaks int
	for _, s := range shifts {
		if s.StartTime != "" {
			startSum += clock.TimeToMinutes(s.StartTime)
			startCount++
		}
		hours += s.WorkingHours
		breaks += s.TotalBreak
	}

	if startCount > 0 {
		avg := startSum / startCount
		stats.AvgStartTime = fmt.Sprintf("%02d:%02d", avg/60, avg%60)
	}
	stats.AvgHours = math.Round(hours/float64(len(shifts))*10) / 10
	stats.AvgBreak = int(math.Round(float64(breaks) / float64(len(shifts))))

	since := calendar.AddDays(now, -attendanceWindowDays)
	recent := 0
	for _, s := range shifts {
		if d, err := calendar.ParseDate(s.Date); err == nil && !d.Before(since) {
			recent++
		}
	}
	if workingDays := weekdaysBetween(since, now); workingDays > 0 {
		stats.AttendanceRate = int(math.Round(float64(recent) / float64(workingDays) * 100))
	}

	stats.CurrentStreak = currentStreak(shifts, now)
	return stats
}

func weekdaysBetween(start, end time.Time) int {
	count := 0
	for _, d := range calendar.DatesBetween(start, end) {
		if !calendar.IsWeekend(d) {
			count++
		}
	}
	return count
}

// currentStreak counts consecutive weekdays with a shift, walking back from today.
func currentStreak(shifts []Shift, now time.Time) int {
	dates := make([]time.Time, 0, len(shifts))
	for _, s := range shifts {
		if d, err := calendar.ParseDate(s.Date); err == nil {
			dates = append(dates, d)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	streak := 0
	current := calendar.Truncate(now)
	for _, d := range dates {
		for calendar.IsWeekend(current) {
			current = current.AddDate(0, 0, -1)
		}
		if !d.Equal(current) {
			break
		}
		streak++
		current = current.AddDate(0, 0, -1)
	}
	return streak
}
