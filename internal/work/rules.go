package work

import (
	"time"

	"github.com/shiftwise/internal/clock"
)

// =============================================================================
// SHIFT RULES CONFIGURATION
// =============================================================================
// Defaults for the attendance policy. FullDayMinutes can be overridden in the
// config file; the short-leave offset is a fixed policy constant.
// =============================================================================

const (
	// DefaultFullDayMinutes - length of a full working day (9 hours)
	DefaultFullDayMinutes = 540

	// ShortLeaveOffsetMinutes - a short leave ends this long before the full day
	ShortLeaveOffsetMinutes = 90

	// WorkDaysPerWeek - standard work week (Mon-Fri)
	WorkDaysPerWeek = 5
)

// ShiftMarkers are the expected checkout times for a given start.
type ShiftMarkers struct {
	Start         clock.TimeOfDay `json:"start"`
	FullDayEnd    clock.TimeOfDay `json:"full_day_end"`
	HalfDayEnd    clock.TimeOfDay `json:"half_day_end"`
	ShortLeaveEnd clock.TimeOfDay `json:"short_leave_end"`
}

// ComputeShiftMarkers derives full-day, half-day and short-leave end times.
// Every marker wraps around midnight.
func ComputeShiftMarkers(start clock.TimeOfDay, fullDayMinutes int) ShiftMarkers {
	return ShiftMarkers{
		Start:         start,
		FullDayEnd:    start.Add(fullDayMinutes),
		HalfDayEnd:    start.Add(fullDayMinutes / 2),
		ShortLeaveEnd: start.Add(fullDayMinutes - ShortLeaveOffsetMinutes),
	}
}

// Formatted renders the markers in the requested display convention.
func (m ShiftMarkers) Formatted(use24Hour bool) FormattedMarkers {
	return FormattedMarkers{
		FullDay:    m.FullDayEnd.Format(use24Hour),
		HalfDay:    m.HalfDayEnd.Format(use24Hour),
		ShortLeave: m.ShortLeaveEnd.Format(use24Hour),
	}
}

// FormattedMarkers holds display strings for ShiftMarkers.
type FormattedMarkers struct {
	FullDay    string `json:"full_day"`
	HalfDay    string `json:"half_day"`
	ShortLeave string `json:"short_leave"`
}

// RequiredCheckout returns when a full day completes once breaks are added back.
func RequiredCheckout(start clock.TimeOfDay, fullDayMinutes, breakMinutes int) clock.TimeOfDay {
	return start.Add(fullDayMinutes + breakMinutes)
}

// IsWorkDay returns true if the given day is a standard work day (Mon-Fri)
func IsWorkDay(t time.Time) bool {
	day := t.Weekday()
	return day >= time.Monday && day <= time.Friday
}

// RemainingWorkDaysInWeek returns how many work days are left in the current week
func RemainingWorkDaysInWeek(t time.Time) int {
	day := t.Weekday()
	if day == time.Saturday || day == time.Sunday {
		return 0
	}
	// Monday=1, Friday=5, so remaining = 5 - current + 1 (including today)
	return int(time.Friday) - int(day) + 1
}

// RequiredDailyHours calculates hours needed per remaining day to meet a weekly target
func RequiredDailyHours(weeklyTarget, hoursWorked float64, remainingDays int) float64 {
	if remainingDays <= 0 {
		return 0
	}
	remaining := weeklyTarget - hoursWorked
	if remaining <= 0 {
		return 0
	}
	return remaining / float64(remainingDays)
}
