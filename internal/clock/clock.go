package clock

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the length of the wall-clock day in minutes.
const MinutesPerDay = 24 * 60

// TimeOfDay is a count of minutes since local midnight.
// Values produced by Normalize are always in [0, MinutesPerDay).
type TimeOfDay int

// Normalize wraps any minute count into [0, MinutesPerDay).
// Negative values wrap forward, so -30 becomes 23:30.
func Normalize(minutes int) TimeOfDay {
	m := minutes % MinutesPerDay
	if m < 0 {
		m += MinutesPerDay
	}
	return TimeOfDay(m)
}

// Add returns t shifted by delta minutes, wrapped around midnight.
func (t TimeOfDay) Add(delta int) TimeOfDay {
	return Normalize(int(t) + delta)
}

// Hour returns the hour component of a normalized time.
func (t TimeOfDay) Hour() int {
	return int(Normalize(int(t))) / 60
}

// Minute returns the minute component of a normalized time.
func (t TimeOfDay) Minute() int {
	return int(Normalize(int(t))) % 60
}

// Format renders t in 24-hour "HH:MM" or 12-hour "H:MM AM" form.
func (t TimeOfDay) Format(use24Hour bool) string {
	return MinutesToTime(int(t), use24Hour)
}

func (t TimeOfDay) String() string {
	return t.Format(true)
}

// TimeToMinutes converts "HH:MM" into minutes since midnight.
// Empty input yields 0. Components that fail to parse count as 0.
func TimeToMinutes(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	parts := strings.SplitN(s, ":", 2)
	hours, _ := strconv.Atoi(parts[0])
	minutes := 0
	if len(parts) > 1 {
		minutes, _ = strconv.Atoi(parts[1])
	}
	return hours*60 + minutes
}

// MinutesToTime normalizes minutes into a single day and renders it.
// 12-hour form leaves the hour unpadded: midnight is "12:00 AM", noon "12:00 PM".
func MinutesToTime(minutes int, use24Hour bool) string {
	m := int(Normalize(minutes))
	h := m / 60
	mm := m % 60

	if use24Hour {
		return fmt.Sprintf("%02d:%02d", h, mm)
	}

	ampm := "AM"
	if h >= 12 {
		ampm = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, mm, ampm)
}

// FormatDuration renders a non-negative minute count as "Xh Ym".
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// To24Hour converts a clock hour with an optional AM/PM marker to 24-hour form.
// An empty marker means the hour is already 24-hour.
func To24Hour(hour int, marker string) int {
	switch strings.ToUpper(marker) {
	case "PM":
		if hour != 12 {
			return hour + 12
		}
	case "AM":
		if hour == 12 {
			return 0
		}
	}
	return hour
}
