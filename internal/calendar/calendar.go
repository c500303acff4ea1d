// Package calendar provides date arithmetic over whole days and the
// company holiday table used to decide which days are non-working.
package calendar

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// DateLayout is the ISO calendar-date layout used for holiday keys.
const DateLayout = "2006-01-02"

// Holiday is one named company holiday.
type Holiday struct {
	Date string `yaml:"Date" json:"date"`
	Name string `yaml:"Name" json:"name"`
}

// Holidays maps an ISO date to the holiday name. It is treated as read-only
// once built; a nil Holidays is a valid empty calendar.
type Holidays map[string]string

// New builds a calendar from a flat holiday list. Later entries win on duplicate dates.
func New(list []Holiday) Holidays {
	h := make(Holidays, len(list))
	for _, hol := range list {
		h[hol.Date] = hol.Name
	}
	return h
}

// FromFiscalYears flattens fiscal-year tables into one calendar.
func FromFiscalYears(tables map[string][]Holiday) Holidays {
	h := make(Holidays)
	for _, fy := range tables {
		for _, hol := range fy {
			h[hol.Date] = hol.Name
		}
	}
	return h
}

// Validate checks that every key is a real ISO date.
func (h Holidays) Validate() error {
	for date := range h {
		if _, err := ParseDate(date); err != nil {
			return fmt.Errorf("invalid holiday date %q: %w", date, err)
		}
	}
	return nil
}

// IsHoliday reports whether d is a company holiday.
func (h Holidays) IsHoliday(d time.Time) bool {
	_, ok := h[ISO(d)]
	return ok
}

// Name returns the holiday name for d, or "" when d is not a holiday.
func (h Holidays) Name(d time.Time) string {
	return h[ISO(d)]
}

// List returns every holiday sorted by date.
func (h Holidays) List() []Holiday {
	list := make([]Holiday, 0, len(h))
	for date, name := range h {
		list = append(list, Holiday{Date: date, Name: name})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date < list[j].Date })
	return list
}

// InMonth returns holidays falling in the given month, sorted by date.
func (h Holidays) InMonth(year int, month time.Month) []Holiday {
	prefix := fmt.Sprintf("%04d-%02d-", year, month)
	var out []Holiday
	for _, hol := range h.List() {
		if strings.HasPrefix(hol.Date, prefix) {
			out = append(out, hol)
		}
	}
	return out
}

// ParseDate parses "YYYY-MM-DD" into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
}

// Day builds a UTC midnight date.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Truncate drops the clock part of t, keeping its calendar date.
func Truncate(t time.Time) time.Time {
	return Day(t.Year(), t.Month(), t.Day())
}

// ISO formats the calendar date of t as "YYYY-MM-DD".
func ISO(t time.Time) string {
	return t.Format(DateLayout)
}

// AddDays shifts a date by whole calendar days.
func AddDays(t time.Time, n int) time.Time {
	return Truncate(t).AddDate(0, 0, n)
}

// DaysBetween returns the number of calendar days from start to end, inclusive.
// It is zero or negative when end precedes start.
func DaysBetween(start, end time.Time) int {
	return int(Truncate(end).Sub(Truncate(start)).Hours()/24) + 1
}

// IsWeekend reports Saturday or Sunday.
func IsWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsNonWorkingDay reports a weekend day or a company holiday.
func IsNonWorkingDay(d time.Time, h Holidays) bool {
	return IsWeekend(d) || h.IsHoliday(d)
}

// DatesBetween returns every date from start to end inclusive.
// The result is empty when end precedes start.
func DatesBetween(start, end time.Time) []time.Time {
	start, end = Truncate(start), Truncate(end)
	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// MonthDates returns every date of a month.
func MonthDates(year int, month time.Month) []time.Time {
	first := Day(year, month, 1)
	return DatesBetween(first, first.AddDate(0, 1, -1))
}

// InRange reports whether d lies within [start, end].
func InRange(d, start, end time.Time) bool {
	d = Truncate(d)
	return !d.Before(Truncate(start)) && !d.After(Truncate(end))
}

// DateTypeLabel describes d as a working day, a weekend or a named holiday.
func DateTypeLabel(d time.Time, h Holidays) string {
	name, isHoliday := h[ISO(d)]
	weekend := IsWeekend(d)

	switch {
	case isHoliday && weekend:
		if name == "" {
			return "Holiday + Weekend"
		}
		return name + " (Weekend)"
	case isHoliday:
		if name == "" {
			return "Holiday"
		}
		return name
	case weekend:
		return "Weekend"
	default:
		return "Working Day"
	}
}
