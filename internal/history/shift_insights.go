package history

import (
	"math"
	"time"

	"github.com/shiftwise/internal/calendar"
	"github.com/shiftwise/internal/clock"
)

type WeeklySummary struct {
	TotalHours float64 `json:"total_hours"`
	AvgHours   float64 `json:"avg_hours"`
	DaysWorked int     `json:"days_worked"`
	Shifts     []Shift `json:"shifts"`
}

// WeekSummary totals the shifts from Monday of now's week onwards.
func WeekSummary(shifts []Shift, now time.Time) WeeklySummary {
	weekStart := WeekStart(now)

	summary := WeeklySummary{Shifts: []Shift{}}
	for _, s := range shifts {
		d, err := calendar.ParseDate(s.Date)
		if err != nil || d.Before(weekStart) {
			continue
		}
		summary.Shifts = append(summary.Shifts, s)
		summary.TotalHours += s.WorkingHours
	}

	summary.DaysWorked = len(summary.Shifts)
	if summary.DaysWorked > 0 {
		summary.AvgHours = round1(summary.TotalHours / float64(summary.DaysWorked))
	}
	summary.TotalHours = round1(summary.TotalHours)
	return summary
}

type BreakBucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

type BreakPattern struct {
	AvgBreak     int           `json:"avg_break"`
	MaxBreak     int           `json:"max_break"`
	MinBreak     int           `json:"min_break"`
	Distribution []BreakBucket `json:"distribution"`
}

// BreakPatterns describes non-zero breaks in 30-minute buckets.
func BreakPatterns(shifts []Shift) BreakPattern {
	buckets := []BreakBucket{
		{Range: "0-30 min"},
		{Range: "31-60 min"},
		{Range: "61-90 min"},
		{Range: "90+ min"},
	}

	var p BreakPattern
	sum, n := 0, 0
	for _, s := range shifts {
		b := s.TotalBreak
		if b <= 0 {
			continue
		}
		if n == 0 || b > p.MaxBreak {
			p.MaxBreak = b
		}
		if n == 0 || b < p.MinBreak {
			p.MinBreak = b
		}
		sum += b
		n++

		switch {
		case b <= 30:
			buckets[0].Count++
		case b <= 60:
			buckets[1].Count++
		case b <= 90:
			buckets[2].Count++
		default:
			buckets[3].Count++
		}
	}

	if n > 0 {
		p.AvgBreak = int(math.Round(float64(sum) / float64(n)))
	}
	p.Distribution = buckets
	return p
}

// PunctualityScore is the share of the last 30 shifts that started no more
// than ten minutes after the target start. No shifts scores 100.
func PunctualityScore(shifts []Shift, target string) int {
	if len(shifts) == 0 {
		return 100
	}
	if target == "" {
		target = DefaultGoals.TargetStartTime
	}
	limit := clock.TimeToMinutes(target) + punctualityGraceMinutes

	recent := shifts
	if len(recent) > punctualityWindow {
		recent = recent[:punctualityWindow]
	}

	onTime := 0
	for _, s := range recent {
		if s.StartTime != "" && clock.TimeToMinutes(s.StartTime) <= limit {
			onTime++
		}
	}
	return int(math.Round(float64(onTime) / float64(len(recent)) * 100))
}

// WeekStart returns the Monday of t's week as a date.
func WeekStart(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return calendar.AddDays(t, -weekday+1)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
