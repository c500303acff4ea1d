// Package logparse turns free-form attendance log text into IN/OUT punches
// and reconciles them into break intervals and net worked time.
package logparse

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/shiftwise/internal/clock"
)

// Kind is the direction of a punch.
type Kind string

const (
	In  Kind = "IN"
	Out Kind = "OUT"
)

// punchPattern matches "H:MM", an optional AM/PM marker and the IN/OUT token.
var punchPattern = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(AM|PM)?\s*(IN|OUT)`)

// Event is a single parsed punch. Seq is the encounter order within one parse.
type Event struct {
	Seq         int             `json:"seq"`
	Minutes     clock.TimeOfDay `json:"minutes"`
	DisplayTime string          `json:"display_time"`
	Kind        Kind            `json:"kind"`
}

// Break is an OUT punch followed by an IN punch at a strictly later minute.
type Break struct {
	Start           clock.TimeOfDay `json:"start"`
	End             clock.TimeOfDay `json:"end"`
	StartDisplay    string          `json:"start_display"`
	EndDisplay      string          `json:"end_display"`
	DurationMinutes int             `json:"duration_minutes"`
}

// Analysis is the result of one parse.
type Analysis struct {
	Events               []Event `json:"events"`
	Breaks               []Break `json:"breaks"`
	TotalBreakMinutes    int     `json:"total_break_minutes"`
	FirstIn              *Event  `json:"first_in,omitempty"`
	LastOut              *Event  `json:"last_out,omitempty"`
	EffectiveWorkMinutes int     `json:"effective_work_minutes"`

	// AutoStartTime is the first IN in 24-hour form, empty when there is none.
	AutoStartTime string `json:"auto_start_time,omitempty"`
}

// FirstInTime returns the display time of the first IN, or "".
func (a *Analysis) FirstInTime() string {
	if a.FirstIn == nil {
		return ""
	}
	return a.FirstIn.DisplayTime
}

// LastOutTime returns the display time of the last OUT, or "".
func (a *Analysis) LastOutTime() string {
	if a.LastOut == nil {
		return ""
	}
	return a.LastOut.DisplayTime
}

// Parse extracts punches from text and derives break and work totals.
//
// Parse never fails: text without recognizable punches yields an empty Analysis.
// Hours without an AM/PM marker are taken as 24-hour. Out-of-range values such
// as "25:00" are not rejected. Net work is lastOut-firstIn minus breaks, floored
// at zero; a shift crossing midnight therefore reports zero rather than wrapping.
func Parse(text string, use24Hour bool) *Analysis {
	events := extract(text, use24Hour)

	// Stable so simultaneous punches keep the order they appeared in.
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Minutes < events[j].Minutes
	})

	a := &Analysis{
		Events: events,
		Breaks: []Break{},
	}

	for i := 0; i+1 < len(events); i++ {
		cur, next := events[i], events[i+1]
		if cur.Kind != Out || next.Kind != In {
			continue
		}
		diff := int(next.Minutes - cur.Minutes)
		if diff <= 0 {
			continue
		}
		a.Breaks = append(a.Breaks, Break{
			Start:           cur.Minutes,
			End:             next.Minutes,
			StartDisplay:    cur.DisplayTime,
			EndDisplay:      next.DisplayTime,
			DurationMinutes: diff,
		})
		a.TotalBreakMinutes += diff
	}

	for i := range events {
		if events[i].Kind == In {
			a.FirstIn = &events[i]
			break
		}
	}
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Kind == Out {
			a.LastOut = &events[i]
			break
		}
	}

	if a.FirstIn != nil {
		a.AutoStartTime = clock.MinutesToTime(int(a.FirstIn.Minutes), true)
	}
	if a.FirstIn != nil && a.LastOut != nil {
		net := int(a.LastOut.Minutes-a.FirstIn.Minutes) - a.TotalBreakMinutes
		if net > 0 {
			a.EffectiveWorkMinutes = net
		}
	}

	return a
}

func extract(text string, use24Hour bool) []Event {
	matches := punchPattern.FindAllStringSubmatch(text, -1)
	events := make([]Event, 0, len(matches))

	for i, m := range matches {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		hour = clock.To24Hour(hour, m[3])

		minutes := hour*60 + minute
		events = append(events, Event{
			Seq:         i,
			Minutes:     clock.TimeOfDay(minutes),
			DisplayTime: clock.MinutesToTime(minutes, use24Hour),
			Kind:        Kind(strings.ToUpper(m[4])),
		})
	}

	return events
}
