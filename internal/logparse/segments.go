package logparse

import "github.com/shiftwise/internal/clock"

// SegmentKind classifies the span between two adjacent punches.
type SegmentKind string

const (
	SegmentWork  SegmentKind = "work"
	SegmentBreak SegmentKind = "break"
)

// Segment is one bar of the work/break timeline.
type Segment struct {
	Kind            SegmentKind     `json:"kind"`
	Start           clock.TimeOfDay `json:"start"`
	End             clock.TimeOfDay `json:"end"`
	DurationMinutes int             `json:"duration_minutes"`
}

// Segments classifies each adjacent pair of sorted events for display.
// IN->OUT is work and OUT->IN is a break. Other pairs and spans that are not
// strictly positive are left out. This is a presentation view; Analysis holds
// the authoritative totals.
func Segments(events []Event) []Segment {
	segments := make([]Segment, 0, len(events))

	for i := 0; i+1 < len(events); i++ {
		cur, next := events[i], events[i+1]

		var kind SegmentKind
		switch {
		case cur.Kind == In && next.Kind == Out:
			kind = SegmentWork
		case cur.Kind == Out && next.Kind == In:
			kind = SegmentBreak
		default:
			continue
		}

		d := int(next.Minutes - cur.Minutes)
		if d <= 0 {
			continue
		}
		segments = append(segments, Segment{
			Kind:            kind,
			Start:           cur.Minutes,
			End:             next.Minutes,
			DurationMinutes: d,
		})
	}

	return segments
}

// WorkMinutes sums the work segments of a timeline.
func WorkMinutes(segments []Segment) int {
	total := 0
	for _, s := range segments {
		if s.Kind == SegmentWork {
			total += s.DurationMinutes
		}
	}
	return total
}
