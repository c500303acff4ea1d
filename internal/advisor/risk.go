// Package advisor scores leave requests for sandwich risk and proposes
// lower-risk or higher-value alternatives.
package advisor

import (
	"time"

	"github.com/shiftwise/internal/calendar"
)

const (
	boundaryWeight = 35
	insideWeight   = 15
	maxRisk        = 100
)

// ScoreRisk estimates, from 0 to 100, how likely a leave range is to trigger
// the sandwich rule. A non-working day just before start or just after end adds
// 35 each, and every non-working day inside [start, end] adds 15.
func ScoreRisk(start, end time.Time, h calendar.Holidays) int {
	risk := 0

	if calendar.IsNonWorkingDay(calendar.AddDays(start, -1), h) {
		risk += boundaryWeight
	}
	if calendar.IsNonWorkingDay(calendar.AddDays(end, 1), h) {
		risk += boundaryWeight
	}
	for _, d := range calendar.DatesBetween(start, end) {
		if calendar.IsNonWorkingDay(d, h) {
			risk += insideWeight
		}
	}

	if risk > maxRisk {
		return maxRisk
	}
	return risk
}

// Level is a qualitative bucket for a risk score.
type Level string

const (
	LevelNone   Level = "None"
	LevelLow    Level = "Low"
	LevelMedium Level = "Medium"
	LevelHigh   Level = "High"
)

// LevelFor buckets a risk score: 0, below 30, below 60, and the rest.
func LevelFor(risk int) Level {
	switch {
	case risk <= 0:
		return LevelNone
	case risk < 30:
		return LevelLow
	case risk < 60:
		return LevelMedium
	default:
		return LevelHigh
	}
}

// Color is the display hint for a level.
func (l Level) Color() string {
	switch l {
	case LevelMedium:
		return "orange"
	case LevelHigh:
		return "red"
	default:
		return "green"
	}
}
