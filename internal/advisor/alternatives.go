package advisor

import (
	"fmt"
	"sort"
	"time"

	"github.com/shiftwise/internal/calendar"
	"github.com/shiftwise/internal/sandwich"
)

// maxShift bounds how far alternatives move the original range, in days.
const maxShift = 3

// Alternative is the original range moved by Shift days.
type Alternative struct {
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Shift      int       `json:"shift"`
	ShiftLabel string    `json:"shift_label"`
	Risk       int       `json:"risk"`
	IsSandwich bool      `json:"is_sandwich"`
	ExtraDays  int       `json:"extra_days"`
	TotalDays  int       `json:"total_days"`
}

// SuggestAlternatives shifts the range by -3..+3 days (never 0), keeping its
// length, and returns the candidates ordered by risk. Equal risks keep scan
// order, so earlier shifts come first.
func SuggestAlternatives(start, end time.Time, h calendar.Holidays) ([]Alternative, error) {
	duration := calendar.DaysBetween(start, end)
	if duration < 1 {
		return nil, &sandwich.ValidationError{Reason: "end before start"}
	}

	alternatives := make([]Alternative, 0, 2*maxShift)
	for shift := -maxShift; shift <= maxShift; shift++ {
		if shift == 0 {
			continue
		}

		newStart := calendar.AddDays(start, shift)
		newEnd := calendar.AddDays(newStart, duration-1)

		eval, err := sandwich.Evaluate(sandwich.Range{
			Start: newStart,
			End:   newEnd,
			Type:  sandwich.EarnedLeave,
		}, h)
		if err != nil {
			return nil, err
		}

		alternatives = append(alternatives, Alternative{
			Start:      newStart,
			End:        newEnd,
			Shift:      shift,
			ShiftLabel: shiftLabel(shift),
			Risk:       ScoreRisk(newStart, newEnd, h),
			IsSandwich: eval.IsSandwich,
			ExtraDays:  eval.ExtraDays,
			TotalDays:  eval.TotalLeaveDays,
		})
	}

	sort.SliceStable(alternatives, func(i, j int) bool {
		return alternatives[i].Risk < alternatives[j].Risk
	})
	return alternatives, nil
}

func shiftLabel(shift int) string {
	if shift > 0 {
		return fmt.Sprintf("+%d days", shift)
	}
	return fmt.Sprintf("%d days", shift)
}

// Recommendation is a sandwich-free window found by RecommendBestDates.
type Recommendation struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Risk  int       `json:"risk"`
	Score int       `json:"score"`
}

const maxRecommendations = 5

// RecommendBestDates slides a window of durationDays across [from, to] and
// returns up to five sandwich-free windows, best score (100 - risk) first.
func RecommendBestDates(durationDays int, from, to time.Time, h calendar.Holidays) []Recommendation {
	if durationDays < 1 {
		return nil
	}

	var recs []Recommendation
	last := calendar.Truncate(to)
	for d := calendar.Truncate(from); !d.After(last); d = d.AddDate(0, 0, 1) {
		windowEnd := calendar.AddDays(d, durationDays-1)
		if windowEnd.After(last) {
			break
		}

		eval, err := sandwich.Evaluate(sandwich.Range{Start: d, End: windowEnd, Type: sandwich.EarnedLeave}, h)
		if err != nil || eval.IsSandwich {
			continue
		}

		risk := ScoreRisk(d, windowEnd, h)
		recs = append(recs, Recommendation{
			Start: d,
			End:   windowEnd,
			Risk:  risk,
			Score: maxRisk - risk,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}
