package advisor

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shiftwise/internal/calendar"
)

// OpportunityType distinguishes free long weekends from one-day bridges.
type OpportunityType string

const (
	LongWeekend OpportunityType = "long-weekend"
	Bridge      OpportunityType = "bridge"
)

// Opportunity is a holiday that yields extra days off for little or no leave.
// Free opportunities need no leave at all, so their efficiency is unbounded and
// Efficiency (days off per leave day) stays zero.
type Opportunity struct {
	Type             OpportunityType `json:"type"`
	Holiday          string          `json:"holiday"`
	Date             time.Time       `json:"date"`
	Suggestion       string          `json:"suggestion"`
	LeaveDaysNeeded  int             `json:"leave_days_needed"`
	TotalDaysOff     int             `json:"total_days_off"`
	Free             bool            `json:"free"`
	Efficiency       float64         `json:"efficiency,omitempty"`
	RecommendedStart *time.Time      `json:"recommended_start,omitempty"`
	RecommendedEnd   *time.Time      `json:"recommended_end,omitempty"`
}

// Rank orders opportunities: free ones rank above any finite efficiency.
func (o Opportunity) Rank() float64 {
	if o.Free {
		return math.Inf(1)
	}
	return o.Efficiency
}

// FindOptimalLeavePeriods looks at the holidays of one month. A Friday or
// Monday holiday is a free 3-day weekend; a Thursday or Tuesday holiday becomes
// a 4-day break for one bridging leave day. Results are ordered by Rank.
func FindOptimalLeavePeriods(year int, month time.Month, h calendar.Holidays) []Opportunity {
	var opportunities []Opportunity

	for _, hol := range h.InMonth(year, month) {
		d, err := calendar.ParseDate(hol.Date)
		if err != nil {
			continue
		}

		switch d.Weekday() {
		case time.Friday:
			opportunities = append(opportunities, freeWeekend(hol.Name, d, "Holiday on Friday + Weekend = 3 days off"))
		case time.Monday:
			opportunities = append(opportunities, freeWeekend(hol.Name, d, "Weekend + Holiday on Monday = 3 days off"))
		case time.Thursday:
			friday := calendar.AddDays(d, 1)
			opportunities = append(opportunities, bridge(hol.Name, d,
				fmt.Sprintf("Take Friday (%d), get 4 days off", friday.Day()),
				d, calendar.AddDays(d, 3)))
		case time.Tuesday:
			monday := calendar.AddDays(d, -1)
			opportunities = append(opportunities, bridge(hol.Name, d,
				fmt.Sprintf("Take Monday (%d), get 4 days off", monday.Day()),
				monday, d))
		}
	}

	sort.SliceStable(opportunities, func(i, j int) bool {
		return opportunities[i].Rank() > opportunities[j].Rank()
	})
	return opportunities
}

func freeWeekend(name string, d time.Time, suggestion string) Opportunity {
	return Opportunity{
		Type:         LongWeekend,
		Holiday:      name,
		Date:         d,
		Suggestion:   suggestion,
		TotalDaysOff: 3,
		Free:         true,
	}
}

func bridge(name string, d time.Time, suggestion string, start, end time.Time) Opportunity {
	return Opportunity{
		Type:             Bridge,
		Holiday:          name,
		Date:             d,
		Suggestion:       suggestion,
		LeaveDaysNeeded:  1,
		TotalDaysOff:     4,
		Efficiency:       4.0,
		RecommendedStart: &start,
		RecommendedEnd:   &end,
	}
}

const (
	upcomingMonths = 4
	maxUpcoming    = 5
)

// UpcomingLongWeekends scans the month of now and the three after it.
func UpcomingLongWeekends(now time.Time, h calendar.Holidays) []Opportunity {
	var out []Opportunity
	first := calendar.Day(now.Year(), now.Month(), 1)

	for i := 0; i < upcomingMonths; i++ {
		m := first.AddDate(0, i, 0)
		out = append(out, FindOptimalLeavePeriods(m.Year(), m.Month(), h)...)
	}

	if len(out) > maxUpcoming {
		out = out[:maxUpcoming]
	}
	return out
}
