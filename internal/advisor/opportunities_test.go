package advisor

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/shiftwise/internal/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindOptimalLeavePeriodsJanuary(t *testing.T) {
	opps := FindOptimalLeavePeriods(2026, time.January, calendar.Default())
	require.Len(t, opps, 2)

	// Monday holiday needs no leave and sorts first.
	assert.Equal(t, LongWeekend, opps[0].Type)
	assert.Equal(t, "Republic Day", opps[0].Holiday)
	assert.True(t, opps[0].Free)
	assert.Equal(t, 0, opps[0].LeaveDaysNeeded)
	assert.Equal(t, 3, opps[0].TotalDaysOff)
	assert.True(t, math.IsInf(opps[0].Rank(), 1))

	// Thursday holiday bridges through Friday.
	b := opps[1]
	assert.Equal(t, Bridge, b.Type)
	assert.Equal(t, "Vasi Uttarayan", b.Holiday)
	assert.Equal(t, "Take Friday (16), get 4 days off", b.Suggestion)
	assert.Equal(t, 1, b.LeaveDaysNeeded)
	assert.Equal(t, 4.0, b.Efficiency)
	require.NotNil(t, b.RecommendedStart)
	assert.Equal(t, "2026-01-15", calendar.ISO(*b.RecommendedStart))
	assert.Equal(t, "2026-01-18", calendar.ISO(*b.RecommendedEnd))
}

func TestFindOptimalLeavePeriodsTuesdayBridge(t *testing.T) {
	opps := FindOptimalLeavePeriods(2026, time.November, calendar.Default())
	require.Len(t, opps, 1)
	assert.Equal(t, "Take Monday (9), get 4 days off", opps[0].Suggestion)
	assert.Equal(t, "2026-11-09", calendar.ISO(*opps[0].RecommendedStart))
	assert.Equal(t, "2026-11-10", calendar.ISO(*opps[0].RecommendedEnd))
}

func TestFindOptimalLeavePeriodsFreeBeforeBridge(t *testing.T) {
	h := calendar.New([]calendar.Holiday{
		{Date: "2026-10-20", Name: "Dussehra"},
		{Date: "2026-10-02", Name: "Gandhi Jayanti"},
		{Date: "2026-10-29", Name: "Extra Thursday"},
	})

	opps := FindOptimalLeavePeriods(2026, time.October, h)
	require.Len(t, opps, 3)
	assert.True(t, opps[0].Free)
	assert.Equal(t, "Gandhi Jayanti", opps[0].Holiday)
	assert.Equal(t, "Dussehra", opps[1].Holiday)
	assert.Equal(t, "Extra Thursday", opps[2].Holiday)
}

func TestFindOptimalLeavePeriodsNone(t *testing.T) {
	assert.Empty(t, FindOptimalLeavePeriods(2026, time.March, calendar.Default()))
	assert.Empty(t, FindOptimalLeavePeriods(2026, time.January, nil))
}

func TestOpportunitySerializes(t *testing.T) {
	opps := FindOptimalLeavePeriods(2026, time.January, calendar.Default())
	_, err := json.Marshal(opps)
	assert.NoError(t, err)
}

func TestUpcomingLongWeekends(t *testing.T) {
	h := calendar.Default()

	now := time.Date(2026, time.October, 15, 10, 0, 0, 0, time.UTC)
	opps := UpcomingLongWeekends(now, h)
	var names []string
	for _, o := range opps {
		names = append(names, o.Holiday)
	}
	assert.Equal(t, []string{"Gandhi Jayanti", "Dussehra", "Gujarati New Year", "Christmas"}, names)

	capped := UpcomingLongWeekends(time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), h)
	require.Len(t, capped, 5)
	assert.Equal(t, "Raksha Bandhan", capped[0].Holiday)
	assert.Equal(t, "Dussehra", capped[4].Holiday)
}

func TestUpcomingLongWeekendsWrapsYear(t *testing.T) {
	now := time.Date(2025, time.December, 20, 0, 0, 0, 0, time.UTC)
	opps := UpcomingLongWeekends(now, calendar.Default())
	require.Len(t, opps, 2)
	assert.Equal(t, "Republic Day", opps[0].Holiday)
}
