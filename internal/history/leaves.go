package history

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shiftwise/internal/calendar"
	"github.com/shiftwise/internal/storage"
)

const (
	leaveKey = "leave_history"

	// MaxLeaves caps stored leave records; the oldest are dropped first.
	MaxLeaves = 50

	daysPerMonth = 30
)

type LeaveRecord struct {
	ID         string    `json:"id"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	Type       string    `json:"type"`
	Days       int       `json:"days"`
	Sandwiched bool      `json:"sandwiched"`
	Timestamp  time.Time `json:"timestamp"`
}

type LeaveStats struct {
	TotalLeavesTaken int     `json:"total_leaves_taken"`
	AveragePerMonth  float64 `json:"average_per_month"`
	FavoriteMonth    string  `json:"favorite_month,omitempty"`
	SandwichRate     int     `json:"sandwich_rate"`
}

type LeaveHistory struct {
	Leaves []LeaveRecord `json:"leaves"`
	Stats  LeaveStats    `json:"stats"`
}

type MonthPattern struct {
	Month     string `json:"month"`
	ShortName string `json:"short_name"`
	Count     int    `json:"count"`
	Days      int    `json:"days"`
}

type Season struct {
	Name string `json:"name"`
	Days int    `json:"days"`
}

type TypeRate struct {
	Type  string `json:"type"`
	Rate  int    `json:"rate"`
	Total int    `json:"total"`
}

type InsightKind string

const (
	InsightInfo    InsightKind = "info"
	InsightWarning InsightKind = "warning"
	InsightSuccess InsightKind = "success"
)

type Insight struct {
	Kind    InsightKind `json:"kind"`
	Message string      `json:"message"`
}

// LeaveLog stores planned leaves, newest first.
type LeaveLog struct {
	store storage.Store
	now   func() time.Time
}

func NewLeaveLog(store storage.Store, now func() time.Time) *LeaveLog {
	if now == nil {
		now = time.Now
	}
	return &LeaveLog{store: store, now: now}
}

func (l *LeaveLog) Load() (*LeaveHistory, error) {
	var h LeaveHistory
	err := storage.GetJSON(l.store, leaveKey, &h)
	if errors.Is(err, storage.ErrNotFound) {
		return &LeaveHistory{Leaves: []LeaveRecord{}}, nil
	}
	if err != nil {
		return nil, err
	}
	if h.Leaves == nil {
		h.Leaves = []LeaveRecord{}
	}
	return &h, nil
}

func (l *LeaveLog) Add(rec LeaveRecord) (*LeaveRecord, error) {
	start, err := calendar.ParseDate(rec.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := calendar.ParseDate(rec.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date: %w", err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("end date %s is before start date %s", rec.EndDate, rec.StartDate)
	}

	h, err := l.Load()
	if err != nil {
		return nil, err
	}

	rec.ID = uuid.NewString()
	rec.Timestamp = l.now()

	h.Leaves = append([]LeaveRecord{rec}, h.Leaves...)
	if len(h.Leaves) > MaxLeaves {
		h.Leaves = h.Leaves[:MaxLeaves]
	}
	h.Stats = CalculateLeaveStats(h.Leaves)

	if err := storage.PutJSON(l.store, leaveKey, h); err != nil {
		return nil, err
	}

	slog.Debug("leave recorded", "start", rec.StartDate, "end", rec.EndDate, "sandwiched", rec.Sandwiched)
	return &rec, nil
}

func (l *LeaveLog) Clear() error {
	return l.store.Delete(leaveKey)
}

// CalculateLeaveStats summarizes leave records.
func CalculateLeaveStats(leaves []LeaveRecord) LeaveStats {
	if len(leaves) == 0 {
		return LeaveStats{}
	}

	var total, sandwiched int
	var monthCounts [12]int
	var starts []time.Time
	for _, l := range leaves {
		total += l.Days
		if l.Sandwiched {
			sandwiched++
		}
		d, err := calendar.ParseDate(l.StartDate)
		if err != nil {
			continue
		}
		monthCounts[d.Month()-1]++
		starts = append(starts, d)
	}

	stats := LeaveStats{
		TotalLeavesTaken: total,
		SandwichRate:     int(math.Round(float64(sandwiched) / float64(len(leaves)) * 100)),
	}

	if len(starts) > 0 {
		sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })
		span := starts[len(starts)-1].Sub(starts[0]).Hours() / 24 / daysPerMonth
		stats.AveragePerMonth = round1(float64(total) / math.Max(1, span))

		best := 0
		for m := 1; m < 12; m++ {
			if monthCounts[m] > monthCounts[best] {
				best = m
			}
		}
		stats.FavoriteMonth = time.Month(best + 1).String()[:3]
	}
	return stats
}

// MonthlyPatterns returns one row per calendar month, January first.
func MonthlyPatterns(leaves []LeaveRecord) []MonthPattern {
	rows := make([]MonthPattern, 12)
	for i := range rows {
		name := time.Month(i + 1).String()
		rows[i] = MonthPattern{Month: name, ShortName: name[:3]}
	}
	for _, l := range leaves {
		d, err := calendar.ParseDate(l.StartDate)
		if err != nil {
			continue
		}
		rows[d.Month()-1].Count++
		rows[d.Month()-1].Days += l.Days
	}
	return rows
}

// SeasonalTrends totals leave days per calendar quarter.
func SeasonalTrends(leaves []LeaveRecord) []Season {
	seasons := []Season{
		{Name: "Winter (Jan-Mar)"},
		{Name: "Spring (Apr-Jun)"},
		{Name: "Summer (Jul-Sep)"},
		{Name: "Fall (Oct-Dec)"},
	}
	for i, m := range MonthlyPatterns(leaves) {
		seasons[i/3].Days += m.Days
	}
	return seasons
}

// SandwichRateByType groups records by leave type in first-seen order.
func SandwichRateByType(leaves []LeaveRecord) []TypeRate {
	var rates []TypeRate
	index := make(map[string]int)
	sandwiched := make(map[string]int)

	for _, l := range leaves {
		i, ok := index[l.Type]
		if !ok {
			i = len(rates)
			index[l.Type] = i
			rates = append(rates, TypeRate{Type: l.Type})
		}
		rates[i].Total++
		if l.Sandwiched {
			sandwiched[l.Type]++
		}
	}

	for i := range rates {
		rates[i].Rate = int(math.Round(float64(sandwiched[rates[i].Type]) / float64(rates[i].Total) * 100))
	}
	return rates
}

// Insights turns leave statistics into short observations.
func Insights(h *LeaveHistory) []Insight {
	if len(h.Leaves) == 0 {
		return []Insight{{
			Kind:    InsightInfo,
			Message: "No leave history yet. Start planning your leaves to get insights!",
		}}
	}

	s := h.Stats
	var out []Insight

	switch {
	case s.SandwichRate > 50:
		out = append(out, Insight{
			Kind:    InsightWarning,
			Message: fmt.Sprintf("%d%% of your leaves trigger sandwich. Consider using the suggestions!", s.SandwichRate),
		})
	case s.SandwichRate < 20:
		out = append(out, Insight{
			Kind:    InsightSuccess,
			Message: fmt.Sprintf("Great job! Only %d%% sandwich rate. You're optimizing well!", s.SandwichRate),
		})
	}

	if s.FavoriteMonth != "" {
		out = append(out, Insight{
			Kind:    InsightInfo,
			Message: fmt.Sprintf("You tend to take leaves in %s", s.FavoriteMonth),
		})
	}

	if s.AveragePerMonth > 2.5 {
		out = append(out, Insight{
			Kind:    InsightInfo,
			Message: fmt.Sprintf("You take an average of %.1f days off per month", s.AveragePerMonth),
		})
	}
	return out
}
