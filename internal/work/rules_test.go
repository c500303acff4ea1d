package work

import (
	"testing"
	"time"

	"github.com/shiftwise/internal/clock"
)

func TestComputeShiftMarkers(t *testing.T) {
	tests := []struct {
		name       string
		start      string
		fullDay    int
		fullEnd    string
		halfEnd    string
		shortLeave string
	}{
		{"standard nine hours", "09:00", 540, "18:00", "13:30", "16:30"},
		{"odd full day floors half", "09:00", 481, "17:01", "13:00", "15:31"},
		{"wraps past midnight", "20:00", 540, "05:00", "00:30", "03:30"},
		{"eight hours", "08:15", 480, "16:15", "12:15", "14:45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := clock.Normalize(clock.TimeToMinutes(tt.start))
			m := ComputeShiftMarkers(start, tt.fullDay)
			f := m.Formatted(true)
			if f.FullDay != tt.fullEnd {
				t.Errorf("FullDay = %s, want %s", f.FullDay, tt.fullEnd)
			}
			if f.HalfDay != tt.halfEnd {
				t.Errorf("HalfDay = %s, want %s", f.HalfDay, tt.halfEnd)
			}
			if f.ShortLeave != tt.shortLeave {
				t.Errorf("ShortLeave = %s, want %s", f.ShortLeave, tt.shortLeave)
			}
		})
	}
}

func TestShiftMarkers12Hour(t *testing.T) {
	m := ComputeShiftMarkers(540, DefaultFullDayMinutes)
	f := m.Formatted(false)
	if f.FullDay != "6:00 PM" || f.HalfDay != "1:30 PM" || f.ShortLeave != "4:30 PM" {
		t.Errorf("unexpected 12h markers: %+v", f)
	}
}

func TestRequiredCheckout(t *testing.T) {
	got := RequiredCheckout(540, 540, 45)
	if got.String() != "18:45" {
		t.Errorf("RequiredCheckout = %s, want 18:45", got)
	}
}

func TestIsWorkDay(t *testing.T) {
	monday := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC) // Monday Jan 1, 2024
	friday := monday.AddDate(0, 0, 4)
	saturday := monday.AddDate(0, 0, 5)
	sunday := monday.AddDate(0, 0, 6)

	if !IsWorkDay(monday) {
		t.Error("Monday should be a work day")
	}
	if !IsWorkDay(friday) {
		t.Error("Friday should be a work day")
	}
	if IsWorkDay(saturday) {
		t.Error("Saturday should not be a work day")
	}
	if IsWorkDay(sunday) {
		t.Error("Sunday should not be a work day")
	}
}

func TestRemainingWorkDaysInWeek(t *testing.T) {
	monday := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		offset   int
		expected int
	}{
		{"Monday", 0, 5},
		{"Wednesday", 2, 3},
		{"Friday", 4, 1},
		{"Saturday", 5, 0},
		{"Sunday", 6, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RemainingWorkDaysInWeek(monday.AddDate(0, 0, tt.offset))
			if result != tt.expected {
				t.Errorf("RemainingWorkDaysInWeek(%s) = %d, want %d", tt.name, result, tt.expected)
			}
		})
	}
}

func TestRequiredDailyHours(t *testing.T) {
	tests := []struct {
		name          string
		hoursWorked   float64
		remainingDays int
		expected      float64
	}{
		{"nothing worked", 0, 5, 9},
		{"half done", 22.5, 5, 4.5},
		{"target exceeded", 50, 2, 0},
		{"no days remaining", 20, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RequiredDailyHours(45, tt.hoursWorked, tt.remainingDays)
			if result != tt.expected {
				t.Errorf("RequiredDailyHours(45, %f, %d) = %f, want %f",
					tt.hoursWorked, tt.remainingDays, result, tt.expected)
			}
		})
	}
}
