// Package sandwich decides whether weekends and holidays inside a leave
// request are charged as leave.
package sandwich

import (
	"fmt"
	"time"

	"github.com/shiftwise/internal/calendar"
)

// Range is a leave request over whole calendar days.
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Type  LeaveType `json:"type"`
}

// Evaluation is the outcome of applying the sandwich rule to one Range.
type Evaluation struct {
	IsSandwich     bool        `json:"is_sandwich"`
	TotalLeaveDays int         `json:"total_leave_days"`
	WorkingDays    int         `json:"working_days"`
	ExtraDays      int         `json:"extra_days"`
	SandwichDates  []time.Time `json:"sandwich_dates"`
	Reason         string      `json:"reason"`
}

// ChargedDays is the number of days deducted from the leave balance.
func (e *Evaluation) ChargedDays() int {
	return e.WorkingDays + e.ExtraDays
}

// ValidationError is returned when a Range is structurally invalid.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid leave range: %s", e.Reason)
}

// Evaluate applies the sandwich rule to r.
//
// Only non-working days inside [Start, End] are considered; the days just
// before and after the range are not. A request that covers exactly one
// working day is never sandwich.
func Evaluate(r Range, h calendar.Holidays) (*Evaluation, error) {
	start, end := calendar.Truncate(r.Start), calendar.Truncate(r.End)
	if end.Before(start) {
		return nil, &ValidationError{Reason: "end before start"}
	}

	dates := calendar.DatesBetween(start, end)
	eval := &Evaluation{
		TotalLeaveDays: len(dates),
		SandwichDates:  []time.Time{},
	}

	var nonWorking []time.Time
	for _, d := range dates {
		if calendar.IsNonWorkingDay(d, h) {
			nonWorking = append(nonWorking, d)
		} else {
			eval.WorkingDays++
		}
	}

	if !r.Type.Valid() {
		eval.Reason = fmt.Sprintf("leave type %q is not subject to the sandwich rule", r.Type)
		return eval, nil
	}

	switch {
	case eval.WorkingDays == 1:
		eval.Reason = "single working day leave; sandwich rule does not apply"
	case len(nonWorking) > 0 && eval.WorkingDays > 1:
		eval.IsSandwich = true
		eval.ExtraDays = len(nonWorking)
		eval.SandwichDates = nonWorking
		eval.Reason = fmt.Sprintf("%d non-working day(s) between leave dates will be counted as leave", len(nonWorking))
	case eval.WorkingDays == 0:
		eval.Reason = "no working days in leave range"
	default:
		eval.Reason = "no non-working days between leave dates"
	}

	return eval, nil
}
