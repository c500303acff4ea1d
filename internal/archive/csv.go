package archive

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/shiftwise/internal/history"
)

var (
	shiftHeader = []string{"Date", "Start", "Break (min)", "Working Hours", "Full Day", "Half Day"}
	leaveHeader = []string{"Start Date", "End Date", "Type", "Days", "Sandwiched"}
)

// WriteShiftsCSV writes one row per shift in the order given.
func WriteShiftsCSV(w io.Writer, shifts []history.Shift) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(shiftHeader); err != nil {
		return err
	}
	for _, s := range shifts {
		row := []string{
			s.Date,
			s.StartTime,
			strconv.Itoa(s.TotalBreak),
			strconv.FormatFloat(s.WorkingHours, 'f', 2, 64),
			s.FullDayEnd,
			s.HalfDayEnd,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteLeavesCSV writes one row per leave record in the order given.
func WriteLeavesCSV(w io.Writer, leaves []history.LeaveRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(leaveHeader); err != nil {
		return err
	}
	for _, l := range leaves {
		row := []string{
			l.StartDate,
			l.EndDate,
			l.Type,
			strconv.Itoa(l.Days),
			strconv.FormatBool(l.Sandwiched),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
