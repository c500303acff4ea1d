package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/shiftwise/internal/calendar"
	"github.com/shiftwise/internal/clock"
	"github.com/shiftwise/internal/history"
	"github.com/shiftwise/internal/logparse"
	"github.com/shiftwise/internal/work"
	"github.com/spf13/cobra"
)

var shiftCmd = &cobra.Command{
	Use:     "shift <HH:MM>",
	Aliases: []string{"s"},
	Short:   "Show checkout times for a shift start",
	Long:    `Show the full-day, half-day and short-leave checkout times for a shift starting at HH:MM (24-hour).`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := parseClock(args[0])
		if err != nil {
			return err
		}

		m := work.ComputeShiftMarkers(start, cfg.FullDayMinutes).Formatted(cfg.Use24Hour)
		fmt.Printf("Start: %s | Full day: %s | Half day: %s | Short leave: %s\n",
			start.Format(cfg.Use24Hour), m.FullDay, m.HalfDay, m.ShortLeave)

		return printWeekProgress()
	},
}

var logCmd = &cobra.Command{
	Use:   "log [file]",
	Short: "Analyze a punch log",
	Long: `Parse IN/OUT punches such as "9:05 AM IN" from a file or stdin and report
breaks, net working time and when the full day completes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args)
		if err != nil {
			return err
		}

		analysis := logparse.Parse(text, cfg.Use24Hour)

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printJSON(analysis)
		}

		if len(analysis.Events) == 0 {
			fmt.Println("No punches found")
			return nil
		}

		fmt.Printf("Punches: %d | First in: %s | Last out: %s\n",
			len(analysis.Events), orNone(analysis.FirstInTime()), orNone(analysis.LastOutTime()))
		for i, b := range analysis.Breaks {
			fmt.Printf("  Break %d: %s - %s (%s)\n", i+1, b.StartDisplay, b.EndDisplay, clock.FormatDuration(b.DurationMinutes))
		}
		fmt.Printf("Total break: %s | Net work: %s\n",
			clock.FormatDuration(analysis.TotalBreakMinutes), clock.FormatDuration(analysis.EffectiveWorkMinutes))

		if analysis.FirstIn != nil {
			checkout := work.RequiredCheckout(analysis.FirstIn.Minutes, cfg.FullDayMinutes, analysis.TotalBreakMinutes)
			fmt.Printf("Full day completes at: %s\n", checkout.Format(cfg.Use24Hour))
		}

		if save, _ := cmd.Flags().GetBool("save"); save {
			date, _ := cmd.Flags().GetString("date")
			shift, err := shiftFromAnalysis(analysis, date)
			if err != nil {
				return err
			}
			saved, err := shiftLog.Save(*shift)
			if err != nil {
				return err
			}
			fmt.Printf("Saved shift for %s\n", saved.Date)
		}
		return nil
	},
}

func shiftFromAnalysis(a *logparse.Analysis, date string) (*history.Shift, error) {
	if a.FirstIn == nil {
		return nil, fmt.Errorf("no IN punch to save a shift from")
	}
	if date != "" {
		if _, err := parseDateArg(date); err != nil {
			return nil, err
		}
	}

	start := clock.Normalize(int(a.FirstIn.Minutes))
	m := work.ComputeShiftMarkers(start, cfg.FullDayMinutes).Formatted(cfg.Use24Hour)
	return &history.Shift{
		Date:         date,
		StartTime:    a.AutoStartTime,
		TotalBreak:   a.TotalBreakMinutes,
		WorkingHours: math.Round(float64(a.EffectiveWorkMinutes)/60*100) / 100,
		FullDayEnd:   m.FullDay,
		HalfDayEnd:   m.HalfDay,
	}, nil
}

func printWeekProgress() error {
	h, err := shiftLog.Load()
	if err != nil {
		return err
	}
	if len(h.Shifts) == 0 {
		return nil
	}

	now := cfg.Now()
	week := history.WeekSummary(h.Shifts, now)
	remainingDays := work.RemainingWorkDaysInWeek(now)
	if _, worked := findShift(h.Shifts, calendar.ISO(now)); worked && remainingDays > 0 {
		remainingDays--
	}
	needed := work.RequiredDailyHours(cfg.WeeklyHoursTarget, week.TotalHours, remainingDays)

	fmt.Printf("Week: %.1f/%.1fh over %d day(s)", week.TotalHours, cfg.WeeklyHoursTarget, week.DaysWorked)
	if needed > 0 {
		fmt.Printf(" | Need %.1fh/day for the remaining %d day(s)", needed, remainingDays)
	}
	fmt.Println()
	return nil
}

func findShift(shifts []history.Shift, date string) (history.Shift, bool) {
	for _, s := range shifts {
		if s.Date == date {
			return s, true
		}
	}
	return history.Shift{}, false
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "none"
	}
	return s
}

func init() {
	logCmd.Flags().Bool("save", false, "Save the parsed day to shift history")
	logCmd.Flags().String("date", "", "Date to save the shift under (YYYY-MM-DD, default today)")
	logCmd.Flags().Bool("json", false, "Print the analysis as JSON")
}
