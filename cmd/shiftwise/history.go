package main

import (
	"fmt"

	"github.com/shiftwise/internal/history"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Shift and leave history",
}

var historyShiftsCmd = &cobra.Command{
	Use:   "shifts",
	Short: "Show recent shifts and statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := shiftLog.Load()
		if err != nil {
			return err
		}
		if len(h.Shifts) == 0 {
			fmt.Println("No shifts saved yet. Use 'shiftwise log --save'.")
			return nil
		}

		s := h.Stats
		fmt.Printf("Shifts: %d | Avg start: %s | Avg hours: %.1f | Avg break: %dm | Attendance: %d%% | Streak: %d\n",
			s.TotalShifts, s.AvgStartTime, s.AvgHours, s.AvgBreak, s.AttendanceRate, s.CurrentStreak)

		week := history.WeekSummary(h.Shifts, cfg.Now())
		fmt.Printf("This week: %.1fh over %d day(s), avg %.1fh\n", week.TotalHours, week.DaysWorked, week.AvgHours)
		fmt.Printf("Punctuality: %d%% (target %s)\n", history.PunctualityScore(h.Shifts, h.Goals.TargetStartTime), h.Goals.TargetStartTime)

		bp := history.BreakPatterns(h.Shifts)
		fmt.Printf("Breaks: avg %dm, min %dm, max %dm |", bp.AvgBreak, bp.MinBreak, bp.MaxBreak)
		for _, b := range bp.Distribution {
			fmt.Printf(" %s: %d", b.Range, b.Count)
		}
		fmt.Println()

		limit, _ := cmd.Flags().GetInt("limit")
		recent, err := shiftLog.Recent(limit)
		if err != nil {
			return err
		}
		fmt.Println()
		for _, sh := range recent {
			fmt.Printf("  %s  start %s  break %3dm  %5.2fh  full day %s\n",
				sh.Date, sh.StartTime, sh.TotalBreak, sh.WorkingHours, sh.FullDayEnd)
		}
		return nil
	},
}

var historyLeavesCmd = &cobra.Command{
	Use:   "leaves",
	Short: "Show recorded leaves and patterns",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := leaveLog.Load()
		if err != nil {
			return err
		}
		if len(h.Leaves) == 0 {
			fmt.Println("No leaves recorded yet. Use 'shiftwise sandwich --record'.")
			return nil
		}

		s := h.Stats
		fmt.Printf("Days taken: %d | Avg/month: %.1f | Favorite month: %s | Sandwich rate: %d%%\n",
			s.TotalLeavesTaken, s.AveragePerMonth, s.FavoriteMonth, s.SandwichRate)

		fmt.Print("Seasons:")
		for _, season := range history.SeasonalTrends(h.Leaves) {
			fmt.Printf(" %s %dd", season.Name, season.Days)
		}
		fmt.Println()

		fmt.Print("Sandwich rate by type:")
		for _, r := range history.SandwichRateByType(h.Leaves) {
			fmt.Printf(" %s %d%% (%d)", r.Type, r.Rate, r.Total)
		}
		fmt.Println()

		if monthly, _ := cmd.Flags().GetBool("monthly"); monthly {
			for _, m := range history.MonthlyPatterns(h.Leaves) {
				fmt.Printf("  %-10s %2d leave(s) %3d day(s)\n", m.Month, m.Count, m.Days)
			}
		}

		fmt.Println()
		for _, l := range h.Leaves {
			sandwiched := ""
			if l.Sandwiched {
				sandwiched = " sandwich"
			}
			fmt.Printf("  %s to %s  %-14s %2d day(s)%s\n", l.StartDate, l.EndDate, l.Type, l.Days, sandwiched)
		}
		return nil
	},
}

var historyInsightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show observations about your leave habits",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := leaveLog.Load()
		if err != nil {
			return err
		}
		for _, in := range history.Insights(h) {
			fmt.Printf("[%s] %s\n", in.Kind, in.Message)
		}
		return nil
	},
}

var historyGoalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Show or update shift goals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var g history.Goals
		f := cmd.Flags()
		if f.Changed("start") {
			start, _ := f.GetString("start")
			if _, err := parseClock(start); err != nil {
				return err
			}
			g.TargetStartTime = start
		}
		g.WeeklyHoursTarget, _ = f.GetFloat64("weekly")
		g.MaxBreakMinutes, _ = f.GetInt("max-break")

		goals, err := shiftLog.UpdateGoals(g)
		if err != nil {
			return err
		}
		fmt.Printf("Goals: start by %s | %.1fh/week | breaks under %dm\n",
			goals.TargetStartTime, goals.WeeklyHoursTarget, goals.MaxBreakMinutes)
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:       "clear [shifts|leaves|all]",
	Short:     "Delete shift or leave history",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"shifts", "leaves", "all"},
	RunE: func(cmd *cobra.Command, args []string) error {
		what := "all"
		if len(args) == 1 {
			what = args[0]
		}
		if what == "shifts" || what == "all" {
			if err := shiftLog.Clear(); err != nil {
				return err
			}
		}
		if what == "leaves" || what == "all" {
			if err := leaveLog.Clear(); err != nil {
				return err
			}
		}
		fmt.Printf("Cleared %s history\n", what)
		return nil
	},
}

func init() {
	historyShiftsCmd.Flags().IntP("limit", "n", 10, "Number of recent shifts to list")
	historyLeavesCmd.Flags().Bool("monthly", false, "Show the month-by-month breakdown")
	historyGoalsCmd.Flags().String("start", "", "Target start time (HH:MM)")
	historyGoalsCmd.Flags().Float64("weekly", 0, "Weekly hours target")
	historyGoalsCmd.Flags().Int("max-break", 0, "Maximum daily break in minutes")

	historyCmd.AddCommand(historyShiftsCmd)
	historyCmd.AddCommand(historyLeavesCmd)
	historyCmd.AddCommand(historyInsightsCmd)
	historyCmd.AddCommand(historyGoalsCmd)
	historyCmd.AddCommand(historyClearCmd)
}
