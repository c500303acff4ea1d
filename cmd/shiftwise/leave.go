package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shiftwise/internal/advisor"
	"github.com/shiftwise/internal/calendar"
	"github.com/shiftwise/internal/history"
	"github.com/shiftwise/internal/sandwich"
	"github.com/spf13/cobra"
)

var sandwichCmd = &cobra.Command{
	Use:   "sandwich <start> <end>",
	Short: "Check a leave range against the sandwich rule",
	Long: `Check whether weekends and holidays inside a leave range would be charged
as leave. Dates are YYYY-MM-DD. Use --record to keep it in leave history.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end, err := parseDateRange(args[0], args[1])
		if err != nil {
			return err
		}
		typeArg, _ := cmd.Flags().GetString("type")
		leaveType, err := sandwich.ParseLeaveType(typeArg)
		if err != nil {
			return err
		}

		eval, err := sandwich.Evaluate(sandwich.Range{Start: start, End: end, Type: leaveType}, holidays)
		if err != nil {
			return err
		}

		status := "No sandwich"
		if eval.IsSandwich {
			status = "SANDWICH"
		}
		fmt.Printf("%s | %s: %s to %s | Days: %d | Working: %d | Extra: %d | Charged: %d\n",
			status, leaveType, calendar.ISO(start), calendar.ISO(end),
			eval.TotalLeaveDays, eval.WorkingDays, eval.ExtraDays, eval.ChargedDays())
		fmt.Println(eval.Reason)
		for _, d := range eval.SandwichDates {
			fmt.Printf("  %s  %s\n", formatDate(d), calendar.DateTypeLabel(d, holidays))
		}

		if showDays, _ := cmd.Flags().GetBool("days"); showDays {
			for _, d := range calendar.DatesBetween(start, end) {
				fmt.Printf("  %s  %s\n", formatDate(d), calendar.DateTypeLabel(d, holidays))
			}
		}

		if record, _ := cmd.Flags().GetBool("record"); record {
			rec, err := leaveLog.Add(history.LeaveRecord{
				StartDate:  calendar.ISO(start),
				EndDate:    calendar.ISO(end),
				Type:       string(leaveType),
				Days:       eval.ChargedDays(),
				Sandwiched: eval.IsSandwich,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Recorded leave %s\n", rec.ID)
		}
		return nil
	},
}

var riskCmd = &cobra.Command{
	Use:   "risk <start> <end>",
	Short: "Score how exposed a leave range is to the sandwich rule",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end, err := parseDateRange(args[0], args[1])
		if err != nil {
			return err
		}
		if end.Before(start) {
			return &sandwich.ValidationError{Reason: "end before start"}
		}

		risk := advisor.ScoreRisk(start, end, holidays)
		fmt.Printf("Risk: %d/100 (%s)\n", risk, advisor.LevelFor(risk))
		return nil
	},
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <start> <end>",
	Short: "Suggest nearby ranges with lower sandwich risk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end, err := parseDateRange(args[0], args[1])
		if err != nil {
			return err
		}

		alts, err := advisor.SuggestAlternatives(start, end, holidays)
		if err != nil {
			return err
		}

		top, _ := cmd.Flags().GetInt("top")
		if top > 0 && top < len(alts) {
			alts = alts[:top]
		}

		fmt.Printf("Original risk: %d/100\n", advisor.ScoreRisk(start, end, holidays))
		for _, a := range alts {
			note := "no sandwich"
			if a.IsSandwich {
				note = fmt.Sprintf("sandwich, +%d extra", a.ExtraDays)
			}
			fmt.Printf("  %-8s %s to %s | Risk: %3d (%s) | %d day(s), %s\n",
				a.ShiftLabel, calendar.ISO(a.Start), calendar.ISO(a.End),
				a.Risk, advisor.LevelFor(a.Risk), a.TotalDays, note)
		}
		return nil
	},
}

var opportunitiesCmd = &cobra.Command{
	Use:     "opportunities <YYYY-MM>",
	Aliases: []string{"opps"},
	Short:   "Find long weekends and bridge days in a month",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, month, err := parseMonthArg(args[0])
		if err != nil {
			return err
		}

		opps := advisor.FindOptimalLeavePeriods(year, month, holidays)
		if len(opps) == 0 {
			fmt.Printf("No opportunities in %s %d\n", month, year)
			return nil
		}
		printOpportunities(opps)
		return nil
	},
}

var upcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "Show the best long weekends over the next few months",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opps := advisor.UpcomingLongWeekends(cfg.Now(), holidays)
		if len(opps) == 0 {
			fmt.Println("No upcoming long weekends")
			return nil
		}
		printOpportunities(opps)
		return nil
	},
}

func printOpportunities(opps []advisor.Opportunity) {
	for _, o := range opps {
		eff := "free"
		if !o.Free {
			eff = fmt.Sprintf("%.1fx", o.Efficiency)
		}
		fmt.Printf("  %s  %-24s %-12s %d off for %d leave (%s) | %s\n",
			formatDate(o.Date), o.Holiday, o.Type, o.TotalDaysOff, o.LeaveDaysNeeded, eff, o.Suggestion)
	}
}

var recommendCmd = &cobra.Command{
	Use:   "recommend <days> <from> <to>",
	Short: "Recommend sandwich-free dates for a leave of the given length",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		days, err := strconv.Atoi(args[0])
		if err != nil || days < 1 {
			return fmt.Errorf("invalid number of days %q", args[0])
		}
		from, to, err := parseDateRange(args[1], args[2])
		if err != nil {
			return err
		}

		recs := advisor.RecommendBestDates(days, from, to, holidays)
		if len(recs) == 0 {
			fmt.Println("No sandwich-free window found in that range")
			return nil
		}
		for i, r := range recs {
			fmt.Printf("  %d. %s to %s | Score: %d | Risk: %d (%s)\n",
				i+1, calendar.ISO(r.Start), calendar.ISO(r.End), r.Score, r.Risk, advisor.LevelFor(r.Risk))
		}
		return nil
	},
}

var holidaysCmd = &cobra.Command{
	Use:   "holidays [YYYY-MM]",
	Short: "List company holidays",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		list := holidays.List()
		if len(args) == 1 {
			year, month, err := parseMonthArg(args[0])
			if err != nil {
				return err
			}
			list = holidays.InMonth(year, month)
		}

		if len(list) == 0 {
			fmt.Println("No holidays")
			return nil
		}
		for _, h := range list {
			d, err := calendar.ParseDate(h.Date)
			if err != nil {
				continue
			}
			weekend := ""
			if calendar.IsWeekend(d) {
				weekend = " (weekend)"
			}
			fmt.Printf("  %s  %s%s\n", formatDate(d), h.Name, weekend)
		}
		return nil
	},
}

func init() {
	types := make([]string, 0, len(sandwich.LeaveTypes))
	for _, t := range sandwich.LeaveTypes {
		types = append(types, string(t))
	}
	sandwichCmd.Flags().StringP("type", "t", string(sandwich.EarnedLeave), "Leave type: EL, ML, CO or LWP ("+strings.Join(types, ", ")+")")
	sandwichCmd.Flags().Bool("days", false, "List every date in the range with its type")
	sandwichCmd.Flags().Bool("record", false, "Record the leave in leave history")

	suggestCmd.Flags().Int("top", 3, "Number of alternatives to show (0 for all)")
}
