package main

import (
	"fmt"

	"github.com/shiftwise/internal/calendar"
	"github.com/shiftwise/internal/history"
	"github.com/shiftwise/internal/logparse"
	"github.com/shiftwise/internal/visualization"
	"github.com/spf13/cobra"
)

var visualizeCmd = &cobra.Command{
	Use:   "visualize [timeline|shifts|week|html] [file]",
	Short: "Generate visual reports",
	Long: `Generate SVG or HTML visualizations.

  timeline [file]  work/break bar for a punch log read from file or stdin
  shifts           working hours of recent saved shifts
  week             this week's hours, Monday to Sunday
  html             shift statistics report`,
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: []string{"timeline", "shifts", "week", "html"},
	RunE: func(c *cobra.Command, args []string) error {
		visualizer := visualization.New(cfg.Use24Hour)
		output, _ := c.Flags().GetString("output")

		var content string
		var err error
		switch args[0] {
		case "timeline":
			content, err = timelineSVG(visualizer, args[1:])
		case "shifts":
			count, _ := c.Flags().GetInt("count")
			content, err = shiftsSVG(visualizer, count)
		case "week":
			content, err = weekSVG(visualizer)
		case "html":
			content, err = htmlReport(visualizer)
		default:
			return fmt.Errorf("unknown visualization type: %s (use: timeline, shifts, week, or html)", args[0])
		}
		if err != nil {
			return err
		}
		return writeOutput(output, content)
	},
}

func timelineSVG(v *visualization.Visualizer, args []string) (string, error) {
	text, err := readInput(args)
	if err != nil {
		return "", err
	}
	analysis := logparse.Parse(text, cfg.Use24Hour)
	title := fmt.Sprintf("Timeline %s", calendar.ISO(cfg.Now()))
	return v.GenerateTimelineSVG(logparse.Segments(analysis.Events), title), nil
}

func shiftsSVG(v *visualization.Visualizer, count int) (string, error) {
	recent, err := shiftLog.Recent(count)
	if err != nil {
		return "", err
	}
	return v.GenerateShiftsSVG(recent, float64(cfg.FullDayMinutes)/60), nil
}

func weekSVG(v *visualization.Visualizer) (string, error) {
	h, err := shiftLog.Load()
	if err != nil {
		return "", err
	}
	now := cfg.Now()
	week := history.WeekSummary(h.Shifts, now)
	return v.GenerateWeekSVG(week, history.WeekStart(now), h.Goals.WeeklyHoursTarget), nil
}

func htmlReport(v *visualization.Visualizer) (string, error) {
	h, err := shiftLog.Load()
	if err != nil {
		return "", err
	}
	now := cfg.Now()
	stats := history.CalculateShiftStats(h.Shifts, now)
	week := history.WeekSummary(h.Shifts, now)
	return v.GenerateHTMLReport(stats, week, history.WeekStart(now), h.Goals.WeeklyHoursTarget, now), nil
}

func init() {
	visualizeCmd.Flags().StringP("output", "o", "", "Output file path")
	visualizeCmd.Flags().IntP("count", "n", 14, "Number of shifts to chart")
}
