package main

import (
	"bytes"
	"fmt"

	"github.com/shiftwise/internal/archive"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export history as CSV or markdown",
	Long: `Export shift or leave history.

Examples:
  shiftwise export shifts -o shifts.csv
  shiftwise export leaves
  shiftwise export month 2026-01 -o january.md`,
}

var exportShiftsCmd = &cobra.Command{
	Use:   "shifts",
	Short: "Export shift history as CSV",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := shiftLog.Load()
		if err != nil {
			return err
		}
		if len(h.Shifts) == 0 {
			return fmt.Errorf("no shifts to export")
		}

		var buf bytes.Buffer
		if err := archive.WriteShiftsCSV(&buf, h.Shifts); err != nil {
			return err
		}
		output, _ := cmd.Flags().GetString("output")
		return writeOutput(output, buf.String())
	},
}

var exportLeavesCmd = &cobra.Command{
	Use:   "leaves",
	Short: "Export leave history as CSV",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := leaveLog.Load()
		if err != nil {
			return err
		}
		if len(h.Leaves) == 0 {
			return fmt.Errorf("no leaves to export")
		}

		var buf bytes.Buffer
		if err := archive.WriteLeavesCSV(&buf, h.Leaves); err != nil {
			return err
		}
		output, _ := cmd.Flags().GetString("output")
		return writeOutput(output, buf.String())
	},
}

var exportMonthCmd = &cobra.Command{
	Use:   "month <YYYY-MM>",
	Short: "Export a month of shifts as a markdown summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, month, err := parseMonthArg(args[0])
		if err != nil {
			return err
		}
		h, err := shiftLog.Load()
		if err != nil {
			return err
		}

		summary := archive.BuildMonthSummary(year, month, h.Shifts, h.Goals.WeeklyHoursTarget)
		if summary.DaysWorked == 0 {
			return fmt.Errorf("no shifts found for %s %d", month, year)
		}
		output, _ := cmd.Flags().GetString("output")
		return writeOutput(output, archive.Markdown(summary, cfg.Now()))
	},
}

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Archive past months to markdown",
	Long:  `Archive past months' shifts to markdown files in a history/ folder next to the database.`,
}

var archiveAutoCmd = &cobra.Command{
	Use:   "auto",
	Short: "Auto-archive all past months",
	Long:  `Automatically archive all complete months before the current month.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := shiftLog.Load()
		if err != nil {
			return err
		}

		archived, err := archiver.AutoArchivePastMonths(h.Shifts, h.Goals.WeeklyHoursTarget)
		if err != nil {
			return err
		}

		if len(archived) == 0 {
			fmt.Println("No months to archive (current month or already archived)")
			return nil
		}

		fmt.Printf("Archived %d month(s):\n", len(archived))
		for _, f := range archived {
			fmt.Printf("  - %s\n", f)
		}
		return nil
	},
}

var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived months",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		archives, err := archiver.ListArchives()
		if err != nil {
			return err
		}

		if len(archives) == 0 {
			fmt.Println("No archives found")
			return nil
		}

		fmt.Println("Archived months:")
		for _, a := range archives {
			fmt.Printf("  %s\n", a)
		}
		return nil
	},
}

var archiveShowCmd = &cobra.Command{
	Use:   "show <YYYY-MM>",
	Short: "Show archived month data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, month, err := parseMonthArg(args[0])
		if err != nil {
			return err
		}

		content, err := archiver.ReadArchive(year, month)
		if err != nil {
			return err
		}

		fmt.Println(content)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{exportShiftsCmd, exportLeavesCmd, exportMonthCmd} {
		c.Flags().StringP("output", "o", "", "Output file (stdout if empty)")
	}
	exportCmd.AddCommand(exportShiftsCmd)
	exportCmd.AddCommand(exportLeavesCmd)
	exportCmd.AddCommand(exportMonthCmd)

	archiveCmd.AddCommand(archiveAutoCmd)
	archiveCmd.AddCommand(archiveListCmd)
	archiveCmd.AddCommand(archiveShowCmd)
}
