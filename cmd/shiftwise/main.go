package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shiftwise/internal/archive"
	"github.com/shiftwise/internal/calendar"
	"github.com/shiftwise/internal/config"
	"github.com/shiftwise/internal/history"
	"github.com/shiftwise/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg         *config.Config
	db          *storage.Database
	holidays    calendar.Holidays
	shiftLog    *history.ShiftLog
	leaveLog    *history.LeaveLog
	balanceBook *history.BalanceBook
	archiver    *archive.Archiver

	use24Hour bool
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "shiftwise",
	Short: "Shift timing and leave planning",
	Long: `Shiftwise works out when your shift ends, reads punch logs for breaks and
net hours, and plans leave around weekends and company holidays so the
sandwich rule does not eat into your balance.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("24h") {
			cfg.Use24Hour = use24Hour
		}

		level := cfg.SlogLevel()
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		if err := cfg.Validate(); err != nil {
			return err
		}
		holidays = cfg.HolidayCalendar()

		db, err = storage.New(cfg.DatabasePath)
		if err != nil {
			return err
		}
		shiftLog = history.NewShiftLog(db, cfg.Now)
		shiftLog.SetDefaultGoals(history.Goals{
			TargetStartTime:   cfg.TargetStartTime,
			WeeklyHoursTarget: cfg.WeeklyHoursTarget,
			MaxBreakMinutes:   cfg.MaxBreakMinutes,
		})
		leaveLog = history.NewLeaveLog(db, cfg.Now)
		balanceBook = history.NewBalanceBook(db, cfg.Now)
		archiver = archive.New(filepath.Join(filepath.Dir(cfg.DatabasePath), "history"), cfg.Now)

		slog.Debug("ready", "db", cfg.DatabasePath, "holidays", len(holidays))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if db != nil {
			return db.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&use24Hour, "24h", false, "Show times in 24-hour format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(shiftCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(sandwichCmd)
	rootCmd.AddCommand(riskCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(opportunitiesCmd)
	rootCmd.AddCommand(upcomingCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(holidaysCmd)
	rootCmd.AddCommand(encashCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(visualizeCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(completionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
