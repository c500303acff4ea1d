package archive

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/shiftwise/internal/calendar"
	"github.com/shiftwise/internal/history"
)

// Archiver writes monthly shift summaries to markdown files
type Archiver struct {
	historyPath string
	now         func() time.Time
}

// New returns an Archiver writing under historyPath.
func New(historyPath string, now func() time.Time) *Archiver {
	if now == nil {
		now = time.Now
	}
	return &Archiver{
		historyPath: historyPath,
		now:         now,
	}
}

// MonthSummary aggregates one calendar month of shifts.
type MonthSummary struct {
	Month         time.Time
	TotalHours    float64
	DaysWorked    int
	TotalBreak    int
	WeeklyTarget  float64
	Shifts        []history.Shift
	WeekBreakdown map[int]float64
}

// BuildMonthSummary collects the shifts dated within year/month, oldest first.
func BuildMonthSummary(year int, month time.Month, shifts []history.Shift, weeklyTarget float64) *MonthSummary {
	summary := &MonthSummary{
		Month:         calendar.Day(year, month, 1),
		WeeklyTarget:  weeklyTarget,
		Shifts:        []history.Shift{},
		WeekBreakdown: make(map[int]float64),
	}

	for _, s := range shifts {
		d, err := calendar.ParseDate(s.Date)
		if err != nil || d.Year() != year || d.Month() != month {
			continue
		}
		summary.TotalHours += s.WorkingHours
		summary.TotalBreak += s.TotalBreak

		_, week := d.ISOWeek()
		summary.WeekBreakdown[week] += s.WorkingHours
		summary.Shifts = append(summary.Shifts, s)
	}

	sort.SliceStable(summary.Shifts, func(i, j int) bool {
		return summary.Shifts[i].Date < summary.Shifts[j].Date
	})
	summary.DaysWorked = len(summary.Shifts)
	return summary
}

// Markdown renders a month summary.
func Markdown(summary *MonthSummary, generatedAt time.Time) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", summary.Month.Format("January 2006")))

	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Total Hours | %.2f |\n", summary.TotalHours))
	sb.WriteString(fmt.Sprintf("| Days Worked | %d |\n", summary.DaysWorked))
	sb.WriteString(fmt.Sprintf("| Daily Average | %.2f |\n", summary.TotalHours/float64(max(summary.DaysWorked, 1))))
	sb.WriteString(fmt.Sprintf("| Average Break | %dm |\n", summary.TotalBreak/max(summary.DaysWorked, 1)))
	sb.WriteString(fmt.Sprintf("| Weekly Target | %.2f |\n", summary.WeeklyTarget))
	sb.WriteString("\n")

	sb.WriteString("## Weekly Breakdown\n\n")
	sb.WriteString("| Week | Hours |\n")
	sb.WriteString("|------|-------|\n")

	weeks := make([]int, 0, len(summary.WeekBreakdown))
	for w := range summary.WeekBreakdown {
		weeks = append(weeks, w)
	}
	sort.Ints(weeks)

	for _, w := range weeks {
		sb.WriteString(fmt.Sprintf("| W%d | %.2f |\n", w, summary.WeekBreakdown[w]))
	}
	sb.WriteString("\n")

	sb.WriteString("## Shifts\n\n")
	sb.WriteString("| Date | Start | Break | Hours | Full Day | Half Day |\n")
	sb.WriteString("|------|-------|-------|-------|----------|----------|\n")

	for _, s := range summary.Shifts {
		sb.WriteString(fmt.Sprintf("| %s | %s | %dm | %.2f | %s | %s |\n",
			s.Date, s.StartTime, s.TotalBreak, s.WorkingHours, s.FullDayEnd, s.HalfDayEnd))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("---\n*Archived: %s*\n", generatedAt.Format("2006-01-02 15:04")))

	return sb.String()
}

// ArchiveMonth writes YYYY-MM.md for the month and returns its path.
func (a *Archiver) ArchiveMonth(year int, month time.Month, shifts []history.Shift, weeklyTarget float64) (string, error) {
	summary := BuildMonthSummary(year, month, shifts, weeklyTarget)
	if summary.DaysWorked == 0 {
		return "", fmt.Errorf("no shifts found for %s %d", month, year)
	}

	if err := os.MkdirAll(a.historyPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create history directory: %w", err)
	}

	filePath := filepath.Join(a.historyPath, archiveName(year, month))
	if err := os.WriteFile(filePath, []byte(Markdown(summary, a.now())), 0644); err != nil {
		return "", fmt.Errorf("failed to write archive: %w", err)
	}

	slog.Debug("month archived", "path", filePath, "shifts", summary.DaysWorked)
	return filePath, nil
}

// AutoArchivePastMonths archives every complete month that has shifts
// and no archive file yet.
func (a *Archiver) AutoArchivePastMonths(shifts []history.Shift, weeklyTarget float64) ([]string, error) {
	now := a.now()
	currentMonth := calendar.Day(now.Year(), now.Month(), 1)

	months := make(map[time.Time]bool)
	for _, s := range shifts {
		d, err := calendar.ParseDate(s.Date)
		if err != nil {
			continue
		}
		if m := calendar.Day(d.Year(), d.Month(), 1); m.Before(currentMonth) {
			months[m] = true
		}
	}

	ordered := make([]time.Time, 0, len(months))
	for m := range months {
		ordered = append(ordered, m)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Before(ordered[j]) })

	var archived []string
	for _, m := range ordered {
		filename := archiveName(m.Year(), m.Month())
		if _, err := os.Stat(filepath.Join(a.historyPath, filename)); err == nil {
			continue
		}
		if _, err := a.ArchiveMonth(m.Year(), m.Month(), shifts, weeklyTarget); err != nil {
			return archived, err
		}
		archived = append(archived, filename)
	}

	return archived, nil
}

// ListArchives returns archive file names, oldest first.
func (a *Archiver) ListArchives() ([]string, error) {
	entries, err := os.ReadDir(a.historyPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var archives []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".md") {
			archives = append(archives, e.Name())
		}
	}

	sort.Strings(archives)
	return archives, nil
}

// ReadArchive returns the markdown archived for the month.
func (a *Archiver) ReadArchive(year int, month time.Month) (string, error) {
	filename := archiveName(year, month)
	data, err := os.ReadFile(filepath.Join(a.historyPath, filename))
	if err != nil {
		return "", fmt.Errorf("archive not found: %s", filename)
	}
	return string(data), nil
}

func archiveName(year int, month time.Month) string {
	return fmt.Sprintf("%d-%02d.md", year, month)
}
