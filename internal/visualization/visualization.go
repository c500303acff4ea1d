package visualization

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/shiftwise/internal/calendar"
	"github.com/shiftwise/internal/clock"
	"github.com/shiftwise/internal/history"
	"github.com/shiftwise/internal/logparse"
)

const svgHeader = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">
  <defs>
    <linearGradient id="bgGrad" x1="0%%" y1="0%%" x2="0%%" y2="100%%">
      <stop offset="0%%" style="stop-color:#f5f7fa"/>
      <stop offset="100%%" style="stop-color:#e4e8ec"/>
    </linearGradient>
  </defs>
  <rect width="%d" height="%d" fill="url(#bgGrad)" rx="10"/>
`

const (
	workColor  = "#4CAF50"
	breakColor = "#FF9800"
	shortColor = "#F44336"
)

type Visualizer struct {
	use24Hour bool
}

func New(use24Hour bool) *Visualizer {
	return &Visualizer{use24Hour: use24Hour}
}

func header(width, height int) string {
	return fmt.Sprintf(svgHeader, width, height, width, height, width, height)
}

// GenerateTimelineSVG draws the day's punches as one horizontal bar of work
// and break segments.
func (v *Visualizer) GenerateTimelineSVG(segments []logparse.Segment, title string) string {
	width := 600
	height := 160
	padding := 40
	barY := 70
	barHeight := 30

	var sb strings.Builder
	sb.WriteString(header(width, height))
	sb.WriteString(fmt.Sprintf(`  <text x="%d" y="30" text-anchor="middle" font-size="18" font-weight="bold" fill="#2c3e50">%s</text>
`, width/2, html.EscapeString(title)))

	if len(segments) == 0 {
		sb.WriteString(fmt.Sprintf(`  <text x="%d" y="%d" text-anchor="middle" font-size="12" fill="#7f8c8d">No complete punches</text>
</svg>`, width/2, barY+barHeight/2))
		return sb.String()
	}

	first := segments[0].Start
	last := segments[len(segments)-1].End
	span := float64(last - first)
	scale := float64(width-2*padding) / span

	workMinutes := logparse.WorkMinutes(segments)
	sb.WriteString(fmt.Sprintf(`  <text x="%d" y="52" text-anchor="middle" font-size="12" fill="#7f8c8d">Worked %s | Away %s</text>
`, width/2, clock.FormatDuration(workMinutes), clock.FormatDuration(int(span)-workMinutes)))

	for _, s := range segments {
		color := workColor
		if s.Kind == logparse.SegmentBreak {
			color = breakColor
		}
		x := float64(padding) + float64(s.Start-first)*scale
		w := float64(s.DurationMinutes) * scale
		sb.WriteString(fmt.Sprintf(`  <rect x="%.1f" y="%d" width="%.1f" height="%d" fill="%s"><title>%s %s-%s</title></rect>
`, x, barY, w, barHeight, color, s.Kind,
			clock.MinutesToTime(int(s.Start), v.use24Hour), clock.MinutesToTime(int(s.End), v.use24Hour)))
	}

	sb.WriteString(fmt.Sprintf(`  <text x="%d" y="%d" text-anchor="start" font-size="11" fill="#333">%s</text>
  <text x="%d" y="%d" text-anchor="end" font-size="11" fill="#333">%s</text>
</svg>`,
		padding, barY+barHeight+20, clock.MinutesToTime(int(first), v.use24Hour),
		width-padding, barY+barHeight+20, clock.MinutesToTime(int(last), v.use24Hour)))

	return sb.String()
}

// GenerateShiftsSVG charts the working hours of the given shifts, oldest on
// the left, with a dashed line at the full-day target.
func (v *Visualizer) GenerateShiftsSVG(shifts []history.Shift, fullDayHours float64) string {
	width := 600
	height := 300
	padding := 40
	maxHours := 12.0
	plot := float64(height - 2*padding)

	var sb strings.Builder
	sb.WriteString(header(width, height))
	sb.WriteString(fmt.Sprintf(`  <text x="%d" y="30" text-anchor="middle" font-size="18" font-weight="bold" fill="#2c3e50">Recent Shifts</text>
`, width/2))

	if len(shifts) > 0 {
		barWidth := float64(width-2*padding) / float64(len(shifts))
		for i := range shifts {
			s := shifts[len(shifts)-1-i]
			h := s.WorkingHours
			barHeight := min(h/maxHours, 1) * plot

			x := float64(padding) + float64(i)*barWidth + 2
			y := float64(height-padding) - barHeight

			color := workColor
			if h < fullDayHours {
				color = shortColor
			}

			sb.WriteString(fmt.Sprintf(`  <rect x="%.0f" y="%.0f" width="%.0f" height="%.0f" fill="%s" rx="3"/>
  <text x="%.0f" y="%d" text-anchor="middle" font-size="10" fill="#333">%.1fh</text>
  <text x="%.0f" y="%d" text-anchor="middle" font-size="10" fill="#7f8c8d">%s</text>
`,
				x, y, barWidth-4, barHeight, color,
				x+barWidth/2-2, int(y)-4, h,
				x+barWidth/2-2, height-padding+15, shortDate(s.Date)))
		}
	}

	goalY := float64(height-padding) - min(fullDayHours/maxHours, 1)*plot
	sb.WriteString(fmt.Sprintf(`  <line x1="%d" y1="%.0f" x2="%d" y2="%.0f" stroke="#E74C3C" stroke-width="2" stroke-dasharray="5,5"/>
`, padding, goalY, width-padding, goalY))
	sb.WriteString(v.generateGridLines(height, padding, width))
	sb.WriteString("</svg>")
	return sb.String()
}

// GenerateWeekSVG draws Monday to Sunday of the week starting at weekStart.
func (v *Visualizer) GenerateWeekSVG(week history.WeeklySummary, weekStart time.Time, weeklyTarget float64) string {
	width := 600
	height := 300
	padding := 40
	barWidth := float64((width - 2*padding) / 7)
	maxHours := 12.0

	byDate := make(map[string]float64)
	for _, s := range week.Shifts {
		byDate[s.Date] += s.WorkingHours
	}

	var days []string
	var bars strings.Builder
	for i := 0; i < 7; i++ {
		day := calendar.AddDays(weekStart, i)
		days = append(days, day.Format("Mon"))
		h := byDate[calendar.ISO(day)]

		barHeight := min(h/maxHours, 1) * float64(height-2*padding)
		x := float64(padding) + float64(i)*barWidth + 5
		y := float64(height) - float64(padding) - barHeight

		color := workColor
		if h > 10 {
			color = breakColor
		}

		bars.WriteString(fmt.Sprintf(`  <rect x="%.0f" y="%.0f" width="%.0f" height="%.0f" fill="%s" rx="4"/>
  <text x="%.0f" y="%d" text-anchor="middle" font-size="12" fill="#333">%.1fh</text>
`,
			x, y, barWidth-10, barHeight, color,
			x+barWidth/2-5, int(y)-5, h))
	}

	var sb strings.Builder
	sb.WriteString(header(width, height))
	sb.WriteString(fmt.Sprintf(`  <text x="%d" y="30" text-anchor="middle" font-size="18" font-weight="bold" fill="#2c3e50">Weekly Overview</text>
  <text x="%d" y="55" text-anchor="middle" font-size="12" fill="#7f8c8d">%s - %s | Total: %.1f/%.1fh</text>
`,
		width/2,
		width/2, weekStart.Format("Jan 2"), calendar.AddDays(weekStart, 6).Format("Jan 2"), week.TotalHours, weeklyTarget))
	sb.WriteString(bars.String())
	sb.WriteString(v.generateXLabels(days, float64(padding), barWidth, float64(height-padding)))
	sb.WriteString(v.generateGridLines(height, padding, width))
	sb.WriteString("</svg>")
	return sb.String()
}

// GenerateHTMLReport renders shift statistics and the current week as a
// standalone page.
func (v *Visualizer) GenerateHTMLReport(stats history.ShiftStats, week history.WeeklySummary, weekStart time.Time, weeklyTarget float64, generatedAt time.Time) string {
	progress := 0.0
	if weeklyTarget > 0 {
		progress = min(week.TotalHours/weeklyTarget*100, 100)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>Shiftwise Report</title>
<style>
  body { font: 15px/1.4 system-ui, sans-serif; color: #263238; background: #eceff1; margin: 0; padding: 32px; }
  main { max-width: 760px; margin: 0 auto; }
  section { background: #fff; border: 1px solid #cfd8dc; border-radius: 6px; padding: 20px; margin-bottom: 16px; }
  header p { color: #607d8b; margin-top: 0; }
  dl.metrics { display: grid; grid-template-columns: repeat(4, 1fr); gap: 12px; margin: 0; }
  dl.metrics div { background: #f5f7f8; border-radius: 4px; padding: 12px; text-align: center; }
  dt { font-size: 12px; color: #607d8b; text-transform: uppercase; }
  dd { margin: 4px 0 0; font-size: 26px; font-weight: 600; color: %s; }
  .track { height: 18px; background: #e0e0e0; border-radius: 9px; overflow: hidden; }
  .track span { display: block; height: 100%%; background: %s; }
  .target { color: #607d8b; text-align: right; margin: 6px 0 0; }
  table.days { width: 100%%; border-collapse: collapse; }
  table.days th, table.days td { padding: 8px 10px; border-bottom: 1px solid #eceff1; text-align: left; }
</style>
</head>
<body>
<main>
<header>
<h1>Shiftwise Report</h1>
<p>Generated on %s</p>
</header>
<section>
<h2>Shift Statistics</h2>
<dl class="metrics">
<div><dt>Avg Start</dt><dd>%s</dd></div>
<div><dt>Avg Hours</dt><dd>%.1fh</dd></div>
<div><dt>Attendance</dt><dd>%d%%</dd></div>
<div><dt>Day Streak</dt><dd>%d</dd></div>
</dl>
</section>
<section>
<h2>This Week</h2>
<div class="track"><span style="width: %.1f%%"></span></div>
<p class="target">%.2f / %.1f hours</p>
</section>
<section>
<h2>By Day</h2>
<table class="days">
<thead><tr><th>Day</th><th>Date</th><th>Hours</th></tr></thead>
<tbody>
%s
</tbody>
</table>
</section>
</main>
</body>
</html>`,
		breakColor, workColor,
		generatedAt.Format("Monday, January 2, 2006"),
		orDash(stats.AvgStartTime),
		stats.AvgHours,
		stats.AttendanceRate,
		stats.CurrentStreak,
		progress,
		week.TotalHours, weeklyTarget,
		v.formatDailyRows(week, weekStart),
	)
}

func (v *Visualizer) formatDailyRows(week history.WeeklySummary, weekStart time.Time) string {
	hours := make(map[string]float64, len(week.Shifts))
	for _, s := range week.Shifts {
		hours[s.Date] += s.WorkingHours
	}

	rows := make([]string, 0, 7)
	for d := 0; d < 7; d++ {
		day := calendar.AddDays(weekStart, d)
		iso := calendar.ISO(day)
		rows = append(rows, fmt.Sprintf(`<tr class="day"><th scope="row">%s</th><td>%s</td><td>%.2f</td></tr>`, day.Weekday(), iso, hours[iso]))
	}
	return strings.Join(rows, "\n")
}

func (v *Visualizer) generateXLabels(days []string, padding float64, barWidth float64, y float64) string {
	var labels strings.Builder
	for i, day := range days {
		x := padding + float64(i)*barWidth + barWidth/2 - 5
		labels.WriteString(fmt.Sprintf(`  <text x="%.0f" y="%d" text-anchor="middle" font-size="12" fill="#7f8c8d">%s</text>
`, x, int(y)+20, day))
	}
	return labels.String()
}

func (v *Visualizer) generateGridLines(height int, padding int, width int) string {
	var lines strings.Builder
	for i := 1; i <= 4; i++ {
		y := float64(height) - float64(padding) - (float64(i)/4.0)*float64(height-2*padding)
		lines.WriteString(fmt.Sprintf(`  <line x1="%d" y1="%.0f" x2="%d" y2="%.0f" stroke="#E0E0E0"/>
`, padding, y, width-padding, y))
	}
	return lines.String()
}

// shortDate turns "2025-01-13" into "01/13".
func shortDate(iso string) string {
	if d, err := calendar.ParseDate(iso); err == nil {
		return d.Format("01/02")
	}
	return iso
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
