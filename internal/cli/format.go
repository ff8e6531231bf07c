package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/limbo/timelog/pkg/entity"
)

var (
	styleHeader = lipgloss.NewStyle().Foreground(lipgloss.Color("#fe8019")).Bold(true)
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("#928374"))
	styleTotal  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8ec07c")).Bold(true)
)

const colGap = 2

// renderTable aligns rows under headers, measuring visible width so styled
// cells line up.
func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(headers) && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	var b strings.Builder
	writeRow := func(cells []string, style func(string) string) {
		for i := range headers {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := widths[i] - lipgloss.Width(cell)
			b.WriteString(style(cell))
			if i < len(headers)-1 {
				b.WriteString(strings.Repeat(" ", pad+colGap))
			}
		}
		b.WriteString("\n")
	}
	writeRow(headers, func(s string) string { return styleHeader.Render(s) })
	seps := make([]string, len(widths))
	for i, w := range widths {
		seps[i] = strings.Repeat("─", w)
	}
	writeRow(seps, func(s string) string { return styleDim.Render(s) })
	for _, row := range rows {
		writeRow(row, func(s string) string { return s })
	}
	return b.String()
}

// formatMinutes renders 95 as "1h 35m".
func formatMinutes(m int) string {
	if m < 60 {
		return strconv.Itoa(m) + "m"
	}
	if m%60 == 0 {
		return strconv.Itoa(m/60) + "h"
	}
	return fmt.Sprintf("%dh %dm", m/60, m%60)
}

func logRows(logs []*entity.LogEntry) [][]string {
	rows := make([][]string, 0, len(logs))
	for _, l := range logs {
		rows = append(rows, []string{
			l.ID.String(),
			l.Date.Format(entity.DayLayout),
			l.Activity,
			formatMinutes(l.Minutes),
			l.Category,
			strings.Join(l.Tags, ","),
		})
	}
	return rows
}

func printLogs(w io.Writer, logs []*entity.LogEntry) {
	if len(logs) == 0 {
		fmt.Fprintln(w, styleDim.Render("no entries"))
		return
	}
	fmt.Fprint(w, renderTable([]string{"ID", "DATE", "ACTIVITY", "TIME", "CATEGORY", "TAGS"}, logRows(logs)))
}

func printLog(w io.Writer, l *entity.LogEntry) {
	fmt.Fprintf(w, "%s  %s  %s  %s  [%s]\n",
		l.ID, l.Date.Format(entity.DayLayout), l.Activity, formatMinutes(l.Minutes), l.Category)
	if len(l.Tags) > 0 {
		fmt.Fprintf(w, "tags: %s\n", strings.Join(l.Tags, ", "))
	}
	if l.Notes != "" {
		fmt.Fprintf(w, "notes: %s\n", l.Notes)
	}
}

func printActivities(w io.Writer, activities []entity.ActivitySummary) {
	rows := make([][]string, 0, len(activities))
	for _, a := range activities {
		rows = append(rows, []string{
			a.Activity,
			formatMinutes(a.TotalMinutes),
			strconv.Itoa(a.Count),
			strconv.FormatFloat(a.AverageMinutes, 'f', 1, 64),
		})
	}
	fmt.Fprint(w, renderTable([]string{"ACTIVITY", "TOTAL", "ENTRIES", "AVG MIN"}, rows))
}

func printCategories(w io.Writer, categories []entity.CategorySummary) {
	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, []string{
			c.Category,
			formatMinutes(c.TotalMinutes),
			strconv.Itoa(c.Count),
			strconv.FormatFloat(c.AverageMinutes, 'f', 1, 64),
		})
	}
	fmt.Fprint(w, renderTable([]string{"CATEGORY", "TOTAL", "ENTRIES", "AVG MIN"}, rows))
}

func printSeries(w io.Writer, series []entity.DayTotal) {
	rows := make([][]string, 0, len(series))
	for _, d := range series {
		rows = append(rows, []string{d.Day, formatMinutes(d.TotalMinutes), strconv.Itoa(d.Count)})
	}
	fmt.Fprint(w, renderTable([]string{"DAY", "TOTAL", "ENTRIES"}, rows))
}

func printTotal(w io.Writer, label string, minutes, entries int) {
	fmt.Fprintf(w, "%s %s in %d entries\n", label, styleTotal.Render(formatMinutes(minutes)), entries)
}
