package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/worktrace/worktrace/internal/models"
)

const (
	dateLayout  = "02/01/2006"
	clockLayout = "15:04"
)

// FormatLine renders one qualifying day as a plain report line:
// date, start-of-work, end-of-work, accumulated duration
func FormatLine(day models.WorkDay) string {
	return fmt.Sprintf("%s  %s  %s  %s",
		day.Date.Format(dateLayout),
		day.Start.Format(clockLayout),
		day.End.Format(clockLayout),
		FormatDuration(day.Duration()))
}

// FormatDuration renders a duration as hours and minutes, e.g. 7h05m
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%02dm", h, m)
}

// Render produces the plain-text report, one line per qualifying day
func Render(rep models.WorkReport) string {
	var b strings.Builder
	for _, day := range rep.Days {
		b.WriteString(FormatLine(day))
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteFile persists the plain-text report
func WriteFile(path string, rep models.WorkReport) error {
	if err := os.WriteFile(path, []byte(Render(rep)), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)
	totalStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
)

// Table renders the report as a styled terminal table with a totals row
func Table(rep models.WorkReport) string {
	var b strings.Builder

	header := fmt.Sprintf("%-12s%-8s%-8s%s", "Date", "Start", "End", "Worked")
	b.WriteString(headerStyle.Render(header))
	b.WriteByte('\n')

	for _, day := range rep.Days {
		row := fmt.Sprintf("%-12s%-8s%-8s%s",
			day.Date.Format(dateLayout),
			day.Start.Format(clockLayout),
			day.End.Format(clockLayout),
			FormatDuration(day.Duration()))
		b.WriteString(cellStyle.Render(row))
		b.WriteByte('\n')
	}

	total := time.Duration(rep.TotalSeconds) * time.Second
	b.WriteString(totalStyle.Render(fmt.Sprintf("Total: %s over %d days",
		FormatDuration(total), len(rep.Days))))
	b.WriteByte('\n')

	return b.String()
}
