package insights

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Dashboard renders the mood series and exercise list for the insights
// view.
type Dashboard struct {
	entries []MoodEntry
	width   int
}

// NewDashboard creates a dashboard over the given mood series.
func NewDashboard(entries []MoodEntry) *Dashboard {
	return &Dashboard{entries: entries}
}

// SetWidth updates the render width.
func (d *Dashboard) SetWidth(width int) {
	d.width = width
}

// View renders the full dashboard.
func (d *Dashboard) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	b.WriteString(titleStyle.Render("Mood - Last 7 Days"))
	b.WriteString("\n\n")

	b.WriteString(d.renderMoodChart())
	b.WriteString("\n")
	b.WriteString(d.renderSummary())
	b.WriteString("\n\n")
	b.WriteString(d.renderExercises())

	return b.String()
}

// renderMoodChart renders one bar per day, scaled to the mood ceiling.
func (d *Dashboard) renderMoodChart() string {
	var b strings.Builder

	if len(d.entries) == 0 {
		b.WriteString("  No mood data available\n")
		return b.String()
	}

	barMax := 20
	for _, e := range d.entries {
		barWidth := 0
		if e.Score > 0 {
			barWidth = e.Score * barMax / maxScore
		}

		b.WriteString(fmt.Sprintf("  %-10s %s %2d/10  %s\n",
			e.Date.Format("Mon Jan 2"),
			renderBar(barWidth, barMax, scoreColor(e.Score)),
			e.Score,
			e.Label))
	}

	return b.String()
}

// renderSummary renders the aggregate line under the chart.
func (d *Dashboard) renderSummary() string {
	if len(d.entries) == 0 {
		return ""
	}

	var b strings.Builder

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	b.WriteString(labelStyle.Render("  Weekly average: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.1f/10", Average(d.entries))))

	if best, ok := Best(d.entries); ok {
		b.WriteString(labelStyle.Render("   Best day: "))
		b.WriteString(valueStyle.Render(best.Date.Format("Monday")))
	}

	return b.String()
}

// renderExercises renders the static exercise list.
func (d *Dashboard) renderExercises() string {
	var b strings.Builder

	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	b.WriteString(sectionStyle.Render("Exercises"))
	b.WriteString("\n")

	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	durationStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	for _, ex := range Exercises() {
		b.WriteString(fmt.Sprintf("  %s %s\n      %s\n",
			nameStyle.Render(ex.Name),
			durationStyle.Render("("+ex.Duration+")"),
			ex.Description))
	}

	return b.String()
}

// renderBar renders a horizontal bar chart segment.
func renderBar(value, maxWidth int, color string) string {
	if value < 0 {
		value = 0
	}
	if value > maxWidth {
		value = maxWidth
	}

	filled := strings.Repeat("█", value)
	empty := strings.Repeat("░", maxWidth-value)

	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	return barStyle.Render(filled) + emptyStyle.Render(empty)
}

// scoreColor maps a score band to a terminal color.
func scoreColor(score int) string {
	switch {
	case score >= 8:
		return "10" // Green
	case score >= 5:
		return "11" // Yellow
	default:
		return "9" // Red
	}
}
