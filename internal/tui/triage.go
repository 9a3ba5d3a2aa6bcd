package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Fixed external-contact affordances shown by the triage gate.
const (
	triageCallLine = "Call 988 — Suicide & Crisis Lifeline"
	triageTextLine = "Text HOME to 741741 — Crisis Text Line"
)

// renderTriageOverlay renders the full-screen blocking overlay shown
// when the backend signals a crisis. The chat underneath is untouched;
// the overlay only covers it until dismissed.
func (m Model) renderTriageOverlay() string {
	width := m.width - 16
	if width < 44 {
		width = 44
	}

	var content strings.Builder

	content.WriteString(triageTitleStyle.Render("You don't have to go through this alone"))
	content.WriteString("\n\n")

	content.WriteString(triageBodyStyle.Render(
		"It sounds like you might be going through something serious.\n" +
			"Please reach out to someone who can help right now:"))
	content.WriteString("\n\n")

	content.WriteString("  " + triageContactStyle.Render(triageCallLine))
	content.WriteString("\n")
	content.WriteString("  " + triageContactStyle.Render(triageTextLine))
	content.WriteString("\n\n")

	content.WriteString(
		statusKeyStyle.Render("Esc") + statusDescStyle.Render(" Return to chat"),
	)

	panel := triagePanelStyle.Width(width).Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
}
