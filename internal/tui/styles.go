// Package tui provides the terminal user interface for the EthicaMind client.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color variables (updated from theme)
var (
	colorSurface lipgloss.Color
	colorBorder  lipgloss.Color

	colorPrimary   lipgloss.Color
	colorSecondary lipgloss.Color
	colorWarning   lipgloss.Color
	colorError     lipgloss.Color

	colorText     lipgloss.Color
	colorTextDim  lipgloss.Color
	colorTextMute lipgloss.Color
)

// Style variables (rebuilt when theme changes)
var (
	headerStyle   lipgloss.Style
	titleStyle    lipgloss.Style
	subtitleStyle lipgloss.Style
	hintStyle     lipgloss.Style

	messagesAreaStyle lipgloss.Style

	userBubbleStyle     lipgloss.Style
	userLabelStyle      lipgloss.Style
	assistantBubbleStyle lipgloss.Style
	assistantLabelStyle  lipgloss.Style

	inputPanelStyle lipgloss.Style
	inputLabelStyle lipgloss.Style

	loadingStyle lipgloss.Style

	statusBarStyle  lipgloss.Style
	statusKeyStyle  lipgloss.Style
	statusDescStyle lipgloss.Style

	errorStyle lipgloss.Style

	welcomeStyle      lipgloss.Style
	welcomeTitleStyle lipgloss.Style

	// Triage overlay styles
	triagePanelStyle   lipgloss.Style
	triageTitleStyle   lipgloss.Style
	triageBodyStyle    lipgloss.Style
	triageContactStyle lipgloss.Style

	insightsPanelStyle lipgloss.Style
)

// palette is one named color scheme.
type palette struct {
	surface   string
	border    string
	primary   string
	secondary string
	warning   string
	errorC    string
	text      string
	textDim   string
	textMute  string
}

var palettes = map[string]palette{
	// Soft teal and lavender; the default.
	"calm": {
		surface:   "#1f2430",
		border:    "#3b4261",
		primary:   "#73daca",
		secondary: "#bb9af7",
		warning:   "#e0af68",
		errorC:    "#f7768e",
		text:      "#c0caf5",
		textDim:   "#565f89",
		textMute:  "#3b4261",
	},
	"dark": {
		surface:   "#16161e",
		border:    "#2f3549",
		primary:   "#7aa2f7",
		secondary: "#9ece6a",
		warning:   "#e0af68",
		errorC:    "#db4b4b",
		text:      "#a9b1d6",
		textDim:   "#565f89",
		textMute:  "#32344a",
	},
}

func init() {
	ApplyTheme("calm")
}

// ApplyTheme rebuilds all styles from the named palette. Unknown names
// fall back to the default palette.
func ApplyTheme(name string) {
	p, ok := palettes[name]
	if !ok {
		p = palettes["calm"]
	}

	colorSurface = lipgloss.Color(p.surface)
	colorBorder = lipgloss.Color(p.border)
	colorPrimary = lipgloss.Color(p.primary)
	colorSecondary = lipgloss.Color(p.secondary)
	colorWarning = lipgloss.Color(p.warning)
	colorError = lipgloss.Color(p.errorC)
	colorText = lipgloss.Color(p.text)
	colorTextDim = lipgloss.Color(p.textDim)
	colorTextMute = lipgloss.Color(p.textMute)

	headerStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	subtitleStyle = lipgloss.NewStyle().
		Foreground(colorSecondary)

	hintStyle = lipgloss.NewStyle().
		Foreground(colorTextDim)

	messagesAreaStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)

	userLabelStyle = lipgloss.NewStyle().
		Foreground(colorSecondary).
		Bold(true)

	userBubbleStyle = lipgloss.NewStyle().
		Foreground(colorText).
		PaddingLeft(2)

	assistantLabelStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	assistantBubbleStyle = lipgloss.NewStyle().
		Foreground(colorText).
		PaddingLeft(2)

	inputPanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)

	inputLabelStyle = lipgloss.NewStyle().
		Foreground(colorSecondary).
		Bold(true)

	loadingStyle = lipgloss.NewStyle().
		Foreground(colorPrimary)

	statusBarStyle = lipgloss.NewStyle().
		Foreground(colorTextDim)

	statusKeyStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	statusDescStyle = lipgloss.NewStyle().
		Foreground(colorTextDim)

	errorStyle = lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true)

	welcomeStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Align(lipgloss.Center)

	welcomeTitleStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Align(lipgloss.Center)

	triagePanelStyle = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(colorError).
		Padding(1, 3)

	triageTitleStyle = lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true)

	triageBodyStyle = lipgloss.NewStyle().
		Foreground(colorText)

	triageContactStyle = lipgloss.NewStyle().
		Foreground(colorWarning).
		Bold(true)

	insightsPanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(1, 2)
}
