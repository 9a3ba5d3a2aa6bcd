package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ethicamind/ethicamind-cli/internal/api"
	"github.com/ethicamind/ethicamind-cli/internal/chat"
	"github.com/ethicamind/ethicamind-cli/internal/config"
	"github.com/ethicamind/ethicamind-cli/internal/insights"
	"github.com/ethicamind/ethicamind-cli/internal/models"
	"github.com/ethicamind/ethicamind-cli/internal/render"
)

// View selects which of the two screens is showing. They share nothing:
// switching away discards whatever was typed into the chat input.
type View int

const (
	ViewChat View = iota
	ViewInsights
)

// Message types for the TUI
type (
	// replyMsg carries the outcome of one send, success or failure.
	replyMsg struct {
		reply *models.Reply
		err   error
	}
	// exportedMsg reports where the transcript landed.
	exportedMsg struct {
		path string
		err  error
	}
)

// Model represents the TUI state
type Model struct {
	client  api.ChatClient
	session *chat.Session
	cfg     config.Config

	view View

	// UI components
	viewport  viewport.Model
	textarea  textarea.Model
	spinner   spinner.Model
	dashboard *insights.Dashboard

	// State
	loading bool
	ready   bool
	notice  string

	// Dimensions
	width  int
	height int
}

// NewModel creates the TUI model starting on the given view.
func NewModel(client api.ChatClient, cfg config.Config, view View) Model {
	ta := textarea.New()
	ta.Placeholder = "What's on your mind?"
	ta.CharLimit = 4000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	return Model{
		client:    client,
		session:   chat.NewSession(),
		cfg:       cfg,
		view:      view,
		textarea:  ta,
		spinner:   s,
		dashboard: insights.NewDashboard(insights.SampleWeek()),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
	)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	// The triage overlay captures key input while active. Everything it
	// covers stays intact underneath; only dismissal and quit get through.
	if m.session.TriageActive() {
		if key, ok := msg.(tea.KeyMsg); ok {
			return m.updateTriage(key)
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			// Switching views discards uncommitted input.
			m.textarea.Reset()
			m.notice = ""
			if m.view == ViewChat {
				m.view = ViewInsights
			} else {
				m.view = ViewChat
			}
			return m, nil

		case "ctrl+e":
			if m.view == ViewChat && m.session.Len() > 0 {
				return m, m.exportTranscript()
			}

		case "enter":
			if m.view == ViewChat && !m.loading {
				text, ok := m.session.Submit(m.textarea.Value())
				if !ok {
					return m, nil
				}

				m.textarea.Reset()
				m.notice = ""
				m.loading = true
				m.updateViewport()
				m.viewport.GotoBottom()

				return m, tea.Batch(
					m.sendMessage(text),
					m.spinner.Tick,
				)
			}
		}

	case replyMsg:
		m.loading = false
		m.session.Resolve(msg.reply, msg.err)
		m.updateViewport()
		m.viewport.GotoBottom()

	case exportedMsg:
		if msg.err != nil {
			m.notice = errorStyle.Render("Export failed: " + msg.err.Error())
		} else {
			m.notice = hintStyle.Render("Transcript saved to " + msg.path)
		}

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	// Only pass key input on to the textarea, and only in the chat view.
	if m.view == ViewChat && !m.loading {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.textarea, cmd = m.textarea.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// updateTriage handles key input while the triage overlay is showing.
func (m Model) updateTriage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.session.DismissTriage()
	}
	return m, nil
}

// layout recomputes component sizes from the window dimensions.
func (m *Model) layout() {
	headerHeight := 3
	inputHeight := 5
	statusHeight := 1
	padding := 2

	vpHeight := m.height - headerHeight - inputHeight - statusHeight - padding
	if vpHeight < 5 {
		vpHeight = 5
	}

	contentWidth := m.width - 4

	if !m.ready {
		m.viewport = viewport.New(contentWidth, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = contentWidth
		m.viewport.Height = vpHeight
	}
	m.textarea.SetWidth(contentWidth - 4)
	m.dashboard.SetWidth(contentWidth)
	m.updateViewport()
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Starting EthicaMind...")
	}

	if m.session.TriageActive() {
		return m.renderTriageOverlay()
	}

	if m.view == ViewInsights {
		return m.renderInsights()
	}

	return m.renderChat()
}

// renderChat renders the chat screen.
func (m Model) renderChat() string {
	var sections []string
	contentWidth := m.width - 4

	header := headerStyle.Width(contentWidth).Render(
		lipgloss.JoinHorizontal(lipgloss.Center,
			titleStyle.Render("EthicaMind"),
			hintStyle.Render("  •  "),
			subtitleStyle.Render("chat"),
		),
	)
	sections = append(sections, header)

	var messagesContent string
	if m.session.Len() == 0 {
		messagesContent = m.renderWelcome()
	} else {
		messagesContent = m.viewport.View()
	}
	sections = append(sections, messagesAreaStyle.
		Width(contentWidth).
		Height(m.viewport.Height).
		Render(messagesContent))

	var inputContent string
	if m.loading {
		inputContent = m.spinner.View() + loadingStyle.Render(" Thinking...")
	} else {
		inputContent = lipgloss.JoinVertical(
			lipgloss.Left,
			inputLabelStyle.Render("You"),
			m.textarea.View(),
		)
	}
	sections = append(sections, inputPanelStyle.Width(contentWidth).Render(inputContent))

	sections = append(sections, m.renderStatusBar(contentWidth))

	if m.notice != "" {
		sections = append(sections, m.notice)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderInsights renders the insights screen.
func (m Model) renderInsights() string {
	contentWidth := m.width - 4

	header := headerStyle.Width(contentWidth).Render(
		lipgloss.JoinHorizontal(lipgloss.Center,
			titleStyle.Render("EthicaMind"),
			hintStyle.Render("  •  "),
			subtitleStyle.Render("insights"),
		),
	)

	panel := insightsPanelStyle.Width(contentWidth).Render(m.dashboard.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		panel,
		m.renderStatusBar(contentWidth),
	)
}

// renderWelcome renders the empty-log placeholder.
func (m Model) renderWelcome() string {
	width := m.viewport.Width - 4
	height := m.viewport.Height

	title := welcomeTitleStyle.Width(width).Render("Welcome to EthicaMind")
	subtitle := welcomeStyle.Width(width).Render("A safe space to talk. Type a message below to begin.")

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		"",
		title,
		"",
		subtitle,
		"",
	)

	contentHeight := lipgloss.Height(content)
	topPadding := (height - contentHeight) / 2
	if topPadding < 0 {
		topPadding = 0
	}

	return strings.Repeat("\n", topPadding) + content
}

// renderStatusBar renders the bottom shortcut bar.
func (m Model) renderStatusBar(width int) string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send"},
		{"Tab", "Insights"},
		{"Ctrl+E", "Export"},
		{"Esc", "Quit"},
	}
	if m.view == ViewInsights {
		shortcuts = []struct {
			key  string
			desc string
		}{
			{"Tab", "Chat"},
			{"Esc", "Quit"},
		}
	}

	var items []string
	for _, s := range shortcuts {
		items = append(items, statusKeyStyle.Render(s.key)+statusDescStyle.Render(" "+s.desc))
	}

	bar := strings.Join(items, "  │  ")
	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(bar)
}

// sendMessage creates a command that dispatches the message to the backend.
func (m Model) sendMessage(text string) tea.Cmd {
	return func() tea.Msg {
		reply, err := m.client.Send(context.Background(), text)
		return replyMsg{reply: reply, err: err}
	}
}

// exportTranscript creates a command that writes the transcript to disk.
func (m Model) exportTranscript() tea.Cmd {
	return func() tea.Msg {
		dir, err := config.GetExportDir(m.cfg)
		if err != nil {
			return exportedMsg{err: err}
		}
		path, err := m.session.ExportFile(dir)
		return exportedMsg{path: path, err: err}
	}
}

// updateViewport refreshes the viewport content from the message log.
func (m *Model) updateViewport() {
	var content strings.Builder
	bubbleWidth := m.viewport.Width - 6

	for i, turn := range m.session.Turns() {
		if i > 0 {
			content.WriteString("\n")
		}

		if turn.Sender == models.SenderUser {
			label := userLabelStyle.Render("⬤ You")
			bubble := userBubbleStyle.Width(bubbleWidth).Render(turn.Text)
			content.WriteString(label + "\n" + bubble)
		} else {
			label := assistantLabelStyle.Render("✦ EthicaMind")

			rendered, err := render.MarkdownWithWidth(turn.Text, bubbleWidth-4)
			if err != nil {
				rendered = turn.Text
			}
			rendered = strings.TrimRight(rendered, "\n")

			bubble := assistantBubbleStyle.Width(bubbleWidth).Render(rendered)
			content.WriteString(label + "\n" + bubble)
		}
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// Run starts the TUI on the given view.
func Run(client api.ChatClient, cfg config.Config, view View) error {
	ApplyTheme(cfg.TUITheme)

	p := tea.NewProgram(
		NewModel(client, cfg, view),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
