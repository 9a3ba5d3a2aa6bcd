package commands

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/ethicamind/ethicamind-cli/internal/api"
	"github.com/ethicamind/ethicamind-cli/internal/chat"
	"github.com/ethicamind/ethicamind-cli/internal/config"
	apierrors "github.com/ethicamind/ethicamind-cli/internal/errors"
	"github.com/ethicamind/ethicamind-cli/internal/models"
	"github.com/ethicamind/ethicamind-cli/internal/render"
)

var (
	colorText    = lipgloss.Color("#c0caf5")
	colorDim     = lipgloss.Color("#565f89")
	colorPrimary = lipgloss.Color("#73daca")
	colorDanger  = lipgloss.Color("#f7768e")
	colorWarn    = lipgloss.Color("#e0af68")
)

var (
	assistantLabelStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	assistantBubbleStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Foreground(colorText).
				Padding(0, 1).
				MarginTop(1).
				MarginBottom(1)

	crisisPanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.DoubleBorder()).
				BorderForeground(colorDanger).
				Padding(1, 2).
				MarginTop(1)

	crisisTitleStyle = lipgloss.NewStyle().
				Foreground(colorDanger).
				Bold(true)

	crisisContactStyle = lipgloss.NewStyle().
				Foreground(colorWarn).
				Bold(true)
)

// spinner handles the animated loading indicator for one-shot queries
type spinner struct {
	message string
	stop    chan struct{}
	done    chan struct{}
	mu      sync.Mutex
	frame   int
	stopped bool
}

// newSpinner creates a new animated spinner
func newSpinner(message string) *spinner {
	return &spinner{
		message: message,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// start begins the animation
func (s *spinner) start() {
	go func() {
		defer close(s.done)

		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		// Hide cursor
		fmt.Fprint(os.Stderr, "\033[?25l")

		for {
			select {
			case <-s.stop:
				// Clear line and show cursor
				fmt.Fprint(os.Stderr, "\r\033[K\033[?25h")
				return
			case <-ticker.C:
				s.mu.Lock()
				s.render()
				s.frame++
				s.mu.Unlock()
			}
		}
	}()
}

// render draws the current animation frame
func (s *spinner) render() {
	chars := []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

	spinnerChar := lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).
		Render(chars[s.frame%len(chars)])

	var dots strings.Builder
	numDots := (s.frame / 3) % 4
	for i := 0; i < 3; i++ {
		if i < numDots {
			dots.WriteString(lipgloss.NewStyle().Foreground(colorPrimary).Render("●"))
		} else {
			dots.WriteString(lipgloss.NewStyle().Foreground(colorDim).Render("○"))
		}
	}

	msg := lipgloss.NewStyle().Foreground(colorText).Render(s.message)

	fmt.Fprintf(os.Stderr, "\r\033[K%s %s %s", spinnerChar, msg, dots.String())
}

// stopOnce safely closes the stop channel only once
func (s *spinner) stopOnce() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.stopped {
		close(s.stop)
		s.stopped = true
	}
}

// stopQuiet stops the spinner without a trailing message
func (s *spinner) stopQuiet() {
	s.stopOnce()
	<-s.done
}

// terminalWidth returns the output width to render at.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	if width > 120 {
		width = 120
	}
	return width
}

// runQuery sends a single message and prints the outcome.
// With rawOutput, only the reply text is printed, undecorated.
func runQuery(message string, rawOutput bool) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return fmt.Errorf("message cannot be empty")
	}

	cfg, _ := config.LoadConfig()
	client := api.NewClient()

	var spin *spinner
	if !rawOutput {
		spin = newSpinner("Waiting for EthicaMind")
		spin.start()
	}

	reply, err := client.Send(context.Background(), message)
	if err != nil {
		if !rawOutput {
			spin.stopQuiet()
		}
		return fmt.Errorf("%s", sendFailureText(err))
	}
	if !rawOutput {
		spin.stopQuiet()
	}

	switch reply.Kind {
	case models.ReplyCrisis:
		printCrisisNotice(rawOutput)
		return nil
	case models.ReplyChat:
		return printReply(cfg, reply.Message, rawOutput)
	case models.ReplyUnknown:
		return printReply(cfg, chat.UnknownReplyText, rawOutput)
	}
	return nil
}

// printReply renders and prints a chat reply, honoring output and
// clipboard settings.
func printReply(cfg config.Config, text string, rawOutput bool) error {
	if outputFlag != "" {
		if err := os.WriteFile(outputFlag, []byte(text), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		if !rawOutput {
			fmt.Fprintf(os.Stderr, "Reply saved to %s\n", outputFlag)
		}
	}

	if cfg.CopyToClipboard {
		if err := clipboard.WriteAll(text); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to copy to clipboard: %v\n", err)
		}
	}

	if rawOutput {
		fmt.Println(text)
		return nil
	}

	width := terminalWidth()
	rendered, err := render.Markdown(text, render.LoadOptionsFromConfigWithWidth(width-4))
	if err != nil {
		rendered = text
	}
	rendered = strings.TrimRight(rendered, "\n")

	fmt.Println(assistantLabelStyle.Render("✦ EthicaMind"))
	fmt.Println(assistantBubbleStyle.Width(width - 2).Render(rendered))
	return nil
}

// printCrisisNotice prints the crisis support contacts in place of a reply.
func printCrisisNotice(rawOutput bool) {
	if rawOutput {
		fmt.Println("If you're in crisis, call 988 (Suicide & Crisis Lifeline) or text HOME to 741741 (Crisis Text Line).")
		return
	}

	var b strings.Builder
	b.WriteString(crisisTitleStyle.Render("You don't have to go through this alone"))
	b.WriteString("\n\n")
	b.WriteString("Please reach out to someone who can help right now:\n\n")
	b.WriteString("  " + crisisContactStyle.Render("Call 988 — Suicide & Crisis Lifeline") + "\n")
	b.WriteString("  " + crisisContactStyle.Render("Text HOME to 741741 — Crisis Text Line"))

	fmt.Println(crisisPanelStyle.Width(terminalWidth() - 2).Render(b.String()))
}

// sendFailureText maps a send failure onto the text shown for it,
// matching what the chat log would display.
func sendFailureText(err error) string {
	if apierrors.IsAPIError(err) {
		return fmt.Sprintf("Error: %d %s", apierrors.GetHTTPStatus(err), apierrors.GetBody(err))
	}
	var netErr *apierrors.NetworkError
	if stderrors.As(err, &netErr) {
		return fmt.Sprintf("Network error: %v", netErr.Unwrap())
	}
	return fmt.Sprintf("Network error: %v", err)
}
