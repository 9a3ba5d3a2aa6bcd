package chat

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ethicamind/ethicamind-cli/internal/models"
)

// Transcript renders the session log as a markdown document. The log
// itself is memory-only; this is a snapshot, not persistence.
func (s *Session) Transcript() string {
	var sb strings.Builder

	sb.WriteString("# EthicaMind conversation\n\n")
	sb.WriteString("**Session:** ")
	sb.WriteString(s.id)
	sb.WriteString("\n")
	sb.WriteString("**Exported:** ")
	sb.WriteString(time.Now().Format("2006-01-02 15:04:05"))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("**Messages:** %d\n\n---\n\n", len(s.turns)))

	for _, turn := range s.turns {
		if turn.Sender == models.SenderUser {
			sb.WriteString("## You\n\n")
		} else {
			sb.WriteString("## EthicaMind\n\n")
		}
		sb.WriteString(turn.Text)
		sb.WriteString("\n\n")
	}

	return sb.String()
}

// ExportFile writes the transcript into dir and returns the full path.
// The filename carries the date and a session ID prefix so repeated
// exports don't collide.
func (s *Session) ExportFile(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	shortID := s.id
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}

	name := fmt.Sprintf("ethicamind-%s-%s.md", time.Now().Format("2006-01-02"), shortID)
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, []byte(s.Transcript()), 0o644); err != nil {
		return "", fmt.Errorf("failed to write transcript: %w", err)
	}

	return path, nil
}
