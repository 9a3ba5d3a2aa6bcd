// Package chat holds the conversation state for one client session: the
// append-only message log and the triage gate flag.
package chat

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	apierrors "github.com/ethicamind/ethicamind-cli/internal/errors"
	"github.com/ethicamind/ethicamind-cli/internal/models"
)

// UnknownReplyText is shown when the backend returns a shape the client
// does not recognize.
const UnknownReplyText = "Sorry, I didn't understand the response."

// Session is the conversation state for a single run of the client.
// It is only ever touched from the UI update loop, so it carries no
// locking. Nothing is persisted; the log lives and dies with the session.
type Session struct {
	id     string
	turns  []models.ChatTurn
	triage bool
}

// NewSession creates an empty session with the triage gate inactive.
func NewSession() *Session {
	return &Session{id: uuid.NewString()}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Turns returns a copy of the message log in insertion order.
func (s *Session) Turns() []models.ChatTurn {
	out := make([]models.ChatTurn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Len returns the number of turns in the log.
func (s *Session) Len() int {
	return len(s.turns)
}

// TriageActive reports whether the triage gate is showing.
func (s *Session) TriageActive() bool {
	return s.triage
}

// Submit trims the input and, when non-empty, appends the user's turn to
// the log and returns the text to dispatch. Pure-whitespace input is a
// no-op: nothing is appended and ok is false.
func (s *Session) Submit(input string) (text string, ok bool) {
	text = strings.TrimSpace(input)
	if text == "" {
		return "", false
	}

	s.turns = append(s.turns, models.UserTurn(text))
	return text, true
}

// Resolve applies the outcome of a send to the session. A crisis reply
// activates the triage gate and appends nothing; every other outcome,
// including failures, lands in the log as assistant-authored text. The
// user's turn appended by Submit is never retracted.
func (s *Session) Resolve(reply *models.Reply, err error) {
	if err != nil {
		s.turns = append(s.turns, models.AssistantTurn(errorTurnText(err)))
		return
	}

	switch reply.Kind {
	case models.ReplyCrisis:
		// Re-triggering while already active stays a no-op transition.
		s.triage = true
	case models.ReplyChat:
		s.turns = append(s.turns, models.AssistantTurn(reply.Message))
	case models.ReplyUnknown:
		s.turns = append(s.turns, models.AssistantTurn(UnknownReplyText))
	}
}

// DismissTriage deactivates the triage gate. The log is untouched.
func (s *Session) DismissTriage() {
	s.triage = false
}

// errorTurnText maps a send failure onto the assistant-authored text the
// log shows for it. HTTP errors carry the status and body verbatim;
// everything else is a transport-level failure.
func errorTurnText(err error) string {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("Error: %d %s", apiErr.StatusCode, apiErr.Body)
	}

	var netErr *apierrors.NetworkError
	if errors.As(err, &netErr) {
		return fmt.Sprintf("Network error: %v", netErr.Unwrap())
	}

	return fmt.Sprintf("Network error: %v", err)
}
