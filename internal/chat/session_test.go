package chat

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ethicamind/ethicamind-cli/internal/api"
	"github.com/ethicamind/ethicamind-cli/internal/models"
)

// sendThrough runs one full send against a backend: Submit, dispatch,
// Resolve. Mirrors what the TUI does across its update cycle.
func sendThrough(t *testing.T, s *Session, client *api.Client, input string) {
	t.Helper()

	text, ok := s.Submit(input)
	if !ok {
		return
	}

	reply, err := client.Send(context.Background(), text)
	s.Resolve(reply, err)
}

func TestSubmit_AppendsUserTurnBeforeDispatch(t *testing.T) {
	s := NewSession()

	text, ok := s.Submit("  how are you  ")
	if !ok {
		t.Fatal("Submit() rejected non-empty input")
	}
	if text != "how are you" {
		t.Errorf("Submit() text = %q, want trimmed", text)
	}

	turns := s.Turns()
	if len(turns) != 1 {
		t.Fatalf("log has %d turns after Submit, want 1", len(turns))
	}
	if turns[0].Sender != models.SenderUser || turns[0].Text != "how are you" {
		t.Errorf("user turn = %+v", turns[0])
	}
}

func TestSubmit_EmptyInput(t *testing.T) {
	s := NewSession()

	for _, input := range []string{"", "   ", "\t\n"} {
		if _, ok := s.Submit(input); ok {
			t.Errorf("Submit(%q) accepted empty input", input)
		}
	}

	if s.Len() != 0 {
		t.Errorf("log has %d turns after empty submits, want 0", s.Len())
	}
}

func TestSend_ChatReplyAppendsAssistantTurn(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"type":"chat","message":"hello"}`))
	}))
	defer server.Close()

	s := NewSession()
	sendThrough(t, s, api.NewClient(api.WithBaseURL(server.URL)), "hi")

	turns := s.Turns()
	if len(turns) != 2 {
		t.Fatalf("log has %d turns, want 2", len(turns))
	}
	if turns[1].Sender != models.SenderAssistant || turns[1].Text != "hello" {
		t.Errorf("assistant turn = %+v", turns[1])
	}
	if s.TriageActive() {
		t.Error("triage became active on a chat reply")
	}
}

func TestSend_CrisisActivatesTriageWithoutAppending(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"type":"CRISIS_TRIAGE"}`))
	}))
	defer server.Close()

	s := NewSession()
	sendThrough(t, s, api.NewClient(api.WithBaseURL(server.URL)), "I need help")

	if !s.TriageActive() {
		t.Error("triage not active after crisis reply")
	}
	// Only the user's own turn is in the log; the crisis path appends
	// nothing.
	if s.Len() != 1 {
		t.Errorf("log has %d turns, want 1", s.Len())
	}
}

func TestSend_CrisisWhileActiveIsNoOp(t *testing.T) {
	s := NewSession()

	s.Resolve(&models.Reply{Kind: models.ReplyCrisis}, nil)
	s.Resolve(&models.Reply{Kind: models.ReplyCrisis}, nil)

	if !s.TriageActive() {
		t.Error("triage should remain active")
	}
	if s.Len() != 0 {
		t.Errorf("log has %d turns, want 0", s.Len())
	}
}

func TestSend_HTTPErrorText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("server error"))
	}))
	defer server.Close()

	s := NewSession()
	sendThrough(t, s, api.NewClient(api.WithBaseURL(server.URL)), "hi")

	turns := s.Turns()
	if len(turns) != 2 {
		t.Fatalf("log has %d turns, want 2", len(turns))
	}
	if turns[1].Text != "Error: 500 server error" {
		t.Errorf("error turn text = %q, want %q", turns[1].Text, "Error: 500 server error")
	}
	if turns[1].Sender != models.SenderAssistant {
		t.Errorf("error turn sender = %q, want assistant", turns[1].Sender)
	}
}

func TestSend_ConnectionRefusedText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	s := NewSession()
	sendThrough(t, s, api.NewClient(api.WithBaseURL(server.URL)), "hi")

	turns := s.Turns()
	if len(turns) != 2 {
		t.Fatalf("log has %d turns, want 2", len(turns))
	}
	if !strings.HasPrefix(turns[1].Text, "Network error: ") {
		t.Errorf("error turn text = %q, want Network error prefix", turns[1].Text)
	}
}

func TestResolve_UnknownReply(t *testing.T) {
	s := NewSession()

	s.Resolve(&models.Reply{Kind: models.ReplyUnknown}, nil)

	turns := s.Turns()
	if len(turns) != 1 {
		t.Fatalf("log has %d turns, want 1", len(turns))
	}
	if turns[0].Text != UnknownReplyText {
		t.Errorf("turn text = %q, want %q", turns[0].Text, UnknownReplyText)
	}
}

func TestDismissTriage(t *testing.T) {
	s := NewSession()
	s.Submit("hello")
	s.Resolve(&models.Reply{Kind: models.ReplyCrisis}, nil)

	before := s.Len()
	s.DismissTriage()

	if s.TriageActive() {
		t.Error("triage still active after dismissal")
	}
	if s.Len() != before {
		t.Error("dismissal altered the message log")
	}
}

func TestTurns_ReturnsCopy(t *testing.T) {
	s := NewSession()
	s.Submit("hello")

	turns := s.Turns()
	turns[0].Text = "mutated"

	if s.Turns()[0].Text != "hello" {
		t.Error("mutating the returned slice changed the log")
	}
}

func TestNewSession_Defaults(t *testing.T) {
	s := NewSession()

	if s.ID() == "" {
		t.Error("session has no ID")
	}
	if s.TriageActive() {
		t.Error("triage active on a fresh session")
	}
	if s.Len() != 0 {
		t.Error("fresh session has turns")
	}
}
