package commands

import (
	"errors"
	"strings"
	"testing"

	apierrors "github.com/ethicamind/ethicamind-cli/internal/errors"
)

func TestSendFailureTextAPIError(t *testing.T) {
	err := apierrors.NewAPIError(500, "/api/chat", "server error")

	got := sendFailureText(err)
	want := "Error: 500 server error"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestSendFailureTextNetworkError(t *testing.T) {
	cause := errors.New("connection refused")
	err := apierrors.NewNetworkError("send message", "http://localhost:5000/api/chat", cause)

	got := sendFailureText(err)
	if got != "Network error: connection refused" {
		t.Errorf("Unexpected text: %q", got)
	}
}

func TestSendFailureTextGenericError(t *testing.T) {
	got := sendFailureText(errors.New("boom"))
	if !strings.HasPrefix(got, "Network error: ") {
		t.Errorf("Expected network error prefix, got %q", got)
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, want := range []string{"chat", "insights", "config"} {
		if !names[want] {
			t.Errorf("Expected subcommand %q to be registered", want)
		}
	}
}

func TestRootCommandFlags(t *testing.T) {
	for _, name := range []string{"output", "file", "raw", "version"} {
		if rootCmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected flag --%s to exist", name)
		}
	}
}

func TestIsAvailableTheme(t *testing.T) {
	if !isAvailableTheme("calm") {
		t.Error("Expected calm to be an available theme")
	}
	if isAvailableTheme("neon") {
		t.Error("Expected neon to be rejected")
	}
}
