package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ethicamind/ethicamind-cli/internal/api"
	"github.com/ethicamind/ethicamind-cli/internal/config"
	"github.com/ethicamind/ethicamind-cli/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat session with the EthicaMind assistant.

Tab switches between the chat and the insights dashboard.
Press Esc or Ctrl+C to end the session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(tui.ViewChat)
	},
}

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Open the mood insights dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(tui.ViewInsights)
	},
}

func runTUI(view tui.View) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		// A broken config file is not fatal; fall back to defaults.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	client := api.NewClient()

	return tui.Run(client, cfg, view)
}
