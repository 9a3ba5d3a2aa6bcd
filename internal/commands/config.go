package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ethicamind/ethicamind-cli/internal/config"
	"github.com/ethicamind/ethicamind-cli/internal/render"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage EthicaMind settings",
	Long: `Manage EthicaMind settings.

Settings are stored as JSON under ~/.ethicamind/config.json.

Available keys:
  theme            TUI color theme (calm, dark)
  markdown.style   Markdown rendering style (dark, light, dracula, notty, ascii)
  clipboard        Copy one-shot replies to the clipboard (true, false)
  export-dir       Directory for exported transcripts`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		path, _ := config.GetConfigPath()
		fmt.Printf("Config file: %s\n\n", path)
		fmt.Printf("theme            %s\n", cfg.TUITheme)
		fmt.Printf("markdown.style   %s\n", cfg.Markdown.Style)
		fmt.Printf("clipboard        %t\n", cfg.CopyToClipboard)
		fmt.Printf("export-dir       %s\n", cfg.ExportDir)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		key := strings.ToLower(args[0])
		value := args[1]

		switch key {
		case "theme":
			if !isAvailableTheme(value) {
				return fmt.Errorf("unknown theme %q (available: %s)",
					value, strings.Join(config.AvailableThemes(), ", "))
			}
			cfg.TUITheme = value
		case "markdown.style":
			if !render.IsValidStyle(value) {
				return fmt.Errorf("unknown style %q (available: %s)",
					value, strings.Join(render.AvailableStyles(), ", "))
			}
			cfg.Markdown.Style = value
		case "clipboard":
			enabled, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("clipboard must be true or false, got %q", value)
			}
			cfg.CopyToClipboard = enabled
		case "export-dir":
			cfg.ExportDir = value
		default:
			return fmt.Errorf("unknown key %q", args[0])
		}

		if err := config.SaveConfig(cfg); err != nil {
			return err
		}

		fmt.Printf("Set %s = %s\n", key, value)
		return nil
	},
}

func isAvailableTheme(name string) bool {
	for _, theme := range config.AvailableThemes() {
		if theme == name {
			return true
		}
	}
	return false
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
