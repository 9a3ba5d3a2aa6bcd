// Package commands provides CLI commands for the EthicaMind client.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	outputFlag string
	fileFlag   string
	rawFlag    bool

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ethicamind [message]",
	Short: "Terminal client for the EthicaMind wellness assistant",
	Long: `ethicamind is a terminal client for the EthicaMind assistant. It talks
to the EthicaMind backend over HTTP and renders replies in the terminal.
If the backend flags a message as a crisis, the client shows crisis
support contacts instead of a reply.

The backend address comes from the ETHICAMIND_API_URL environment
variable, defaulting to http://localhost:5000.

Examples:
  ethicamind chat                      Start the interactive TUI
  ethicamind insights                  Open the mood dashboard
  ethicamind "I had a rough day"       Send a single message
  ethicamind -f note.txt               Read the message from a file
  echo "hello" | ethicamind            Read the message from stdin
  ethicamind "hello" -o reply.md       Save the reply to a file`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("ethicamind %s (built %s)\n", Version, BuildTime)
			return nil
		}

		// Check for file input
		if fileFlag != "" {
			data, err := os.ReadFile(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			return runQuery(string(data), rawFlag)
		}

		// Check for stdin input
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) == 0 {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			return runQuery(string(data), rawFlag)
		}

		if len(args) > 0 {
			return runQuery(args[0], rawFlag)
		}

		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save reply to file")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read message from file")
	rootCmd.Flags().BoolVar(&rawFlag, "raw", false, "Print the raw reply without decoration")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(configCmd)
}
