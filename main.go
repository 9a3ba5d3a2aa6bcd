package main

import (
	"github.com/joho/godotenv"

	"github.com/ethicamind/ethicamind-cli/internal/commands"
)

func main() {
	// Load .env if present; environment variables already set win.
	_ = godotenv.Load()

	commands.Execute()
}
