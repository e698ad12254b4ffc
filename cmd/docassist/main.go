package main

import (
	"github.com/joho/godotenv"

	"docassist/internal/cli"
)

func main() {
	// Load .env if present; API keys for embedding providers live there.
	_ = godotenv.Load()

	cli.Execute()
}
