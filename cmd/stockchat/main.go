package main

import (
	"github.com/joho/godotenv"

	"github.com/diogo/stockchat/internal/commands"
)

func main() {
	// Load .env if present; missing files are fine, real env wins
	_ = godotenv.Load()

	commands.Execute()
}
