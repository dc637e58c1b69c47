package main

import (
	"os"

	"github.com/dshills/empath/internal/cli"
	"github.com/joho/godotenv"
)

func main() {
	// Best-effort: a .env file is a convenience, not a requirement.
	_ = godotenv.Load()

	os.Exit(cli.Run())
}
