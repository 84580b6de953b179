package main

import (
	"os"

	"github.com/joho/godotenv"

	"codetune/cmd"
)

func main() {
	// A .env file is optional; a missing one is not an error.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
