package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"fiatconnect-widget/cmd"
)

func main() {
	// .env is optional; variables already set in the environment win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
		os.Exit(1)
	}

	if err := cmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
