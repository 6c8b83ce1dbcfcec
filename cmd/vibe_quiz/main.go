// Package main provides the vibe_quiz CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vibe_quiz",
	Short: "Vibe Quiz deck builder and API server",
	Long:  "Vibe Quiz builds swipe decks from a kid's favorite things, scores their likes into a personality, and serves the game over a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
