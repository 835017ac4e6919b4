// Package main provides the entry point for the brochure agent.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "brochure_agent",
	Short: "Dip Your Trip brochure generator",
	Long:  "Brochure agent turns trip add-on CSV data into a designed, hosted PDF travel brochure via an LLM, a shared image bucket, and a headless browser.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
