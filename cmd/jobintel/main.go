// Package main provides the entry point for the job intelligence CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobintel",
	Short: "Multi-resume job intelligence",
	Long:  "jobintel selects the best-fitting resume for each job posting from a folder of specialized resumes and suggests enhancements sourced from the master resume.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
