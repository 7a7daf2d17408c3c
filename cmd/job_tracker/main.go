// Package main provides the job tracker CLI: capture job postings from the
// browser, extract structured fields, and maintain the snapshot regression
// corpus.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "job_tracker",
	Short: "LinkedIn job posting tracker",
	Long:  "Job Tracker captures LinkedIn job postings, extracts spreadsheet-ready fields from the page text, and keeps a snapshot corpus for regression-testing the extractor.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
