package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-tracker/internal/capture"
	"github.com/jonathan/job-tracker/internal/extraction"
	"github.com/jonathan/job-tracker/internal/format"
	"github.com/jonathan/job-tracker/internal/observability"
	"github.com/jonathan/job-tracker/internal/snapshot"
	"github.com/jonathan/job-tracker/internal/validation"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Extract job fields from raw posting text",
	Long:  "Extract structured job fields from raw page text and print a spreadsheet-ready TSV row. Reads from --in or stdin. The input is snapshotted for regression replay unless --no-snapshot is given.",
	RunE:  runParse,
}

var (
	parseConfigFile string
	parseInputFile  string
	parseNoSnapshot bool
	parseAsJSON     bool
	parseVerbose    bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseConfigFile, "config", "c", "", "Path to config JSON file")
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to raw posting text file (default: stdin)")
	parseCmd.Flags().BoolVar(&parseNoSnapshot, "no-snapshot", false, "Skip saving a snapshot of this input")
	parseCmd.Flags().BoolVar(&parseAsJSON, "json", false, "Print the record as JSON instead of a TSV row")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print the extracted record and validation findings")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	var (
		raw []byte
		err error
	)
	if parseInputFile != "" {
		raw, err = os.ReadFile(parseInputFile)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
	} else {
		raw, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	rawText := string(raw)
	if capture.IsProcessedRow(rawText) {
		return fmt.Errorf("input looks like an already-formatted spreadsheet row, not raw posting text")
	}

	rec, findings := extraction.ExtractWithFindings(rawText)
	result := validation.Validate(rec)
	findings = append(findings, result.Findings...)

	if !parseNoSnapshot {
		cfg, err := loadConfig(parseConfigFile)
		if err != nil {
			return err
		}
		ctx := context.Background()
		store, closeStore, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		snap, err := snapshot.Capture(ctx, store, rawText, rec)
		if err != nil {
			return fmt.Errorf("failed to save snapshot: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Captured snapshot %s\n", snap.ID())
	}

	if parseVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintJobRecord(&rec)
		printer.PrintFindings(findings)
	}

	if parseAsJSON {
		jsonBytes, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}

	fmt.Fprintln(os.Stdout, format.Row(rec))
	return nil
}
