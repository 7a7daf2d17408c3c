package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-tracker/internal/capture"
	"github.com/jonathan/job-tracker/internal/extraction"
	"github.com/jonathan/job-tracker/internal/format"
	"github.com/jonathan/job-tracker/internal/observability"
	"github.com/jonathan/job-tracker/internal/snapshot"
	"github.com/jonathan/job-tracker/internal/types"
	"github.com/jonathan/job-tracker/internal/validation"
)

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Capture the job posting open in the browser",
	Long:  "Find the job posting tab in a running Chrome session, snapshot its visible text, extract fields, and print the TSV row. Chrome must be started with --remote-debugging-port.",
	RunE:  runCapture,
}

var (
	captureConfigFile string
	capturePort       int
	captureForce      bool
	captureVerbose    bool
)

func init() {
	captureCmd.Flags().StringVarP(&captureConfigFile, "config", "c", "", "Path to config JSON file")
	captureCmd.Flags().IntVarP(&capturePort, "port", "p", 0, "Chrome remote debugging port (default 9222)")
	captureCmd.Flags().BoolVar(&captureForce, "force", false, "Capture even when the posting was already snapshotted")
	captureCmd.Flags().BoolVarP(&captureVerbose, "verbose", "v", false, "Print the extracted record and validation findings")

	rootCmd.AddCommand(captureCmd)
}

func runCapture(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(captureConfigFile)
	if err != nil {
		return err
	}
	if capturePort != 0 {
		cfg.ChromeDebugPort = capturePort
	}

	ctx := context.Background()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	browser := capture.NewBrowser(cfg.ChromeDebugPort, time.Duration(cfg.CaptureTimeout)*time.Second)
	page, err := browser.CaptureJobTab(ctx)
	if err != nil {
		return fmt.Errorf("capture failed: %w", err)
	}

	if !captureForce {
		deduper := capture.NewDeduper()
		err = store.Walk(ctx, func(snap *types.Snapshot) error {
			deduper.Mark(snap.ParsedData["url"], snap.RawText)
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to scan existing snapshots: %w", err)
		}
		if deduper.Seen(page.URL, page.Text) {
			return fmt.Errorf("posting already captured: %s (use --force to capture again)", page.URL)
		}
	}

	rec, findings := extraction.ExtractWithFindings(page.Text)
	rec.URL = page.URL
	rec.Date = time.Now().Format("01/02/2006")
	result := validation.Validate(rec)
	findings = append(findings, result.Findings...)

	snap, err := snapshot.Capture(ctx, store, page.Text, rec)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	if captureVerbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintJobRecord(&rec)
		printer.PrintFindings(findings)
	}

	fmt.Fprintf(os.Stderr, "Captured snapshot %s\n", snap.ID())
	fmt.Fprintln(os.Stdout, format.Row(rec))
	return nil
}
