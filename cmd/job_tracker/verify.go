package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-tracker/internal/observability"
	"github.com/jonathan/job-tracker/internal/snapshot"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Scan the snapshot corpus for data quality problems",
	Long:  "Run the quality checks over every snapshot: empty captures, navigation text leaking into fields, and identity fields the extractor gave up on.",
	RunE:  runVerify,
}

var (
	verifyConfigFile   string
	verifyFailOnIssues bool
)

func init() {
	verifyCmd.Flags().StringVarP(&verifyConfigFile, "config", "c", "", "Path to config JSON file")
	verifyCmd.Flags().BoolVar(&verifyFailOnIssues, "fail-on-issues", false, "Exit non-zero when any issue is found")

	rootCmd.AddCommand(verifyCmd)
}

func runVerify(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(verifyConfigFile)
	if err != nil {
		return err
	}

	ctx := context.Background()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	report, err := snapshot.VerifyQuality(ctx, store, nil)
	if err != nil {
		return fmt.Errorf("quality scan failed: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintQualityReport(report)

	if verifyFailOnIssues && !report.OK() {
		return fmt.Errorf("%d quality issues found", len(report.Issues))
	}
	return nil
}
