package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-tracker/internal/observability"
	"github.com/jonathan/job-tracker/internal/snapshot"
	"github.com/jonathan/job-tracker/internal/types"
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Re-run the extractor over the snapshot corpus",
	Long:  "Re-extract every snapshot's raw text with the current engine and report field-level divergence from the stored parsed data. Divergence on a reviewed or baseline snapshot is a regression and fails the command; divergence on an unreviewed capture is informational.",
	RunE:  runReplay,
}

var (
	replayConfigFile string
	replayID         string
	replayFailOnDiff bool
)

func init() {
	replayCmd.Flags().StringVarP(&replayConfigFile, "config", "c", "", "Path to config JSON file")
	replayCmd.Flags().StringVar(&replayID, "id", "", "Replay a single snapshot instead of the whole corpus")
	replayCmd.Flags().BoolVar(&replayFailOnDiff, "fail-on-diff", false, "Also fail on divergent unreviewed captures")

	rootCmd.AddCommand(replayCmd)
}

func runReplay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(replayConfigFile)
	if err != nil {
		return err
	}

	ctx := context.Background()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	var report *snapshot.ReplayReport
	if replayID != "" {
		snap, err := store.Load(ctx, replayID)
		if err != nil {
			return err
		}
		report = &snapshot.ReplayReport{Results: []snapshot.ReplayResult{snapshot.ReplayOne(snap)}}
	} else {
		report, err = snapshot.Replay(ctx, store)
		if err != nil {
			return fmt.Errorf("replay failed: %w", err)
		}
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintReplayReport(report)

	regressions := 0
	for _, res := range report.Divergent() {
		if res.State != types.StateCaptured || replayFailOnDiff {
			regressions++
		}
	}
	if regressions > 0 {
		return fmt.Errorf("%d snapshots diverged", regressions)
	}
	return nil
}
