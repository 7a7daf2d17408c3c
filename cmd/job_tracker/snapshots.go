package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-tracker/internal/schemas"
	"github.com/jonathan/job-tracker/internal/snapshot"
	"github.com/jonathan/job-tracker/internal/types"
)

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "Inspect and curate the snapshot corpus",
}

var snapshotsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List snapshot ids and review states",
	RunE:  runSnapshotsList,
}

var snapshotsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one snapshot as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotsShow,
}

var snapshotsReviewCmd = &cobra.Command{
	Use:   "review <id>",
	Short: "Apply hand-corrected parsed data to a snapshot",
	Long:  "Replace a snapshot's parsed_data with the corrected JSON object from --in and mark the snapshot reviewed. The raw text is never changed.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotsReview,
}

var snapshotsPromoteCmd = &cobra.Command{
	Use:   "promote <id>",
	Short: "Mark a snapshot as a trusted regression baseline",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotsPromote,
}

var snapshotsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate snapshot files against the snapshot schema",
	RunE:  runSnapshotsCheck,
}

var (
	snapshotsConfigFile string
	reviewInputFile     string
)

func init() {
	snapshotsCmd.PersistentFlags().StringVarP(&snapshotsConfigFile, "config", "c", "", "Path to config JSON file")
	snapshotsReviewCmd.Flags().StringVarP(&reviewInputFile, "in", "i", "", "Path to corrected parsed_data JSON (required)")
	_ = snapshotsReviewCmd.MarkFlagRequired("in")

	snapshotsCmd.AddCommand(snapshotsListCmd)
	snapshotsCmd.AddCommand(snapshotsShowCmd)
	snapshotsCmd.AddCommand(snapshotsReviewCmd)
	snapshotsCmd.AddCommand(snapshotsPromoteCmd)
	snapshotsCmd.AddCommand(snapshotsCheckCmd)
	rootCmd.AddCommand(snapshotsCmd)
}

func runSnapshotsList(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(snapshotsConfigFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	err = store.Walk(ctx, func(snap *types.Snapshot) error {
		title := snap.ParsedData["title"]
		company := snap.ParsedData["company"]
		fmt.Fprintf(os.Stdout, "%s  [%s]  %s at %s\n", snap.ID(), snap.EffectiveState(), title, company)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}
	return nil
}

func runSnapshotsShow(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig(snapshotsConfigFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	snap, err := store.Load(ctx, args[0])
	if err != nil {
		return err
	}

	jsonBytes, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(jsonBytes))
	return nil
}

func runSnapshotsReview(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig(snapshotsConfigFile)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(reviewInputFile)
	if err != nil {
		return fmt.Errorf("failed to read corrected data: %w", err)
	}
	var corrected types.ParsedData
	if err := json.Unmarshal(data, &corrected); err != nil {
		return fmt.Errorf("failed to parse corrected data JSON: %w", err)
	}

	ctx := context.Background()
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	snap, err := snapshot.Review(ctx, store, args[0], corrected)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Snapshot %s marked reviewed\n", snap.ID())
	return nil
}

func runSnapshotsPromote(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig(snapshotsConfigFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	snap, err := snapshot.Promote(ctx, store, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Snapshot %s promoted to baseline\n", snap.ID())
	return nil
}

func runSnapshotsCheck(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(snapshotsConfigFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	fileStore, err := snapshot.NewFileStore(cfg.SnapshotDir)
	if err != nil {
		return err
	}

	ids, err := fileStore.List(ctx)
	if err != nil {
		return err
	}

	failures := 0
	for _, id := range ids {
		if err := schemas.ValidateSnapshotFile(fileStore.Path(id)); err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "%s: %v\n", id, err)
		}
	}

	fmt.Fprintf(os.Stdout, "Checked %d snapshot files, %d invalid\n", len(ids), failures)
	if failures > 0 {
		return fmt.Errorf("%d snapshot files failed schema validation", failures)
	}
	return nil
}
