// Package snapshot provides the regression harness: durable capture of
// (raw text, parsed record, timestamp) triples, replay of the corpus
// through the extraction engine, and bulk data-quality verification.
// Snapshots are the durable regression corpus — they are never deleted by
// the engine, and raw_text is byte-preserved across parsed_data edits.
package snapshot

import (
	"context"
	"time"

	"github.com/jonathan/job-tracker/internal/types"
)

// TimestampLayout is the capture-time identifier format.
const TimestampLayout = "20060102_150405"

// Store is the durable, key-addressed snapshot corpus. Implementations
// must make Save atomic: a snapshot is written fully or not at all, so a
// crash never leaves a corrupt partial record behind.
type Store interface {
	// Save persists a snapshot under its timestamp-derived id. Saving over
	// an existing id is only allowed when raw_text is unchanged; raw text
	// is immutable after capture.
	Save(ctx context.Context, snap *types.Snapshot) error
	// Load retrieves one snapshot by id.
	Load(ctx context.Context, id string) (*types.Snapshot, error)
	// List returns all snapshot ids in timestamp order.
	List(ctx context.Context) ([]string, error)
	// Walk streams the corpus in timestamp order, stopping early if the
	// callback returns an error. The sequence is lazy, finite, and
	// restartable: Walk may be called any number of times.
	Walk(ctx context.Context, fn func(*types.Snapshot) error) error
}

// Capture creates and persists a new snapshot with a fresh timestamp.
// A store failure here is fatal to the capture operation and surfaced to
// the caller: silently losing a snapshot defeats the regression corpus.
func Capture(ctx context.Context, store Store, rawText string, parsed types.JobRecord) (*types.Snapshot, error) {
	snap := &types.Snapshot{
		RawText:    rawText,
		ParsedData: types.ToParsedData(parsed),
		Timestamp:  time.Now().Format(TimestampLayout),
		State:      types.StateCaptured,
	}
	if err := store.Save(ctx, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// Review applies hand-corrected parsed data to a snapshot and marks it
// reviewed. RawText is never touched.
func Review(ctx context.Context, store Store, id string, corrected types.ParsedData) (*types.Snapshot, error) {
	snap, err := store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	snap.ParsedData = corrected
	snap.State = types.StateReviewed
	if err := store.Save(ctx, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// Promote marks a reviewed snapshot as a trusted baseline for regression
// replay.
func Promote(ctx context.Context, store Store, id string) (*types.Snapshot, error) {
	snap, err := store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	snap.State = types.StateBaseline
	if err := store.Save(ctx, snap); err != nil {
		return nil, err
	}
	return snap, nil
}
