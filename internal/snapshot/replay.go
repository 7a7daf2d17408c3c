package snapshot

import (
	"context"

	"github.com/jonathan/job-tracker/internal/extraction"
	"github.com/jonathan/job-tracker/internal/types"
)

// extractionKeys are the parsed_data keys the engine owns. Capture-time
// values (url, date, source) and reviewer fields (date_applied, notes) are
// excluded from replay comparison: re-running the engine cannot reproduce
// them.
var extractionKeys = []string{
	"company", "title", "location", "salary", "posted", "applicants",
}

// FieldDiff records one parsed_data key where re-extraction disagrees with
// the stored value.
type FieldDiff struct {
	Key      string
	Stored   string
	Replayed string
}

// ReplayResult is the outcome of re-running one snapshot's raw text
// through the current engine.
type ReplayResult struct {
	ID    string
	State types.SnapshotState
	Diffs []FieldDiff
}

// Clean reports whether re-extraction matched the stored parsed data on
// every engine-owned key.
func (r *ReplayResult) Clean() bool {
	return len(r.Diffs) == 0
}

// ReplayReport aggregates replay results across the corpus.
type ReplayReport struct {
	Results []ReplayResult
}

// Total returns the number of snapshots replayed.
func (r *ReplayReport) Total() int {
	return len(r.Results)
}

// Divergent returns the results with at least one field diff. Divergence
// is a regression candidate, not a verdict: against hand-reviewed
// snapshots it usually means the engine broke, but against raw captures
// it can mean the engine improved. A human triages each one.
func (r *ReplayReport) Divergent() []ReplayResult {
	var out []ReplayResult
	for _, res := range r.Results {
		if !res.Clean() {
			out = append(out, res)
		}
	}
	return out
}

// ReplayOne re-runs a single snapshot through the engine and diffs the
// engine-owned fields.
func ReplayOne(snap *types.Snapshot) ReplayResult {
	rec := extraction.Extract(snap.RawText)
	replayed := types.ToParsedData(rec)

	result := ReplayResult{ID: snap.ID(), State: snap.EffectiveState()}
	for _, key := range extractionKeys {
		stored := snap.ParsedData[key]
		got := replayed[key]
		if stored != got {
			result.Diffs = append(result.Diffs, FieldDiff{Key: key, Stored: stored, Replayed: got})
		}
	}
	return result
}

// Replay walks the whole corpus and replays each snapshot in timestamp
// order. Snapshots are independent, so a diff in one never stops the run.
func Replay(ctx context.Context, store Store) (*ReplayReport, error) {
	report := &ReplayReport{}
	err := store.Walk(ctx, func(snap *types.Snapshot) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		report.Results = append(report.Results, ReplayOne(snap))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}
