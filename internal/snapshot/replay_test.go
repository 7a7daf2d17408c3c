package snapshot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-tracker/internal/types"
)

const metaPosting = "Meta logo\nEngineering Manager\nMeta · New York, NY (Remote)\nPosted 3 days ago · 150+ applicants\n$190,000/yr - $220,000/yr"

func TestReplayOne_CleanAgainstOwnExtraction(t *testing.T) {
	snap := &types.Snapshot{
		RawText: metaPosting,
		ParsedData: types.ParsedData{
			"company":    "Meta",
			"title":      "Engineering Manager",
			"location":   "New York, NY (Remote)",
			"salary":     "190000-220000",
			"posted":     "3 days ago",
			"applicants": "150+",
		},
		Timestamp: "20260115_093042",
		State:     types.StateBaseline,
	}

	result := ReplayOne(snap)

	assert.True(t, result.Clean(), "diffs: %v", result.Diffs)
	assert.Equal(t, "20260115_093042", result.ID)
	assert.Equal(t, types.StateBaseline, result.State)
}

func TestReplayOne_ReportsFieldDiffs(t *testing.T) {
	snap := &types.Snapshot{
		RawText: metaPosting,
		ParsedData: types.ParsedData{
			"company":    "Meta Platforms",
			"title":      "Engineering Manager",
			"location":   "New York, NY (Remote)",
			"salary":     "190000-220000",
			"posted":     "3 days ago",
			"applicants": "150+",
		},
		Timestamp: "20260115_093042",
	}

	result := ReplayOne(snap)

	require.Len(t, result.Diffs, 1)
	assert.Equal(t, "company", result.Diffs[0].Key)
	assert.Equal(t, "Meta Platforms", result.Diffs[0].Stored)
	assert.Equal(t, "Meta", result.Diffs[0].Replayed)
}

func TestReplayOne_IgnoresCaptureTimeKeys(t *testing.T) {
	// url and date cannot be reproduced by re-extraction; they must never
	// count as divergence.
	snap := &types.Snapshot{
		RawText: metaPosting,
		ParsedData: types.ParsedData{
			"company":    "Meta",
			"title":      "Engineering Manager",
			"location":   "New York, NY (Remote)",
			"salary":     "190000-220000",
			"posted":     "3 days ago",
			"applicants": "150+",
			"url":        "https://www.linkedin.com/jobs/view/123",
			"date":       "01/15/2026",
			"notes":      "looks promising",
		},
		Timestamp: "20260115_093042",
	}

	result := ReplayOne(snap)

	assert.True(t, result.Clean(), "diffs: %v", result.Diffs)
}

func TestReplay_WalksWholeCorpus(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	clean := &types.Snapshot{
		RawText: metaPosting,
		ParsedData: types.ParsedData{
			"company":    "Meta",
			"title":      "Engineering Manager",
			"location":   "New York, NY (Remote)",
			"salary":     "190000-220000",
			"posted":     "3 days ago",
			"applicants": "150+",
		},
		Timestamp: "20260115_093042",
	}
	divergent := &types.Snapshot{
		RawText:    "Google logo\nStaff Engineer\nGoogle · Mountain View, CA",
		ParsedData: types.ParsedData{"company": "Alphabet", "title": "Staff Engineer", "location": "Mountain View, CA"},
		Timestamp:  "20260116_101500",
	}
	require.NoError(t, store.Save(ctx, clean))
	require.NoError(t, store.Save(ctx, divergent))

	report, err := Replay(ctx, store)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Total())
	require.Len(t, report.Divergent(), 1)
	assert.Equal(t, "20260116_101500", report.Divergent()[0].ID)
}

func TestReplay_EmptyCorpus(t *testing.T) {
	store := newTestStore(t)

	report, err := Replay(context.Background(), store)
	require.NoError(t, err)
	assert.Zero(t, report.Total())
	assert.Empty(t, report.Divergent())
}
