package snapshot

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-tracker/internal/types"
)

// QualityCheck inspects one snapshot and returns human-readable problems.
// Checks are independent and read-only.
type QualityCheck func(snap *types.Snapshot) []string

// QualityIssue ties a problem description to the snapshot it was found in.
type QualityIssue struct {
	ID      string
	Problem string
}

func (q QualityIssue) String() string {
	return fmt.Sprintf("%s: %s", q.ID, q.Problem)
}

// QualityReport is the outcome of a corpus-wide quality scan.
type QualityReport struct {
	Scanned int
	Issues  []QualityIssue
}

// OK reports whether the scan found no issues.
func (r *QualityReport) OK() bool {
	return len(r.Issues) == 0
}

// navContaminants are browser chrome strings that must never survive into
// parsed fields.
var navContaminants = []string{
	"notifications total",
	"Skip to search",
	"Skip to main content",
	"Keyboard shortcuts",
}

// DefaultQualityChecks cover the corpus defects seen in practice: chrome
// leaking into fields, blank captures, and identity fields the extractor
// gave up on.
func DefaultQualityChecks() []QualityCheck {
	return []QualityCheck{
		checkRawTextPresent,
		checkTitleKnown,
		checkLocationPresent,
		checkFieldContamination,
	}
}

func checkRawTextPresent(snap *types.Snapshot) []string {
	if strings.TrimSpace(snap.RawText) == "" {
		return []string{"raw_text is empty"}
	}
	return nil
}

func checkTitleKnown(snap *types.Snapshot) []string {
	title := snap.ParsedData["title"]
	if title == "" || title == types.UnknownSentinel {
		return []string{"title is missing or Unknown"}
	}
	return nil
}

func checkLocationPresent(snap *types.Snapshot) []string {
	if snap.ParsedData["location"] == "" || snap.ParsedData["location"] == types.UnknownSentinel {
		return []string{"location is missing or Unknown"}
	}
	return nil
}

func checkFieldContamination(snap *types.Snapshot) []string {
	var problems []string
	for _, key := range []string{"company", "title", "location"} {
		value := snap.ParsedData[key]
		for _, contaminant := range navContaminants {
			if strings.Contains(value, contaminant) {
				problems = append(problems, fmt.Sprintf("%s contains navigation text %q", key, contaminant))
			}
		}
	}
	return problems
}

// VerifyQuality runs every check against every snapshot, scanning the
// corpus in parallel. Check order within a snapshot is preserved; issue
// order across snapshots follows timestamp order.
func VerifyQuality(ctx context.Context, store Store, checks []QualityCheck) (*QualityReport, error) {
	if len(checks) == 0 {
		checks = DefaultQualityChecks()
	}

	ids, err := store.List(ctx)
	if err != nil {
		return nil, err
	}

	issuesByID := make([][]QualityIssue, len(ids))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			snap, err := store.Load(ctx, id)
			if err != nil {
				return err
			}
			var issues []QualityIssue
			for _, check := range checks {
				for _, problem := range check(snap) {
					issues = append(issues, QualityIssue{ID: id, Problem: problem})
				}
			}
			mu.Lock()
			issuesByID[i] = issues
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &QualityReport{Scanned: len(ids)}
	for _, issues := range issuesByID {
		report.Issues = append(report.Issues, issues...)
	}
	return report, nil
}
