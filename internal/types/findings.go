package types

import "fmt"

// IssueKind classifies an advisory data-quality finding. Findings never
// block extraction; they downgrade confidence and are surfaced to the
// caller for triage.
type IssueKind string

const (
	// IssueUnrecognizedLocation means the location matched no known US
	// state/city pattern and carried no explicit remote marker.
	IssueUnrecognizedLocation IssueKind = "unrecognized_location"
	// IssueInternationalLocation means the location looks non-US.
	IssueInternationalLocation IssueKind = "international_location"
	// IssueRemoteContradiction means the remote flag and the location text
	// (or the description body) disagree.
	IssueRemoteContradiction IssueKind = "remote_contradiction"
	// IssueSalaryOrder means salary_low exceeds salary_high.
	IssueSalaryOrder IssueKind = "salary_order"
	// IssueSalaryConflict means the posting carried two disagreeing salary
	// ranges; the first in document order was kept.
	IssueSalaryConflict IssueKind = "salary_conflict"
)

// Finding is a single (field, issue kind) advisory result.
type Finding struct {
	Field  string    `json:"field"`
	Kind   IssueKind `json:"kind"`
	Detail string    `json:"detail,omitempty"`
}

func (f Finding) String() string {
	if f.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", f.Field, f.Kind, f.Detail)
	}
	return fmt.Sprintf("%s: %s", f.Field, f.Kind)
}

// ValidationResult carries the advisory findings for one record. An empty
// result means every cross-field check passed.
type ValidationResult struct {
	Findings []Finding `json:"findings"`
}

// OK reports whether the record passed all checks.
func (r ValidationResult) OK() bool {
	return len(r.Findings) == 0
}

// Has reports whether any finding of the given kind was recorded.
func (r ValidationResult) Has(kind IssueKind) bool {
	for _, f := range r.Findings {
		if f.Kind == kind {
			return true
		}
	}
	return false
}
