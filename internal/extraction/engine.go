// Package extraction turns raw job-posting text into a structured
// JobRecord by applying an ordered pipeline of cleanup and field-specific
// pattern rules. The engine is a pure function of its input: no I/O, no
// shared state, safe for concurrent use. It never fails — malformed input
// yields a fully-sentineled record so downstream formatting cannot break
// on a bad capture.
package extraction

import (
	"strings"

	"github.com/jonathan/job-tracker/internal/types"
)

// Extract parses raw posting text into a JobRecord. Unresolved identity
// fields come back as "Unknown", optional fields as absent; the output
// shape is always complete.
func Extract(rawText string) types.JobRecord {
	rec, _ := ExtractWithFindings(rawText)
	return rec
}

// ExtractWithFindings is Extract plus the advisory findings raised while
// the rules ran (remote contradictions, conflicting salary ranges).
// Findings downgrade confidence; they never block or alter the record
// beyond what the individual rule decided.
func ExtractWithFindings(rawText string) (types.JobRecord, []types.Finding) {
	rec := types.NewJobRecord()
	if strings.TrimSpace(rawText) == "" {
		return rec, nil
	}

	doc := newDocument(rawText)

	var findings []types.Finding
	for _, rule := range pipeline {
		findings = append(findings, rule(doc, &rec)...)
	}

	normalizeRecord(&rec)
	return rec, findings
}

// normalizeRecord guarantees the full field set with sentinels, trims
// whitespace, and collapses internal line breaks within single-line
// fields.
func normalizeRecord(rec *types.JobRecord) {
	rec.Company = normalizeSingleLine(rec.Company, types.UnknownSentinel)
	rec.Title = normalizeSingleLine(rec.Title, types.UnknownSentinel)
	rec.Location = normalizeSingleLine(rec.Location, "")
	rec.Posted = strings.TrimSpace(rec.Posted)
	rec.Applicants = strings.TrimSpace(rec.Applicants)
}

func normalizeSingleLine(s, sentinel string) string {
	s = normalizeSpaces(strings.ReplaceAll(s, "\n", " "))
	if s == "" {
		return sentinel
	}
	return s
}
