// Package types provides type definitions for structured data used throughout the job-tracker system.
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// SnapshotState tracks the review lifecycle of a snapshot. A snapshot is
// captured with first-pass parsed data, may be hand-corrected and marked
// reviewed, and is promoted to baseline once trusted for regression replay.
// There is no deleted state; removing a snapshot is a manual action.
type SnapshotState string

const (
	// StateCaptured is the initial state: raw text plus first-pass parsed data.
	StateCaptured SnapshotState = "captured"
	// StateReviewed marks parsed data that has been hand-checked.
	StateReviewed SnapshotState = "reviewed"
	// StateBaseline marks a trusted snapshot used as expected output in replay.
	StateBaseline SnapshotState = "baseline"
)

// ParsedDataKeys is the fixed key set of the persisted parsed_data mapping.
// Consumers must treat missing keys as absent, not as an error.
var ParsedDataKeys = []string{
	"company", "title", "location", "url", "date", "source",
	"date_applied", "salary", "posted", "applicants", "notes",
}

// ParsedData is the persisted string mapping of one extraction result.
// Unknown keys added by hand edits are preserved round-trip.
type ParsedData map[string]string

// Snapshot is an immutable record of one extraction run: the verbatim input
// text, the record produced at capture time, and the capture timestamp.
// RawText must never change after creation; ParsedData may be hand-edited
// during data-quality maintenance passes.
type Snapshot struct {
	RawText    string        `json:"raw_text" validate:"required"`
	ParsedData ParsedData    `json:"parsed_data" validate:"required"`
	Timestamp  string        `json:"timestamp" validate:"required,datetime=20060102_150405"`
	State      SnapshotState `json:"state,omitempty" validate:"omitempty,oneof=captured reviewed baseline"`
}

// ID returns the timestamp-derived snapshot identifier.
func (s *Snapshot) ID() string {
	return s.Timestamp
}

// EffectiveState returns the lifecycle state, defaulting to captured for
// legacy snapshots persisted before the state key existed.
func (s *Snapshot) EffectiveState() SnapshotState {
	if s.State == "" {
		return StateCaptured
	}
	return s.State
}

// Validate validates the Snapshot using the validator.
func (s *Snapshot) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}

// ToParsedData converts a JobRecord into the persisted string mapping.
// The salary pair renders as "low-high"; absent optional fields are
// omitted rather than written as empty strings.
func ToParsedData(rec JobRecord) ParsedData {
	pd := ParsedData{
		"company":      rec.Company,
		"title":        rec.Title,
		"location":     rec.Location,
		"url":          rec.URL,
		"date":         rec.Date,
		"source":       "LinkedIn",
		"date_applied": rec.DateApplied,
		"notes":        rec.Notes,
	}
	if rec.HasSalary() {
		pd["salary"] = rec.SalaryString()
	}
	if rec.Posted != "" {
		pd["posted"] = rec.Posted
	}
	if rec.Applicants != "" {
		pd["applicants"] = rec.Applicants
	}
	return pd
}

// ToJobRecord converts persisted parsed data back into a JobRecord.
// Missing identity keys become sentinels so the record shape stays complete.
func (p ParsedData) ToJobRecord() JobRecord {
	rec := NewJobRecord()
	if v, ok := p["company"]; ok && v != "" {
		rec.Company = v
	}
	if v, ok := p["title"]; ok && v != "" {
		rec.Title = v
	}
	rec.Location = p["location"]
	rec.URL = p["url"]
	rec.Date = p["date"]
	rec.DateApplied = p["date_applied"]
	rec.Notes = p["notes"]
	rec.Posted = p["posted"]
	rec.Applicants = p["applicants"]
	if low, high, ok := ParseSalaryField(p["salary"]); ok {
		rec.SalaryLow = low
		rec.SalaryHigh = high
	}
	rec.IsRemote = containsRemoteTag(rec.Location)
	return rec
}

// containsRemoteTag reports whether a persisted location string carries the
// remote annotation. The "(Claims Remote - Check Description)" annotation
// deliberately does not count.
func containsRemoteTag(location string) bool {
	lower := strings.ToLower(location)
	return lower == "remote" || strings.HasSuffix(lower, "(remote)")
}
