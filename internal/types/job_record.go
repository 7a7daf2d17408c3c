// Package types provides type definitions for structured data used throughout the job-tracker system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// UnknownSentinel is the placeholder for identity fields (company, title)
// that could not be resolved from the input text.
const UnknownSentinel = "Unknown"

// JobRecord represents a structured job posting extracted from raw text.
// Every field is always present in the output shape: identity fields fall
// back to "Unknown", manual-entry fields are empty strings, and the salary
// pair is nil when no recognizable salary appeared in the posting.
type JobRecord struct {
	Company    string `json:"company"`
	Title      string `json:"title"`
	Location   string `json:"location"`
	IsRemote   bool   `json:"is_remote"`
	SalaryLow  *int   `json:"salary_low,omitempty"`
	SalaryHigh *int   `json:"salary_high,omitempty"`
	Posted     string `json:"posted,omitempty"`
	Applicants string `json:"applicants,omitempty"`

	// Manual-entry placeholders, filled by the caller or left blank for
	// later spreadsheet entry.
	URL         string `json:"url"`
	Date        string `json:"date"`
	DateApplied string `json:"date_applied"`
	Notes       string `json:"notes"`
}

// NewJobRecord returns a fully-sentineled record, the shape produced for
// empty or unparseable input.
func NewJobRecord() JobRecord {
	return JobRecord{
		Company: UnknownSentinel,
		Title:   UnknownSentinel,
	}
}

// HasSalary reports whether both ends of the salary range were resolved.
func (r *JobRecord) HasSalary() bool {
	return r.SalaryLow != nil && r.SalaryHigh != nil
}

// SalaryString renders the salary pair in the persisted "low-high" form,
// or an empty string when the salary is absent.
func (r *JobRecord) SalaryString() string {
	if !r.HasSalary() {
		return ""
	}
	return fmt.Sprintf("%d-%d", *r.SalaryLow, *r.SalaryHigh)
}

var salaryFieldPatterns = []*regexp.Regexp{
	// Persisted form: "190000-220000"
	regexp.MustCompile(`^(\d+)\s*-\s*(\d+)$`),
	// Display form: "$190,000 - $220,000"
	regexp.MustCompile(`^\$(\d{1,3}(?:,\d{3})*)\s*-\s*\$(\d{1,3}(?:,\d{3})*)$`),
	// K-notation form: "$190K/yr - $220K/yr"
	regexp.MustCompile(`^\$(\d+)K(?:/yr)?\s*-\s*\$(\d+)K(?:/yr)?$`),
}

// ParseSalaryField parses a persisted salary string back into the integer
// pair. Hand-edited snapshots occasionally carry display forms, so the
// comma-grouped and K-notation renderings are accepted as well. Returns
// (nil, nil, false) when the string matches no known form.
func ParseSalaryField(s string) (low, high *int, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil, false
	}
	for i, pat := range salaryFieldPatterns {
		m := pat.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		lo, err1 := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
		hi, err2 := strconv.Atoi(strings.ReplaceAll(m[2], ",", ""))
		if err1 != nil || err2 != nil {
			return nil, nil, false
		}
		if i == 2 { // K-notation
			lo *= 1000
			hi *= 1000
		}
		return &lo, &hi, true
	}
	return nil, nil, false
}
