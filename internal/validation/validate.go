// Package validation cross-checks extracted job records for internal
// consistency. Findings are advisory: they are surfaced to the caller as
// debug output but never convert a record into an error, and validation
// never mutates the record it inspects.
package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/job-tracker/internal/types"
)

// Validate runs every cross-field check against the record and returns
// the accumulated findings.
func Validate(rec types.JobRecord) types.ValidationResult {
	var findings []types.Finding

	findings = append(findings, checkLocation(rec)...)
	findings = append(findings, checkRemoteConsistency(rec)...)
	findings = append(findings, checkSalaryOrder(rec)...)

	return types.ValidationResult{Findings: findings}
}

// checkLocation verifies the location matches a recognized US state/city
// pattern or is explicitly remote; anything else is flagged international
// or unrecognized.
func checkLocation(rec types.JobRecord) []types.Finding {
	loc := rec.Location
	if loc == "" {
		return nil
	}
	base := stripAnnotations(loc)
	if base == "" || strings.EqualFold(base, "remote") {
		return nil
	}
	if IsUSLocation(base) {
		return nil
	}
	if looksInternational(base) {
		return []types.Finding{{
			Field:  "location",
			Kind:   types.IssueInternationalLocation,
			Detail: fmt.Sprintf("%q is not a US location", base),
		}}
	}
	return []types.Finding{{
		Field:  "location",
		Kind:   types.IssueUnrecognizedLocation,
		Detail: fmt.Sprintf("%q matches no known location pattern", base),
	}}
}

// checkRemoteConsistency flags contradictions between the remote flag and
// the location text, in both directions.
func checkRemoteConsistency(rec types.JobRecord) []types.Finding {
	lower := strings.ToLower(rec.Location)
	mentionsRemote := strings.Contains(lower, "remote")
	claimsOnly := strings.Contains(lower, "claims remote")

	switch {
	case rec.IsRemote && !mentionsRemote && rec.Location != "":
		return []types.Finding{{
			Field:  "location",
			Kind:   types.IssueRemoteContradiction,
			Detail: "is_remote is set but location text does not mention remote",
		}}
	case !rec.IsRemote && mentionsRemote && !claimsOnly:
		return []types.Finding{{
			Field:  "location",
			Kind:   types.IssueRemoteContradiction,
			Detail: "location mentions remote but is_remote is false",
		}}
	}
	return nil
}

// checkSalaryOrder verifies salary_low <= salary_high when both present.
func checkSalaryOrder(rec types.JobRecord) []types.Finding {
	if !rec.HasSalary() || *rec.SalaryLow <= *rec.SalaryHigh {
		return nil
	}
	return []types.Finding{{
		Field:  "salary",
		Kind:   types.IssueSalaryOrder,
		Detail: fmt.Sprintf("low %d exceeds high %d", *rec.SalaryLow, *rec.SalaryHigh),
	}}
}

// stripAnnotations removes trailing parenthetical annotations like
// "(Remote)" or "(Claims Remote - Check Description)".
func stripAnnotations(location string) string {
	for {
		open := strings.LastIndex(location, "(")
		if open < 0 || !strings.HasSuffix(strings.TrimSpace(location), ")") {
			return strings.TrimSpace(location)
		}
		location = strings.TrimSpace(location[:open])
	}
}
