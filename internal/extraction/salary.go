package extraction

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/job-tracker/internal/types"
)

// salaryRangePatterns match currency ranges in the two formats postings
// use: abbreviated K-notation and comma-grouped full numbers. Both
// normalize to a plain low-high integer pair in whole dollars. Order
// matters: K-notation first so "$200K/yr" is not half-matched by the
// full-number pattern.
var salaryRangePatterns = []*regexp.Regexp{
	// "$200K/yr - $300K/yr", "$127.5K - $170K"
	regexp.MustCompile(`\$(\d+(?:\.\d+)?)K(?:/yr)?\s*[-–]\s*\$(\d+(?:\.\d+)?)K(?:/yr)?`),
	// "$190,000/yr - $220,000/yr", "$190,000 - $220,000 a year"
	regexp.MustCompile(`\$(\d{1,3}(?:,\d{3})+)(?:/yr)?\s*[-–]\s*\$(\d{1,3}(?:,\d{3})+)(?:/yr)?`),
}

// annualSuffixes are the accepted yearly markers. A range with no such
// marker near it is not treated as a salary: the field is left absent
// rather than guessed.
var annualSuffixes = []string{"/yr", "a year", "annually", "per year"}

// extractSalary finds the authoritative salary range in the primary
// section. The first match in document order wins; a later range with
// different values is recorded as a conflict finding, never silently
// preferred.
func extractSalary(doc *document, rec *types.JobRecord) []types.Finding {
	var findings []types.Finding

	for _, match := range findSalaryRanges(doc.primary) {
		if !rec.HasSalary() {
			low, high := match.low, match.high
			rec.SalaryLow = &low
			rec.SalaryHigh = &high
			continue
		}
		if match.low != *rec.SalaryLow || match.high != *rec.SalaryHigh {
			findings = append(findings, types.Finding{
				Field: "salary",
				Kind:  types.IssueSalaryConflict,
				Detail: fmt.Sprintf("kept %d-%d, posting also lists %d-%d",
					*rec.SalaryLow, *rec.SalaryHigh, match.low, match.high),
			})
		}
	}
	return findings
}

type salaryMatch struct {
	start     int
	low, high int
}

// findSalaryRanges returns every accepted salary range in text, in
// document order.
func findSalaryRanges(text string) []salaryMatch {
	var matches []salaryMatch
	claimed := make([]bool, len(text))

	for kind, pat := range salaryRangePatterns {
		for _, idx := range pat.FindAllStringSubmatchIndex(text, -1) {
			start, end := idx[0], idx[1]
			if claimed[start] {
				continue
			}
			if !hasAnnualSuffix(text, start, end) {
				continue
			}
			low, ok1 := parseSalaryNumber(text[idx[2]:idx[3]], kind == 0)
			high, ok2 := parseSalaryNumber(text[idx[4]:idx[5]], kind == 0)
			if !ok1 || !ok2 {
				continue
			}
			for i := start; i < end; i++ {
				claimed[i] = true
			}
			matches = append(matches, salaryMatch{start: start, low: low, high: high})
		}
	}

	// The two pattern passes interleave; restore document order.
	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && matches[j].start < matches[j-1].start; j-- {
			matches[j], matches[j-1] = matches[j-1], matches[j]
		}
	}
	return matches
}

// hasAnnualSuffix checks that the match or its immediate surroundings
// carry a yearly marker.
func hasAnnualSuffix(text string, start, end int) bool {
	tail := end + 16
	if tail > len(text) {
		tail = len(text)
	}
	window := strings.ToLower(text[start:tail])
	for _, suffix := range annualSuffixes {
		if strings.Contains(window, suffix) {
			return true
		}
	}
	return false
}

// parseSalaryNumber converts one side of a range to whole dollars.
// K-notation multiplies by 1000 and tolerates fractional thousands.
func parseSalaryNumber(s string, kNotation bool) (int, bool) {
	s = strings.ReplaceAll(s, ",", "")
	if kNotation {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return int(f*1000 + 0.5), true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
