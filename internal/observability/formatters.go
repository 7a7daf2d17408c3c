// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-tracker/internal/snapshot"
	"github.com/jonathan/job-tracker/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobRecord outputs a human-readable summary of one extracted record.
func (p *Printer) PrintJobRecord(rec *types.JobRecord) {
	if rec == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:    %s\n", rec.Company))
	sb.WriteString(fmt.Sprintf("Title:      %s\n", rec.Title))
	sb.WriteString(fmt.Sprintf("Location:   %s\n", rec.Location))
	if rec.HasSalary() {
		sb.WriteString(fmt.Sprintf("Salary:     %s\n", rec.SalaryString()))
	}
	if rec.Posted != "" {
		sb.WriteString(fmt.Sprintf("Posted:     %s\n", rec.Posted))
	}
	if rec.Applicants != "" {
		sb.WriteString(fmt.Sprintf("Applicants: %s\n", rec.Applicants))
	}

	p.printBox("EXTRACTED JOB RECORD", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFindings outputs validation findings, or a clean marker when there
// are none.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintFindings(findings []types.Finding) {
	if len(findings) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO VALIDATION FINDINGS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d findings:\n\n", len(findings)))

	for i, finding := range findings {
		detail := finding.Detail
		if len(detail) > 45 {
			detail = detail[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s (%s)\n", finding.Kind, finding.Field))
		sb.WriteString(fmt.Sprintf("  %s\n", detail))
		if i < len(findings)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("VALIDATION FINDINGS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReplayReport outputs the corpus replay outcome: total counts plus
// per-snapshot field diffs for the divergent ones.
func (p *Printer) PrintReplayReport(report *snapshot.ReplayReport) {
	if report == nil {
		return
	}

	divergent := report.Divergent()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Replayed:  %d snapshots\n", report.Total()))
	sb.WriteString(fmt.Sprintf("Divergent: %d\n", len(divergent)))

	count := min(len(divergent), maxItemsToShow)
	for i := 0; i < count; i++ {
		res := divergent[i]
		sb.WriteString(fmt.Sprintf("\n%s [%s]\n", res.ID, res.State))
		for _, diff := range res.Diffs {
			sb.WriteString(fmt.Sprintf("  %s: %q -> %q\n", diff.Key, diff.Stored, diff.Replayed))
		}
	}
	if len(divergent) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more divergent snapshots", len(divergent)-maxItemsToShow))
	}

	p.printBox("REPLAY REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintQualityReport outputs the corpus quality scan outcome.
func (p *Printer) PrintQualityReport(report *snapshot.QualityReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Scanned: %d snapshots\n", report.Scanned))
	if report.OK() {
		sb.WriteString("No issues found")
	} else {
		sb.WriteString(fmt.Sprintf("Issues:  %d\n", len(report.Issues)))
		count := min(len(report.Issues), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("\n⚠ %s", report.Issues[i]))
		}
		if len(report.Issues) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("\n... and %d more issues", len(report.Issues)-maxItemsToShow))
		}
	}

	p.printBox("QUALITY REPORT", sb.String())
}
