// Package format renders job records for delivery into the tracking
// spreadsheet.
package format

import (
	"strings"

	"github.com/jonathan/job-tracker/internal/types"
)

// Columns is the spreadsheet column order. The interview-stage columns
// between DateApplied and Notes are always blank on delivery; the sheet
// owns them.
var Columns = []string{
	"Company", "Title", "Location", "URL", "Date", "Source",
	"DateApplied", "InitialResponse", "Reject", "Screen",
	"FirstRound", "SecondRound", "Notes", "Salary", "Posted", "Applicants",
}

// Header returns the tab-joined column header line.
func Header() string {
	return strings.Join(Columns, "\t")
}

// Row renders one record as a single tab-separated line matching Columns.
// Unknown sentinel values render as empty cells so a paste into the sheet
// never shows placeholder text. Embedded tabs and newlines are collapsed
// to spaces to keep the row on one line.
func Row(rec types.JobRecord) string {
	cells := []string{
		blankUnknown(rec.Company),
		blankUnknown(rec.Title),
		blankUnknown(rec.Location),
		rec.URL,
		rec.Date,
		"LinkedIn",
		rec.DateApplied,
		"", // InitialResponse
		"", // Reject
		"", // Screen
		"", // FirstRound
		"", // SecondRound
		rec.Notes,
		rec.SalaryString(),
		rec.Posted,
		rec.Applicants,
	}
	for i, cell := range cells {
		cells[i] = sanitizeCell(cell)
	}
	return strings.Join(cells, "\t")
}

// Rows renders records one per line, without a header.
func Rows(recs []types.JobRecord) string {
	lines := make([]string, 0, len(recs))
	for _, rec := range recs {
		lines = append(lines, Row(rec))
	}
	return strings.Join(lines, "\n")
}

func blankUnknown(value string) string {
	if value == types.UnknownSentinel {
		return ""
	}
	return value
}

func sanitizeCell(value string) string {
	value = strings.ReplaceAll(value, "\t", " ")
	value = strings.ReplaceAll(value, "\n", " ")
	return strings.TrimSpace(value)
}
