package extraction

import (
	"regexp"
	"strings"
)

// chromeLinePatterns match whole lines of page chrome: navigation,
// notification counters, and UI buttons that surround the posting text.
// These lines are dropped before any field extraction runs, because they
// otherwise attach themselves to the end of adjacent fields.
var chromeLinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d+\s*notifications?\s*total`),
	regexp.MustCompile(`(?i)^skip to (?:search|main content)`),
	regexp.MustCompile(`(?i)^keyboard shortcuts$`),
	regexp.MustCompile(`(?i)^(?:home|my network|jobs|messaging|notifications)$`),
	regexp.MustCompile(`(?i)^show more(?: options)?$`),
	regexp.MustCompile(`(?i)^save(?:\s+job)?$`),
	regexp.MustCompile(`(?i)^share options$`),
	regexp.MustCompile(`(?i)^apply$|^easy apply$`),
	regexp.MustCompile(`(?i)^matches your job preferences`),
}

// bannerPattern matches the preference-match banner wherever it appears,
// including glued to the tail of another field on the same line.
var bannerPattern = regexp.MustCompile(`(?i)matches your job preferences.*$`)

// recommendedMarkers open the recommended-listings sections appended after
// the primary posting. Everything from the first marker on is excluded from
// salary and field extraction to avoid cross-contamination from unrelated
// postings in the same text blob.
var recommendedMarkers = []string{
	"More jobs for you",
	"Similar jobs",
	"People also viewed",
	"Explore collaborative articles",
}

// descriptionMarker separates the posting header from the job-description
// body. The body is only consulted for remote-contradiction phrases.
const descriptionMarker = "About the job"

// stripChromeLines removes whole-line chrome from the input, returning the
// surviving lines trimmed of surrounding whitespace.
func stripChromeLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isChromeLine(line) {
			continue
		}
		// A banner glued to real content keeps the content half.
		line = strings.TrimSpace(bannerPattern.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func isChromeLine(line string) bool {
	for _, pat := range chromeLinePatterns {
		if pat.MatchString(line) {
			return true
		}
	}
	return false
}

// stripInlineChrome re-applies banner stripping to a single extracted field.
// Titles are the field most prone to trailing banner contamination.
func stripInlineChrome(field string) string {
	return strings.TrimSpace(bannerPattern.ReplaceAllString(field, ""))
}

// document is the chrome-stripped, section-scoped view of one input blob
// that the field extractors operate on.
type document struct {
	// lines of the primary section, chrome-stripped, in input order.
	lines []string
	// primary is the joined primary-section text.
	primary string
	// description is the job-description body within the primary section,
	// after the "About the job" marker.
	description string
	// logoIndex is the index in lines of the first "logo" anchor, or -1.
	// Only the first occurrence is used: later anchors belong to
	// recommended listings or the company footer.
	logoIndex int
}

func newDocument(raw string) *document {
	primaryText := raw
	for _, marker := range recommendedMarkers {
		if idx := strings.Index(primaryText, marker); idx >= 0 {
			primaryText = primaryText[:idx]
		}
	}

	description := ""
	if idx := strings.Index(primaryText, descriptionMarker); idx >= 0 {
		description = primaryText[idx+len(descriptionMarker):]
	}

	lines := stripChromeLines(primaryText)
	doc := &document{
		lines:       lines,
		primary:     strings.Join(lines, "\n"),
		description: description,
		logoIndex:   -1,
	}
	for i, line := range lines {
		if strings.Contains(strings.ToLower(line), "logo") {
			doc.logoIndex = i
			break
		}
	}
	return doc
}

// lineAfter returns the first non-empty line after index i, or "".
func (d *document) lineAfter(i int) string {
	for j := i + 1; j < len(d.lines); j++ {
		if d.lines[j] != "" {
			return d.lines[j]
		}
	}
	return ""
}
