package extraction

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/job-tracker/internal/types"
)

// fieldExtractor is the common capability every rule implements: read the
// document, optionally fill one field of the record, report any advisory
// findings. Extractors are pure and order-insensitive relative to each
// other; each looks for its own anchor text.
type fieldExtractor func(doc *document, rec *types.JobRecord) []types.Finding

// pipeline is the ordered rule set applied by Extract.
var pipeline = []fieldExtractor{
	extractCompany,
	extractTitle,
	extractLocation,
	extractPosted,
	extractApplicants,
	extractSalary,
}

var logoSuffixPattern = regexp.MustCompile(`(?i)\s*(?:company\s+)?logo\s*$`)

// extractCompany anchors on the token immediately preceding the literal
// "logo" marker. Falls back to the first segment of a "Company · Location"
// line, and to the Unknown sentinel when neither anchor exists.
func extractCompany(doc *document, rec *types.JobRecord) []types.Finding {
	if doc.logoIndex >= 0 {
		line := doc.lines[doc.logoIndex]
		company := strings.TrimSpace(logoSuffixPattern.ReplaceAllString(line, ""))
		if company != "" && !looksLikeMetadata(company) {
			rec.Company = company
			return nil
		}
		// "logo" on its own line: the company name precedes it.
		if doc.logoIndex > 0 {
			prev := doc.lines[doc.logoIndex-1]
			if prev != "" && !looksLikeMetadata(prev) {
				rec.Company = prev
				return nil
			}
		}
	}

	for _, line := range doc.lines {
		seg, rest, ok := splitSeparatorLine(line)
		if ok && !looksLikeMetadata(seg) && looksLikeLocation(rest) {
			rec.Company = seg
			return nil
		}
	}
	return nil
}

// extractTitle takes the line following the company/logo anchor, with
// chrome stripping re-applied locally.
func extractTitle(doc *document, rec *types.JobRecord) []types.Finding {
	if doc.logoIndex >= 0 {
		title := stripInlineChrome(doc.lineAfter(doc.logoIndex))
		if title != "" && !looksLikeMetadata(title) {
			rec.Title = title
			return nil
		}
	}

	// No anchor: the first line that precedes a "Company · Location" line
	// is the best title candidate.
	for i, line := range doc.lines {
		if _, rest, ok := splitSeparatorLine(line); ok && looksLikeLocation(rest) && i > 0 {
			title := stripInlineChrome(doc.lines[i-1])
			if title != "" && !looksLikeMetadata(title) {
				rec.Title = title
			}
			return nil
		}
	}
	return nil
}

var workplaceMarkerPattern = regexp.MustCompile(`(?i)\s*\((remote|hybrid|on-?site)\)\s*$`)

// extractLocation takes the segment following the company name and a
// separator, before any parenthetical workplace marker. An explicit
// (Remote) marker sets is_remote unless the job description contradicts
// it, in which case the location is annotated for manual review instead.
func extractLocation(doc *document, rec *types.JobRecord) []types.Finding {
	line, ok := doc.locationLine(rec.Company)
	if !ok {
		return nil
	}
	_, segment, _ := splitSeparatorLine(line)

	marker := ""
	if m := workplaceMarkerPattern.FindStringSubmatch(segment); m != nil {
		marker = strings.ToLower(m[1])
		segment = strings.TrimSpace(workplaceMarkerPattern.ReplaceAllString(segment, ""))
	}

	if strings.EqualFold(segment, "remote") && marker == "" {
		marker = "remote"
		segment = ""
	}

	switch marker {
	case "remote":
		if phrase := remoteContradictionIn(doc.description); phrase != "" {
			rec.Location = annotate(segment, "(Claims Remote - Check Description)")
			rec.IsRemote = false
			return []types.Finding{{
				Field:  "location",
				Kind:   types.IssueRemoteContradiction,
				Detail: "description contains " + strconv.Quote(phrase),
			}}
		}
		rec.Location = annotate(segment, "(Remote)")
		rec.IsRemote = true
	case "hybrid":
		rec.Location = annotate(segment, "(Hybrid)")
	case "on-site", "onsite":
		rec.Location = segment
	default:
		rec.Location = segment
	}
	return nil
}

// remoteContradictions are description phrases that contradict a remote
// claim in the posting header. Postings regularly claim remote status the
// body walks back.
var remoteContradictions = []string{
	"hybrid",
	"on-site",
	"onsite",
	"in office",
	"in-office",
	"must be located",
	"must reside",
	"must live",
	"required to work from",
}

func remoteContradictionIn(description string) string {
	lower := strings.ToLower(description)
	for _, phrase := range remoteContradictions {
		if strings.Contains(lower, phrase) {
			return phrase
		}
	}
	return ""
}

func annotate(location, tag string) string {
	if location == "" {
		return strings.Trim(tag, "()")
	}
	return location + " " + tag
}

var postedPattern = regexp.MustCompile(`(?i)(?:posted|reposted)?\s*(\d+\s+(?:hour|day|week|month)s?\s+ago)`)

// extractPosted captures the relative-time phrase: a numeric quantity, a
// unit word, and the literal "ago". "Posted"/"Reposted" prefixes are
// stripped.
func extractPosted(doc *document, rec *types.JobRecord) []types.Finding {
	if m := postedPattern.FindStringSubmatch(doc.primary); m != nil {
		rec.Posted = normalizeSpaces(m[1])
	}
	return nil
}

var applicantsPattern = regexp.MustCompile(`(?i)(over\s+)?(\d+)(\+)?\s+applicants?`)

// extractApplicants captures the numeric token preceding "applicants",
// normalizing "Over N" to "N+" and leaving bare integers unchanged.
func extractApplicants(doc *document, rec *types.JobRecord) []types.Finding {
	m := applicantsPattern.FindStringSubmatch(doc.primary)
	if m == nil {
		return nil
	}
	count := m[2]
	if m[1] != "" || m[3] != "" {
		count += "+"
	}
	rec.Applicants = count
	return nil
}

// locationLine finds the "Company · Location" line. The company-prefixed
// line wins when the company is known; otherwise the first separator line
// with a location-looking tail is used.
func (d *document) locationLine(company string) (string, bool) {
	if company != "" && company != types.UnknownSentinel {
		prefix := company + " ·"
		for _, line := range d.lines {
			if strings.HasPrefix(line, prefix) {
				return line, true
			}
		}
	}
	for _, line := range d.lines {
		if _, rest, ok := splitSeparatorLine(line); ok && looksLikeLocation(rest) {
			return line, true
		}
	}
	return "", false
}

// splitSeparatorLine splits a "left · right" line at the first separator.
func splitSeparatorLine(line string) (left, right string, ok bool) {
	idx := strings.Index(line, "·")
	if idx < 0 {
		return "", "", false
	}
	left = strings.TrimSpace(line[:idx])
	right = strings.TrimSpace(line[idx+len("·"):])
	if left == "" || right == "" {
		return "", "", false
	}
	return left, right, true
}

// looksLikeMetadata rejects candidate identity fields that are really
// posting metadata (dates, counts, money) or leftover chrome.
func looksLikeMetadata(s string) bool {
	lower := strings.ToLower(s)
	if strings.Contains(lower, "ago") || strings.Contains(lower, "applicant") {
		return true
	}
	if strings.Contains(s, "$") || strings.Contains(s, "·") {
		return true
	}
	return strings.Contains(lower, "logo")
}

// looksLikeLocation accepts the right-hand segment of a separator line as a
// plausible location: a "City, ST" shape or an explicit workplace word.
func looksLikeLocation(s string) bool {
	if looksLikeMetadata(s) {
		return false
	}
	if strings.Contains(s, ",") {
		return true
	}
	lower := strings.ToLower(s)
	return strings.Contains(lower, "remote") || strings.Contains(lower, "hybrid") ||
		strings.Contains(lower, "united states") || strings.Contains(lower, "metropolitan area")
}

func normalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
