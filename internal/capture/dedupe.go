package capture

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// textWindow is how much of the normalized page text participates in the
// fingerprint. Applicant counts and relative post ages churn between
// visits, but they live near the top of the page inside this window, so
// the fingerprint also keys on the URL when one is known.
const textWindow = 2000

// IsProcessedRow reports whether text is already a formatted spreadsheet
// row rather than raw page text. Pasting tracker output back into the
// parser is a common slip; a tab-separated single line is the tell.
func IsProcessedRow(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" || strings.Contains(text, "\n") {
		return false
	}
	return strings.Count(text, "\t") >= 3
}

// Deduper remembers postings that were already captured so repeat visits
// to the same tab do not pile duplicate snapshots into the corpus.
type Deduper struct {
	seen map[string]struct{}
}

// NewDeduper returns an empty Deduper.
func NewDeduper() *Deduper {
	return &Deduper{seen: make(map[string]struct{})}
}

// Fingerprint derives a stable key for a posting. The URL wins when
// present; otherwise the key is a hash of the leading page text.
func Fingerprint(url, rawText string) string {
	if url != "" {
		return "url:" + url
	}
	normalized := strings.ToLower(strings.Join(strings.Fields(rawText), " "))
	if len(normalized) > textWindow {
		normalized = normalized[:textWindow]
	}
	sum := sha256.Sum256([]byte(normalized))
	return "text:" + hex.EncodeToString(sum[:])
}

// Seen reports whether the posting was already recorded.
func (d *Deduper) Seen(url, rawText string) bool {
	_, ok := d.seen[Fingerprint(url, rawText)]
	return ok
}

// Mark records a posting as captured.
func (d *Deduper) Mark(url, rawText string) {
	d.seen[Fingerprint(url, rawText)] = struct{}{}
}
