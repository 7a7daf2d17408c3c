package capture

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// VisibleText flattens rendered HTML into the line-per-element text the
// extraction engine consumes. Script, style, and hidden-content elements
// are dropped; remaining text nodes become one trimmed line each, in
// document order.
func VisibleText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, template, iframe").Remove()

	body := doc.Find("body")
	if body.Length() == 0 {
		return "", nil
	}

	text := body.Text()
	return collapseLines(text), nil
}

// collapseLines trims every line and drops blanks, mirroring what a
// clipboard copy of the rendered page produces.
func collapseLines(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
