package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripChromeLines(t *testing.T) {
	text := "3 notifications total\nMeta logo\nSkip to main content\nEngineering Manager\nSave job\nEasy Apply\n\nMeta · New York, NY"

	lines := stripChromeLines(text)

	assert.Equal(t, []string{"Meta logo", "Engineering Manager", "Meta · New York, NY"}, lines)
}

func TestStripChromeLines_WindowsLineEndings(t *testing.T) {
	lines := stripChromeLines("Meta logo\r\nEngineering Manager\r\n")

	assert.Equal(t, []string{"Meta logo", "Engineering Manager"}, lines)
}

func TestNewDocument_ScopesPrimarySection(t *testing.T) {
	raw := "Meta logo\nEngineering Manager\nMore jobs for you\nOther Corp logo\nOther role"

	doc := newDocument(raw)

	assert.NotContains(t, doc.primary, "Other Corp")
	assert.Equal(t, 0, doc.logoIndex)
}

func TestNewDocument_FirstLogoAnchorWins(t *testing.T) {
	raw := "Meta logo\nEngineering Manager\nMeta company logo footer"

	doc := newDocument(raw)

	assert.Equal(t, 0, doc.logoIndex)
}

func TestNewDocument_DescriptionAfterMarker(t *testing.T) {
	raw := "Meta logo\nEngineering Manager\nAbout the job\nBuild things that matter."

	doc := newDocument(raw)

	assert.Contains(t, doc.description, "Build things that matter.")
	assert.NotContains(t, doc.description, "Engineering Manager")
}

func TestNewDocument_NoDescription(t *testing.T) {
	doc := newDocument("Meta logo\nEngineering Manager")

	assert.Empty(t, doc.description)
}
