package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-tracker/internal/types"
)

func TestExtract_FullPosting(t *testing.T) {
	raw := "Meta logo\nEngineering Manager\nMeta · New York, NY (Remote)\nPosted 3 days ago · 150+ applicants\n$190,000/yr - $220,000/yr"

	rec := Extract(raw)

	assert.Equal(t, "Meta", rec.Company)
	assert.Equal(t, "Engineering Manager", rec.Title)
	assert.Equal(t, "New York, NY (Remote)", rec.Location)
	assert.True(t, rec.IsRemote)
	assert.Equal(t, "3 days ago", rec.Posted)
	assert.Equal(t, "150+", rec.Applicants)
	require.NotNil(t, rec.SalaryLow)
	require.NotNil(t, rec.SalaryHigh)
	assert.Equal(t, 190000, *rec.SalaryLow)
	assert.Equal(t, 220000, *rec.SalaryHigh)
}

func TestExtract_KNotationAndOverApplicants(t *testing.T) {
	raw := "Google logo\nSenior Engineering Manager\nGoogle · Mountain View, CA\nPosted 2 weeks ago · Over 200 applicants\n$200K/yr - $300K/yr"

	rec := Extract(raw)

	assert.Equal(t, "Google", rec.Company)
	assert.Equal(t, "Senior Engineering Manager", rec.Title)
	assert.Equal(t, "Mountain View, CA", rec.Location)
	assert.False(t, rec.IsRemote)
	assert.Equal(t, "2 weeks ago", rec.Posted)
	assert.Equal(t, "200+", rec.Applicants)
	require.NotNil(t, rec.SalaryLow)
	require.NotNil(t, rec.SalaryHigh)
	assert.Equal(t, 200000, *rec.SalaryLow)
	assert.Equal(t, 300000, *rec.SalaryHigh)
}

func TestExtract_NoAnchorYieldsSentinels(t *testing.T) {
	raw := "some unstructured text\nwith no recognizable posting shape"

	rec := Extract(raw)

	assert.Equal(t, types.UnknownSentinel, rec.Company)
	assert.Equal(t, types.UnknownSentinel, rec.Title)
	assert.Empty(t, rec.Location)
	assert.Nil(t, rec.SalaryLow)
	assert.Nil(t, rec.SalaryHigh)
}

func TestExtract_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\n\t"} {
		rec := Extract(input)
		assert.Equal(t, types.UnknownSentinel, rec.Company)
		assert.Equal(t, types.UnknownSentinel, rec.Title)
	}
}

func TestExtract_Deterministic(t *testing.T) {
	raw := "Meta logo\nEngineering Manager\nMeta · New York, NY (Remote)\nPosted 3 days ago · 150+ applicants\n$190,000/yr - $220,000/yr"

	first := Extract(raw)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Extract(raw))
	}
}

func TestExtract_StripsChrome(t *testing.T) {
	raw := "3 notifications total\nSkip to main content\nKeyboard shortcuts\nStripe logo\nStaff Engineer\nStripe · Seattle, WA\nEasy Apply\nSave\nShow more options"

	rec := Extract(raw)

	assert.Equal(t, "Stripe", rec.Company)
	assert.Equal(t, "Staff Engineer", rec.Title)
	assert.Equal(t, "Seattle, WA", rec.Location)
}

func TestExtract_StripsGluedBannerFromTitle(t *testing.T) {
	raw := "Stripe logo\nStaff Engineer Matches your job preferences, workplace type is Remote.\nStripe · Seattle, WA"

	rec := Extract(raw)

	assert.Equal(t, "Staff Engineer", rec.Title)
}

func TestExtract_IgnoresRecommendedSection(t *testing.T) {
	raw := "Acme logo\nPlatform Engineer\nAcme · Denver, CO\nPosted 1 week ago · 40 applicants\n" +
		"More jobs for you\nOther Corp logo\nOther Corp · Remote\n$500,000/yr - $600,000/yr\nPosted 1 hour ago · 999 applicants"

	rec := Extract(raw)

	assert.Equal(t, "Acme", rec.Company)
	assert.Equal(t, "Platform Engineer", rec.Title)
	assert.Equal(t, "Denver, CO", rec.Location)
	assert.Equal(t, "1 week ago", rec.Posted)
	assert.Equal(t, "40", rec.Applicants)
	assert.Nil(t, rec.SalaryLow)
}

func TestExtract_RemoteContradiction(t *testing.T) {
	raw := "Acme logo\nPlatform Engineer\nAcme · Austin, TX (Remote)\nAbout the job\nThis role is hybrid with three days in the office."

	rec, findings := ExtractWithFindings(raw)

	assert.Equal(t, "Austin, TX (Claims Remote - Check Description)", rec.Location)
	assert.False(t, rec.IsRemote)

	require.Len(t, findings, 1)
	assert.Equal(t, types.IssueRemoteContradiction, findings[0].Kind)
	assert.Equal(t, "location", findings[0].Field)
}

func TestExtract_RemoteWithoutContradiction(t *testing.T) {
	raw := "Acme logo\nPlatform Engineer\nAcme · Austin, TX (Remote)\nAbout the job\nWork from anywhere in the US."

	rec, findings := ExtractWithFindings(raw)

	assert.Equal(t, "Austin, TX (Remote)", rec.Location)
	assert.True(t, rec.IsRemote)
	assert.Empty(t, findings)
}

func TestExtract_HybridMarkerKept(t *testing.T) {
	raw := "Acme logo\nPlatform Engineer\nAcme · Chicago, IL (Hybrid)"

	rec := Extract(raw)

	assert.Equal(t, "Chicago, IL (Hybrid)", rec.Location)
	assert.False(t, rec.IsRemote)
}

func TestExtract_BareRemoteLocation(t *testing.T) {
	raw := "Acme logo\nPlatform Engineer\nAcme · Remote"

	rec := Extract(raw)

	assert.Equal(t, "Remote", rec.Location)
	assert.True(t, rec.IsRemote)
}

func TestExtract_CompanyLineFallback(t *testing.T) {
	// No logo anchor: the "Company · Location" line supplies both company
	// and the title from the preceding line.
	raw := "Backend Engineer\nDatadog · Boston, MA\nPosted 5 days ago · 80 applicants"

	rec := Extract(raw)

	assert.Equal(t, "Datadog", rec.Company)
	assert.Equal(t, "Backend Engineer", rec.Title)
	assert.Equal(t, "Boston, MA", rec.Location)
}

func TestExtract_LogoOnOwnLine(t *testing.T) {
	raw := "Figma\nlogo\nProduct Engineer\nFigma · San Francisco, CA"

	rec := Extract(raw)

	assert.Equal(t, "Figma", rec.Company)
	assert.Equal(t, "Product Engineer", rec.Title)
}

func TestExtract_PostedVariants(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "posted prefix", raw: "Posted 3 days ago", want: "3 days ago"},
		{name: "reposted prefix", raw: "Reposted 2 weeks ago", want: "2 weeks ago"},
		{name: "bare phrase", raw: "1 month ago", want: "1 month ago"},
		{name: "hours", raw: "Posted 5 hours ago", want: "5 hours ago"},
		{name: "no phrase", raw: "recently posted", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Extract("Acme logo\nEngineer\nAcme · Austin, TX\n" + tt.raw)
			assert.Equal(t, tt.want, rec.Posted)
		})
	}
}

func TestExtract_ApplicantsVariants(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plus form", raw: "100+ applicants", want: "100+"},
		{name: "over form", raw: "Over 200 applicants", want: "200+"},
		{name: "bare count", raw: "37 applicants", want: "37"},
		{name: "singular", raw: "1 applicant", want: "1"},
		{name: "absent", raw: "be an early applicant", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Extract("Acme logo\nEngineer\nAcme · Austin, TX\n" + tt.raw)
			assert.Equal(t, tt.want, rec.Applicants)
		})
	}
}
