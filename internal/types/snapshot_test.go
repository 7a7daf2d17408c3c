package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotValidate(t *testing.T) {
	tests := []struct {
		name    string
		snap    Snapshot
		wantErr bool
	}{
		{
			name: "valid captured snapshot",
			snap: Snapshot{
				RawText:    "Meta\nSoftware Engineer",
				ParsedData: ParsedData{"company": "Meta"},
				Timestamp:  "20260115_093042",
				State:      StateCaptured,
			},
			wantErr: false,
		},
		{
			name: "state omitted is legal",
			snap: Snapshot{
				RawText:    "Meta\nSoftware Engineer",
				ParsedData: ParsedData{"company": "Meta"},
				Timestamp:  "20260115_093042",
			},
			wantErr: false,
		},
		{
			name: "missing raw text",
			snap: Snapshot{
				ParsedData: ParsedData{"company": "Meta"},
				Timestamp:  "20260115_093042",
			},
			wantErr: true,
		},
		{
			name: "malformed timestamp",
			snap: Snapshot{
				RawText:    "x",
				ParsedData: ParsedData{},
				Timestamp:  "2026-01-15",
			},
			wantErr: true,
		},
		{
			name: "unknown state",
			snap: Snapshot{
				RawText:    "x",
				ParsedData: ParsedData{"company": "Meta"},
				Timestamp:  "20260115_093042",
				State:      "archived",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.snap.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEffectiveState(t *testing.T) {
	snap := Snapshot{Timestamp: "20260115_093042"}
	assert.Equal(t, StateCaptured, snap.EffectiveState())

	snap.State = StateBaseline
	assert.Equal(t, StateBaseline, snap.EffectiveState())
}

func TestToParsedData(t *testing.T) {
	low, high := 190000, 220000
	rec := JobRecord{
		Company:    "Meta",
		Title:      "Software Engineer",
		Location:   "New York, NY (Remote)",
		IsRemote:   true,
		SalaryLow:  &low,
		SalaryHigh: &high,
		Posted:     "2 weeks ago",
		Applicants: "100+",
		URL:        "https://www.linkedin.com/jobs/view/123",
		Date:       "01/15/2026",
	}

	pd := ToParsedData(rec)

	assert.Equal(t, "Meta", pd["company"])
	assert.Equal(t, "Software Engineer", pd["title"])
	assert.Equal(t, "New York, NY (Remote)", pd["location"])
	assert.Equal(t, "LinkedIn", pd["source"])
	assert.Equal(t, "190000-220000", pd["salary"])
	assert.Equal(t, "2 weeks ago", pd["posted"])
	assert.Equal(t, "100+", pd["applicants"])
}

func TestToParsedData_OmitsAbsentOptionals(t *testing.T) {
	pd := ToParsedData(NewJobRecord())

	_, hasSalary := pd["salary"]
	_, hasPosted := pd["posted"]
	_, hasApplicants := pd["applicants"]
	assert.False(t, hasSalary)
	assert.False(t, hasPosted)
	assert.False(t, hasApplicants)
}

func TestParsedDataRoundTrip(t *testing.T) {
	low, high := 150000, 180000
	rec := JobRecord{
		Company:    "Google",
		Title:      "Staff Engineer",
		Location:   "Mountain View, CA (Remote)",
		IsRemote:   true,
		SalaryLow:  &low,
		SalaryHigh: &high,
		Posted:     "3 days ago",
		Applicants: "200+",
		URL:        "https://www.linkedin.com/jobs/view/456",
		Date:       "02/01/2026",
	}

	got := ToParsedData(rec).ToJobRecord()

	assert.Equal(t, rec.Company, got.Company)
	assert.Equal(t, rec.Title, got.Title)
	assert.Equal(t, rec.Location, got.Location)
	assert.True(t, got.IsRemote)
	require.NotNil(t, got.SalaryLow)
	require.NotNil(t, got.SalaryHigh)
	assert.Equal(t, low, *got.SalaryLow)
	assert.Equal(t, high, *got.SalaryHigh)
	assert.Equal(t, rec.Posted, got.Posted)
	assert.Equal(t, rec.Applicants, got.Applicants)
	assert.Equal(t, rec.URL, got.URL)
}

func TestToJobRecord_MissingIdentityKeysBecomeSentinels(t *testing.T) {
	rec := ParsedData{"location": "Austin, TX"}.ToJobRecord()

	assert.Equal(t, UnknownSentinel, rec.Company)
	assert.Equal(t, UnknownSentinel, rec.Title)
	assert.Equal(t, "Austin, TX", rec.Location)
	assert.False(t, rec.IsRemote)
}

func TestToJobRecord_RemoteTag(t *testing.T) {
	tests := []struct {
		name     string
		location string
		want     bool
	}{
		{name: "remote suffix", location: "New York, NY (Remote)", want: true},
		{name: "bare remote", location: "Remote", want: true},
		{name: "hybrid", location: "Seattle, WA (Hybrid)", want: false},
		{name: "claims remote annotation", location: "Austin, TX (Claims Remote - Check Description)", want: false},
		{name: "plain city", location: "Chicago, IL", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ParsedData{"location": tt.location}.ToJobRecord()
			assert.Equal(t, tt.want, rec.IsRemote)
		})
	}
}
