package validation

import "strings"

// usStateAbbrevs is the 50-state abbreviation table used to recognize
// "City, ST" location strings.
var usStateAbbrevs = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
	"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
	"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
	"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
	"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
	"DC", "PR",
}

// usReferences recognize country-level US strings postings use instead of
// a city/state pair.
var usReferences = []string{
	"United States",
	"USA",
	"U.S.",
	"U.S.A.",
}

// internationalHints are country and region names that mark a posting as
// explicitly non-US. The table is deliberately small: unknown strings fall
// through to the unrecognized finding instead.
var internationalHints = []string{
	"Canada", "United Kingdom", "Ireland", "Germany", "France",
	"Netherlands", "Spain", "Poland", "India", "Australia", "Brazil",
	"Mexico", "Singapore", "Japan", "EMEA", "APAC",
}

// IsUSLocation reports whether a location string is recognizably inside
// the United States: a ", ST" state suffix, a US country reference, or a
// metropolitan-area phrase.
func IsUSLocation(location string) bool {
	upper := strings.ToUpper(location)
	for _, state := range usStateAbbrevs {
		if hasStateAbbrev(upper, state) {
			return true
		}
	}
	for _, ref := range usReferences {
		if strings.Contains(upper, strings.ToUpper(ref)) {
			return true
		}
	}
	return strings.Contains(upper, "METROPOLITAN AREA")
}

// hasStateAbbrev looks for ", ST" with the abbreviation ending the string
// or followed by a non-letter, so ", CANADA" never matches ", CA".
func hasStateAbbrev(upper, state string) bool {
	needle := ", " + state
	for idx := strings.Index(upper, needle); idx >= 0; {
		after := idx + len(needle)
		if after == len(upper) || !isLetter(upper[after]) {
			return true
		}
		next := strings.Index(upper[idx+1:], needle)
		if next < 0 {
			return false
		}
		idx += 1 + next
	}
	return false
}

func isLetter(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}

func looksInternational(location string) bool {
	upper := strings.ToUpper(location)
	for _, hint := range internationalHints {
		if strings.Contains(upper, strings.ToUpper(hint)) {
			return true
		}
	}
	return false
}
