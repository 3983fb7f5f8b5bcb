package utils

import (
	"strings"
	"unicode"
)

// CountyKey joins a county name and a state abbreviation into the key
// format used by the adjacency feed, e.g. "Dallas County, TX".
func CountyKey(county, stateShort string) string {
	return county + ", " + stateShort
}

// NormalizeCountyKey folds a county key for case-insensitive joins between
// the adjacency table and case data.
func NormalizeCountyKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// StripDigits removes every decimal digit from a string. The adjacency feed
// interleaves FIPS codes with county names; dropping the digits leaves the
// names intact.
func StripDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return -1
		}
		return r
	}, s)
}

// FirstWord returns the first whitespace-separated token of a string, or
// an empty string when there is none.
func FirstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
