package utils

import "strings"

// NormalizeSearch trims and lower-cases search input
func NormalizeSearch(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SearchTerms splits normalized search input into independent terms
func SearchTerms(s string) []string {
	return strings.Fields(NormalizeSearch(s))
}

// ContainsFold reports whether term is a case-insensitive substring of s.
// term is expected to be lower-case already.
func ContainsFold(s, term string) bool {
	if term == "" {
		return false
	}
	return strings.Contains(strings.ToLower(s), term)
}
