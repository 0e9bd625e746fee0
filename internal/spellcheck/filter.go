package spellcheck

import (
	"slices"
	"strings"
)

// SuppressionFilter drops unknown words containing an ignore-containing
// substring. It only affects reporting; the checker still flags the word.
type SuppressionFilter struct {
	substrings []string
}

// NewSuppressionFilter returns a filter for the given substrings. Empty
// strings and duplicates are ignored.
func NewSuppressionFilter(substrings ...string) *SuppressionFilter {
	f := &SuppressionFilter{}
	for _, s := range substrings {
		if s != "" && !slices.Contains(f.substrings, s) {
			f.substrings = append(f.substrings, s)
		}
	}
	return f
}

// ShouldSuppress reports whether word contains any registered substring.
// Matching is exact and case-sensitive.
func (f *SuppressionFilter) ShouldSuppress(word string) bool {
	if f == nil {
		return false
	}
	for _, s := range f.substrings {
		if strings.Contains(word, s) {
			return true
		}
	}
	return false
}

// Len returns the number of registered substrings.
func (f *SuppressionFilter) Len() int {
	if f == nil {
		return 0
	}
	return len(f.substrings)
}
