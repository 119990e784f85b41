// Package search provides the pure filter, suggestion and sort helpers
// over the catalog.  Nothing here mutates session state; every function
// works on the catalog copy handed to it.
package search

import (
	"strings"

	"github.com/iliyamo/lesson-seat-storefront/internal/model"
)

// maxSuggestions caps the suggestion list returned for any term.
const maxSuggestions = 6

// matches reports whether every character of the lower-cased needle
// appears, in order, in the lower-cased haystack.  This is looser than
// a plain substring test so a term like "ma" still finds "Miami"; any
// substring match passes too.
func matches(haystack, needle string) bool {
	want := []rune(needle)
	i := 0
	for _, r := range strings.ToLower(haystack) {
		if i == len(want) {
			return true
		}
		if r == want[i] {
			i++
		}
	}
	return i == len(want)
}

// Suggestions collects subject names and city names matching the term
// (see matches).  Subjects are listed before cities,
// duplicates are removed case-insensitively and at most six entries are
// returned.  An empty or blank term yields no suggestions rather than
// the full set.
func Suggestions(subjects []model.Subject, term string) []string {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return []string{}
	}
	out := make([]string, 0, maxSuggestions)
	seen := make(map[string]struct{})
	add := func(v string) bool {
		key := strings.ToLower(v)
		if _, ok := seen[key]; ok {
			return len(out) < maxSuggestions
		}
		if !matches(v, needle) {
			return len(out) < maxSuggestions
		}
		seen[key] = struct{}{}
		out = append(out, v)
		return len(out) < maxSuggestions
	}
	for _, sub := range subjects {
		if !add(sub.Subject) {
			return out
		}
	}
	for _, sub := range subjects {
		for _, off := range sub.Offerings {
			if !add(off.City) {
				return out
			}
		}
	}
	return out
}

// Filter returns the subjects whose name or any of whose cities match
// the term, under the same match rule as Suggestions.  A blank term
// keeps the full list.  The returned slice shares no backing array
// with the input.
func Filter(subjects []model.Subject, term string) []model.Subject {
	needle := strings.ToLower(strings.TrimSpace(term))
	out := make([]model.Subject, 0, len(subjects))
	if needle == "" {
		return append(out, subjects...)
	}
	for _, sub := range subjects {
		if matches(sub.Subject, needle) {
			out = append(out, sub)
			continue
		}
		for _, off := range sub.Offerings {
			if matches(off.City, needle) {
				out = append(out, sub)
				break
			}
		}
	}
	return out
}
