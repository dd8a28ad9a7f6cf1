package element

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type matchSettings struct {
	caseSensitive bool
	recursive     bool
}

// MatchOption tunes name and content matching.
type MatchOption func(*matchSettings)

// CaseSensitive switches matching to exact comparison.
func CaseSensitive() MatchOption {
	return func(s *matchSettings) { s.caseSensitive = true }
}

// Recursively extends directory containment checks below the immediate children.
// File content matching ignores it.
func Recursively() MatchOption {
	return func(s *matchSettings) { s.recursive = true }
}

func newMatchSettings(opts []MatchOption) matchSettings {
	var s matchSettings
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// nameMatcher compares names either exactly or at base strength, where strings
// differing only in case, accents or width are equal.
type nameMatcher struct {
	collator *collate.Collator
}

func newNameMatcher(s matchSettings) nameMatcher {
	if s.caseSensitive {
		return nameMatcher{}
	}
	return nameMatcher{collator: collate.New(language.Und, collate.Loose)}
}

func (m nameMatcher) equal(a, b string) bool {
	if m.collator == nil {
		return a == b
	}
	return m.collator.CompareString(a, b) == 0
}

// MatchesAny reports whether name equals one of candidates, case-insensitively
// unless CaseSensitive is given.
func MatchesAny(name string, candidates []string, opts ...MatchOption) bool {
	m := newNameMatcher(newMatchSettings(opts))
	for _, candidate := range candidates {
		if m.equal(name, candidate) {
			return true
		}
	}
	return false
}
