package differ

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Matcher decides whether an official key is a likely spelling of a local key.
type Matcher interface {
	Similar(local, official string) bool
}

// MatcherFunc allows functions to implement Matcher.
type MatcherFunc func(local, official string) bool

// Similar implements Matcher.
func (f MatcherFunc) Similar(local, official string) bool {
	return f(local, official)
}

// FuzzyMatcher accepts keys that are equal ignoring case, or equal once
// apostrophes and spaces are removed and case is ignored. "KaiSa" matches
// "Kaisa" and "Khazix" matches "Kha'Zix".
type FuzzyMatcher struct{}

// Similar implements Matcher.
func (FuzzyMatcher) Similar(local, official string) bool {
	l, o := fold(local), fold(official)
	if l == o {
		return true
	}
	return stripPunctuation(l) == stripPunctuation(o)
}

var punctuation = strings.NewReplacer("'", "", " ", "")

// stripPunctuation removes apostrophes and spaces.
func stripPunctuation(s string) string {
	return punctuation.Replace(s)
}

// fold lower-cases s. A Caser keeps state, so each call gets its own.
func fold(s string) string {
	return cases.Lower(language.Und).String(s)
}
