// Package matcher filters champion keys with glob or regex patterns.
// Matching is case-insensitive, since keys are mixed case ("MonkeyKing")
// and users rarely type them that way.
package matcher

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// PatternType represents the type of pattern matching to use.
type PatternType int

const (
	// Glob uses shell-style glob patterns (*, ?, []).
	Glob PatternType = iota
	// Regex uses regular expressions.
	Regex
	// Auto attempts to detect the pattern type.
	Auto
)

// String returns a string representation of the PatternType.
func (pt PatternType) String() string {
	switch pt {
	case Glob:
		return "glob"
	case Regex:
		return "regex"
	case Auto:
		return "auto"
	default:
		return "unknown"
	}
}

// Matcher reports whether a key matches a compiled pattern.
type Matcher struct {
	pattern     string
	patternType PatternType
	glob        string
	compiled    *regexp.Regexp
}

// New compiles pattern. Auto picks Regex when the pattern uses regex-only
// syntax and Glob otherwise.
func New(patternType PatternType, pattern string) (*Matcher, error) {
	if patternType == Auto {
		patternType = detectPatternType(pattern)
	}

	m := &Matcher{pattern: pattern, patternType: patternType}

	switch patternType {
	case Glob:
		m.glob = strings.ToLower(pattern)
		if _, err := filepath.Match(m.glob, ""); err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
	case Regex:
		expr := pattern
		if !strings.HasPrefix(expr, "(?i)") {
			expr = "(?i)" + expr
		}
		compiled, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid regex pattern %q: %w", pattern, err)
		}
		m.compiled = compiled
	default:
		return nil, fmt.Errorf("unsupported pattern type: %v", patternType)
	}

	return m, nil
}

// Match checks if the input matches the pattern. Globs must match the
// whole key; regexes may match anywhere unless anchored.
func (m *Matcher) Match(input string) bool {
	if m.patternType == Regex {
		return m.compiled.MatchString(input)
	}
	matched, _ := filepath.Match(m.glob, strings.ToLower(input))
	return matched
}

// Filter returns the inputs that match, in their original order.
func (m *Matcher) Filter(inputs []string) []string {
	results := make([]string, 0, len(inputs))
	for _, input := range inputs {
		if m.Match(input) {
			results = append(results, input)
		}
	}
	return results
}

// Pattern returns the original pattern string.
func (m *Matcher) Pattern() string {
	return m.pattern
}

// Type returns the resolved pattern type.
func (m *Matcher) Type() PatternType {
	return m.patternType
}

// detectPatternType attempts to detect if a pattern is glob or regex.
func detectPatternType(pattern string) PatternType {
	// Common regex metacharacters not used in glob
	regexIndicators := []string{
		"^", "$", "\\d", "\\w", "\\s", "\\D", "\\W", "\\S",
		"(?:", "(?i)", "{", "}", "+", "|", "(", ")", ".*",
	}

	for _, indicator := range regexIndicators {
		if strings.Contains(pattern, indicator) {
			return Regex
		}
	}

	return Glob
}
