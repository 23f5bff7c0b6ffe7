// Package differ compares the official champion catalog against a local
// key set and produces a Report.
//
// Compare is pure: the same inputs always give the same Report, and every
// slice in it is ordered by catalog key.
package differ

import (
	"github.com/agentstation/champdiff/pkg/catalogs"
)

// Differ handles change detection between the official and local catalogs.
type Differ interface {
	// Compare returns what local is missing, what it has extra, and the
	// full official listing.
	Compare(remote *catalogs.Remote, local catalogs.KeySet) *Report
}

// differ is the default implementation of Differ.
type differ struct {
	matcher Matcher
}

// New creates a Differ with the default fuzzy matcher.
func New(opts ...Option) Differ {
	d := &differ{
		matcher: FuzzyMatcher{},
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Compare runs the default Differ.
func Compare(remote *catalogs.Remote, local catalogs.KeySet) *Report {
	return New().Compare(remote, local)
}

// Compare implements Differ.
func (diff *differ) Compare(remote *catalogs.Remote, local catalogs.KeySet) *Report {
	if remote == nil {
		remote = catalogs.Unknown()
	}
	if local == nil {
		local = catalogs.NewKeySet()
	}

	official := remote.KeySet()

	report := &Report{
		Version:       remote.Version(),
		Locale:        remote.Locale(),
		LocalCount:    local.Len(),
		OfficialCount: official.Len(),
		Missing:       []catalogs.Champion{},
		Extra:         []Extra{},
		Official:      remote.Champions(),
	}

	for _, key := range official.Difference(local).Sorted() {
		champion, _ := remote.Get(key)
		report.Missing = append(report.Missing, champion)
	}

	officialKeys := remote.Keys()
	for _, key := range local.Difference(official).Sorted() {
		report.Extra = append(report.Extra, Extra{
			Key:     key,
			Matches: diff.matches(key, officialKeys),
		})
	}

	return report
}

// matches returns every official key the matcher accepts for key. The
// input is sorted, so the result is too.
func (diff *differ) matches(key string, officialKeys []string) []string {
	if diff.matcher == nil {
		return nil
	}

	var found []string
	for _, candidate := range officialKeys {
		if diff.matcher.Similar(key, candidate) {
			found = append(found, candidate)
		}
	}
	return found
}
