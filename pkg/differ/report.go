package differ

import "github.com/agentstation/champdiff/pkg/catalogs"

// Report is the result of comparing the official catalog with a local key set.
type Report struct {
	Version       string              `json:"version" yaml:"version"`                             // Version label of the official catalog
	Locale        string              `json:"locale,omitempty" yaml:"locale,omitempty"`           // Locale names and titles are written in
	FetchError    string              `json:"fetch_error,omitempty" yaml:"fetch_error,omitempty"` // Set when the official catalog could not be fetched
	LocalCount    int                 `json:"local_count" yaml:"local_count"`                     // Size of the local key set
	OfficialCount int                 `json:"official_count" yaml:"official_count"`               // Size of the official catalog
	Missing       []catalogs.Champion `json:"missing" yaml:"missing"`                             // Official champions absent locally
	Extra         []Extra             `json:"extra" yaml:"extra"`                                 // Local keys absent officially
	Official      []catalogs.Champion `json:"official" yaml:"official"`                           // Full official listing
}

// Extra is a local key that the official catalog does not contain.
type Extra struct {
	Key     string   `json:"key" yaml:"key"`
	Matches []string `json:"matches,omitempty" yaml:"matches,omitempty"` // Similar official keys, ascending
}

// PossibleMatch returns the lexicographically smallest similar official key.
func (e Extra) PossibleMatch() (string, bool) {
	if len(e.Matches) == 0 {
		return "", false
	}
	return e.Matches[0], true
}

// Degraded reports whether the comparison ran without official data.
func (r *Report) Degraded() bool {
	return r.FetchError != ""
}

// InSync reports whether the local set equals the official key set.
func (r *Report) InSync() bool {
	return len(r.Missing) == 0 && len(r.Extra) == 0
}
