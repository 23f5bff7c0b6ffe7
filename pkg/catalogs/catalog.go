// Package catalogs provides the champion catalog types shared by the
// fetcher, the local roster and the differ.
//
// A Remote catalog is what Data Dragon published for one version and
// locale. A KeySet is a plain set of catalog keys, which is all the local
// roster carries. Both are built once and then only read.
//
// Example usage:
//
//	remote := catalogs.NewRemote("14.1.1", "en_US", map[string]catalogs.Champion{
//	    "Aatrox": {Key: "Aatrox", ID: "266", Name: "Aatrox", Title: "the Darkin Blade"},
//	})
//	for _, key := range remote.Keys() {
//	    fmt.Println(key)
//	}
package catalogs

import (
	"maps"
	"slices"

	"github.com/agentstation/champdiff/pkg/constants"
)

// Remote is the official champion catalog for a single version label.
type Remote struct {
	version   string
	locale    string
	champions map[string]Champion
}

// NewRemote creates a Remote catalog. The map is copied; a Champion with an
// empty Key takes the map key.
func NewRemote(version, locale string, champions map[string]Champion) *Remote {
	copied := make(map[string]Champion, len(champions))
	for key, champion := range champions {
		champion.Key = key
		copied[key] = champion
	}
	return &Remote{
		version:   version,
		locale:    locale,
		champions: copied,
	}
}

// Unknown returns the empty catalog used when the data source could not be
// reached. Its version label is constants.UnknownVersion.
func Unknown() *Remote {
	return NewRemote(constants.UnknownVersion, "", nil)
}

// Version returns the version label the catalog was fetched under.
func (r *Remote) Version() string {
	return r.version
}

// Locale returns the locale the names and titles are written in.
func (r *Remote) Locale() string {
	return r.locale
}

// IsUnknown reports whether the catalog is the degraded placeholder.
func (r *Remote) IsUnknown() bool {
	return r.version == constants.UnknownVersion && len(r.champions) == 0
}

// Len returns the number of champions.
func (r *Remote) Len() int {
	return len(r.champions)
}

// Get returns the champion stored under key. Keys are case-sensitive.
func (r *Remote) Get(key string) (Champion, bool) {
	champion, ok := r.champions[key]
	return champion, ok
}

// Keys returns every catalog key in ascending order.
func (r *Remote) Keys() []string {
	return slices.Sorted(maps.Keys(r.champions))
}

// KeySet returns the catalog keys as a set.
func (r *Remote) KeySet() KeySet {
	return NewKeySet(r.Keys()...)
}

// Champions returns every champion ordered by catalog key.
func (r *Remote) Champions() []Champion {
	keys := r.Keys()
	champions := make([]Champion, 0, len(keys))
	for _, key := range keys {
		champions = append(champions, r.champions[key])
	}
	return champions
}
