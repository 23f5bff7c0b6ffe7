package differ

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/champdiff/pkg/catalogs"
)

func TestCompare_EndToEnd(t *testing.T) {
	remote := catalogs.NewRemote("14.1.1", "en_US", map[string]catalogs.Champion{
		"Aatrox": {ID: "266", Name: "Aatrox", Title: "the Darkin Blade"},
	})
	local := catalogs.NewKeySet("Aatrox", "Akali")

	report := Compare(remote, local)

	assert.Equal(t, "14.1.1", report.Version)
	assert.Equal(t, 2, report.LocalCount)
	assert.Equal(t, 1, report.OfficialCount)
	assert.Empty(t, report.Missing)
	require.Len(t, report.Extra, 1)
	assert.Equal(t, "Akali", report.Extra[0].Key)
	_, ok := report.Extra[0].PossibleMatch()
	assert.False(t, ok)
	require.Len(t, report.Official, 1)
	assert.Equal(t, "Aatrox", report.Official[0].Key)
	assert.False(t, report.InSync())
}

func TestCompare_SetProperties(t *testing.T) {
	tests := []struct {
		name   string
		remote []string
		local  []string
	}{
		{name: "disjoint", remote: []string{"Ahri", "Zed"}, local: []string{"Lux", "Vi"}},
		{name: "overlap", remote: []string{"Ahri", "Zed", "Lux"}, local: []string{"Lux", "Vi", "Ahri"}},
		{name: "equal", remote: []string{"Ahri", "Zed"}, local: []string{"Zed", "Ahri"}},
		{name: "empty local", remote: []string{"Ahri"}, local: nil},
		{name: "empty remote", remote: nil, local: []string{"Ahri"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			champions := make(map[string]catalogs.Champion)
			for _, key := range tt.remote {
				champions[key] = catalogs.Champion{ID: "1", Name: key, Title: "t"}
			}
			remote := catalogs.NewRemote("1.0.0", "en_US", champions)
			local := catalogs.NewKeySet(tt.local...)
			official := remote.KeySet()
			common := local.Intersect(official)

			report := Compare(remote, local)

			missing := catalogs.NewKeySet()
			for _, c := range report.Missing {
				missing[c.Key] = struct{}{}
			}
			extra := catalogs.NewKeySet()
			for _, e := range report.Extra {
				extra[e.Key] = struct{}{}
			}

			assert.Empty(t, missing.Intersect(common).Sorted(), "missing must be disjoint from the intersection")
			assert.Empty(t, extra.Intersect(common).Sorted(), "extra must be disjoint from the intersection")

			union := missing.Clone()
			for key := range common {
				union[key] = struct{}{}
			}
			assert.Equal(t, official.Sorted(), union.Sorted(), "missing plus common must equal the official keys")
			assert.Equal(t, local.Difference(official).Sorted(), extra.Sorted())
			assert.Equal(t, missing.Len() == 0 && extra.Len() == 0, report.InSync())
		})
	}
}

func TestCompare_Idempotent(t *testing.T) {
	remote := catalogs.TestRemote(t)
	local := catalogs.NewKeySet("Zed", "KaiSa", "Aatrox", "Akali")

	first := Compare(remote, local)
	second := Compare(remote, local)

	assert.Equal(t, first, second)
}

func TestCompare_SortOrder(t *testing.T) {
	remote := catalogs.NewRemote("1.0.0", "en_US", map[string]catalogs.Champion{
		"Zyra": {}, "Ahri": {}, "MonkeyKing": {}, "Jax": {},
	})
	local := catalogs.NewKeySet("Yasuo", "Braum", "Jax", "Lux")

	report := Compare(remote, local)

	assert.Equal(t, []string{"Ahri", "MonkeyKing", "Zyra"}, keysOf(report.Missing))
	assert.Equal(t, []string{"Ahri", "Jax", "MonkeyKing", "Zyra"}, keysOf(report.Official))
	var extra []string
	for _, e := range report.Extra {
		extra = append(extra, e.Key)
	}
	assert.Equal(t, []string{"Braum", "Lux", "Yasuo"}, extra)
}

func TestCompare_PossibleMatches(t *testing.T) {
	remote := catalogs.TestRemote(t)

	tests := []struct {
		name  string
		local string
		want  string
	}{
		{name: "case insensitive", local: "KaiSa", want: "Kaisa"},
		{name: "apostrophe and case", local: "Kha'zix", want: "Khazix"},
		{name: "space stripped", local: "Monkey King", want: "MonkeyKing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Compare(remote, catalogs.NewKeySet(tt.local))

			require.Len(t, report.Extra, 1)
			got, ok := report.Extra[0].PossibleMatch()
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompare_PunctuationAgainstOfficialKey(t *testing.T) {
	remote := catalogs.NewRemote("1.0.0", "en_US", map[string]catalogs.Champion{
		"Kha'Zix": {ID: "121", Name: "Kha'Zix", Title: "the Voidreaver"},
	})

	report := Compare(remote, catalogs.NewKeySet("Khazix"))

	require.Len(t, report.Extra, 1)
	got, ok := report.Extra[0].PossibleMatch()
	require.True(t, ok)
	assert.Equal(t, "Kha'Zix", got)
}

func TestCompare_SmallestMatchWins(t *testing.T) {
	remote := catalogs.NewRemote("1.0.0", "en_US", map[string]catalogs.Champion{
		"Nunu":    {},
		"NUNU":    {},
		"Nu nu":   {},
		"Willump": {},
	})

	report := Compare(remote, catalogs.NewKeySet("nunu"))

	require.Len(t, report.Extra, 1)
	assert.Equal(t, []string{"NUNU", "Nu nu", "Nunu"}, report.Extra[0].Matches)
	got, _ := report.Extra[0].PossibleMatch()
	assert.Equal(t, "NUNU", got)
}

func TestCompare_Degraded(t *testing.T) {
	local := catalogs.NewKeySet("Aatrox", "Ahri")

	report := Compare(catalogs.Unknown(), local)

	assert.Equal(t, "unknown", report.Version)
	assert.Zero(t, report.OfficialCount)
	assert.Empty(t, report.Missing)
	assert.Empty(t, report.Official)
	require.Len(t, report.Extra, 2)
	assert.Equal(t, "Aatrox", report.Extra[0].Key)
	assert.Equal(t, "Ahri", report.Extra[1].Key)
}

func TestCompare_NilInputs(t *testing.T) {
	report := Compare(nil, nil)

	assert.Equal(t, "unknown", report.Version)
	assert.Zero(t, report.LocalCount)
	assert.True(t, report.InSync())
}

func TestOptions(t *testing.T) {
	remote := catalogs.TestRemote(t)
	local := catalogs.NewKeySet("KaiSa")

	t.Run("without suggestions", func(t *testing.T) {
		report := New(WithoutSuggestions()).Compare(remote, local)
		require.Len(t, report.Extra, 1)
		assert.Empty(t, report.Extra[0].Matches)
	})

	t.Run("custom matcher", func(t *testing.T) {
		always := MatcherFunc(func(string, string) bool { return true })
		report := New(WithMatcher(always)).Compare(remote, local)
		require.Len(t, report.Extra, 1)
		assert.Equal(t, remote.Keys(), report.Extra[0].Matches)
	})
}

func keysOf(champions []catalogs.Champion) []string {
	keys := make([]string, 0, len(champions))
	for _, c := range champions {
		keys = append(keys, c.Key)
	}
	return keys
}
