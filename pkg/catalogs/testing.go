package catalogs

import "testing"

// TestChampion creates a test champion with sensible defaults.
// The t.Helper() call ensures stack traces point to the test, not this function.
func TestChampion(t testing.TB) Champion {
	t.Helper()
	return Champion{
		Key:   "Aatrox",
		ID:    "266",
		Name:  "Aatrox",
		Title: "the Darkin Blade",
	}
}

// TestRemote creates a small remote catalog covering the awkward keys:
// an apostrophe in the display name and a key that differs from the name.
func TestRemote(t testing.TB) *Remote {
	t.Helper()
	return NewRemote("14.1.1", "en_US", map[string]Champion{
		"Aatrox":     {ID: "266", Name: "Aatrox", Title: "the Darkin Blade"},
		"Kaisa":      {ID: "145", Name: "Kai'Sa", Title: "Daughter of the Void"},
		"Khazix":     {ID: "121", Name: "Kha'Zix", Title: "the Voidreaver"},
		"MonkeyKing": {ID: "62", Name: "Wukong", Title: "the Monkey King"},
	})
}
