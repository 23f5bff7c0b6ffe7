package ddragon

// championFile is the body of cdn/{version}/data/{locale}/champion.json.
type championFile struct {
	Type    string                   `json:"type"`
	Format  string                   `json:"format"`
	Version string                   `json:"version"`
	Data    map[string]championEntry `json:"data"`
}

// championEntry is one value of championFile.Data. Pointer fields tell a
// missing field apart from an empty one.
type championEntry struct {
	ID    *string `json:"id"`
	Key   *string `json:"key"`
	Name  *string `json:"name"`
	Title *string `json:"title"`
}

// missingField returns the name of the first required field that is absent.
func (e championEntry) missingField() string {
	switch {
	case e.Key == nil:
		return "key"
	case e.Name == nil:
		return "name"
	case e.Title == nil:
		return "title"
	default:
		return ""
	}
}
