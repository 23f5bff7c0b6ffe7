package catalogs

import "fmt"

// Champion is one entry of the official catalog.
type Champion struct {
	Key   string `json:"key" yaml:"key"`     // Catalog key, e.g. "MonkeyKing"
	ID    string `json:"id" yaml:"id"`       // External numeric id, transmitted as a string
	Name  string `json:"name" yaml:"name"`   // Display name, e.g. "Wukong"
	Title string `json:"title" yaml:"title"` // Epithet, e.g. "the Monkey King"
}

// String returns "Key (ID: id, Name: name, Title: title)".
func (c Champion) String() string {
	return fmt.Sprintf("%s (ID: %s, Name: %s, Title: %s)", c.Key, c.ID, c.Name, c.Title)
}
