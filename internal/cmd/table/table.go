// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"strconv"

	"github.com/agentstation/champdiff/pkg/catalogs"
	"github.com/agentstation/champdiff/pkg/differ"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// ChampionsToTableData converts champions to table format.
func ChampionsToTableData(champions []catalogs.Champion) Data {
	rows := make([][]string, 0, len(champions))
	for _, c := range champions {
		rows = append(rows, []string{c.Key, c.ID, c.Name, c.Title})
	}

	return Data{
		Headers:         []string{"Key", "ID", "Name", "Title"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight, AlignLeft, AlignLeft},
	}
}

// ExtrasToTableData converts extra local keys to table format. Keys without
// a plausible official counterpart show "-".
func ExtrasToTableData(extras []differ.Extra) Data {
	rows := make([][]string, 0, len(extras))
	for _, e := range extras {
		match, ok := e.PossibleMatch()
		if !ok {
			match = "-"
		}
		rows = append(rows, []string{e.Key, match})
	}

	return Data{
		Headers: []string{"Key", "Possible Match"},
		Rows:    rows,
	}
}

// KeysToTableData converts a sorted key list to a single column table.
func KeysToTableData(keys []string) Data {
	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{k})
	}

	return Data{
		Headers: []string{"Key"},
		Rows:    rows,
	}
}

// VersionsToTableData numbers versions newest first.
func VersionsToTableData(versions []string) Data {
	rows := make([][]string, 0, len(versions))
	for i, v := range versions {
		rows = append(rows, []string{strconv.Itoa(i + 1), v})
	}

	return Data{
		Headers:         []string{"#", "Version"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignLeft},
	}
}

// SummaryToTableData renders the headline numbers of a comparison.
func SummaryToTableData(r *differ.Report) Data {
	rows := [][]string{
		{"Official Version", r.Version},
		{"Local Champions", strconv.Itoa(r.LocalCount)},
		{"Official Champions", strconv.Itoa(r.OfficialCount)},
		{"Missing In Local", strconv.Itoa(len(r.Missing))},
		{"Extra In Local", strconv.Itoa(len(r.Extra))},
	}
	if r.Degraded() {
		rows = append(rows, []string{"Fetch Error", r.FetchError})
	}

	return Data{
		Headers: []string{"Property", "Value"},
		Rows:    rows,
	}
}
