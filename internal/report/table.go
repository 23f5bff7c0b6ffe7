package report

import (
	"fmt"
	"io"

	"github.com/agentstation/champdiff/internal/cmd/output"
	"github.com/agentstation/champdiff/internal/cmd/table"
	"github.com/agentstation/champdiff/pkg/differ"
)

// Table renders the report as a summary table followed by one table per
// non-empty section.
type Table struct{}

// Render implements Renderer.
func (Table) Render(w io.Writer, r *differ.Report) error {
	f := &output.TableFormatter{}

	if err := f.Format(w, table.SummaryToTableData(r)); err != nil {
		return err
	}

	sections := []struct {
		title string
		data  table.Data
		count int
	}{
		{"Missing in local", table.ChampionsToTableData(r.Missing), len(r.Missing)},
		{"Extra in local", table.ExtrasToTableData(r.Extra), len(r.Extra)},
		{"Official champions", table.ChampionsToTableData(r.Official), len(r.Official)},
	}

	for _, s := range sections {
		if s.count == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "\n%s (%d)\n", s.title, s.count); err != nil {
			return err
		}
		if err := f.Format(w, s.data); err != nil {
			return err
		}
	}

	return nil
}
