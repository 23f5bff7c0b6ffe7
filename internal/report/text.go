package report

import (
	"fmt"
	"io"

	"github.com/agentstation/champdiff/pkg/constants"
	"github.com/agentstation/champdiff/pkg/differ"
)

// Text renders the line-oriented report.
type Text struct{}

// Fetching implements Narrator.
func (Text) Fetching(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Getting official champion data...")
	return err
}

// Fetched implements Narrator.
func (Text) Fetched(w io.Writer, version string) error {
	_, err := fmt.Fprintf(w, "Latest version: %s\n", version)
	return err
}

// FetchFailed implements Narrator.
func (Text) FetchFailed(w io.Writer, cause error) error {
	_, err := fmt.Fprintf(w, "%s: %v\n", constants.ErrMsgFetchFailed, cause)
	return err
}

// Extracting implements Narrator.
func (Text) Extracting(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Extracting local champion data...")
	return err
}

// Render implements Renderer. The missing and extra sections are omitted
// when empty; the header and the full listing always print.
func (Text) Render(w io.Writer, r *differ.Report) error {
	ew := &errWriter{w: w}

	ew.printf("\n=== Champion Data Comparison Report (Official Version: %s) ===\n", r.Version)
	ew.printf("Local champions count: %d\n", r.LocalCount)
	ew.printf("Official champions count: %d\n", r.OfficialCount)

	if len(r.Missing) > 0 {
		ew.printf("\nChampions missing in local (%d):\n", len(r.Missing))
		for _, c := range r.Missing {
			ew.printf("  - %s (ID: %s, Name: %s, Title: %s)\n", c.Key, c.ID, c.Name, c.Title)
		}
	}

	if len(r.Extra) > 0 {
		ew.printf("\nExtra champion keys in local (%d):\n", len(r.Extra))
		for _, e := range r.Extra {
			ew.printf("  - %s\n", e.Key)
			if match, ok := e.PossibleMatch(); ok {
				ew.printf("    Possible match: %s\n", match)
			}
		}
	}

	ew.printf("\n=== Complete Official Champion Key List (%d) ===\n", len(r.Official))
	for _, c := range r.Official {
		ew.printf("%s: %s - %s\n", c.Key, c.Name, c.Title)
	}

	return ew.err
}

// errWriter keeps the first write error and skips everything after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
