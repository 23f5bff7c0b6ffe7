// Package report renders a comparison report in the supported output
// formats.
package report

import (
	"io"

	"github.com/agentstation/champdiff/internal/cmd/output"
	"github.com/agentstation/champdiff/pkg/differ"
)

// Renderer writes a finished report.
type Renderer interface {
	Render(w io.Writer, r *differ.Report) error
}

// Narrator is implemented by renderers that also print progress while the
// comparison runs. Only the text layout does. Each method returns the
// write error, if any.
type Narrator interface {
	Fetching(w io.Writer) error
	Fetched(w io.Writer, version string) error
	FetchFailed(w io.Writer, err error) error
	Extracting(w io.Writer) error
}

// ForFormat returns the renderer for format. Unknown and empty formats get
// the text layout.
func ForFormat(format output.Format) Renderer {
	switch format {
	case output.FormatTable:
		return Table{}
	case output.FormatJSON, output.FormatYAML:
		return Structured{Formatter: output.NewFormatter(format)}
	default:
		return Text{}
	}
}

// Structured encodes the report as a single document.
type Structured struct {
	Formatter output.Formatter
}

// Render implements Renderer.
func (s Structured) Render(w io.Writer, r *differ.Report) error {
	return s.Formatter.Format(w, r)
}
