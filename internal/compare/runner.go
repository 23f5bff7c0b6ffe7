// Package compare runs a full comparison: fetch the official catalog, load
// the local roster, diff them and render the result.
package compare

import (
	"context"
	"io"

	"github.com/agentstation/champdiff/internal/report"
	"github.com/agentstation/champdiff/pkg/catalogs"
	"github.com/agentstation/champdiff/pkg/differ"
	"github.com/agentstation/champdiff/pkg/errors"
	"github.com/agentstation/champdiff/pkg/logging"
	"github.com/agentstation/champdiff/pkg/roster"
)

// Fetcher retrieves the official catalog.
type Fetcher interface {
	Fetch(ctx context.Context) (*catalogs.Remote, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context) (*catalogs.Remote, error)

// Fetch implements Fetcher.
func (f FetcherFunc) Fetch(ctx context.Context) (*catalogs.Remote, error) {
	return f(ctx)
}

// Runner wires a fetcher, a roster and a differ to a renderer.
type Runner struct {
	fetcher  Fetcher
	roster   roster.Provider
	differ   differ.Differ
	renderer report.Renderer
	out      io.Writer
}

// Option configures a Runner.
type Option func(*Runner)

// WithRoster replaces the compiled-in roster.
func WithRoster(p roster.Provider) Option {
	return func(r *Runner) {
		r.roster = p
	}
}

// WithDiffer replaces the default differ.
func WithDiffer(d differ.Differ) Option {
	return func(r *Runner) {
		r.differ = d
	}
}

// WithRenderer sets how the report is written.
func WithRenderer(rr report.Renderer) Option {
	return func(r *Runner) {
		r.renderer = rr
	}
}

// WithOutput sets where the report is written.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.out = w
	}
}

// NewRunner creates a Runner that renders the text report to io.Discard
// until WithOutput says otherwise.
func NewRunner(fetcher Fetcher, opts ...Option) *Runner {
	r := &Runner{
		fetcher:  fetcher,
		roster:   roster.Static{},
		differ:   differ.New(),
		renderer: report.Text{},
		out:      io.Discard,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run performs one comparison and returns the rendered report.
//
// A failed fetch does not fail the run: the error is logged, narrated and
// recorded in Report.FetchError, and the comparison continues against an
// empty catalog. Run only returns an error when ctx is done or the report
// cannot be written. A narration write error stops the run before the
// fetch.
func (r *Runner) Run(ctx context.Context) (*differ.Report, error) {
	logger := logging.FromContext(ctx)
	narrator, _ := r.renderer.(report.Narrator)

	if narrator != nil {
		if err := narrator.Fetching(r.out); err != nil {
			return nil, err
		}
	}

	remote, fetchErr := r.fetcher.Fetch(ctx)
	if fetchErr == nil && remote == nil {
		remote = catalogs.Unknown()
	}
	if fetchErr != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		logger.Warn().
			Err(fetchErr).
			Bool("timeout", errors.IsTimeout(fetchErr)).
			Msg("Failed to fetch official champion data, comparing against an empty catalog")
		if narrator != nil {
			if err := narrator.FetchFailed(r.out, fetchErr); err != nil {
				return nil, err
			}
		}
		remote = catalogs.Unknown()
	} else if narrator != nil {
		if err := narrator.Fetched(r.out, remote.Version()); err != nil {
			return nil, err
		}
	}

	if narrator != nil {
		if err := narrator.Extracting(r.out); err != nil {
			return nil, err
		}
	}
	local := r.roster.List()

	result := r.differ.Compare(remote, local)
	if fetchErr != nil {
		result.FetchError = fetchErr.Error()
	}

	logger.Debug().
		Str("version", result.Version).
		Int("local", result.LocalCount).
		Int("official", result.OfficialCount).
		Int("missing", len(result.Missing)).
		Int("extra", len(result.Extra)).
		Msg("Comparison complete")

	if err := r.renderer.Render(r.out, result); err != nil {
		return nil, err
	}

	return result, nil
}
