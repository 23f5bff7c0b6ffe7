// Package compare provides the command that diffs the official champion
// catalog against the compiled-in roster.
package compare

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/champdiff/cmd/application"
	runner "github.com/agentstation/champdiff/internal/compare"
	"github.com/agentstation/champdiff/internal/cmd/output"
	"github.com/agentstation/champdiff/internal/report"
	"github.com/agentstation/champdiff/internal/sources/ddragon"
	"github.com/agentstation/champdiff/pkg/logging"
	"github.com/agentstation/champdiff/pkg/roster"
)

// AppContext defines the interface that the compare command needs from the app.
type AppContext interface {
	Source(opts ...ddragon.Option) (application.Source, error)
	Roster() roster.Provider
	Logger() *zerolog.Logger
	OutputFormat() string
}

// NewCommand creates the compare command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "compare",
		GroupID: "core",
		Short:   "Compare the official champion list with the local roster",
		Long: `Compare fetches the latest champion catalog from Data Dragon and reports
which champions the local roster is missing, which local keys are not
official (with a likely spelling match when one exists), and the full
official listing.

When Data Dragon cannot be reached the error is printed and the report is
produced against an empty catalog. The command still succeeds.`,
		Example: `  champdiff compare                   # Text report against the latest patch
  champdiff compare --patch 14.1.1    # Compare against a specific patch
  champdiff compare --locale zh_CN    # Names and titles in simplified Chinese
  champdiff compare -o json           # Machine-readable report`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Run(cmd, app)
		},
	}

	AddFlags(cmd)
	return cmd
}

// AddFlags registers the source flags. The root command carries them too
// so that a bare invocation behaves like compare.
func AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("locale", "", "locale for champion names and titles (default en_US)")
	cmd.Flags().String("patch", "", "compare against this version instead of the latest")
}

// SourceOptions turns the source flags that were set into ddragon options.
func SourceOptions(cmd *cobra.Command) []ddragon.Option {
	var opts []ddragon.Option
	if cmd.Flags().Changed("locale") {
		locale, _ := cmd.Flags().GetString("locale")
		opts = append(opts, ddragon.WithLocale(locale))
	}
	if cmd.Flags().Changed("patch") {
		patch, _ := cmd.Flags().GetString("patch")
		opts = append(opts, ddragon.WithPatch(patch))
	}
	return opts
}

// Run executes a comparison and writes the report to the command output.
// The format defaults to text.
func Run(cmd *cobra.Command, app AppContext) error {
	format, err := output.ParseFormat(app.OutputFormat())
	if err != nil {
		return err
	}
	if format == "" {
		format = output.FormatText
	}

	src, err := app.Source(SourceOptions(cmd)...)
	if err != nil {
		return err
	}

	ctx := logging.WithLogger(cmd.Context(), app.Logger())
	ctx = logging.WithOperation(ctx, "compare")

	r := runner.NewRunner(src,
		runner.WithRoster(app.Roster()),
		runner.WithRenderer(report.ForFormat(format)),
		runner.WithOutput(cmd.OutOrStdout()),
	)

	_, err = r.Run(ctx)
	return err
}
