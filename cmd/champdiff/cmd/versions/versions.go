// Package versions provides the command that lists published Data Dragon
// versions.
package versions

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/champdiff/cmd/application"
	"github.com/agentstation/champdiff/internal/cmd/output"
	"github.com/agentstation/champdiff/internal/cmd/table"
	"github.com/agentstation/champdiff/internal/sources/ddragon"
	"github.com/agentstation/champdiff/pkg/errors"
	"github.com/agentstation/champdiff/pkg/logging"
)

// AppContext defines the interface that the versions command needs from the app.
type AppContext interface {
	Source(opts ...ddragon.Option) (application.Source, error)
	Logger() *zerolog.Logger
	OutputFormat() string
}

// NewCommand creates the versions command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "versions",
		GroupID: "core",
		Short:   "List published Data Dragon versions, newest first",
		Example: `  champdiff versions             # Every published version
  champdiff versions --limit 5   # The five most recent
  champdiff versions -o json     # As a JSON array`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 0 {
				return errors.NewValidationError("limit", limit, "must not be negative")
			}

			src, err := app.Source()
			if err != nil {
				return err
			}

			ctx := logging.WithLogger(cmd.Context(), app.Logger())
			versions, err := src.Versions(ctx)
			if err != nil {
				return err
			}

			if limit > 0 && len(versions) > limit {
				versions = versions[:limit]
			}

			format, err := output.Resolve(app.OutputFormat())
			if err != nil {
				return err
			}
			var data any = versions
			if format == output.FormatTable {
				data = table.VersionsToTableData(versions)
			}
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), data)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most this many versions (0 for all)")
	return cmd
}
