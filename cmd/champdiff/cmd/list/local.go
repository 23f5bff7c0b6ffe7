package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/champdiff/internal/cmd/output"
	"github.com/agentstation/champdiff/internal/cmd/table"
	"github.com/agentstation/champdiff/internal/matcher"
	"github.com/agentstation/champdiff/pkg/errors"
)

// NewLocalCommand creates the list local subcommand.
func NewLocalCommand(app AppContext) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:     "local",
		Short:   "List champion keys compiled into this binary",
		Aliases: []string{"roster"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			keys := app.Roster().List().Sorted()
			if filter != "" {
				m, err := matcher.New(matcher.Auto, filter)
				if err != nil {
					return errors.NewValidationError("filter", filter, err.Error())
				}
				keys = m.Filter(keys)
			}

			format, err := output.Resolve(app.OutputFormat())
			if err != nil {
				return err
			}
			var data any = keys
			if format == output.FormatTable {
				data = table.KeysToTableData(keys)
			}
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), data)
		},
	}

	addFilterFlag(cmd, &filter)
	return cmd
}
