package list

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/agentstation/champdiff/cmd/champdiff/cmd/compare"
	"github.com/agentstation/champdiff/internal/cmd/output"
	"github.com/agentstation/champdiff/internal/cmd/table"
	"github.com/agentstation/champdiff/internal/matcher"
	"github.com/agentstation/champdiff/pkg/catalogs"
	"github.com/agentstation/champdiff/pkg/constants"
	"github.com/agentstation/champdiff/pkg/errors"
	"github.com/agentstation/champdiff/pkg/logging"
)

// NewOfficialCommand creates the list official subcommand. Unlike compare,
// a failed fetch is an error here.
func NewOfficialCommand(app AppContext) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:     "official [key]",
		Short:   "List champions published by Data Dragon",
		Aliases: []string{"remote"},
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := app.Source(compare.SourceOptions(cmd)...)
			if err != nil {
				return err
			}

			ctx := logging.WithLogger(cmd.Context(), app.Logger())
			remote, err := src.Fetch(ctx)
			if err != nil {
				return err
			}

			format, err := output.Resolve(app.OutputFormat())
			if err != nil {
				return err
			}

			if len(args) == 1 {
				champion, ok := remote.Get(args[0])
				if !ok {
					return &errors.NotFoundError{Resource: "champion", ID: args[0]}
				}
				if format == output.FormatText {
					return output.NewFormatter(format).Format(cmd.OutOrStdout(), champion)
				}
				return formatChampions(cmd.OutOrStdout(), format, []catalogs.Champion{champion}, champion)
			}

			app.Logger().Debug().
				Str("version", remote.Version()).
				Int("count", remote.Len()).
				Msg("Listing official champions")

			champions := remote.Champions()
			if filter != "" {
				m, err := matcher.New(matcher.Auto, filter)
				if err != nil {
					return errors.NewValidationError("filter", filter, err.Error())
				}
				champions = slices.DeleteFunc(champions, func(c catalogs.Champion) bool {
					return !m.Match(c.Key)
				})
			}
			return formatChampions(cmd.OutOrStdout(), format, champions, champions)
		},
	}

	compare.AddFlags(cmd)
	addFilterFlag(cmd, &filter)
	return cmd
}

// formatChampions writes champions as a table, as key: name - title lines,
// or encodes doc for the structured formats.
func formatChampions(w io.Writer, format output.Format, champions []catalogs.Champion, doc any) error {
	switch format {
	case output.FormatTable:
		return output.NewFormatter(format).Format(w, table.ChampionsToTableData(champions))
	case output.FormatText:
		for _, c := range champions {
			if _, err := fmt.Fprintf(w, "%s: %s - %s\n", c.Key, c.Name, c.Title); err != nil {
				return err
			}
		}
		return nil
	case output.FormatJSON, output.FormatYAML:
		return output.NewFormatter(format).Format(w, doc)
	default:
		return errors.NewValidationError("format", string(format), constants.ErrMsgUnsupportedFormat)
	}
}
