// Package version provides the build information command.
package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/champdiff/internal/cmd/output"
)

// AppContext defines the interface that the version command needs from the app.
type AppContext interface {
	Version() string
	Commit() string
	Date() string
	BuiltBy() string
	OutputFormat() string
}

// Info is the build information of the running binary.
type Info struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
	BuiltBy string `json:"built_by" yaml:"built_by"`
}

// NewCommand creates the version command.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := Info{
				Version: app.Version(),
				Commit:  app.Commit(),
				Date:    app.Date(),
				BuiltBy: app.BuiltBy(),
			}

			format, err := output.ParseFormat(app.OutputFormat())
			if err != nil {
				return err
			}

			switch format {
			case "", output.FormatText:
				w := cmd.OutOrStdout()
				fmt.Fprintf(w, "champdiff %s\n", info.Version)
				verbose, _ := cmd.Flags().GetBool("verbose")
				if verbose {
					fmt.Fprintf(w, "  commit:   %s\n", info.Commit)
					fmt.Fprintf(w, "  built:    %s\n", info.Date)
					fmt.Fprintf(w, "  built by: %s\n", info.BuiltBy)
				}
				return nil
			default:
				return output.NewFormatter(format).Format(cmd.OutOrStdout(), info)
			}
		},
	}

	return cmd
}
