// Package list provides commands for listing official and local champions.
package list

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/champdiff/cmd/application"
	"github.com/agentstation/champdiff/internal/sources/ddragon"
	"github.com/agentstation/champdiff/pkg/roster"
)

// AppContext defines the interface that list commands need from the app.
// This allows for better testability and decoupling from the full app.
type AppContext interface {
	Source(opts ...ddragon.Option) (application.Source, error)
	Roster() roster.Provider
	Logger() *zerolog.Logger
	OutputFormat() string
}

// NewCommand creates the list command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list [resource]",
		GroupID: "core",
		Short:   "List official or local champions",
		Long: `List displays one side of the comparison.

Available subcommands:
  official    - champions published by Data Dragon
  local       - champion keys compiled into this binary`,
		Example: `  champdiff list official             # Every official champion
  champdiff list official Khazix      # Show one champion
  champdiff list local -o json        # Local keys as a JSON array`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to help if no subcommand
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown resource: %s", args[0])
		},
	}

	cmd.AddCommand(NewOfficialCommand(app))
	cmd.AddCommand(NewLocalCommand(app))

	return cmd
}

// addFilterFlag registers --filter, a glob or regex over champion keys.
func addFilterFlag(cmd *cobra.Command, filter *string) {
	cmd.Flags().StringVarP(filter, "filter", "f", "",
		`only keys matching this glob ("K*") or regex ("^K.*x$"), case-insensitive`)
}
