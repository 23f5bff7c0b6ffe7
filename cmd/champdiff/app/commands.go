package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/champdiff/cmd/champdiff/cmd/compare"
	"github.com/agentstation/champdiff/cmd/champdiff/cmd/list"
	"github.com/agentstation/champdiff/cmd/champdiff/cmd/version"
	"github.com/agentstation/champdiff/cmd/champdiff/cmd/versions"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(compare.NewCommand(a))
	rootCmd.AddCommand(versions.NewCommand(a))
	rootCmd.AddCommand(list.NewCommand(a))
	rootCmd.AddCommand(version.NewCommand(a))
}
