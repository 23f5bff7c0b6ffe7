package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/champdiff/cmd/champdiff/cmd/compare"
	"github.com/agentstation/champdiff/pkg/logging"
)

// Execute runs the champdiff CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()

	// cobra falls back to os.Args for nil args
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "champdiff",
		Short:   "Compare the official League of Legends champion list with a local roster",
		Version: a.version,
		Long: `champdiff fetches the current champion catalog from Riot's Data Dragon
and compares it with the champion keys compiled into this binary.

Run without a subcommand it prints the comparison report, the same as
"champdiff compare".`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setupCommand,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return compare.Run(cmd, a)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})

	// Global flags are read in setupCommand rather than bound to the config,
	// so an unset flag never clobbers an environment or config file value.
	rootCmd.PersistentFlags().String("config", "", "config file (default is $HOME/.champdiff.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringP("format", "o", "", "output format: text, table, json, yaml")
	rootCmd.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	// A bare invocation runs compare, so it takes the same flags
	compare.AddFlags(rootCmd)

	if a.out != nil {
		rootCmd.SetOut(a.out)
	}

	rootCmd.SetVersionTemplate("champdiff {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	if flags.Changed("config") {
		if err := a.reloadConfig(mustGetString(cmd, "config")); err != nil {
			return err
		}
	}

	a.config.UpdateFromFlags(Flags{
		Verbose:    mustGetBool(cmd, "verbose"),
		Quiet:      mustGetBool(cmd, "quiet"),
		NoColor:    mustGetBool(cmd, "no-color"),
		Format:     mustGetString(cmd, "format"),
		LogLevel:   mustGetString(cmd, "log-level"),
		VerboseSet: flags.Changed("verbose"),
		QuietSet:   flags.Changed("quiet"),
		NoColorSet: flags.Changed("no-color"),
	})

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger
	logging.SetDefault(logger)

	return nil
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
