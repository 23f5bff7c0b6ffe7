// Package application provides the application interface for champdiff commands.
//
// The Application interface defines the contract between the application layer and
// command implementations, enabling dependency injection and testability.
//
// Usage in Commands:
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            src, err := app.Source()
//	            if err != nil {
//	                return err
//	            }
//	            remote, err := src.Fetch(cmd.Context())
//	            // ... use remote
//	        },
//	    }
//	}
//
// Testing with Mocks:
//
//	mock := &application.Mock{
//	    SourceFunc: func(...ddragon.Option) (application.Source, error) {
//	        return fakeSource, nil
//	    },
//	}
//	cmd := NewCommand(mock)
package application

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agentstation/champdiff/internal/sources/ddragon"
	"github.com/agentstation/champdiff/pkg/catalogs"
	"github.com/agentstation/champdiff/pkg/roster"
)

// Source is the official champion data source. *ddragon.Client implements it.
type Source interface {
	// Fetch resolves the version and returns the champion catalog for it.
	Fetch(ctx context.Context) (*catalogs.Remote, error)

	// Versions returns every published version, newest first.
	Versions(ctx context.Context) ([]string, error)
}

// Application provides the application interface that commands need.
// The App struct from cmd/champdiff/app implements this interface.
//
// Thread Safety: All methods must be safe for concurrent access.
type Application interface {
	// Source returns a data source built from the configuration. Options are
	// applied on top, so a command flag beats the config file.
	Source(opts ...ddragon.Option) (Source, error)

	// Roster returns the local champion key set provider.
	Roster() roster.Provider

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (text, table, json, yaml).
	// Empty means the command picks its own default.
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}

var _ Source = (*ddragon.Client)(nil)
