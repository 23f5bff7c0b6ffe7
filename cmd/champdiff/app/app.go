// Package app provides the application context and dependency management
// for the champdiff CLI. It centralizes configuration, logging and the
// Data Dragon client so commands only see small interfaces.
package app

import (
	"context"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/champdiff/cmd/application"
	"github.com/agentstation/champdiff/internal/sources/ddragon"
	"github.com/agentstation/champdiff/internal/transport"
	"github.com/agentstation/champdiff/pkg/errors"
	"github.com/agentstation/champdiff/pkg/roster"
)

// App represents the champdiff application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Local champion keys
	roster roster.Provider

	// Command output; nil means os.Stdout
	out io.Writer

	// HTTP transport (lazy-initialized, shared by every source)
	mu        sync.RWMutex
	transport *transport.Client
}

var _ application.Application = (*App)(nil)

// New creates a new App instance with the given version information.
// The app is initialized with configuration from the environment that can be
// customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		roster:  roster.Static{},
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Roster returns the local champion key provider.
func (a *App) Roster() roster.Provider {
	return a.roster
}

// Transport returns the shared HTTP client, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Transport() *transport.Client {
	a.mu.RLock()
	if a.transport != nil {
		t := a.transport
		a.mu.RUnlock()
		return t
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.transport != nil {
		return a.transport
	}

	a.transport = transport.New(
		transport.WithTimeout(a.config.HTTPTimeout),
		transport.WithUserAgent(transport.DefaultUserAgent+"/"+a.version),
	)
	return a.transport
}

// Source returns a Data Dragon client configured from the app
// configuration, with opts applied last.
func (a *App) Source(opts ...ddragon.Option) (application.Source, error) {
	if err := a.config.Validate(); err != nil {
		return nil, errors.WrapResource("create", "source", "ddragon", err)
	}

	base := []ddragon.Option{
		ddragon.WithTransport(a.Transport()),
		ddragon.WithVersionsURL(a.config.VersionsURL),
		ddragon.WithCDNURL(a.config.CDNURL),
		ddragon.WithLocale(a.config.Locale),
		ddragon.WithPatch(a.config.Patch),
	}

	return ddragon.New(append(base, opts...)...), nil
}

// Shutdown performs graceful shutdown of the application.
func (a *App) Shutdown(_ context.Context) error {
	a.mu.RLock()
	t := a.transport
	a.mu.RUnlock()

	if t != nil {
		t.CloseIdleConnections()
	}

	return nil
}

// reloadConfig rereads configuration with an explicit config file.
func (a *App) reloadConfig(configFile string) error {
	config, err := LoadConfig(configFile)
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.config = config
	a.transport = nil
	a.mu.Unlock()

	return nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if config == nil {
			return errors.NewConfigError("app", "nil config", nil)
		}
		if err := config.Validate(); err != nil {
			return err
		}
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithRoster replaces the compiled-in roster (useful for testing).
func WithRoster(p roster.Provider) Option {
	return func(a *App) error {
		a.roster = p
		return nil
	}
}

// WithTransport sets a custom HTTP transport (useful for testing).
func WithTransport(t *transport.Client) Option {
	return func(a *App) error {
		a.transport = t
		return nil
	}
}

// WithOutput redirects command output (useful for testing).
func WithOutput(w io.Writer) Option {
	return func(a *App) error {
		a.out = w
		return nil
	}
}
