// Package application provides test doubles for the command application interface.
package application

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agentstation/champdiff/cmd/application"
	"github.com/agentstation/champdiff/internal/sources/ddragon"
	"github.com/agentstation/champdiff/pkg/catalogs"
	"github.com/agentstation/champdiff/pkg/roster"
)

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
//
// Example Usage:
//
//	mock := &application.Mock{
//	    SourceFunc: func(...ddragon.Option) (application.Source, error) {
//	        return &application.MockSource{Remote: catalogs.TestRemote(t)}, nil
//	    },
//	}
//	cmd := list.NewCommand(mock)
type Mock struct {
	SourceFunc       func(opts ...ddragon.Option) (application.Source, error)
	RosterFunc       func() roster.Provider
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string

	// SourceOptions records the options of the last Source call.
	SourceOptions []ddragon.Option
}

var _ application.Application = (*Mock)(nil)

// Source returns a source using the mock function or an empty MockSource.
func (m *Mock) Source(opts ...ddragon.Option) (application.Source, error) {
	m.SourceOptions = opts
	if m.SourceFunc != nil {
		return m.SourceFunc(opts...)
	}
	return &MockSource{}, nil
}

// Roster returns a roster using the mock function or the compiled-in one.
func (m *Mock) Roster() roster.Provider {
	if m.RosterFunc != nil {
		return m.RosterFunc()
	}
	return roster.Static{}
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns output format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "unknown".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "unknown"
}

// MockSource is a canned Source. A nil Remote with a nil FetchErr fetches
// an empty catalog.
type MockSource struct {
	Remote      *catalogs.Remote
	FetchErr    error
	VersionList []string
	VersionsErr error
}

// Fetch implements Source.
func (s *MockSource) Fetch(context.Context) (*catalogs.Remote, error) {
	if s.FetchErr != nil {
		return nil, s.FetchErr
	}
	if s.Remote == nil {
		return catalogs.Unknown(), nil
	}
	return s.Remote, nil
}

// Versions implements Source.
func (s *MockSource) Versions(context.Context) ([]string, error) {
	if s.VersionsErr != nil {
		return nil, s.VersionsErr
	}
	return s.VersionList, nil
}
