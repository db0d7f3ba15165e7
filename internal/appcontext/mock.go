package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/voicemap/internal/cmd/catalog"
	"github.com/agentstation/voicemap/internal/cmd/globals"
	"github.com/agentstation/voicemap/pkg/emit"
	"github.com/agentstation/voicemap/pkg/reconcile"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a usable default.
type Mock struct {
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	SourcesFunc      func(*globals.InputFlags) catalog.Sources
	AliasesFunc      func(string) (reconcile.Aliases, error)
	FileOptionsFunc  func() emit.FileOptions
	VersionFunc      func() string
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns the format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Sources returns sources using the mock function or the flag values as given.
func (m *Mock) Sources(flags *globals.InputFlags) catalog.Sources {
	if m.SourcesFunc != nil {
		return m.SourcesFunc(flags)
	}
	return catalog.Sources{Languages: flags.Languages, Voices: flags.Voices, Aliases: flags.Aliases}
}

// Aliases returns aliases using the mock function, or the built-in table
// layered with the aliases file when one is named.
func (m *Mock) Aliases(aliasesFile string) (reconcile.Aliases, error) {
	if m.AliasesFunc != nil {
		return m.AliasesFunc(aliasesFile)
	}
	aliases := reconcile.DefaultAliases()
	if aliasesFile == "" {
		return aliases, nil
	}
	extra, err := reconcile.LoadAliasesFile(aliasesFile)
	if err != nil {
		return nil, err
	}
	return aliases.Merge(extra), nil
}

// Reconciler builds a reconciler from Aliases and Logger.
func (m *Mock) Reconciler(aliasesFile string) (*reconcile.Reconciler, error) {
	aliases, err := m.Aliases(aliasesFile)
	if err != nil {
		return nil, err
	}
	return reconcile.New(reconcile.WithAliases(aliases), reconcile.WithLogger(m.Logger()))
}

// FileOptions returns options using the mock function or the defaults.
func (m *Mock) FileOptions() emit.FileOptions {
	if m.FileOptionsFunc != nil {
		return m.FileOptionsFunc()
	}
	return emit.DefaultFileOptions()
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns "unknown".
func (m *Mock) Commit() string { return "unknown" }

// Date returns "unknown".
func (m *Mock) Date() string { return "unknown" }

// BuiltBy returns "test".
func (m *Mock) BuiltBy() string { return "test" }

// Ensure Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
