// Package appcontext provides the shared application context interface
// used by all commands, so command packages depend on an interface rather
// than on the concrete App.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/voicemap/internal/cmd/catalog"
	"github.com/agentstation/voicemap/internal/cmd/globals"
	"github.com/agentstation/voicemap/pkg/emit"
	"github.com/agentstation/voicemap/pkg/reconcile"
)

// Interface defines the application context that commands need.
type Interface interface {
	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, wide).
	OutputFormat() string

	// Sources resolves catalog file names, preferring flags over configuration.
	Sources(flags *globals.InputFlags) catalog.Sources

	// Aliases returns the effective alias table: built-in aliases, then
	// configured aliases, then the aliases file, each layer overriding the last.
	Aliases(aliasesFile string) (reconcile.Aliases, error)

	// Reconciler returns a reconciler using Aliases(aliasesFile) and the app logger.
	Reconciler(aliasesFile string) (*reconcile.Reconciler, error)

	// FileOptions returns the configured identifiers for generated Go files.
	FileOptions() emit.FileOptions

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
