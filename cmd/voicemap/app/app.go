// Package app provides the application context and dependency management
// for the voicemap CLI. Configuration, logging and the catalog inputs are
// resolved here once and handed to commands through small interfaces.
package app

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/voicemap/internal/cmd/catalog"
	"github.com/agentstation/voicemap/internal/cmd/globals"
	"github.com/agentstation/voicemap/internal/cmd/output"
	"github.com/agentstation/voicemap/pkg/emit"
	"github.com/agentstation/voicemap/pkg/errors"
	"github.com/agentstation/voicemap/pkg/reconcile"
)

// App represents the voicemap application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	flags  *globals.Flags
	logger *zerolog.Logger
}

// New creates a new App instance with the given version information.
// The app is initialized with configuration from the environment and the
// default config file locations, then customized by the options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
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

// OutputFormat returns the configured format, or table on a terminal and
// json otherwise.
func (a *App) OutputFormat() string {
	return string(output.DetectFormat(a.config.Format))
}

// Sources resolves catalog file names. Non-empty flags win over configuration.
func (a *App) Sources(flags *globals.InputFlags) catalog.Sources {
	src := catalog.Sources{
		Languages: a.config.LanguagesFile,
		Voices:    a.config.VoicesFile,
		Aliases:   a.config.AliasesFile,
	}
	if flags == nil {
		return src
	}
	if flags.Languages != "" {
		src.Languages = flags.Languages
	}
	if flags.Voices != "" {
		src.Voices = flags.Voices
	}
	if flags.Aliases != "" {
		src.Aliases = flags.Aliases
	}
	return src
}

// Aliases returns the built-in aliases layered with the config file's
// aliases map and then with aliasesFile, when one is named.
func (a *App) Aliases(aliasesFile string) (reconcile.Aliases, error) {
	aliases := reconcile.DefaultAliases()

	if len(a.config.Aliases) > 0 {
		configured := reconcile.Aliases(a.config.Aliases)
		if err := configured.Validate(); err != nil {
			return nil, errors.NewConfigError("aliases", "invalid aliases in config", err)
		}
		aliases = aliases.Merge(configured)
	}

	if aliasesFile != "" {
		fromFile, err := reconcile.LoadAliasesFile(aliasesFile)
		if err != nil {
			return nil, err
		}
		aliases = aliases.Merge(fromFile)
	}

	return aliases, nil
}

// Reconciler returns a reconciler using the effective alias table.
func (a *App) Reconciler(aliasesFile string) (*reconcile.Reconciler, error) {
	aliases, err := a.Aliases(aliasesFile)
	if err != nil {
		return nil, err
	}
	a.logger.Debug().Strs("aliases", aliases.Keys()).Msg("Using alias table")
	return reconcile.New(reconcile.WithAliases(aliases), reconcile.WithLogger(a.logger))
}

// FileOptions returns the configured identifiers for generated Go files.
func (a *App) FileOptions() emit.FileOptions {
	opts := emit.DefaultFileOptions()
	if a.config.Package != "" {
		opts.Package = a.config.Package
	}
	if a.config.VoicesVar != "" {
		opts.VoicesVar = a.config.VoicesVar
	}
	if a.config.LanguagesVar != "" {
		opts.LanguagesVar = a.config.LanguagesVar
	}
	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
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
