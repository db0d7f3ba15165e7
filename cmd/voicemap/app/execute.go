package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/voicemap/internal/cmd/globals"
	"github.com/agentstation/voicemap/pkg/logging"
)

// Execute runs the voicemap CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "voicemap",
		Short:   "Cross-reference TTS voices with a language catalog",
		Version: a.version,
		Long: `Voicemap reconciles a text-to-speech voice catalog with a translation
language catalog and renders the result as static Go source literals.

Each voice's primary language code is matched to a language by its leading
subtag, after correcting provider spelling differences through an alias
table (fil -> tl, nb -> no). Voices that cannot be matched are reported on
stderr and never written to the generated output.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})

	a.flags = globals.AddFlags(rootCmd)

	rootCmd.SetVersionTemplate("voicemap {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs. An explicit --config file
// replaces the configuration loaded at startup; flags are then layered on top
// and the logger is rebuilt.
func (a *App) setupCommand(_ *cobra.Command, _ []string) error {
	if a.flags.ConfigFile != "" {
		config, err := LoadConfigFile(a.flags.ConfigFile)
		if err != nil {
			return err
		}
		a.config = config
	}

	a.config.UpdateFromFlags(a.flags)

	logger := NewLogger(a.config)
	a.logger = &logger
	logging.SetDefault(logger)

	if a.config.ConfigFile != "" {
		a.logger.Debug().Str("file", a.config.ConfigFile).Msg("Loaded config file")
	}
	return nil
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
