// Package generate provides the generate command, which renders reconciled
// voices as Go source literals.
package generate

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/voicemap/internal/cmd/catalog"
	"github.com/agentstation/voicemap/internal/cmd/globals"
	"github.com/agentstation/voicemap/pkg/emit"
	"github.com/agentstation/voicemap/pkg/reconcile"
)

// AppContext defines the interface that the generate command needs from the app.
type AppContext interface {
	Logger() *zerolog.Logger
	Sources(flags *globals.InputFlags) catalog.Sources
	Reconciler(aliasesFile string) (*reconcile.Reconciler, error)
	FileOptions() emit.FileOptions
}

// NewCommand creates the generate command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	var flags *Flags

	cmd := &cobra.Command{
		Use:     "generate",
		GroupID: "core",
		Short:   "Render reconciled voices as Go literals",
		Args:    cobra.NoArgs,
		Long: `Generate loads the language and voice catalogs, resolves every voice's
primary language code to a language position and writes one Go composite
literal element per resolved voice.

Voices whose language cannot be resolved are never written to the output.
Each one produces an "unresolved:" diagnostic line on stderr instead.

With --file the lines are wrapped in a complete, gofmt-formatted Go file
that also carries the language map.`,
		Example: `  voicemap generate                                   # Voice lines to stdout
  voicemap generate --file -O models/voices_gen.go    # Complete Go file
  voicemap generate --kind languages                  # Language lines
  voicemap generate --include '*-Chirp3-HD-*'         # Only Chirp 3 HD voices
  voicemap generate --aliases extra.yaml --strict     # Extra aliases, fail on unresolved`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags.Inputs = globals.ParseInputs(cmd)
			return Execute(app, flags, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags = addFlags(cmd)

	return cmd
}
